package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-profiler/internal/csvio"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/profile"
	"wallet-profiler/internal/report"
	"wallet-profiler/internal/runlog"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	inputCSV := flag.String("input", "", "input CSV path (overrides config)")
	outputCSV := flag.String("output", "", "output CSV path (overrides config)")
	exportCSV := flag.String("export", "", "write derived columns to their own CSV (optional)")
	summaryCSV := flag.String("summary", "", "write ranked batch summary CSV (optional)")
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = trace.Shutdown(context.Background()) }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(ctx, *configPath)
	if err != nil {
		os.Exit(1)
	}
	if *inputCSV != "" {
		cfg.Pipeline.InputCSV = *inputCSV
	}
	if *outputCSV != "" {
		cfg.Pipeline.OutputCSV = *outputCSV
	}

	runlog.SetDir(cfg.Pipeline.RunLogDir)
	compressOldLogs(ctx)

	source := initializeDataSource(ctx, cfg)
	judge := initializeJudge(ctx, cfg)
	enricher := profile.New(source, judge)

	header, rows, err := csvio.ReadRows(cfg.Pipeline.InputCSV)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to read input CSV", err, "path", cfg.Pipeline.InputCSV)
		os.Exit(1)
	}
	logger.Info(ctx, "Profiler started",
		"wallets", len(rows),
		"input", cfg.Pipeline.InputCSV,
		"output", cfg.Pipeline.OutputCSV,
		"provider", cfg.LLM.Provider,
	)

	header = csvio.ExtendHeader(header, csvio.ProfileColumns...)
	if cfg.Pipeline.ScoreWallets {
		header = csvio.ExtendHeader(header, csvio.ScoreColumns...)
	}

	exports := make([]csvio.ProfileExport, 0, len(rows))
	interrupted := false

	for i, row := range rows {
		if ctx.Err() != nil {
			logger.Warn(ctx, "Interrupted, writing partial output", "processed", i, "remaining", len(rows)-i)
			interrupted = true
			break
		}

		wallet := row["wallet"]
		logger.Info(ctx, "Processing wallet", "index", i+1, "total", len(rows), "wallet", wallet)

		if cfg.Pipeline.ValidateRows {
			for _, issue := range profile.ValidateRow(row) {
				logger.Warn(ctx, "Input row issue", "wallet", issue.Wallet, "field", issue.Field, "reason", issue.Reason)
			}
		}

		rep, err := enricher.Enrich(ctx, wallet)
		if err != nil {
			logger.Warn(ctx, "Wallet enrichment failed, writing zero profile", "wallet", wallet, "error", err.Error())
		}
		csvio.ApplyProfile(row, rep.Profile)

		scores := types.NeutralScores()
		if cfg.Pipeline.ScoreWallets {
			titles, titleSource := csvio.Titles(row)
			if len(titles) == 0 {
				titles, titleSource = rep.Titles, "positions"
			}
			logger.Debug(ctx, "Judging wallet titles", "wallet", wallet, "titles", len(titles), "source", titleSource)

			scores, err = enricher.Score(ctx, wallet, titles)
			if err != nil {
				logger.Warn(ctx, "Scoring failed, keeping neutral scores", "wallet", wallet, "error", err.Error())
				scores = types.NeutralScores()
			}
			csvio.ApplyScores(row, scores, profile.DaysSinceFirstTrade(row["first_trade_ts"], time.Now()))
		}

		exports = append(exports, csvio.ProfileExport{
			Wallet:               wallet,
			UserFinancialProfile: rep.Profile,
			WalletScores:         scores,
		})

		if err := runlog.Append(runlog.Entry{
			Wallet:            wallet,
			RealizedPnl:       rep.Profile.RealizedPnl,
			UnrealizedPnl:     rep.Profile.UnrealizedPnl,
			TotalPnl:          rep.Profile.TotalPnl,
			WinRatePercent:    rep.Profile.WinRatePercent,
			TotalTrades:       rep.Profile.TotalTrades,
			InsiderLikelihood: scores.InsiderLikelihood,
		}); err != nil {
			logger.Warn(ctx, "Failed to append run log", "wallet", wallet, "error", err.Error())
		}
	}

	if err := csvio.WriteRows(cfg.Pipeline.OutputCSV, header, rows); err != nil {
		logger.ErrorWithErr(ctx, "Failed to write output CSV", err, "path", cfg.Pipeline.OutputCSV)
		os.Exit(1)
	}
	logger.Info(ctx, "Output CSV written", "path", cfg.Pipeline.OutputCSV, "rows", len(rows))

	if *exportCSV != "" {
		if err := csvio.WriteProfileExport(*exportCSV, exports); err != nil {
			logger.ErrorWithErr(ctx, "Failed to write export CSV", err, "path", *exportCSV)
		} else {
			logger.Info(ctx, "Export CSV written", "path", *exportCSV, "rows", len(exports))
		}
	}
	if *summaryCSV != "" {
		if err := report.WriteCSV(*summaryCSV, exports); err != nil {
			logger.ErrorWithErr(ctx, "Failed to write summary CSV", err, "path", *summaryCSV)
		} else {
			logger.Info(ctx, "Summary CSV written", "path", *summaryCSV)
		}
	}

	report.Log(ctx, report.Build(exports))
	if interrupted {
		os.Exit(130)
	}
}
