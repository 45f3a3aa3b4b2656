package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"wallet-profiler/internal/csvio"
	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/llm/grok"
	"wallet-profiler/internal/llm/llmobs"
	"wallet-profiler/internal/llm/noop"
	"wallet-profiler/internal/llm/openai"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/polymarket"
	"wallet-profiler/internal/polymarket/pmobs"
	"wallet-profiler/internal/profile"
	"wallet-profiler/internal/store"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"

	"github.com/joho/godotenv"
)

// judge scores wallets with the LLM judge without running the full
// enrichment pipeline: either one wallet from the command line, or
// every row of an already-enriched CSV with -input.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	wallet := flag.String("wallet", "", "wallet address to score")
	titlesArg := flag.String("titles", "", "pipe-delimited market titles (optional, fetched from positions when empty)")
	inputCSV := flag.String("input", "", "enriched CSV to score row by row (alternative to -wallet)")
	outputCSV := flag.String("output", "", "output CSV path for -input mode")
	format := flag.String("format", "text", "output format: text or json")
	flag.Parse()

	if *wallet == "" && *inputCSV == "" {
		fmt.Println("Error: either -wallet or -input is required")
		flag.Usage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	ctx := context.Background()
	defer func() { _ = trace.Shutdown(ctx) }()

	judge := newJudge(cfg)

	if *inputCSV != "" {
		if err := scoreCSV(ctx, judge, *inputCSV, *outputCSV); err != nil {
			fmt.Printf("Error scoring CSV: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scoreOne(ctx, cfg, judge, *wallet, *titlesArg, *format)
}

// scoreCSV scores every row of an enriched CSV and writes the rows back
// with the score columns appended.
func scoreCSV(ctx context.Context, judge interfaces.Judge, inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = inputPath
	}

	header, rows, err := csvio.ReadRows(inputPath)
	if err != nil {
		return err
	}
	header = csvio.ExtendHeader(header, csvio.ScoreColumns...)
	logger.Info(ctx, "Judge batch started", "input", inputPath, "wallets", len(rows))

	for i, row := range rows {
		wallet := row["wallet"]
		titles, source := csvio.Titles(row)

		scores := types.NeutralScores()
		if len(titles) > 0 {
			logger.Info(ctx, "Scoring wallet", "index", i+1, "total", len(rows), "wallet", wallet, "titles", len(titles), "source", source)
			s, err := judge.Score(ctx, wallet, titles)
			if err != nil {
				logger.Warn(ctx, "Scoring failed, keeping neutral scores", "wallet", wallet, "error", err.Error())
			} else {
				scores = s
			}
		} else {
			logger.Info(ctx, "No market titles, using neutral scores", "index", i+1, "total", len(rows), "wallet", wallet)
		}

		csvio.ApplyScores(row, scores, profile.DaysSinceFirstTrade(row["first_trade_ts"], time.Now()))
	}

	if err := csvio.WriteRows(outputPath, header, rows); err != nil {
		return err
	}
	logger.Info(ctx, "Judge batch complete", "output", outputPath, "rows", len(rows))
	return nil
}

// scoreOne scores a single wallet and prints the result.
func scoreOne(ctx context.Context, cfg *store.Config, judge interfaces.Judge, wallet, titlesArg, format string) {
	var titles []string
	if titlesArg != "" {
		titles, _ = csvio.Titles(csvio.Row{"active_market_titles": titlesArg})
	} else {
		source := pmobs.Wrap(polymarket.NewClient(cfg))
		positions, err := source.FetchPositions(ctx, wallet)
		if err != nil {
			fmt.Printf("Error fetching positions: %v\n", err)
			os.Exit(1)
		}
		titles = profile.Titles(positions)
	}

	if len(titles) == 0 {
		fmt.Println("No market titles to judge; scores would be neutral.")
		return
	}

	scores, err := judge.Score(ctx, wallet, titles)
	if err != nil {
		fmt.Printf("Error scoring wallet: %v\n", err)
		os.Exit(1)
	}

	switch format {
	case "json":
		b, _ := json.MarshalIndent(scores, "", "  ")
		fmt.Println(string(b))
	default:
		fmt.Printf("Wallet: %s\n", wallet)
		fmt.Printf("Titles judged: %d\n", len(titles))
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  conflict_penalty:      %.2f\n", scores.ConflictPenalty)
		fmt.Printf("  randomness_penalty:    %.2f\n", scores.RandomnessPenalty)
		fmt.Printf("  focus_boost:           %.2f\n", scores.FocusBoost)
		fmt.Printf("  variant_chain_density: %.2f\n", scores.VariantChainDensity)
		fmt.Printf("  insider_likelihood:    %.1f/100\n", scores.InsiderLikelihood)
	}
}

func newJudge(cfg *store.Config) interfaces.Judge {
	switch cfg.LLM.Provider {
	case "OPENAI":
		return llmobs.Wrap(openai.NewOpenAIJudge(cfg))
	case "GROK":
		return llmobs.Wrap(grok.NewGrokJudge(cfg))
	default:
		return llmobs.Wrap(noop.NewNoopJudge())
	}
}
