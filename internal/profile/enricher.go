package profile

import (
	"context"
	"fmt"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/ledger"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"
)

// Enricher derives one wallet's financial profile and judge scores from
// the upstream data feed.
type Enricher struct {
	source interfaces.WalletDataSource
	judge  interfaces.Judge
}

// Report bundles everything derived for one wallet.
type Report struct {
	Profile     types.UserFinancialProfile
	ClosedStats types.ClosedPositionStats
	Titles      []string
}

func New(source interfaces.WalletDataSource, judge interfaces.Judge) *Enricher {
	return &Enricher{source: source, judge: judge}
}

// Enrich builds the wallet's full financial report. A trade-history
// fetch failure aborts this wallet with a zero report so the batch can
// continue; failures on the secondary feeds (live positions, closed
// positions) degrade to empty data with a warning.
func (e *Enricher) Enrich(ctx context.Context, wallet string) (Report, error) {
	timer := logger.StartOperation(ctx, "profile.enrich", "wallet", wallet)
	ctx = timer.GetContext()

	rawTrades, err := e.source.FetchTrades(ctx, wallet)
	if err != nil {
		timer.EndWithError(err)
		return Report{}, fmt.Errorf("trade history unavailable for %s: %w", wallet, err)
	}

	trades := ledger.NormalizeAll(rawTrades)
	result := ledger.Process(trades)
	totals := ledger.Aggregate(result)

	var marks []types.LiveMark
	var titles []string
	positions, err := e.source.FetchPositions(ctx, wallet)
	if err != nil {
		logger.Warn(ctx, "Live positions unavailable, unrealized pnl will be zero",
			"wallet", wallet, "error", err.Error())
	} else {
		marks = ToLiveMarks(positions)
		titles = Titles(positions)
	}

	rec := ledger.Reconcile(result.Open, marks)
	prof := ledger.BuildProfile(totals, rec)

	var closedStats types.ClosedPositionStats
	closed, err := e.source.FetchClosedPositions(ctx, wallet)
	if err != nil {
		logger.Warn(ctx, "Closed positions unavailable, closed stats will be zero",
			"wallet", wallet, "error", err.Error())
	} else {
		closedStats = ClosedStats(closed)
	}

	logger.Profile(ctx, wallet, prof.RealizedPnl, prof.UnrealizedPnl, prof.WinRatePercent,
		"total_trades", prof.TotalTrades,
		"closed_positions", prof.ClosedPositions,
		"position_value", prof.PositionValueDollars,
	)
	timer.End("trades", len(rawTrades), "marks", len(marks))

	return Report{Profile: prof, ClosedStats: closedStats, Titles: titles}, nil
}

// Score runs the judge over the wallet's market titles. Wallets with no
// titles are not worth an API call and score neutral immediately.
func (e *Enricher) Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error) {
	ctx, span := trace.StartSpan(ctx, "profile.score")
	defer span.End()

	if e.judge == nil || len(titles) == 0 {
		logger.Debug(ctx, "No titles to judge, using neutral scores", "wallet", wallet)
		return types.NeutralScores(), nil
	}
	return e.judge.Score(ctx, wallet, titles)
}
