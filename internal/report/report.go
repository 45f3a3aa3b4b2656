package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"wallet-profiler/internal/csvio"
	"wallet-profiler/internal/ledger"
	"wallet-profiler/internal/logger"
)

// Summary aggregates one batch after every wallet has been processed.
type Summary struct {
	Wallets           int
	TotalRealizedPnl  float64
	TotalDollarVolume float64
	// Average win rate over wallets with at least one closed position.
	AvgWinRatePercent    float64
	HighestInsider       float64
	HighestInsiderWallet string
	LowestInsider        float64
	LowestInsiderWallet  string
}

// Build folds the batch's per-wallet exports into a summary.
func Build(exports []csvio.ProfileExport) Summary {
	var s Summary
	s.Wallets = len(exports)
	if len(exports) == 0 {
		return s
	}

	var winRateSum float64
	withClosed := 0
	s.HighestInsider = exports[0].InsiderLikelihood
	s.HighestInsiderWallet = exports[0].Wallet
	s.LowestInsider = exports[0].InsiderLikelihood
	s.LowestInsiderWallet = exports[0].Wallet

	for _, e := range exports {
		s.TotalRealizedPnl += e.RealizedPnl
		s.TotalDollarVolume += e.TotalDollarVolume
		if e.ClosedPositions > 0 {
			winRateSum += e.WinRatePercent
			withClosed++
		}
		if e.InsiderLikelihood > s.HighestInsider {
			s.HighestInsider = e.InsiderLikelihood
			s.HighestInsiderWallet = e.Wallet
		}
		if e.InsiderLikelihood < s.LowestInsider {
			s.LowestInsider = e.InsiderLikelihood
			s.LowestInsiderWallet = e.Wallet
		}
	}
	if withClosed > 0 {
		s.AvgWinRatePercent = ledger.Round4(winRateSum / float64(withClosed))
	}
	s.TotalRealizedPnl = ledger.Round2(s.TotalRealizedPnl)
	s.TotalDollarVolume = ledger.Round2(s.TotalDollarVolume)
	return s
}

// Log emits the batch summary as structured log events.
func Log(ctx context.Context, s Summary) {
	logger.Info(ctx, "Batch summary",
		"wallets", s.Wallets,
		"total_realized_pnl", s.TotalRealizedPnl,
		"total_dollar_volume", s.TotalDollarVolume,
		"avg_win_rate_percent", s.AvgWinRatePercent,
	)
	if s.Wallets > 0 {
		logger.Info(ctx, "Insider likelihood extremes",
			"highest", s.HighestInsider,
			"highest_wallet", s.HighestInsiderWallet,
			"lowest", s.LowestInsider,
			"lowest_wallet", s.LowestInsiderWallet,
		)
	}
}

// WriteCSV writes the per-wallet results sorted by insider likelihood
// descending, with a trailing TOTAL row.
func WriteCSV(path string, exports []csvio.ProfileExport) error {
	if len(exports) == 0 {
		return nil
	}
	sorted := make([]csvio.ProfileExport, len(exports))
	copy(sorted, exports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InsiderLikelihood > sorted[j].InsiderLikelihood
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	headers := []string{"wallet", "insider_likelihood", "realized_pnl", "unrealized_pnl", "total_pnl", "win_rate_percent", "total_trades", "total_dollar_volume"}
	if err := w.Write(headers); err != nil {
		return err
	}
	var totalPnl, totalVolume float64
	for _, e := range sorted {
		rec := []string{
			e.Wallet,
			fmt.Sprintf("%.1f", e.InsiderLikelihood),
			fmt.Sprintf("%.2f", e.RealizedPnl),
			fmt.Sprintf("%.2f", e.UnrealizedPnl),
			fmt.Sprintf("%.2f", e.TotalPnl),
			fmt.Sprintf("%.4f", e.WinRatePercent),
			strconv.Itoa(e.TotalTrades),
			fmt.Sprintf("%.2f", e.TotalDollarVolume),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
		totalPnl += e.RealizedPnl
		totalVolume += e.TotalDollarVolume
	}
	_ = w.Write([]string{"TOTAL", "", fmt.Sprintf("%.2f", totalPnl), "", "", "", "", fmt.Sprintf("%.2f", totalVolume)})
	return nil
}
