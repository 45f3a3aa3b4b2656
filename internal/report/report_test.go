package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet-profiler/internal/csvio"
	"wallet-profiler/internal/types"
)

func export(wallet string, pnl, volume, winRate float64, closed int, insider float64) csvio.ProfileExport {
	return csvio.ProfileExport{
		Wallet: wallet,
		UserFinancialProfile: types.UserFinancialProfile{
			RealizedPnl:       pnl,
			TotalDollarVolume: volume,
			WinRatePercent:    winRate,
			ClosedPositions:   closed,
		},
		WalletScores: types.WalletScores{InsiderLikelihood: insider},
	}
}

func TestBuildSummary(t *testing.T) {
	s := Build([]csvio.ProfileExport{
		export("0xaaa", 100, 1000, 60, 5, 90),
		export("0xbbb", -20, 500, 40, 2, 10),
		export("0xccc", 0, 0, 0, 0, 50),
	})

	if s.Wallets != 3 {
		t.Errorf("Wallets = %d, want 3", s.Wallets)
	}
	if s.TotalRealizedPnl != 80 {
		t.Errorf("TotalRealizedPnl = %v, want 80", s.TotalRealizedPnl)
	}
	if s.TotalDollarVolume != 1500 {
		t.Errorf("TotalDollarVolume = %v, want 1500", s.TotalDollarVolume)
	}
	// 0xccc has no closed positions and must not dilute the average
	if s.AvgWinRatePercent != 50 {
		t.Errorf("AvgWinRatePercent = %v, want 50", s.AvgWinRatePercent)
	}
	if s.HighestInsiderWallet != "0xaaa" || s.LowestInsiderWallet != "0xbbb" {
		t.Errorf("unexpected extremes: %+v", s)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := Build(nil)
	if s.Wallets != 0 || s.AvgWinRatePercent != 0 {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestWriteCSVSortsByInsiderLikelihood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	err := WriteCSV(path, []csvio.ProfileExport{
		export("0xlow", 1, 10, 0, 0, 5),
		export("0xhigh", 2, 20, 0, 0, 95),
	})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0xhigh") {
		t.Errorf("first data row = %q, want 0xhigh first", lines[1])
	}
	if !strings.HasPrefix(lines[3], "TOTAL") {
		t.Errorf("last row = %q, want TOTAL", lines[3])
	}
}
