package ledger

import (
	"math"

	"wallet-profiler/internal/types"
)

// BuildProfile combines aggregated totals and the reconciliation into
// the final per-wallet summary. This is the presentation boundary:
// dollar amounts are rounded to cents and the win rate to two decimal
// places here and nowhere earlier, so chained computations upstream
// keep full precision.
func BuildProfile(t Totals, rec Reconciliation) types.UserFinancialProfile {
	// Total PnL is summed from the rounded components so the reported
	// identity total == realized + unrealized holds to the cent.
	realized := Round2(t.RealizedPnl)
	unrealized := Round2(rec.UnrealizedPnl)
	return types.UserFinancialProfile{
		TotalDollarVolume:    Round2(t.TotalDollarVolume),
		AvgTradeDollars:      Round2(t.AvgTradeDollars),
		RealizedPnl:          realized,
		UnrealizedPnl:        unrealized,
		TotalPnl:             Round2(realized + unrealized),
		WinRatePercent:       Round2(t.WinRatePercent),
		WinningTrades:        t.WinningTrades,
		LosingTrades:         t.LosingTrades,
		TotalTrades:          t.TotalTrades,
		ClosedPositions:      t.ClosedPositions,
		PositionValueDollars: Round2(rec.PositionValueDollars),
	}
}

// Round2 rounds to cents, for dollar amounts and percentages.
func Round2(f float64) float64 { return math.Round(f*100) / 100 }

// Round4 rounds to four decimals, for rate fractions.
func Round4(f float64) float64 { return math.Round(f*10000) / 10000 }
