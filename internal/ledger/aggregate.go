package ledger

// Totals is the pure fold of a ledger run into the rate and average
// figures the profile reports.
type Totals struct {
	TotalTrades       int
	TotalDollarVolume float64
	AvgTradeDollars   float64
	RealizedPnl       float64
	WinningTrades     int
	LosingTrades      int
	ClosedPositions   int
	WinRatePercent    float64
}

// Aggregate derives totals from a ledger result. Every rate guards its
// denominator: a wallet with no trades or no closed positions reports
// zeros, never a division error.
func Aggregate(r Result) Totals {
	t := Totals{
		TotalTrades:       r.TotalTrades,
		TotalDollarVolume: r.TotalDollarVolume,
		RealizedPnl:       r.RealizedPnl,
		WinningTrades:     r.WinningTrades,
		LosingTrades:      r.LosingTrades,
	}
	t.ClosedPositions = r.WinningTrades + r.LosingTrades
	if t.ClosedPositions > 0 {
		t.WinRatePercent = float64(r.WinningTrades) / float64(t.ClosedPositions) * 100
	}
	if r.TotalTrades > 0 {
		t.AvgTradeDollars = r.TotalDollarVolume / float64(r.TotalTrades)
	}
	return t
}
