package profile

import (
	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/ledger"
	"wallet-profiler/internal/types"
)

// ClosedStats folds the feed's closed-position report into summary
// counts. A position counts as winning only when its reported pnl is
// strictly positive.
func ClosedStats(recs []interfaces.ClosedPositionRecord) types.ClosedPositionStats {
	stats := types.ClosedPositionStats{ClosedCount: len(recs)}
	for _, rec := range recs {
		pnl := ledger.Coerce(rec.RealizedPnl)
		stats.RealizedPnl += pnl
		if pnl > 0 {
			stats.WinningCount++
		}
	}
	return stats
}
