package ledger

import (
	"wallet-profiler/internal/types"
)

// Reconciliation is the best-effort merge of the ledger's open
// positions with the feed's live position snapshot.
type Reconciliation struct {
	PositionValueDollars float64
	UnrealizedPnl        float64
}

// Reconcile walks the live marks against the ledger's final open
// positions. The two views come from independently fetched sources
// (historical trades vs. live snapshot) and are allowed to disagree:
//
//   - every mark contributes its current value to the position total;
//   - unrealized PnL is attributed only where a mark's key matches an
//     open position, using the ledger's average cost but the feed's
//     reported size. Trusting the reported size tolerates drift when
//     the trade window missed some fills; it is intentionally not
//     reconciled against the ledger's own share count.
//
// Marks with no matching open position have no known cost basis and
// contribute to value only.
func Reconcile(open map[types.PositionKey]types.OpenPosition, marks []types.LiveMark) Reconciliation {
	var rec Reconciliation
	for _, m := range marks {
		currentValue := m.Size * m.Price
		rec.PositionValueDollars += currentValue

		p, ok := open[m.Key()]
		if !ok || p.Shares <= 0 {
			continue
		}
		initialCost := m.Size * p.AvgCost()
		rec.UnrealizedPnl += currentValue - initialCost
	}
	return rec
}
