package ledger

import (
	"wallet-profiler/internal/types"
)

// Ledger is the cost-basis accounting state for one wallet. It is owned
// exclusively by that wallet's processing run and folded over a
// chronologically ordered trade sequence; it is not safe for concurrent
// use and never needs to be.
//
// Accounting model: weighted-average cost. Every BUY adds its dollar
// amount to the key's cost basis; every matched SELL realizes
// proceeds minus the pre-sell average cost of the shares sold. A SELL
// with no open position (or a zero-share one) cannot be attributed to a
// cost basis because the observed trade window may not include the
// opening BUYs, so it is skipped for PnL purposes while still counting
// toward volume. That skip is policy, not a bug.
type Ledger struct {
	positions map[types.PositionKey]*types.OpenPosition
	events    []types.RealizedPnlEvent

	realizedPnl float64
	winning     int
	losing      int
	trades      int
	volume      float64
}

// Result is the outcome of a full ledger run.
type Result struct {
	// Open holds the surviving positions, all with Shares > 0.
	Open map[types.PositionKey]types.OpenPosition
	// Events lists one entry per matched SELL, in processing order.
	// Summing their Pnl fields reproduces RealizedPnl exactly.
	Events []types.RealizedPnlEvent

	RealizedPnl       float64
	WinningTrades     int
	LosingTrades      int
	TotalTrades       int
	TotalDollarVolume float64
}

func New() *Ledger {
	return &Ledger{positions: make(map[types.PositionKey]*types.OpenPosition)}
}

// Process folds an ordered trade sequence through a fresh ledger.
func Process(trades []types.Trade) Result {
	l := New()
	for _, t := range trades {
		l.Apply(t)
	}
	return l.Result()
}

// Apply processes one trade. Trades must be supplied in chronological
// order; average cost and realized PnL are order-dependent.
func (l *Ledger) Apply(t types.Trade) {
	l.trades++
	l.volume += t.DollarAmount()

	switch t.Side {
	case types.SideBuy:
		l.applyBuy(t)
	case types.SideSell:
		l.applySell(t)
	default:
		// Unrecognized side: volume only, no position tracking.
	}
}

func (l *Ledger) applyBuy(t types.Trade) {
	key := t.Key()
	p := l.positions[key]
	if p == nil {
		p = &types.OpenPosition{}
		l.positions[key] = p
	}
	p.Shares += t.Size
	p.CostBasis += t.DollarAmount()
}

func (l *Ledger) applySell(t types.Trade) {
	key := t.Key()
	p := l.positions[key]
	if p == nil || p.Shares <= 0 {
		// No cost-basis history for this key inside the observed
		// window. Skip PnL attribution entirely.
		return
	}

	avgCost := p.CostBasis / p.Shares
	proceeds := t.DollarAmount()
	costOfSold := avgCost * t.Size
	pnl := proceeds - costOfSold

	l.events = append(l.events, types.RealizedPnlEvent{
		Key:        key,
		SizeSold:   t.Size,
		Proceeds:   proceeds,
		CostOfSold: costOfSold,
		Pnl:        pnl,
	})
	l.realizedPnl += pnl

	if pnl > 0 {
		l.winning++
	} else if pnl < 0 {
		l.losing++
	}

	p.Shares -= t.Size
	if p.Shares > 0 {
		// Re-derive from the unchanged average instead of subtracting,
		// so repeated partial sells cannot drift the basis.
		p.CostBasis = avgCost * p.Shares
	} else {
		// Fully closed. An oversell (size beyond tracked shares, from
		// an incomplete feed) lands here too: the residual negative
		// share count is clamped away with the entry.
		delete(l.positions, key)
	}
}

// Result snapshots the ledger. Only positions still holding shares are
// reported; zero-share entries (possible after zero-size buys) are
// dropped.
func (l *Ledger) Result() Result {
	open := make(map[types.PositionKey]types.OpenPosition, len(l.positions))
	for key, p := range l.positions {
		if p.Shares > 0 {
			open[key] = *p
		}
	}
	return Result{
		Open:              open,
		Events:            l.events,
		RealizedPnl:       l.realizedPnl,
		WinningTrades:     l.winning,
		LosingTrades:      l.losing,
		TotalTrades:       l.trades,
		TotalDollarVolume: l.volume,
	}
}
