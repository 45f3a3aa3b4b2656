package types

// Trade sides as they appear on the data feed after normalization.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// PositionKey identifies one tradable outcome of one market.
type PositionKey struct {
	Market  string
	Outcome string
}

// Trade is one normalized fill. Size and Price are already coerced to
// numbers; malformed upstream values arrive here as 0.
type Trade struct {
	Market     string
	Outcome    string
	Side       string // BUY, SELL, or anything else (volume-only)
	Size       float64
	Price      float64
	OccurredAt int64 // unix seconds, 0 when the feed omits it
}

func (t Trade) Key() PositionKey { return PositionKey{Market: t.Market, Outcome: t.Outcome} }

// DollarAmount is the cash value of the fill.
func (t Trade) DollarAmount() float64 { return t.Size * t.Price }

// OpenPosition tracks shares currently held for one key and the total
// dollars paid for them.
type OpenPosition struct {
	Shares    float64
	CostBasis float64
}

// AvgCost is the blended per-share cost. Only meaningful while Shares > 0.
func (p OpenPosition) AvgCost() float64 {
	if p.Shares <= 0 {
		return 0
	}
	return p.CostBasis / p.Shares
}

// RealizedPnlEvent records one SELL that matched an open position.
type RealizedPnlEvent struct {
	Key        PositionKey
	SizeSold   float64
	Proceeds   float64
	CostOfSold float64
	Pnl        float64
}

// LiveMark is an externally reported current position snapshot used for
// unrealized PnL reconciliation.
type LiveMark struct {
	Market  string
	Outcome string
	Size    float64
	Price   float64
	Title   string
}

func (m LiveMark) Key() PositionKey { return PositionKey{Market: m.Market, Outcome: m.Outcome} }

// UserFinancialProfile is the per-wallet financial summary appended to
// the wallet's profile row. Monetary fields are rounded only when the
// profile is built, never during accumulation.
type UserFinancialProfile struct {
	TotalDollarVolume    float64 `csv:"total_dollar_volume"`
	AvgTradeDollars      float64 `csv:"avg_trade_dollars"`
	RealizedPnl          float64 `csv:"realized_pnl"`
	UnrealizedPnl        float64 `csv:"unrealized_pnl"`
	TotalPnl             float64 `csv:"total_pnl"`
	WinRatePercent       float64 `csv:"win_rate_percent"`
	WinningTrades        int     `csv:"winning_trades"`
	LosingTrades         int     `csv:"losing_trades"`
	TotalTrades          int     `csv:"total_trades"`
	ClosedPositions      int     `csv:"closed_positions_count"`
	PositionValueDollars float64 `csv:"position_value_dollars"`
}

// ClosedPositionStats summarizes the feed's own closed-position report,
// kept separate from the ledger-derived numbers.
type ClosedPositionStats struct {
	RealizedPnl  float64
	ClosedCount  int
	WinningCount int
}

// WinRate is winning closed positions over all closed positions, as a
// fraction. 0 when nothing is closed.
func (s ClosedPositionStats) WinRate() float64 {
	if s.ClosedCount == 0 {
		return 0
	}
	return float64(s.WinningCount) / float64(s.ClosedCount)
}

// WalletScores holds the judge's five numeric scores for one wallet.
type WalletScores struct {
	ConflictPenalty     float64 `csv:"conflict_penalty" json:"conflict_penalty"`
	RandomnessPenalty   float64 `csv:"randomness_penalty" json:"randomness_penalty"`
	FocusBoost          float64 `csv:"focus_boost" json:"focus_boost"`
	VariantChainDensity float64 `csv:"variant_chain_density" json:"variant_chain_density"`
	InsiderLikelihood   float64 `csv:"insider_likelihood" json:"insider_likelihood"`
}

// NeutralScores is the fallback used when the judge cannot produce a
// valid response or a wallet has no titles to score.
func NeutralScores() WalletScores {
	return WalletScores{
		ConflictPenalty:     0,
		RandomnessPenalty:   0.5,
		FocusBoost:          0.5,
		VariantChainDensity: 0,
		InsiderLikelihood:   50,
	}
}
