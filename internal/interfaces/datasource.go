package interfaces

import "context"

// WalletDataSource provides access to a wallet's trade history and
// current positions as reported by the upstream data API.
type WalletDataSource interface {
	// FetchTrades retrieves the wallet's trade fills, oldest first.
	FetchTrades(ctx context.Context, wallet string) ([]TradeRecord, error)

	// FetchPositions retrieves the wallet's current open positions.
	FetchPositions(ctx context.Context, wallet string) ([]PositionRecord, error)

	// FetchClosedPositions retrieves the feed's own closed-position report.
	FetchClosedPositions(ctx context.Context, wallet string) ([]ClosedPositionRecord, error)
}

// TradeRecord is one raw fill as decoded from the feed. Numeric fields
// are deliberately untyped: the API serves them as numbers, numeric
// strings, or null depending on endpoint version, and the normalizer is
// responsible for coercion.
type TradeRecord struct {
	Size      any    `json:"size"`
	Price     any    `json:"price"`
	Side      string `json:"side"`
	Market    string `json:"market"`
	MarketID  string `json:"marketId"`
	Outcome   string `json:"outcome"`
	Title     string `json:"title"`
	Timestamp any    `json:"timestamp"`
}

// PositionRecord is one raw live position snapshot. Size may arrive
// under either "size" or "tokens".
type PositionRecord struct {
	Size     any    `json:"size"`
	Tokens   any    `json:"tokens"`
	Price    any    `json:"price"`
	Market   string `json:"market"`
	MarketID string `json:"marketId"`
	Outcome  string `json:"outcome"`
	Title    string `json:"title"`
}

// ClosedPositionRecord is one entry of the feed's closed-position report.
type ClosedPositionRecord struct {
	RealizedPnl any    `json:"realizedPnl"`
	Market      string `json:"market"`
	Outcome     string `json:"outcome"`
}
