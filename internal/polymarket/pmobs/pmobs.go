package pmobs

import (
	"context"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/trace"
)

// observableSource wraps a WalletDataSource with observability (logging & tracing)
type observableSource struct {
	source interfaces.WalletDataSource
}

// Compile-time interface check
var _ interfaces.WalletDataSource = (*observableSource)(nil)

// Wrap wraps a data source with observability middleware
func Wrap(source interfaces.WalletDataSource) interfaces.WalletDataSource {
	return &observableSource{
		source: source,
	}
}

func (os *observableSource) FetchTrades(ctx context.Context, wallet string) ([]interfaces.TradeRecord, error) {
	ctx, span := trace.StartSpan(ctx, "datasource.FetchTrades")
	defer span.End()

	recs, err := os.source.FetchTrades(ctx, wallet)
	if err != nil {
		// Use ErrorWithErrSkip(1) to report the actual caller
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch trades", err, "wallet", wallet)
		return nil, err
	}
	logger.DebugSkip(ctx, 1, "Fetched trades", "wallet", wallet, "count", len(recs))
	return recs, nil
}

func (os *observableSource) FetchPositions(ctx context.Context, wallet string) ([]interfaces.PositionRecord, error) {
	ctx, span := trace.StartSpan(ctx, "datasource.FetchPositions")
	defer span.End()

	recs, err := os.source.FetchPositions(ctx, wallet)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch positions", err, "wallet", wallet)
		return nil, err
	}
	logger.DebugSkip(ctx, 1, "Fetched positions", "wallet", wallet, "count", len(recs))
	return recs, nil
}

func (os *observableSource) FetchClosedPositions(ctx context.Context, wallet string) ([]interfaces.ClosedPositionRecord, error) {
	ctx, span := trace.StartSpan(ctx, "datasource.FetchClosedPositions")
	defer span.End()

	recs, err := os.source.FetchClosedPositions(ctx, wallet)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch closed positions", err, "wallet", wallet)
		return nil, err
	}
	logger.DebugSkip(ctx, 1, "Fetched closed positions", "wallet", wallet, "count", len(recs))
	return recs, nil
}
