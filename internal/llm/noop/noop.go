package noop

import (
	"context"

	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/types"
)

// NoopJudge is a fallback judge used when no LLM provider is configured
type NoopJudge struct{}

// NewNoopJudge returns a new instance that always scores neutral
func NewNoopJudge() *NoopJudge {
	return &NoopJudge{}
}

// Score implements the Judge interface. It always returns neutral scores
func (j *NoopJudge) Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error) {
	logger.Debug(ctx, "Noop judge called - always returns neutral scores", "wallet", wallet, "titles", len(titles))
	return types.NeutralScores(), nil
}
