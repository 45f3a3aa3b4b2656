package interfaces

import (
	"context"

	"wallet-profiler/internal/types"
)

// Judge scores one wallet's market titles with a numbers-only LLM
// prompt. Implementations must never fail the batch: an unusable model
// response resolves to types.NeutralScores with a nil error.
type Judge interface {
	Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error)
}
