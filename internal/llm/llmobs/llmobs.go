package llmobs

import (
	"context"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/trace"
	"wallet-profiler/internal/types"
)

// observableJudge wraps a Judge with observability (logging & tracing)
type observableJudge struct {
	judge interfaces.Judge
}

// Compile-time interface check
var _ interfaces.Judge = (*observableJudge)(nil)

// Wrap wraps a judge with observability middleware
func Wrap(judge interfaces.Judge) interfaces.Judge {
	return &observableJudge{
		judge: judge,
	}
}

// Score scores a wallet's market titles with observability
func (oj *observableJudge) Score(ctx context.Context, wallet string, titles []string) (types.WalletScores, error) {
	ctx, span := trace.StartSpan(ctx, "judge.Score")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting wallet scores",
		"wallet", wallet,
		"titles", len(titles),
	)

	scores, err := oj.judge.Score(ctx, wallet, titles)
	if err != nil {
		// Use ErrorWithErrSkip(1) to report the actual caller
		logger.ErrorWithErrSkip(ctx, 1, "Failed to score wallet", err,
			"wallet", wallet,
			"titles", len(titles),
		)
		return scores, err
	}

	logger.Score(ctx, wallet, scores.InsiderLikelihood, len(titles),
		"conflict_penalty", scores.ConflictPenalty,
		"randomness_penalty", scores.RandomnessPenalty,
		"focus_boost", scores.FocusBoost,
		"variant_chain_density", scores.VariantChainDensity,
	)

	return scores, nil
}
