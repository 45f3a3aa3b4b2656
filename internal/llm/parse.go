package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"wallet-profiler/internal/types"
)

// Matches a JSON array of exactly five numbers anywhere in the text.
var scoresArrayRe = regexp.MustCompile(`\[\s*(?:-?\d+(?:\.\d+)?\s*,\s*){4}-?\d+(?:\.\d+)?\s*\]`)

// ExtractScores pulls a five-number JSON array out of model text and
// clamps each value to its bounds. The second return is false when no
// usable array was found, in which case the scores are neutral.
func ExtractScores(text string) (types.WalletScores, bool) {
	candidate := strings.TrimSpace(text)
	if m := scoresArrayRe.FindString(text); m != "" {
		candidate = m
	}

	var arr []float64
	if err := json.Unmarshal([]byte(candidate), &arr); err != nil || len(arr) != 5 {
		return types.NeutralScores(), false
	}

	return types.WalletScores{
		ConflictPenalty:     clamp(arr[0], 0, 1),
		RandomnessPenalty:   clamp(arr[1], 0, 1),
		FocusBoost:          clamp(arr[2], 0, 1),
		VariantChainDensity: clamp(arr[3], 0, 1),
		InsiderLikelihood:   clamp(arr[4], 0, 100),
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
