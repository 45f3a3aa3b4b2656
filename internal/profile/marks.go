package profile

import (
	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/ledger"
	"wallet-profiler/internal/types"
)

// ToLiveMarks converts raw position snapshots into live marks. Size may
// arrive under "size" or "tokens"; whichever coerces to a nonzero value
// first wins.
func ToLiveMarks(recs []interfaces.PositionRecord) []types.LiveMark {
	marks := make([]types.LiveMark, 0, len(recs))
	for _, rec := range recs {
		market := rec.Market
		if market == "" {
			market = rec.MarketID
		}
		size := ledger.Coerce(rec.Size)
		if size == 0 {
			size = ledger.Coerce(rec.Tokens)
		}
		marks = append(marks, types.LiveMark{
			Market:  market,
			Outcome: rec.Outcome,
			Size:    size,
			Price:   ledger.Coerce(rec.Price),
			Title:   rec.Title,
		})
	}
	return marks
}

// Titles collects the non-empty market titles from position snapshots,
// preserving feed order.
func Titles(recs []interfaces.PositionRecord) []string {
	titles := make([]string, 0, len(recs))
	for _, rec := range recs {
		if rec.Title != "" {
			titles = append(titles, rec.Title)
		}
	}
	return titles
}
