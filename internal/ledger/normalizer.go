package ledger

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/types"
)

// Normalize converts one raw feed record into a canonical trade. The
// feed is inconsistent about field types, so numeric coercion is
// fail-open: missing, null, or malformed values become 0 and the trade
// still counts toward volume totals. Side is upper-cased here so the
// ledger only ever compares canonical BUY/SELL.
func Normalize(rec interfaces.TradeRecord) types.Trade {
	market := rec.Market
	if market == "" {
		market = rec.MarketID
	}
	return types.Trade{
		Market:     market,
		Outcome:    rec.Outcome,
		Side:       strings.ToUpper(strings.TrimSpace(rec.Side)),
		Size:       Coerce(rec.Size),
		Price:      Coerce(rec.Price),
		OccurredAt: int64(Coerce(rec.Timestamp)),
	}
}

// NormalizeAll normalizes a batch and sorts it chronologically. The
// ledger is order-sensitive and the upstream fetch does not guarantee
// ordering, so the sort happens here, before the fold. Records without
// a timestamp keep their relative feed order.
func NormalizeAll(recs []interfaces.TradeRecord) []types.Trade {
	trades := make([]types.Trade, 0, len(recs))
	for _, rec := range recs {
		trades = append(trades, Normalize(rec))
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].OccurredAt < trades[j].OccurredAt
	})
	return trades
}

// Coerce turns a loosely-typed feed value into a float64. Anything that
// cannot be read as a finite number becomes 0.
func Coerce(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
