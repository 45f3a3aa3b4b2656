package csvio

import (
	"strconv"
	"strings"

	"wallet-profiler/internal/types"
)

// Columns appended to each row by the financial enrichment stage, in
// output order.
var ProfileColumns = []string{
	"total_dollar_volume",
	"avg_trade_dollars",
	"realized_pnl",
	"unrealized_pnl",
	"total_pnl",
	"win_rate_percent",
	"winning_trades",
	"losing_trades",
	"total_trades",
	"closed_positions_count",
	"position_value_dollars",
}

// Columns appended to each row by the judge stage, in output order.
var ScoreColumns = []string{
	"conflict_penalty",
	"randomness_penalty",
	"focus_boost",
	"variant_chain_density",
	"insider_likelihood",
	"days_since_first_trade",
}

// ApplyProfile merges a financial profile into the row.
func ApplyProfile(row Row, p types.UserFinancialProfile) {
	row["total_dollar_volume"] = formatFloat(p.TotalDollarVolume)
	row["avg_trade_dollars"] = formatFloat(p.AvgTradeDollars)
	row["realized_pnl"] = formatFloat(p.RealizedPnl)
	row["unrealized_pnl"] = formatFloat(p.UnrealizedPnl)
	row["total_pnl"] = formatFloat(p.TotalPnl)
	row["win_rate_percent"] = formatFloat(p.WinRatePercent)
	row["winning_trades"] = strconv.Itoa(p.WinningTrades)
	row["losing_trades"] = strconv.Itoa(p.LosingTrades)
	row["total_trades"] = strconv.Itoa(p.TotalTrades)
	row["closed_positions_count"] = strconv.Itoa(p.ClosedPositions)
	row["position_value_dollars"] = formatFloat(p.PositionValueDollars)
}

// ApplyScores merges judge scores into the row.
func ApplyScores(row Row, s types.WalletScores, daysSinceFirstTrade int) {
	row["conflict_penalty"] = formatFloat(s.ConflictPenalty)
	row["randomness_penalty"] = formatFloat(s.RandomnessPenalty)
	row["focus_boost"] = formatFloat(s.FocusBoost)
	row["variant_chain_density"] = formatFloat(s.VariantChainDensity)
	row["insider_likelihood"] = formatFloat(s.InsiderLikelihood)
	row["days_since_first_trade"] = strconv.Itoa(daysSinceFirstTrade)
}

// Titles extracts the wallet's market titles from the row, preferring
// historical titles over active ones. Titles are pipe-delimited.
func Titles(row Row) (titles []string, source string) {
	for _, col := range []string{"historical_market_titles", "active_market_titles"} {
		raw := strings.TrimSpace(row[col])
		if raw == "" {
			continue
		}
		for _, part := range strings.Split(raw, "|") {
			if t := strings.TrimSpace(part); t != "" {
				titles = append(titles, t)
			}
		}
		if len(titles) > 0 {
			return titles, strings.TrimSuffix(col, "_market_titles")
		}
	}
	return nil, "none"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
