package profile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RowIssue describes one suspicious field in an input row. Issues are
// advisory; rows are processed regardless.
type RowIssue struct {
	Wallet string
	Field  string
	Reason string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("%s: %s %s", i.Wallet, i.Field, i.Reason)
}

// ValidateRow sanity-checks one input CSV row. It flags a missing or
// malformed wallet address, unparseable or out-of-order trade
// timestamps, and negative count columns.
func ValidateRow(row map[string]string) []RowIssue {
	var issues []RowIssue
	wallet := strings.TrimSpace(row["wallet"])

	switch {
	case wallet == "":
		issues = append(issues, RowIssue{Wallet: "(unknown)", Field: "wallet", Reason: "is empty"})
	case !strings.HasPrefix(wallet, "0x"):
		issues = append(issues, RowIssue{Wallet: wallet, Field: "wallet", Reason: "does not look like an address"})
	}

	now := time.Now()
	var first, last time.Time
	if ts := strings.TrimSpace(row["first_trade_ts"]); ts != "" {
		t, err := parseTimestamp(ts)
		switch {
		case err != nil:
			issues = append(issues, RowIssue{Wallet: wallet, Field: "first_trade_ts", Reason: "is not a valid timestamp"})
		case t.After(now):
			issues = append(issues, RowIssue{Wallet: wallet, Field: "first_trade_ts", Reason: "is in the future"})
		default:
			first = t
		}
	}
	if ts := strings.TrimSpace(row["last_trade_ts"]); ts != "" {
		t, err := parseTimestamp(ts)
		switch {
		case err != nil:
			issues = append(issues, RowIssue{Wallet: wallet, Field: "last_trade_ts", Reason: "is not a valid timestamp"})
		case t.After(now):
			issues = append(issues, RowIssue{Wallet: wallet, Field: "last_trade_ts", Reason: "is in the future"})
		default:
			last = t
		}
	}
	if !first.IsZero() && !last.IsZero() && last.Before(first) {
		issues = append(issues, RowIssue{Wallet: wallet, Field: "last_trade_ts", Reason: "is before first_trade_ts"})
	}

	for _, field := range []string{"total_trades", "closed_positions_count", "winning_trades", "losing_trades"} {
		raw := strings.TrimSpace(row[field])
		if raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			issues = append(issues, RowIssue{Wallet: wallet, Field: field, Reason: "is not numeric"})
			continue
		}
		if n < 0 {
			issues = append(issues, RowIssue{Wallet: wallet, Field: field, Reason: "is negative"})
		}
	}

	return issues
}

// DaysSinceFirstTrade converts a first-trade timestamp into whole days
// elapsed as of now. Empty or unparseable input yields 0.
func DaysSinceFirstTrade(ts string, now time.Time) int {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return 0
	}
	first, err := parseTimestamp(ts)
	if err != nil {
		return 0
	}
	days := int(now.Sub(first).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// parseTimestamp accepts RFC 3339 (with Z or offset) or unix seconds.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
