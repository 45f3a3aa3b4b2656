package ledger

import (
	"encoding/json"
	"math"
	"testing"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/types"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "0.35", 0.35},
		{"padded string", " 42 ", 42},
		{"empty string", "", 0},
		{"garbage string", "n/a", 0},
		{"json number", json.Number("3.25"), 3.25},
		{"bad json number", json.Number("x"), 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"bool", true, 1},
		{"unsupported", []string{"x"}, 0},
	}
	for _, tc := range cases {
		if got := Coerce(tc.in); got != tc.want {
			t.Errorf("%s: Coerce(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCanonicalizes(t *testing.T) {
	tr := Normalize(interfaces.TradeRecord{
		Size:      "100",
		Price:     0.30,
		Side:      " buy ",
		MarketID:  "0xabc",
		Outcome:   "Yes",
		Timestamp: float64(1731300000),
	})

	if tr.Side != types.SideBuy {
		t.Errorf("side: got %q, want BUY", tr.Side)
	}
	if tr.Market != "0xabc" {
		t.Errorf("market fallback: got %q, want 0xabc", tr.Market)
	}
	if tr.Size != 100 || tr.Price != 0.30 {
		t.Errorf("coercion: got size=%v price=%v", tr.Size, tr.Price)
	}
	if tr.OccurredAt != 1731300000 {
		t.Errorf("timestamp: got %d", tr.OccurredAt)
	}
}

func TestNormalizePrefersMarketOverMarketID(t *testing.T) {
	tr := Normalize(interfaces.TradeRecord{Market: "0xm", MarketID: "0xother"})
	if tr.Market != "0xm" {
		t.Errorf("market: got %q, want 0xm", tr.Market)
	}
}

func TestNormalizeAllSortsChronologically(t *testing.T) {
	recs := []interfaces.TradeRecord{
		{Side: "SELL", Timestamp: float64(300), Market: "m"},
		{Side: "BUY", Timestamp: float64(100), Market: "m"},
		{Side: "BUY", Timestamp: float64(200), Market: "m"},
	}

	trades := NormalizeAll(recs)

	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	if trades[0].OccurredAt != 100 || trades[1].OccurredAt != 200 || trades[2].OccurredAt != 300 {
		t.Errorf("trades not sorted: %v %v %v", trades[0].OccurredAt, trades[1].OccurredAt, trades[2].OccurredAt)
	}
}

func TestNormalizeAllKeepsFeedOrderForMissingTimestamps(t *testing.T) {
	recs := []interfaces.TradeRecord{
		{Side: "BUY", Market: "first"},
		{Side: "BUY", Market: "second"},
	}

	trades := NormalizeAll(recs)

	if trades[0].Market != "first" || trades[1].Market != "second" {
		t.Error("stable sort should preserve feed order when timestamps are absent")
	}
}
