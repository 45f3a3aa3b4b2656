package ledger

import (
	"testing"

	"wallet-profiler/internal/types"
)

func TestAggregateWinRate(t *testing.T) {
	cases := []struct {
		name         string
		wins, losses int
		want         float64
	}{
		{"no closed positions", 0, 0, 0},
		{"one win one loss", 1, 1, 50},
		{"all wins", 3, 0, 100},
		{"mostly losses", 1, 3, 25},
	}
	for _, tc := range cases {
		tot := Aggregate(Result{WinningTrades: tc.wins, LosingTrades: tc.losses})
		if tot.WinRatePercent != tc.want {
			t.Errorf("%s: win rate %v, want %v", tc.name, tot.WinRatePercent, tc.want)
		}
		if tot.ClosedPositions != tc.wins+tc.losses {
			t.Errorf("%s: closed positions %d, want %d", tc.name, tot.ClosedPositions, tc.wins+tc.losses)
		}
	}
}

func TestAggregateAvgTradeDollars(t *testing.T) {
	tot := Aggregate(Result{TotalTrades: 4, TotalDollarVolume: 100})
	approx(t, "avg trade dollars", tot.AvgTradeDollars, 25)

	tot = Aggregate(Result{})
	if tot.AvgTradeDollars != 0 {
		t.Errorf("no trades should yield 0 average, got %v", tot.AvgTradeDollars)
	}
}

func TestBuildProfileTotalPnlIdentity(t *testing.T) {
	tot := Totals{RealizedPnl: 18.666666666666668, WinningTrades: 1, ClosedPositions: 1, WinRatePercent: 100}
	rec := Reconciliation{UnrealizedPnl: -3.3333333333, PositionValueDollars: 42.125}

	p := BuildProfile(tot, rec)

	if p.TotalPnl != Round2(p.RealizedPnl+p.UnrealizedPnl) {
		t.Errorf("total pnl identity broken: %v != %v + %v", p.TotalPnl, p.RealizedPnl, p.UnrealizedPnl)
	}
	if p.RealizedPnl != 18.67 {
		t.Errorf("realized pnl rounding: got %v, want 18.67", p.RealizedPnl)
	}
	if p.UnrealizedPnl != -3.33 {
		t.Errorf("unrealized pnl rounding: got %v, want -3.33", p.UnrealizedPnl)
	}
	if p.PositionValueDollars != 42.13 {
		t.Errorf("position value rounding: got %v, want 42.13", p.PositionValueDollars)
	}
}

func TestBuildProfileZeroWallet(t *testing.T) {
	p := BuildProfile(Totals{}, Reconciliation{})
	if p != (types.UserFinancialProfile{}) {
		t.Errorf("empty inputs should build an all-zero profile, got %+v", p)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(1.005); got != 1.01 && got != 1.0 {
		// 1.005 is not exactly representable; accept either neighbor but
		// nothing else.
		t.Errorf("Round2(1.005) = %v", got)
	}
	if got := Round2(-2.675); got != -2.68 && got != -2.67 {
		t.Errorf("Round2(-2.675) = %v", got)
	}
	if got := Round4(0.123456); got != 0.1235 {
		t.Errorf("Round4(0.123456) = %v, want 0.1235", got)
	}
}
