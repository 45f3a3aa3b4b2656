package ledger

import (
	"testing"

	"wallet-profiler/internal/types"
)

func TestReconcileMatchedPosition(t *testing.T) {
	open := map[types.PositionKey]types.OpenPosition{
		{Market: "m", Outcome: "Yes"}: {Shares: 100, CostBasis: 30}, // avg cost 0.30
	}
	marks := []types.LiveMark{
		{Market: "m", Outcome: "Yes", Size: 100, Price: 0.55},
	}

	rec := Reconcile(open, marks)

	approx(t, "position value", rec.PositionValueDollars, 55)
	approx(t, "unrealized pnl", rec.UnrealizedPnl, 55-30)
}

func TestReconcileTrustsReportedSize(t *testing.T) {
	// Ledger saw only part of the history: it thinks 40 shares, the feed
	// reports 100. Market value and cost attribution both use the feed's
	// size against the ledger's average cost.
	open := map[types.PositionKey]types.OpenPosition{
		{Market: "m", Outcome: "Yes"}: {Shares: 40, CostBasis: 16}, // avg cost 0.40
	}
	marks := []types.LiveMark{
		{Market: "m", Outcome: "Yes", Size: 100, Price: 0.50},
	}

	rec := Reconcile(open, marks)

	approx(t, "position value", rec.PositionValueDollars, 50)
	approx(t, "unrealized pnl", rec.UnrealizedPnl, 50-100*0.40)
}

func TestReconcileUnmatchedMarkIsValueOnly(t *testing.T) {
	marks := []types.LiveMark{
		{Market: "unknown", Outcome: "No", Size: 20, Price: 0.25},
	}

	rec := Reconcile(map[types.PositionKey]types.OpenPosition{}, marks)

	approx(t, "position value", rec.PositionValueDollars, 5)
	approx(t, "unrealized pnl", rec.UnrealizedPnl, 0)
}

func TestReconcilePartialMismatch(t *testing.T) {
	open := map[types.PositionKey]types.OpenPosition{
		{Market: "a", Outcome: "Yes"}: {Shares: 10, CostBasis: 5},
	}
	marks := []types.LiveMark{
		{Market: "a", Outcome: "Yes", Size: 10, Price: 0.80},
		{Market: "b", Outcome: "No", Size: 50, Price: 0.10},
	}

	rec := Reconcile(open, marks)

	approx(t, "position value", rec.PositionValueDollars, 8+5)
	approx(t, "unrealized pnl", rec.UnrealizedPnl, 8-5)
}

func TestReconcileEmptyInputs(t *testing.T) {
	rec := Reconcile(nil, nil)
	if rec.PositionValueDollars != 0 || rec.UnrealizedPnl != 0 {
		t.Errorf("empty reconcile should be all-zero, got %+v", rec)
	}
}
