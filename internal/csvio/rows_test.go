package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"wallet-profiler/internal/types"
)

func TestReadWriteRoundTripPreservesUnknownColumns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")

	content := "wallet,custom_tag,active_market_titles\n0xabc,alpha,Will X happen?|Will Y happen?\n0xdef,beta,\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	header, rows, err := ReadRows(in)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["custom_tag"] != "alpha" {
		t.Errorf("custom_tag = %q, want alpha", rows[0]["custom_tag"])
	}

	ApplyProfile(rows[0], types.UserFinancialProfile{RealizedPnl: 18.67, TotalTrades: 3})
	header = ExtendHeader(header, ProfileColumns...)

	if err := WriteRows(out, header, rows); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}

	header2, rows2, err := ReadRows(out)
	if err != nil {
		t.Fatalf("ReadRows(out): %v", err)
	}
	if len(header2) != len(header) {
		t.Errorf("header length %d, want %d", len(header2), len(header))
	}
	if rows2[0]["custom_tag"] != "alpha" {
		t.Error("unknown column lost on round trip")
	}
	if rows2[0]["realized_pnl"] != "18.67" {
		t.Errorf("realized_pnl = %q, want 18.67", rows2[0]["realized_pnl"])
	}
	if rows2[1]["realized_pnl"] != "" {
		t.Errorf("untouched row should have empty cell, got %q", rows2[1]["realized_pnl"])
	}
}

func TestExtendHeaderSkipsExisting(t *testing.T) {
	header := []string{"wallet", "realized_pnl"}
	out := ExtendHeader(header, "realized_pnl", "total_pnl")
	if len(out) != 3 {
		t.Fatalf("got %v", out)
	}
	if out[2] != "total_pnl" {
		t.Errorf("out[2] = %q, want total_pnl", out[2])
	}
}

func TestTitlesPrefersHistorical(t *testing.T) {
	row := Row{
		"historical_market_titles": "Will A happen? | Will B happen?",
		"active_market_titles":     "Will C happen?",
	}
	titles, source := Titles(row)
	if source != "historical" {
		t.Errorf("source = %q, want historical", source)
	}
	if len(titles) != 2 || titles[0] != "Will A happen?" {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestTitlesFallsBackToActive(t *testing.T) {
	row := Row{"historical_market_titles": "  ", "active_market_titles": "Will C happen?"}
	titles, source := Titles(row)
	if source != "active" || len(titles) != 1 {
		t.Errorf("titles = %v source = %q", titles, source)
	}
}

func TestTitlesEmpty(t *testing.T) {
	titles, source := Titles(Row{})
	if titles != nil || source != "none" {
		t.Errorf("titles = %v source = %q", titles, source)
	}
}

func TestApplyScores(t *testing.T) {
	row := Row{}
	ApplyScores(row, types.NeutralScores(), 42)
	if row["randomness_penalty"] != "0.5" || row["insider_likelihood"] != "50" {
		t.Errorf("unexpected row: %v", row)
	}
	if row["days_since_first_trade"] != "42" {
		t.Errorf("days = %q", row["days_since_first_trade"])
	}
}
