package llm

import (
	"strings"
	"testing"
)

func TestBuildUserPromptIncludesTitlesAndStats(t *testing.T) {
	titles := []string{
		"Will TSLA beat quarterly EPS in Q4?",
		"Will AAPL beat quarterly EPS this week?",
		"Will Barcelona win La Liga?",
	}
	prompt := BuildUserPrompt("0xabc", titles, "Recent")

	if !strings.Contains(prompt, "WALLET: 0xabc") {
		t.Error("missing wallet line")
	}
	if !strings.Contains(prompt, "Will TSLA beat quarterly EPS in Q4?") {
		t.Error("missing title line")
	}
	if !strings.Contains(prompt, "total_titles: 3") {
		t.Error("missing title count")
	}
	if !strings.Contains(prompt, `"earnings":2`) {
		t.Errorf("earnings count missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"TSLA":1`) || !strings.Contains(prompt, `"AAPL":1`) {
		t.Error("issuer counts missing")
	}
}

func TestBuildUserPromptEmptyTitles(t *testing.T) {
	prompt := BuildUserPrompt("0xabc", nil, "")
	if !strings.Contains(prompt, "(No active positions)") {
		t.Error("empty titles should render placeholder")
	}
	if !strings.Contains(prompt, "TIME WINDOW: Recent") {
		t.Error("empty window should default to Recent")
	}
}

func TestClassifyDomainsOtherBucket(t *testing.T) {
	counts := classifyDomains([]string{
		"Will it rain? Weather watch",
		"Will the Lakers win the game?",
		"Presidential approval above 45%?",
	})
	if counts["weather"] != 1 || counts["sports"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if counts["other"] != 1 {
		t.Errorf("other = %d, want 1", counts["other"])
	}
}

func TestCountIssuersTickerHeuristic(t *testing.T) {
	issuers := countIssuers([]string{
		"Will NFLX beat earnings?",
		"NFLX top show this week?",
		"Will A16Z raise a fund?",
		"Is this the END of an ERA or not",
	})
	if issuers["NFLX"] != 2 {
		t.Errorf("NFLX = %d, want 2", issuers["NFLX"])
	}
	if _, ok := issuers["A16Z"]; ok {
		t.Error("alphanumeric token should not count as issuer")
	}
	if issuers["END"] != 1 || issuers["ERA"] != 1 {
		t.Errorf("uppercase words should count: %v", issuers)
	}
}
