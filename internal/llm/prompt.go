package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// JudgeSystemPrompt instructs the model to act as a numbers-only judge
// over one wallet's market titles. The response contract is a JSON
// array of exactly five numbers in fixed order; anything else is
// treated as unusable and replaced with neutral scores.
const JudgeSystemPrompt = `YOU ARE a numeric judge over a single wallet's market titles.
OUTPUT NUMBERS ONLY. Return a JSON array of five numbers in this exact order:

1. conflict_penalty in [0,1]: penalty for conflicting insider theses (e.g. multiple LARGE earnings bets across unrelated issuers in the same window).
2. randomness_penalty in [0,1]: penalty for breadth across unrelated domains (sports, weather, politics, macro, crypto, equities). More unrelated markets means a higher penalty.
3. focus_boost in [0,1]: multiple mentions of the same company or field (e.g. NETFLIX mentioned repeatedly) with a small number of high insider-likelihood markets.
4. variant_chain_density in [0,1]: fraction of titles that are near-duplicate variants of the same thesis (same issuer with varying dates or minor phrasing).
5. insider_likelihood in [0,100]: overall judgment that the wallet is pursuing a narrow, potentially insider-advantaged thesis (higher is more insider-like).

Do NOT include keys, labels, prose, or explanations. Output ONLY the JSON array of five numbers in the order above.

Insider context rules:
1) Insider-eligible when the outcome or timing is controlled or knowable early by a small circle (company, agency, court, deal team, party leadership) or reliably leak-prone (earnings, FDA, M&A, product launch with a date window, congressional deadlines, major legal rulings).
2) Usually NOT insider-eligible: lotteries, generic weather, most sports outcomes, embargoed macro prints (CPI, NFP), long-horizon vague culture events, stock or crypto price movement.
3) Borderline sports are eligible ONLY when injury or lineup info could leak before the public AND the horizon is 72h or less.
4) DO NOT INVENT FACTS. Base the decision ONLY on the provided fields.

Scoring rules (apply consistently):
- Conflicting insider data raises conflict_penalty: multiple large earnings bets across unrelated issuers indicate conflicting theses.
- Domain breadth raises randomness_penalty: gambling-style activity and many unrelated markets crank it up.
- Issuer or product focus raises focus_boost: multiple titles tied to the same issuer or product family suggest a narrow high-conviction thesis.
- insider_likelihood rises with focus and variants, falls with randomness and conflict. Do not flag accounts unless truly suspicious. Suspect activity is a SINGLE or FEW high insider-probability markets; whales with hundreds of open positions across many markets are not insiders.

Few-shot anchors:

TITLES:
Will Gemini 3.0 be released by Nov 15?
Will Gemini 3.0 be released by Nov 22?
Will Gemini 3.0 be released by Nov 30?
OUTPUT:
[0.00, 0.0, 0.87, 0.9, 93]

TITLES:
Will TSLA beat quarterly EPS in Q4?
Will AAPL beat quarterly EPS this week?
Will MSFT beat EPS on next report?
OUTPUT:
[1, 0.2, 0.0, 0.0, 3]

TITLES:
Bitcoin Up or Down - October 20, 11AM ET
Ethereum Up or Down - October 20, 11AM ET
XRP Up or Down - October 20, 12PM ET
OUTPUT:
[0, 0.22, 0.4, 0.3, 8]

TITLES:
Will "Nobody Wants This" be the top global Netflix show this week?
Will "The Witcher: Season 4" be the top global Netflix show this week?
Will Netflix (NFLX) beat quarterly earnings?
Will "KPop Demon Hunters" be the top global Netflix movie this week?
OUTPUT:
[0, 0, 1, 0.5, 99]

OUTPUT: Return ONLY a JSON array of five numbers in the specified order.`

// BuildUserPrompt renders one wallet's titles plus derived stats into
// the judge's user message. The stats are heuristic hints only; the
// model is told not to repeat them.
func BuildUserPrompt(wallet string, titles []string, timeWindow string) string {
	if len(titles) == 0 {
		titles = []string{"(No active positions)"}
	}
	if timeWindow == "" {
		timeWindow = "Recent"
	}

	domainCounts := classifyDomains(titles)
	issuerCounts := countIssuers(titles)

	issuerRunMax := 0
	for _, n := range issuerCounts {
		if n > issuerRunMax {
			issuerRunMax = n
		}
	}

	domainsJSON, _ := json.Marshal(domainCounts)
	issuersJSON, _ := json.Marshal(issuerCounts)

	var b strings.Builder
	fmt.Fprintf(&b, "WALLET: %s\n", wallet)
	fmt.Fprintf(&b, "TIME WINDOW: %s\n\n", timeWindow)
	b.WriteString("TITLES (one per line):\n")
	b.WriteString(strings.Join(titles, "\n"))
	b.WriteString("\n\nDERIVED STATS (for reference only; do not repeat in output):\n")
	fmt.Fprintf(&b, "- total_titles: %d\n", len(titles))
	fmt.Fprintf(&b, "- domain_counts: %s\n", domainsJSON)
	fmt.Fprintf(&b, "- issuer_counts: %s\n", issuersJSON)
	fmt.Fprintf(&b, "- issuer_run_max: %d\n", issuerRunMax)
	fmt.Fprintf(&b, "- earnings_titles: %d across %d issuers\n", domainCounts["earnings"], len(issuerCounts))
	b.WriteString("- large_positions: []\n\n")
	b.WriteString(`SCORING REMINDERS:
1) Conflicting insider data (multiple large earnings bets across unrelated issuers) -> conflict_penalty up
2) Many random/unrelated domains -> randomness_penalty up
3) Multiple markets for the same issuer/product family -> focus_boost up
4) Repetitive variants of the same thesis -> variant_chain_density up
5) insider_likelihood rises with focus/variants and falls with randomness/conflict

OUTPUT: Return ONLY a JSON array of five numbers in the specified order.
`)
	return b.String()
}

// classifyDomains buckets titles by keyword. A title may count toward
// more than one keyword bucket; "other" absorbs whatever is left so
// the counts never sum above the title total.
func classifyDomains(titles []string) map[string]int {
	counts := map[string]int{
		"earnings": 0, "product": 0, "legal": 0, "sports": 0, "weather": 0, "other": 0,
	}
	for _, t := range titles {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "eps") || strings.Contains(lower, "earnings") {
			counts["earnings"]++
		}
		if strings.Contains(lower, "release") || strings.Contains(lower, "launch") {
			counts["product"]++
		}
		if strings.Contains(lower, "lawsuit") || strings.Contains(lower, "trial") {
			counts["legal"]++
		}
		if containsAny(lower, "win", "score", "game", "match") {
			counts["sports"]++
		}
		if strings.Contains(lower, "weather") || strings.Contains(lower, "hurricane") {
			counts["weather"]++
		}
	}
	classified := counts["earnings"] + counts["product"] + counts["legal"] + counts["sports"] + counts["weather"]
	if rest := len(titles) - classified; rest > 0 {
		counts["other"] = rest
	}
	return counts
}

// countIssuers tallies all-caps alphabetic words of 2 to 5 letters, a
// rough proxy for ticker symbols appearing in titles.
func countIssuers(titles []string) map[string]int {
	issuers := map[string]int{}
	for _, t := range titles {
		for _, word := range strings.Fields(t) {
			if len(word) < 2 || len(word) > 5 {
				continue
			}
			if isUpperAlpha(word) {
				issuers[word]++
			}
		}
	}
	return issuers
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
