package selector

import (
	"fmt"

	"github.com/abhisek/caliper/internal/ability"
	"github.com/abhisek/caliper/internal/bank"
)

// Score is the expected-information-gain proxy for administering an
// item to a user at theta: a^2 * p * (1-p).
func Score(theta float64, it bank.Item) float64 {
	p := ability.ResponseProbability(theta, it)
	return it.Disc * it.Disc * p * (1 - p)
}

// Next picks the unasked item with the highest information score,
// restricted to uncovered target tags when any remain. Candidates are
// scanned in catalog order, so ties resolve to the earliest entry.
// Returns nil when the pool is exhausted, with notes for the trace.
func Next(items []bank.Item, asked map[string]bool, coverage map[bank.CoverageTag]int, theta float64) (*bank.Item, []string) {
	var pool []bank.Item
	for _, it := range items {
		if !asked[it.ID] {
			pool = append(pool, it)
		}
	}
	pool = applyCoverage(pool, coverage)

	var best *bank.Item
	bestScore := 0.0
	for i := range pool {
		s := Score(theta, pool[i])
		if best == nil || s > bestScore {
			best = &pool[i]
			bestScore = s
		}
	}

	if best == nil {
		return nil, []string{"no candidates left"}
	}
	note := fmt.Sprintf("next=%s (eig~%.3f, tag=%s, fam=%s)",
		best.ID, bestScore, best.CoverageTag, best.Family)
	return best, []string{note}
}

// applyCoverage restricts candidates to tags not yet touched this
// session. When the restriction would empty the pool, the full pool is
// kept; coverage steers selection, it never blocks it.
func applyCoverage(pool []bank.Item, coverage map[bank.CoverageTag]int) []bank.Item {
	need := make(map[bank.CoverageTag]bool)
	for _, tag := range bank.CoverageTargets() {
		if coverage[tag] == 0 {
			need[tag] = true
		}
	}
	if len(need) == 0 {
		return pool
	}

	var restricted []bank.Item
	for _, it := range pool {
		if need[it.CoverageTag] {
			restricted = append(restricted, it)
		}
	}
	if len(restricted) == 0 {
		return pool
	}
	return restricted
}
