package measure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/caliper/internal/bank"
)

// Config holds the interpretation thresholds. The defaults are contract
// values; callers should not tune them per item.
type Config struct {
	// PitfallHigh is the probability at which a pitfall counts as present.
	PitfallHigh float64

	// RequiredMoveMin is the probability a required process move must
	// reach to count as shown.
	RequiredMoveMin float64
}

// DefaultConfig returns the contract thresholds.
func DefaultConfig() Config {
	return Config{
		PitfallHigh:     0.30,
		RequiredMoveMin: 0.60,
	}
}

// Reading is the interpreter's reduction of a raw Measurement.
type Reading struct {
	// FinalLabel is the argmax quality label.
	FinalLabel string

	// FinalP is the probability assigned to FinalLabel.
	FinalP float64

	// HighPitfalls lists pitfall keys at or above the high threshold,
	// sorted for determinism.
	HighPitfalls []string

	// MoveOK reports whether every required process move was shown.
	// Vacuously true when the schema requires none.
	MoveOK bool
}

// Interpret reduces a Measurement to a Reading under the item's schema
// features. Pure: no side effects, never fails. Returns the reading and
// human-readable notes for the decision trace.
func Interpret(m Measurement, feats bank.Features, cfg Config) (Reading, []string) {
	var notes []string

	label, p := argmaxLabel(m)
	notes = append(notes, fmt.Sprintf("label=%s (%.2f); judge confidence=%.2f", label, p, m.Confidence()))

	var high []string
	for key := range m.Pitfalls {
		if m.Pitfall(key) >= cfg.PitfallHigh {
			high = append(high, key)
		}
	}
	sort.Strings(high)
	if len(high) > 0 {
		notes = append(notes, "high pitfalls: "+strings.Join(high, ", "))
	}

	moveOK := true
	for _, mv := range feats.RequiredMoves {
		if m.Move(mv) < cfg.RequiredMoveMin {
			moveOK = false
		}
	}
	if len(feats.RequiredMoves) > 0 {
		notes = append(notes, fmt.Sprintf("required moves present? %v (need >= %.2f)", moveOK, cfg.RequiredMoveMin))
	}

	return Reading{
		FinalLabel:   label,
		FinalP:       p,
		HighPitfalls: high,
		MoveOK:       moveOK,
	}, notes
}

// argmaxLabel returns the highest-probability label, breaking ties by
// canonical order. An empty label map defaults to Novel.
func argmaxLabel(m Measurement) (string, float64) {
	if len(m.Labels) == 0 {
		return LabelNovel, 0
	}
	best := LabelNovel
	bestP := -1.0
	for _, name := range CanonicalLabels() {
		if _, ok := m.Labels[name]; !ok {
			continue
		}
		if p := m.Label(name); p > bestP {
			best = name
			bestP = p
		}
	}
	if bestP < 0 {
		// Only unrecognized label keys were supplied.
		return LabelNovel, 0
	}
	return best, bestP
}
