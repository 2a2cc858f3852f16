package measure

import (
	"math"
	"testing"

	"github.com/abhisek/caliper/internal/bank"
)

func TestInterpret_Argmax(t *testing.T) {
	m := Measurement{Labels: map[string]float64{
		LabelCorrectComplete: 0.2,
		LabelPartial:         0.5,
		LabelIncorrect:       0.3,
	}}
	r, _ := Interpret(m, bank.Features{}, DefaultConfig())
	if r.FinalLabel != LabelPartial {
		t.Errorf("FinalLabel = %s, want Partial", r.FinalLabel)
	}
	if r.FinalP != 0.5 {
		t.Errorf("FinalP = %v, want 0.5", r.FinalP)
	}
}

func TestInterpret_TieBreaksCanonically(t *testing.T) {
	// Incorrect appears "first" in map literal order, but Correct_Missing
	// precedes it canonically and must win the tie.
	m := Measurement{Labels: map[string]float64{
		LabelIncorrect:      0.4,
		LabelCorrectMissing: 0.4,
	}}
	r, _ := Interpret(m, bank.Features{}, DefaultConfig())
	if r.FinalLabel != LabelCorrectMissing {
		t.Errorf("FinalLabel = %s, want Correct_Missing", r.FinalLabel)
	}
}

func TestInterpret_EmptyLabelsDefaultsNovel(t *testing.T) {
	r, _ := Interpret(Measurement{}, bank.Features{}, DefaultConfig())
	if r.FinalLabel != LabelNovel {
		t.Errorf("FinalLabel = %s, want Novel", r.FinalLabel)
	}
	if r.FinalP != 0 {
		t.Errorf("FinalP = %v, want 0", r.FinalP)
	}
}

func TestInterpret_UnknownLabelKeysIgnored(t *testing.T) {
	m := Measurement{Labels: map[string]float64{"Bogus": 0.99}}
	r, _ := Interpret(m, bank.Features{}, DefaultConfig())
	if r.FinalLabel != LabelNovel {
		t.Errorf("FinalLabel = %s, want Novel", r.FinalLabel)
	}
}

func TestInterpret_ClampsMalformedProbabilities(t *testing.T) {
	m := Measurement{
		Labels:   map[string]float64{LabelCorrectComplete: math.NaN(), LabelPartial: 1.7},
		Pitfalls: map[string]float64{"vague": -0.4},
	}
	r, _ := Interpret(m, bank.Features{}, DefaultConfig())
	if r.FinalLabel != LabelPartial || r.FinalP != 1.0 {
		t.Errorf("got %s (%v), want Partial (1.0)", r.FinalLabel, r.FinalP)
	}
	if len(r.HighPitfalls) != 0 {
		t.Errorf("HighPitfalls = %v, want none", r.HighPitfalls)
	}
}

func TestInterpret_HighPitfallsSorted(t *testing.T) {
	m := Measurement{
		Labels:   map[string]float64{LabelPartial: 1},
		Pitfalls: map[string]float64{"zeta": 0.5, "alpha": 0.31, "low": 0.29},
	}
	r, _ := Interpret(m, bank.Features{}, DefaultConfig())
	if len(r.HighPitfalls) != 2 || r.HighPitfalls[0] != "alpha" || r.HighPitfalls[1] != "zeta" {
		t.Errorf("HighPitfalls = %v, want [alpha zeta]", r.HighPitfalls)
	}
}

func TestInterpret_MoveOK(t *testing.T) {
	feats := bank.Features{RequiredMoves: []string{"checks_timing"}}

	cases := []struct {
		name  string
		moves map[string]float64
		want  bool
	}{
		{"shown", map[string]float64{"checks_timing": 0.8}, true},
		{"at threshold", map[string]float64{"checks_timing": 0.6}, true},
		{"below threshold", map[string]float64{"checks_timing": 0.59}, false},
		{"missing", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Measurement{Labels: map[string]float64{LabelPartial: 1}, ProcessMoves: tc.moves}
			r, _ := Interpret(m, feats, DefaultConfig())
			if r.MoveOK != tc.want {
				t.Errorf("MoveOK = %v, want %v", r.MoveOK, tc.want)
			}
		})
	}
}

func TestInterpret_MoveOKVacuouslyTrue(t *testing.T) {
	r, _ := Interpret(Measurement{}, bank.Features{}, DefaultConfig())
	if !r.MoveOK {
		t.Error("MoveOK should be vacuously true with no required moves")
	}
}
