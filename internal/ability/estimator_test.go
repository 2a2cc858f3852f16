package ability

import (
	"math"
	"testing"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
)

func pf(v float64) *float64 { return &v }

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUpdate_WorkedExample(t *testing.T) {
	// a=1, b=0, theta=(0, 1.5), labels={Correct&Complete: 1.0}, p_correct=0.9:
	// p_base=0.5, p_fused=0.7, y_hat=1.0, info=0.21,
	// var' = 1/(1/1.5 + 0.21) ~= 1.139, mean' ~= 1.139 * (1.0 - 0.7) ~= 0.342.
	it := bank.Item{ID: "x", Disc: 1, Diff: 0}
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 1.0},
		Calibrations: measure.Calibrations{PCorrect: pf(0.9)},
	}

	next, _ := Update(NewState(), it, m)

	if !almostEqual(next.Var, 1.139, 0.001) {
		t.Errorf("Var = %.4f, want ~1.139", next.Var)
	}
	if !almostEqual(next.Mean, 0.342, 0.001) {
		t.Errorf("Mean = %.4f, want ~0.342", next.Mean)
	}
}

func TestUpdate_VarianceStrictlyDecreases(t *testing.T) {
	it := bank.Item{ID: "x", Disc: 1.3, Diff: 0.4}
	s := NewState()
	for i := 0; i < 10; i++ {
		m := measure.Measurement{Labels: map[string]float64{measure.LabelPartial: 1.0}}
		next, _ := Update(s, it, m)
		if next.Var >= s.Var {
			t.Fatalf("step %d: Var %.6f -> %.6f did not decrease", i, s.Var, next.Var)
		}
		s = next
	}
}

func TestUpdate_NoJudgeEstimateUsesBaseOnly(t *testing.T) {
	it := bank.Item{ID: "x", Disc: 1, Diff: 0}
	m := measure.Measurement{Labels: map[string]float64{measure.LabelCorrectComplete: 1.0}}

	next, _ := Update(NewState(), it, m)

	// p = p_base = 0.5, info = 0.25 + eps, var' = 1/(1/1.5+0.25),
	// mean' = var' * (1.0 - 0.5).
	wantVar := 1.0 / (1.0/1.5 + 0.25 + 1e-6)
	if !almostEqual(next.Var, wantVar, 1e-9) {
		t.Errorf("Var = %.6f, want %.6f", next.Var, wantVar)
	}
	if !almostEqual(next.Mean, wantVar*0.5, 1e-9) {
		t.Errorf("Mean = %.6f, want %.6f", next.Mean, wantVar*0.5)
	}
}

func TestUpdate_ExtremeFusedProbabilityStaysFinite(t *testing.T) {
	// p_fused pinned to 1.0: info collapses to the floor but must stay
	// positive, and the update must stay finite.
	it := bank.Item{ID: "x", Disc: 2, Diff: -50}
	m := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 1.0},
		Calibrations: measure.Calibrations{PCorrect: pf(1.0)},
	}

	next, _ := Update(NewState(), it, m)
	if math.IsNaN(next.Mean) || math.IsInf(next.Mean, 0) {
		t.Errorf("Mean = %v, want finite", next.Mean)
	}
	if next.Var <= 0 || next.Var >= 1.5 {
		t.Errorf("Var = %v, want in (0, 1.5)", next.Var)
	}
}

func TestExpectedScore(t *testing.T) {
	m := measure.Measurement{Labels: map[string]float64{
		measure.LabelCorrectMissing: 0.4, // 0.34
		measure.LabelPartial:        0.6, // 0.24
	}}
	if got := ExpectedScore(m); !almostEqual(got, 0.58, 1e-9) {
		t.Errorf("ExpectedScore = %v, want 0.58", got)
	}
	if got := ExpectedScore(measure.Measurement{}); got != 0 {
		t.Errorf("ExpectedScore(empty) = %v, want 0", got)
	}
}

func TestLogistic(t *testing.T) {
	if got := Logistic(0); got != 0.5 {
		t.Errorf("Logistic(0) = %v, want 0.5", got)
	}
	if got := Logistic(40); !almostEqual(got, 1, 1e-9) {
		t.Errorf("Logistic(40) = %v, want ~1", got)
	}
	if got := Logistic(-40); !almostEqual(got, 0, 1e-9) {
		t.Errorf("Logistic(-40) = %v, want ~0", got)
	}
	// Symmetry of the stable branches.
	if got := Logistic(2) + Logistic(-2); !almostEqual(got, 1, 1e-12) {
		t.Errorf("Logistic(2)+Logistic(-2) = %v, want 1", got)
	}
}
