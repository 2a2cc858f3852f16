package measure

import (
	"reflect"
	"testing"
)

func pf(v float64) *float64 { return &v }

func TestMerge_UpgradesOnStrongConfirmation(t *testing.T) {
	primary := Measurement{
		Labels: map[string]float64{
			LabelCorrectComplete: 0.4,
			LabelCorrectMissing:  0.5,
		},
		Calibrations: Calibrations{PCorrect: pf(0.6), Confidence: 0.7},
	}
	followup := Measurement{ProcessMoves: map[string]float64{MoveMechConfirmed: 0.8}}

	merged, ok := Merge(primary, followup)
	if !ok {
		t.Fatal("expected merge to apply")
	}
	if got := merged.Labels[LabelCorrectComplete]; got != 0.9 {
		t.Errorf("Correct&Complete = %v, want 0.9", got)
	}
	if got := merged.Labels[LabelCorrectMissing]; got != 0.1 {
		t.Errorf("Correct_Missing = %v, want 0.1", got)
	}
	if got := *merged.Calibrations.PCorrect; got != 0.85 {
		t.Errorf("p_correct = %v, want 0.85", got)
	}

	// The primary must not be mutated through shared maps.
	if primary.Labels[LabelCorrectComplete] != 0.4 {
		t.Error("Merge mutated the primary measurement")
	}
}

func TestMerge_KeepsStrongerPrimaryValues(t *testing.T) {
	primary := Measurement{
		Labels:       map[string]float64{LabelCorrectComplete: 0.95, LabelCorrectMissing: 0.05},
		Calibrations: Calibrations{PCorrect: pf(0.92)},
	}
	followup := Measurement{ProcessMoves: map[string]float64{MoveMechConfirmed: 1.0}}

	merged, _ := Merge(primary, followup)
	if merged.Labels[LabelCorrectComplete] != 0.95 {
		t.Errorf("Correct&Complete = %v, want 0.95 kept", merged.Labels[LabelCorrectComplete])
	}
	if merged.Labels[LabelCorrectMissing] != 0.05 {
		t.Errorf("Correct_Missing = %v, want 0.05 kept", merged.Labels[LabelCorrectMissing])
	}
	if *merged.Calibrations.PCorrect != 0.92 {
		t.Errorf("p_correct = %v, want 0.92 kept", *merged.Calibrations.PCorrect)
	}
}

func TestMerge_WeakSignalReturnsPrimaryUnchanged(t *testing.T) {
	primary := Measurement{
		Labels:       map[string]float64{LabelPartial: 0.7, LabelIncorrect: 0.3},
		Pitfalls:     map[string]float64{"vague": 0.4},
		Calibrations: Calibrations{Confidence: 0.5},
	}
	followup := Measurement{ProcessMoves: map[string]float64{MoveMechConfirmed: 0.59}}

	merged, ok := Merge(primary, followup)
	if ok {
		t.Fatal("merge should not apply below the threshold")
	}
	if !reflect.DeepEqual(merged, primary) {
		t.Errorf("merged = %+v, want primary unchanged", merged)
	}
}

func TestMerge_MissingIndicatorTreatedAsAbsent(t *testing.T) {
	primary := Measurement{Labels: map[string]float64{LabelIncorrect: 1}}

	merged, ok := Merge(primary, Measurement{})
	if ok {
		t.Fatal("merge should not apply with no indicator")
	}
	if !reflect.DeepEqual(merged, primary) {
		t.Errorf("merged = %+v, want primary unchanged", merged)
	}
}

func TestMerge_EmptyPrimaryStillUpgrades(t *testing.T) {
	followup := Measurement{ProcessMoves: map[string]float64{MoveMechConfirmed: 0.75}}

	merged, ok := Merge(Measurement{}, followup)
	if !ok {
		t.Fatal("expected merge to apply")
	}
	if merged.Labels[LabelCorrectComplete] != 0.9 {
		t.Errorf("Correct&Complete = %v, want 0.9", merged.Labels[LabelCorrectComplete])
	}
	if *merged.Calibrations.PCorrect != 0.85 {
		t.Errorf("p_correct = %v, want 0.85", *merged.Calibrations.PCorrect)
	}
}
