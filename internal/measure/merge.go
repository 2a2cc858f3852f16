package measure

import "maps"

// MoveMechConfirmed is the process-move key a probe-answer measurement
// uses to signal that the user confirmed the causal mechanism.
const MoveMechConfirmed = "mech_present_correct"

// mechConfirmedMin is the indicator strength required before follow-up
// evidence upgrades the primary measurement.
const mechConfirmedMin = 0.60

// Merge folds a probe-answer measurement into the primary one. When the
// follow-up confirms the mechanism strongly enough, the primary's
// completeness and correctness estimates are upgraded:
//
//	labels[Correct&Complete] = max(current, 0.9)
//	labels[Correct_Missing]  = min(current, 0.1)
//	calibrations.p_correct   = max(current, 0.85)
//
// Otherwise the primary is returned unchanged. Missing fields read as a
// zero indicator; Merge never fails.
func Merge(primary, followup Measurement) (Measurement, bool) {
	if followup.Move(MoveMechConfirmed) < mechConfirmedMin {
		return primary, false
	}

	merged := primary
	merged.Labels = maps.Clone(primary.Labels)
	if merged.Labels == nil {
		merged.Labels = make(map[string]float64, 2)
	}
	merged.Labels[LabelCorrectComplete] = max(clamp01(merged.Labels[LabelCorrectComplete]), 0.9)
	merged.Labels[LabelCorrectMissing] = min(clamp01(merged.Labels[LabelCorrectMissing]), 0.1)

	p := 0.0
	if cur, ok := primary.PCorrect(); ok {
		p = cur
	}
	upgraded := max(p, 0.85)
	merged.Calibrations.PCorrect = &upgraded

	return merged, true
}
