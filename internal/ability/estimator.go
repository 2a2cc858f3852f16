package ability

import (
	"fmt"
	"math"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
)

// State is the running Gaussian estimate of the user's latent ability.
type State struct {
	Mean float64
	Var  float64
}

// NewState returns the prior for a fresh session.
func NewState() State {
	return State{Mean: 0, Var: 1.5}
}

// SE returns the standard error of the estimate.
func (s State) SE() float64 {
	return math.Sqrt(s.Var)
}

// scoreWeights maps each quality label to its contribution to the
// expected score. Fixed contract values.
var scoreWeights = map[string]float64{
	measure.LabelCorrectComplete: 1.0,
	measure.LabelCorrectMissing:  0.85,
	measure.LabelCorrectFlawed:   0.60,
	measure.LabelPartial:         0.40,
	measure.LabelIncorrect:       0.0,
	measure.LabelNovel:           0.0,
}

// infoFloor keeps the information proxy strictly positive so the
// precision update can never divide by zero.
const infoFloor = 1e-6

// Logistic is the standard logistic function, computed in the
// numerically stable branch form.
func Logistic(x float64) float64 {
	if x >= 0 {
		z := math.Exp(-x)
		return 1.0 / (1.0 + z)
	}
	z := math.Exp(x)
	return z / (1.0 + z)
}

// ExpectedScore converts a label distribution into a scalar expected
// score under the fixed weights.
func ExpectedScore(m measure.Measurement) float64 {
	score := 0.0
	for _, name := range measure.CanonicalLabels() {
		score += scoreWeights[name] * m.Label(name)
	}
	return score
}

// ResponseProbability returns the model's probability that a user at
// theta answers the item correctly.
func ResponseProbability(theta float64, it bank.Item) float64 {
	return Logistic(it.Disc * (theta - it.Diff))
}

// Update performs one assumed-density-filtering step against the
// measurement for a single item. Pure: returns the new state and trace
// notes without touching the input.
//
// The response-model probability is fused 50/50 with the judge's own
// p_correct when one was supplied.
func Update(s State, it bank.Item, m measure.Measurement) (State, []string) {
	pBase := ResponseProbability(s.Mean, it)

	var notes []string
	p := pBase
	if pJudge, ok := m.PCorrect(); ok {
		p = 0.5*pBase + 0.5*pJudge
		notes = append(notes, fmt.Sprintf("p_base=%.3f; p_judge=%.3f; p_fused=%.3f", pBase, pJudge, p))
	} else {
		notes = append(notes, fmt.Sprintf("p_base=%.3f; no p_correct from judge", pBase))
	}

	yHat := ExpectedScore(m)
	info := it.Disc*it.Disc*p*(1-p) + infoFloor

	next := State{
		Var: 1.0 / (1.0/s.Var + info),
	}
	next.Mean = s.Mean + next.Var*it.Disc*(yHat-p)

	notes = append(notes, fmt.Sprintf(
		"y_hat=%.3f; info=%.3f; theta: %.2f->%.2f; var: %.2f->%.2f",
		yHat, info, s.Mean, next.Mean, s.Var, next.Var))

	return next, notes
}
