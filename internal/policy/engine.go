package policy

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
)

// Config holds the decision thresholds. These are contract values, not tuning knobs.
type Config struct {
	// CompleteMin is the Correct&Complete probability above which the
	// answer may count as sufficient evidence on its own.
	CompleteMin float64

	// ConfidenceMin is the judge confidence required alongside CompleteMin.
	ConfidenceMin float64

	// NovelDegenerateMin and ConfidenceDegenerateMax bound the
	// failed-grading guard: an almost-certain Novel at almost no
	// confidence means the grading call itself went wrong.
	NovelDegenerateMin      float64
	ConfidenceDegenerateMax float64

	// BoundaryFamilyPrefix marks the item family whose weak answers are
	// always probed for boundary conditions.
	BoundaryFamilyPrefix string
}

// DefaultConfig returns the contract thresholds.
func DefaultConfig() Config {
	return Config{
		CompleteMin:             0.70,
		ConfidenceMin:           0.75,
		NovelDegenerateMin:      0.99,
		ConfidenceDegenerateMax: 0.25,
		BoundaryFamilyPrefix:    "C8",
	}
}

// Engine decides whether to issue a follow-up probe after an answer.
// The rules form an ordered cascade: the first matching rule wins and
// nothing below it fires.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine creates an engine. Pass a seeded rng for deterministic
// phrase selection; nil gets a randomly seeded source.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Decide runs the cascade for one answered item. Returns the probe
// decision and trace notes naming every rule that fired.
func (e *Engine) Decide(it bank.Item, feats bank.Features, m measure.Measurement, r measure.Reading) (Probe, []string) {
	var notes []string

	// 1. Evidence sufficiency: a confident, clean, complete answer needs
	// no follow-up.
	if m.Label(measure.LabelCorrectComplete) >= e.cfg.CompleteMin &&
		r.MoveOK &&
		len(r.HighPitfalls) == 0 &&
		m.Confidence() >= e.cfg.ConfidenceMin {
		notes = append(notes, "evidence sufficient; skip probe")
		return None("evidence sufficient"), notes
	}

	// 2. Failed-grading guard: a near-certain Novel at near-zero
	// confidence is a broken measurement, and probing on top of it would
	// compound the error.
	if m.Label(measure.LabelNovel) >= e.cfg.NovelDegenerateMin &&
		m.Confidence() <= e.cfg.ConfidenceDegenerateMax {
		notes = append(notes, "degenerate measurement; treating grading call as failed, skip probe")
		return None("failed grading call"), notes
	}

	// 3. Judge-suggested probe, if its text survives the guard.
	if sug := m.Probe; sug != nil {
		if intent, ok := ParseIntent(sug.Intent); ok && intent != IntentNone {
			reason := GuardText(sug.Text, it.Text)
			if reason == "" {
				notes = append(notes, fmt.Sprintf("judge probe accepted (%s)", intent))
				return Probe{
					Intent:     intent,
					Text:       sug.Text,
					Rationale:  sug.Rationale,
					Confidence: sug.Confidence,
					Source:     SourceJudge,
				}, notes
			}
			notes = append(notes, "judge probe rejected: "+reason)
		}
	}

	// 4. Schema-specific overrides.
	var intent Intent
	var rationale string
	if feats.ExpectedListCount > 0 && m.Extractions.ReasonsCount < feats.ExpectedListCount {
		intent = IntentCompletion
		rationale = fmt.Sprintf("gave %d of %d expected reasons", m.Extractions.ReasonsCount, feats.ExpectedListCount)
		notes = append(notes, fmt.Sprintf("under-supplied list (%d/%d); completion probe",
			m.Extractions.ReasonsCount, feats.ExpectedListCount))
	}
	if strings.HasPrefix(it.Family, e.cfg.BoundaryFamilyPrefix) && isLowQuality(r.FinalLabel) {
		intent = IntentBoundary
		rationale = "boundary-emphasis family with a weak answer"
		notes = append(notes, "family "+e.cfg.BoundaryFamilyPrefix+"; forcing boundary probe")
	}

	// 5. Label-default mapping.
	if intent == "" {
		intent = defaultIntent(r.FinalLabel)
		rationale = "default for label " + r.FinalLabel
		if intent == IntentNone {
			notes = append(notes, "label default: no probe")
			return None(rationale), notes
		}
		notes = append(notes, fmt.Sprintf("label default: %s probe", intent))
	}

	// 6. Rules 4-5 decide intent only; the text comes from the library.
	text := e.phraseFor(intent)
	notes = append(notes, "probe text from library")
	return Probe{
		Intent:    intent,
		Text:      text,
		Rationale: rationale,
		Source:    SourceLibrary,
	}, notes
}

// isLowQuality reports whether a final label marks a weak answer.
func isLowQuality(label string) bool {
	switch label {
	case measure.LabelPartial, measure.LabelIncorrect, measure.LabelNovel:
		return true
	}
	return false
}

// defaultIntent is the fallback label-to-intent mapping.
func defaultIntent(label string) Intent {
	switch label {
	case measure.LabelCorrectComplete:
		return IntentNone
	case measure.LabelCorrectMissing, measure.LabelCorrectFlawed:
		return IntentMechanism
	default:
		return IntentAlternative
	}
}
