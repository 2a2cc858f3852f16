package turn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/abhisek/caliper/internal/ability"
	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/judge"
	"github.com/abhisek/caliper/internal/measure"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/selector"
	"github.com/abhisek/caliper/internal/store"
)

// Grader measures answers. Satisfied by *judge.Judge.
type Grader interface {
	Grade(ctx context.Context, it bank.Item, feats bank.Features, answer string) (measure.Measurement, error)
	GradeFollowup(ctx context.Context, it bank.Item, feats bank.Features, answer, probeText, followup string) (measure.Measurement, error)
}

var _ Grader = (*judge.Judge)(nil)

// Config holds the turn controller's tunables.
type Config struct {
	Interpret measure.Config
	Policy    policy.Config
}

// DefaultConfig returns the contract thresholds.
func DefaultConfig() Config {
	return Config{
		Interpret: measure.DefaultConfig(),
		Policy:    policy.DefaultConfig(),
	}
}

// Service runs the per-turn decision loop: grade, decide whether to
// probe, merge follow-up evidence, update ability, pick the next item.
type Service struct {
	sessions store.SessionRepo
	events   store.EventRepo
	grader   Grader
	engine   *policy.Engine
	cfg      Config
}

// NewService wires a turn controller.
func NewService(sessions store.SessionRepo, events store.EventRepo, grader Grader, engine *policy.Engine, cfg Config) *Service {
	return &Service{
		sessions: sessions,
		events:   events,
		grader:   grader,
		engine:   engine,
		cfg:      cfg,
	}
}

// Request is one turn submission. A turn runs in up to two phases:
// the primary answer, and, when a probe was issued, the same request
// again with the follow-up evidence. Measurements may be supplied
// pre-resolved; the grader is only consulted for evidence the request
// does not carry. The service itself keeps no pending state between
// phases.
type Request struct {
	// SessionID is empty on the very first turn; a session is created
	// and its id returned in the result.
	SessionID string `json:"session_id"`

	// UserTag labels the learner on session creation. Optional.
	UserTag string `json:"user_tag,omitempty"`

	ItemID string `json:"item_id"`

	// Answer is the primary free-text answer. Graded only when
	// Primary is absent.
	Answer string `json:"answer,omitempty"`

	// Primary is the measurement of the primary answer. When set, the
	// turn consumes it as-is and the grader is not called for it.
	Primary *measure.Measurement `json:"measurement,omitempty"`

	// Secondary is the measurement of the probe reply. Its presence,
	// or a FollowupAnswer, completes a probed turn.
	Secondary *measure.Measurement `json:"probe_measurement,omitempty"`

	// Probe is the probe round-tripped from the probe-phase result.
	Probe *policy.Probe `json:"probe,omitempty"`

	// FollowupAnswer is the reply to the probe. Graded only when
	// Secondary is absent.
	FollowupAnswer string `json:"followup_answer,omitempty"`
}

// followup reports whether the request carries probe-reply evidence.
func (r Request) followup() bool {
	return r.Secondary != nil || r.FollowupAnswer != ""
}

// Phase tells the caller what the result contains.
type Phase string

const (
	// PhaseProbe means a follow-up question must be asked before the
	// turn can commit. The result carries the probe and the primary
	// measurement to round-trip.
	PhaseProbe Phase = "probe"

	// PhaseComplete means the turn committed: ability updated, next
	// item selected.
	PhaseComplete Phase = "complete"
)

// Result is the outcome of one turn submission.
type Result struct {
	Phase     Phase  `json:"phase"`
	SessionID string `json:"session_id"`
	TurnIndex int    `json:"turn_index,omitempty"`

	// Probe is the decision for this turn. On a probe-phase result it
	// is the question to ask; on a committed turn it echoes the
	// decision that was applied (intent None when no probe was needed).
	Probe *policy.Probe `json:"probe,omitempty"`

	// Measurement is the merged (or primary) measurement.
	Measurement measure.Measurement `json:"measurement"`

	FinalLabel string  `json:"final_label"`
	FinalP     float64 `json:"final_p"`

	// Ability state after the update. Zero-valued when Phase is "probe".
	ThetaMean float64 `json:"theta_mean"`
	ThetaSE   float64 `json:"theta_se"`

	// Coverage counts turns per coverage tag after this turn committed.
	Coverage map[string]int `json:"coverage,omitempty"`

	// NextItem is the selected follow-on item; nil when the catalog is
	// exhausted or the turn has not committed yet.
	NextItem *bank.Item `json:"next_item,omitempty"`

	// Trace carries the rule-by-rule decision notes for this turn.
	Trace []string `json:"trace"`
}

// Turn processes one submission.
func (s *Service) Turn(ctx context.Context, req Request) (*Result, error) {
	it, err := bank.ItemByID(req.ItemID)
	if err != nil {
		return nil, err
	}
	feats := bank.FeaturesFor(it.SchemaID)

	sessionID, err := s.ensureSession(ctx, req)
	if err != nil {
		return nil, err
	}

	var trace []string

	primary, note, err := s.resolvePrimary(ctx, it, feats, req)
	if err != nil {
		return nil, err
	}
	trace = append(trace, note)

	var merged measure.Measurement
	var decided *policy.Probe

	if !req.followup() {
		// Phase one: decide on a probe from the primary evidence alone.
		reading, notes := measure.Interpret(primary, feats, s.cfg.Interpret)
		trace = append(trace, notes...)

		probe, decideNotes := s.engine.Decide(it, feats, primary, reading)
		trace = append(trace, decideNotes...)

		if probe.Intent != policy.IntentNone {
			return &Result{
				Phase:       PhaseProbe,
				SessionID:   sessionID,
				Probe:       &probe,
				Measurement: primary,
				FinalLabel:  reading.FinalLabel,
				FinalP:      reading.FinalP,
				Trace:       trace,
			}, nil
		}

		trace = append(trace, "no probe; committing turn")
		merged = primary
		decided = &probe
	} else {
		// Phase two: merge the probe-reply evidence into the primary.
		secondary, note, err := s.resolveSecondary(ctx, it, feats, req)
		if err != nil {
			return nil, err
		}
		trace = append(trace, note)

		var upgraded bool
		merged, upgraded = measure.Merge(primary, secondary)
		if upgraded {
			trace = append(trace, "follow-up confirmed mechanism; labels upgraded")
		} else {
			trace = append(trace, "follow-up did not confirm mechanism; primary stands")
		}
		decided = req.Probe
	}

	return s.commit(ctx, sessionID, it, req, decided, merged, trace)
}

// resolvePrimary returns the primary measurement, grading the answer
// only when the request does not carry one.
func (s *Service) resolvePrimary(ctx context.Context, it bank.Item, feats bank.Features, req Request) (measure.Measurement, string, error) {
	if req.Primary != nil {
		return *req.Primary, "primary measurement supplied", nil
	}
	if req.Answer == "" {
		return measure.Measurement{}, "", errors.New("a primary measurement or an answer is required")
	}
	m, err := s.grader.Grade(ctx, it, feats, req.Answer)
	if err != nil {
		return measure.Measurement{}, "", fmt.Errorf("grade answer: %w", err)
	}
	return m, "graded primary answer", nil
}

// resolveSecondary returns the probe-reply measurement, grading the
// follow-up answer only when the request does not carry one.
func (s *Service) resolveSecondary(ctx context.Context, it bank.Item, feats bank.Features, req Request) (measure.Measurement, string, error) {
	if req.Secondary != nil {
		return *req.Secondary, "probe measurement supplied", nil
	}
	probeText := ""
	if req.Probe != nil {
		probeText = req.Probe.Text
	}
	m, err := s.grader.GradeFollowup(ctx, it, feats, req.Answer, probeText, req.FollowupAnswer)
	if err != nil {
		return measure.Measurement{}, "", fmt.Errorf("grade follow-up: %w", err)
	}
	return m, "graded follow-up answer", nil
}

// ensureSession resolves the session id, creating a fresh session when
// the request carries none.
func (s *Service) ensureSession(ctx context.Context, req Request) (string, error) {
	if req.SessionID != "" {
		if _, err := s.sessions.Get(ctx, req.SessionID); err != nil {
			return "", fmt.Errorf("session %s: %w", req.SessionID, err)
		}
		return req.SessionID, nil
	}

	init := ability.NewState()
	state := &store.SessionState{
		ID:        uuid.NewString(),
		UserTag:   req.UserTag,
		ThetaMean: init.Mean,
		ThetaVar:  init.Var,
		Coverage:  map[string]int{},
	}
	if err := s.sessions.Create(ctx, state); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return state.ID, nil
}

// commit applies the ability update and item bookkeeping atomically,
// then records the turn event.
func (s *Service) commit(ctx context.Context, sessionID string, it bank.Item, req Request, probe *policy.Probe, m measure.Measurement, trace []string) (*Result, error) {
	feats := bank.FeaturesFor(it.SchemaID)
	reading, notes := measure.Interpret(m, feats, s.cfg.Interpret)
	trace = append(trace, notes...)

	var (
		thetaBefore float64
		after       ability.State
		next        *bank.Item
		turnIndex   int
	)

	updated, err := s.sessions.Mutate(ctx, sessionID, func(st *store.SessionState) error {
		for _, asked := range st.Asked {
			if asked == it.ID {
				return fmt.Errorf("item %s already answered in session %s", it.ID, sessionID)
			}
		}

		before := ability.State{Mean: st.ThetaMean, Var: st.ThetaVar}
		thetaBefore = before.Mean

		var updateNotes []string
		after, updateNotes = ability.Update(before, it, m)
		trace = append(trace, updateNotes...)

		st.ThetaMean = after.Mean
		st.ThetaVar = after.Var
		st.Asked = append(st.Asked, it.ID)
		st.Coverage[string(it.CoverageTag)]++
		st.TurnCount++
		turnIndex = st.TurnCount

		next, updateNotes = selectNext(st, after.Mean)
		trace = append(trace, updateNotes...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("commit turn: %w", err)
	}

	s.recordTurn(ctx, updated, it, req, probe, m, reading, thetaBefore, after, next, turnIndex, trace)

	result := &Result{
		Phase:       PhaseComplete,
		SessionID:   sessionID,
		TurnIndex:   turnIndex,
		Probe:       probe,
		Measurement: m,
		FinalLabel:  reading.FinalLabel,
		FinalP:      reading.FinalP,
		ThetaMean:   after.Mean,
		ThetaSE:     after.SE(),
		Coverage:    updated.Coverage,
		NextItem:    next,
		Trace:       trace,
	}
	return result, nil
}

// selectNext picks the follow-on item from the remaining catalog.
func selectNext(st *store.SessionState, theta float64) (*bank.Item, []string) {
	asked := make(map[string]bool, len(st.Asked))
	for _, id := range st.Asked {
		asked[id] = true
	}
	coverage := make(map[bank.CoverageTag]int, len(st.Coverage))
	for tag, n := range st.Coverage {
		coverage[bank.CoverageTag(tag)] = n
	}
	return selector.Next(bank.Items(), asked, coverage, theta)
}

// recordTurn appends the turn event after the session row committed.
// Event log failures are reported but never fail the turn.
func (s *Service) recordTurn(ctx context.Context, st *store.SessionState, it bank.Item, req Request, probe *policy.Probe, m measure.Measurement, reading measure.Reading, thetaBefore float64, after ability.State, next *bank.Item, turnIndex int, trace []string) {
	probeIntent := string(policy.IntentNone)
	probeSource := string(policy.SourcePolicy)
	if probe != nil {
		probeIntent = string(probe.Intent)
		probeSource = string(probe.Source)
	}

	rawM, err := json.Marshal(m)
	if err != nil {
		rawM = nil
	}

	nextID := ""
	if next != nil {
		nextID = next.ID
	}

	data := store.TurnEventData{
		SessionID:    st.ID,
		TurnIndex:    turnIndex,
		ItemID:       it.ID,
		AnswerText:   req.Answer,
		FollowupText: req.FollowupAnswer,
		FinalLabel:   reading.FinalLabel,
		FinalP:       reading.FinalP,
		ProbeIntent:  probeIntent,
		ProbeSource:  probeSource,
		ThetaBefore:  thetaBefore,
		ThetaAfter:   after.Mean,
		SEAfter:      after.SE(),
		NextItemID:   nextID,
		Trace:        trace,
		Measurement:  rawM,
	}
	if err := s.events.AppendTurn(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record turn event: %v\n", err)
	}
}
