package turn

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/caliper/internal/ability"
	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/store"
)

// fakeSessionRepo is an in-memory SessionRepo.
type fakeSessionRepo struct {
	sessions map[string]*store.SessionState
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*store.SessionState{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, state *store.SessionState) error {
	if _, exists := r.sessions[state.ID]; exists {
		return errors.New("duplicate session")
	}
	cp := *state
	r.sessions[state.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (*store.SessionState, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) List(_ context.Context) ([]*store.SessionState, error) {
	var out []*store.SessionState
	for _, s := range r.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSessionRepo) Mutate(_ context.Context, id string, fn func(*store.SessionState) error) (*store.SessionState, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	cp.Asked = append([]string(nil), s.Asked...)
	cp.Coverage = map[string]int{}
	for k, v := range s.Coverage {
		cp.Coverage[k] = v
	}
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.sessions[id] = &cp
	out := cp
	return &out, nil
}

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	turns []store.TurnEventData
	llm   []store.LLMRequestEventData
}

func (r *fakeEventRepo) AppendTurn(_ context.Context, data store.TurnEventData) error {
	r.turns = append(r.turns, data)
	return nil
}

func (r *fakeEventRepo) ListTurns(_ context.Context, sessionID string) ([]*store.TurnRecord, error) {
	var out []*store.TurnRecord
	for _, t := range r.turns {
		if t.SessionID == sessionID {
			out = append(out, &store.TurnRecord{TurnEventData: t})
		}
	}
	return out, nil
}

func (r *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.llm = append(r.llm, data)
	return nil
}

func (r *fakeEventRepo) ListLLMRequests(_ context.Context, _ int) ([]*store.LLMRequestRecord, error) {
	return nil, nil
}

// fakeGrader returns canned measurements in FIFO order.
type fakeGrader struct {
	primary   []measure.Measurement
	followups []measure.Measurement
	calls     int
	err       error
}

func (g *fakeGrader) Grade(_ context.Context, _ bank.Item, _ bank.Features, _ string) (measure.Measurement, error) {
	g.calls++
	if g.err != nil {
		return measure.Measurement{}, g.err
	}
	m := g.primary[0]
	g.primary = g.primary[1:]
	return m, nil
}

func (g *fakeGrader) GradeFollowup(_ context.Context, _ bank.Item, _ bank.Features, _, _, _ string) (measure.Measurement, error) {
	g.calls++
	if g.err != nil {
		return measure.Measurement{}, g.err
	}
	m := g.followups[0]
	g.followups = g.followups[1:]
	return m, nil
}

func newTestService(sessions store.SessionRepo, events store.EventRepo, grader Grader) *Service {
	engine := policy.NewEngine(policy.DefaultConfig(), rand.New(rand.NewPCG(1, 1)))
	return NewService(sessions, events, grader, engine, DefaultConfig())
}

func completeMeasurement() measure.Measurement {
	return measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 0.9},
		ProcessMoves: map[string]float64{"checks_timing": 0.9, "flags_during_program_control": 0.9, "states_mechanism": 0.9},
		Calibrations: measure.Calibrations{Confidence: 0.9},
		Extractions:  measure.Extractions{ReasonsCount: 2},
	}
}

func weakMeasurement() measure.Measurement {
	return measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.7},
		Calibrations: measure.Calibrations{Confidence: 0.6},
	}
}

func TestTurnUnknownItem(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), &fakeEventRepo{}, &fakeGrader{})

	_, err := svc.Turn(context.Background(), Request{ItemID: "nope", Answer: "x"})
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestTurnCreatesSessionAndCommits(t *testing.T) {
	sessions := newFakeSessionRepo()
	events := &fakeEventRepo{}
	grader := &fakeGrader{primary: []measure.Measurement{completeMeasurement()}}
	svc := newTestService(sessions, events, grader)

	it := bank.FirstItem()
	res, err := svc.Turn(context.Background(), Request{
		UserTag: "alice",
		ItemID:  it.ID,
		Answer:  "a thorough answer",
	})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	if res.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete for sufficient evidence", res.Phase)
	}
	if res.SessionID == "" {
		t.Error("expected a generated session id")
	}
	if res.TurnIndex != 1 {
		t.Errorf("turn_index = %d, want 1", res.TurnIndex)
	}
	if res.NextItem == nil {
		t.Error("expected a next item from a fresh catalog")
	} else if res.NextItem.ID == it.ID {
		t.Error("next item must differ from the answered item")
	}

	st, err := sessions.Get(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if st.TurnCount != 1 {
		t.Errorf("turn_count = %d, want 1", st.TurnCount)
	}
	if len(st.Asked) != 1 || st.Asked[0] != it.ID {
		t.Errorf("asked = %v, want [%s]", st.Asked, it.ID)
	}
	if st.Coverage[string(it.CoverageTag)] != 1 {
		t.Errorf("coverage = %v, want %s:1", st.Coverage, it.CoverageTag)
	}
	if res.Coverage[string(it.CoverageTag)] != 1 {
		t.Errorf("result coverage = %v, want %s:1", res.Coverage, it.CoverageTag)
	}
	if st.ThetaMean <= 0 {
		t.Errorf("theta = %v, want > 0 after a strong answer", st.ThetaMean)
	}

	if len(events.turns) != 1 {
		t.Fatalf("turn events = %d, want 1", len(events.turns))
	}
	ev := events.turns[0]
	if ev.FinalLabel != measure.LabelCorrectComplete {
		t.Errorf("event label = %q", ev.FinalLabel)
	}
	if ev.NextItemID != res.NextItem.ID {
		t.Errorf("event next = %q, want %q", ev.NextItemID, res.NextItem.ID)
	}
}

func TestTurnProbePhaseDoesNotTouchState(t *testing.T) {
	sessions := newFakeSessionRepo()
	events := &fakeEventRepo{}
	grader := &fakeGrader{primary: []measure.Measurement{weakMeasurement()}}
	svc := newTestService(sessions, events, grader)

	it := bank.FirstItem()
	res, err := svc.Turn(context.Background(), Request{ItemID: it.ID, Answer: "hm"})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	if res.Phase != PhaseProbe {
		t.Fatalf("phase = %q, want probe for weak evidence", res.Phase)
	}
	if res.Probe == nil || res.Probe.Intent == policy.IntentNone {
		t.Fatalf("probe = %+v, want a real probe", res.Probe)
	}
	if res.Probe.Text == "" {
		t.Error("probe must carry text")
	}

	st, err := sessions.Get(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if st.TurnCount != 0 || len(st.Asked) != 0 {
		t.Error("probe phase must not commit the turn")
	}
	if len(events.turns) != 0 {
		t.Error("probe phase must not append a turn event")
	}
}

func TestTurnFollowupMergesAndCommits(t *testing.T) {
	sessions := newFakeSessionRepo()
	events := &fakeEventRepo{}
	followup := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectFlawed: 0.5},
		ProcessMoves: map[string]float64{measure.MoveMechConfirmed: 0.9},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	grader := &fakeGrader{
		primary:   []measure.Measurement{weakMeasurement()},
		followups: []measure.Measurement{followup},
	}
	svc := newTestService(sessions, events, grader)

	it := bank.FirstItem()
	ctx := context.Background()

	phase1, err := svc.Turn(ctx, Request{ItemID: it.ID, Answer: "hm"})
	if err != nil {
		t.Fatalf("phase 1: %v", err)
	}
	if phase1.Phase != PhaseProbe {
		t.Fatalf("phase = %q, want probe", phase1.Phase)
	}

	primary := phase1.Measurement
	phase2, err := svc.Turn(ctx, Request{
		SessionID:      phase1.SessionID,
		ItemID:         it.ID,
		Answer:         "hm",
		Primary:        &primary,
		Probe:          phase1.Probe,
		FollowupAnswer: "because the two groups differ to begin with",
	})
	if err != nil {
		t.Fatalf("phase 2: %v", err)
	}

	if phase2.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete", phase2.Phase)
	}
	// Mechanism confirmed: Correct&Complete upgraded to at least 0.9.
	if got := phase2.Measurement.Label(measure.LabelCorrectComplete); got < 0.9 {
		t.Errorf("merged Correct&Complete = %v, want >= 0.9", got)
	}
	if phase2.TurnIndex != 1 {
		t.Errorf("turn_index = %d, want 1", phase2.TurnIndex)
	}

	if len(events.turns) != 1 {
		t.Fatalf("turn events = %d, want 1", len(events.turns))
	}
	ev := events.turns[0]
	if ev.ProbeIntent != string(phase1.Probe.Intent) {
		t.Errorf("event probe intent = %q, want %q", ev.ProbeIntent, phase1.Probe.Intent)
	}
	if ev.FollowupText == "" {
		t.Error("event missing follow-up text")
	}
}

func TestTurnPrecomputedMeasurementCommitsWithoutGrading(t *testing.T) {
	sessions := newFakeSessionRepo()
	events := &fakeEventRepo{}
	grader := &fakeGrader{err: errors.New("oracle offline")}
	svc := newTestService(sessions, events, grader)

	m := completeMeasurement()
	res, err := svc.Turn(context.Background(), Request{
		ItemID:  bank.FirstItem().ID,
		Primary: &m,
	})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	if res.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete for sufficient evidence", res.Phase)
	}
	if grader.calls != 0 {
		t.Errorf("grader calls = %d, want 0 for a pre-resolved measurement", grader.calls)
	}
	if res.Probe == nil || res.Probe.Intent != policy.IntentNone {
		t.Errorf("probe = %+v, want the None decision echoed on commit", res.Probe)
	}
	if len(events.turns) != 1 {
		t.Fatalf("turn events = %d, want 1", len(events.turns))
	}
}

func TestTurnPrecomputedWeakMeasurementProbes(t *testing.T) {
	grader := &fakeGrader{err: errors.New("oracle offline")}
	svc := newTestService(newFakeSessionRepo(), &fakeEventRepo{}, grader)

	m := weakMeasurement()
	res, err := svc.Turn(context.Background(), Request{
		ItemID:  bank.FirstItem().ID,
		Primary: &m,
	})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	if res.Phase != PhaseProbe {
		t.Fatalf("phase = %q, want probe for weak evidence", res.Phase)
	}
	if grader.calls != 0 {
		t.Errorf("grader calls = %d, want 0 for a pre-resolved measurement", grader.calls)
	}
}

func TestTurnPrecomputedFollowupMergesWithoutGrading(t *testing.T) {
	grader := &fakeGrader{err: errors.New("oracle offline")}
	svc := newTestService(newFakeSessionRepo(), &fakeEventRepo{}, grader)

	primary := weakMeasurement()
	secondary := measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectFlawed: 0.5},
		ProcessMoves: map[string]float64{measure.MoveMechConfirmed: 0.9},
		Calibrations: measure.Calibrations{Confidence: 0.8},
	}
	res, err := svc.Turn(context.Background(), Request{
		ItemID:    bank.FirstItem().ID,
		Primary:   &primary,
		Secondary: &secondary,
		Probe:     &policy.Probe{Intent: policy.IntentMechanism, Text: "How would that work?", Source: policy.SourceLibrary},
	})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	if res.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete", res.Phase)
	}
	if grader.calls != 0 {
		t.Errorf("grader calls = %d, want 0 for pre-resolved measurements", grader.calls)
	}
	if got := res.Measurement.Label(measure.LabelCorrectComplete); got < 0.9 {
		t.Errorf("merged Correct&Complete = %v, want >= 0.9", got)
	}
	if res.Probe == nil || res.Probe.Intent != policy.IntentMechanism {
		t.Errorf("probe = %+v, want the round-tripped decision echoed", res.Probe)
	}
}

func TestTurnRequiresAnswerOrMeasurement(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), &fakeEventRepo{}, &fakeGrader{})

	_, err := svc.Turn(context.Background(), Request{ItemID: bank.FirstItem().ID})
	if err == nil {
		t.Fatal("expected error for a request with no answer and no measurement")
	}
}

func TestTurnRejectsRepeatedItem(t *testing.T) {
	sessions := newFakeSessionRepo()
	grader := &fakeGrader{primary: []measure.Measurement{completeMeasurement(), completeMeasurement()}}
	svc := newTestService(sessions, &fakeEventRepo{}, grader)

	it := bank.FirstItem()
	ctx := context.Background()

	res, err := svc.Turn(ctx, Request{ItemID: it.ID, Answer: "good"})
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}

	_, err = svc.Turn(ctx, Request{SessionID: res.SessionID, ItemID: it.ID, Answer: "again"})
	if err == nil {
		t.Fatal("expected error when re-answering the same item")
	}
	if !strings.Contains(err.Error(), "already answered") {
		t.Errorf("err = %v, want already-answered", err)
	}
}

func TestTurnUnknownSession(t *testing.T) {
	svc := newTestService(newFakeSessionRepo(), &fakeEventRepo{}, &fakeGrader{})

	_, err := svc.Turn(context.Background(), Request{
		SessionID: "ghost",
		ItemID:    bank.FirstItem().ID,
		Answer:    "x",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTurnGraderFailureLeavesStateUntouched(t *testing.T) {
	sessions := newFakeSessionRepo()
	grader := &fakeGrader{err: errors.New("provider down")}
	svc := newTestService(sessions, &fakeEventRepo{}, grader)

	// Pre-create a session so the failure path has state to protect.
	init := ability.NewState()
	if err := sessions.Create(context.Background(), &store.SessionState{
		ID: "sess-1", ThetaMean: init.Mean, ThetaVar: init.Var, Coverage: map[string]int{},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Turn(context.Background(), Request{SessionID: "sess-1", ItemID: bank.FirstItem().ID, Answer: "x"})
	if err == nil {
		t.Fatal("expected grading error")
	}

	st, _ := sessions.Get(context.Background(), "sess-1")
	if st.TurnCount != 0 {
		t.Error("failed grading must not commit a turn")
	}
}

func TestTurnVarianceShrinksAcrossTurns(t *testing.T) {
	sessions := newFakeSessionRepo()
	grader := &fakeGrader{primary: []measure.Measurement{completeMeasurement(), completeMeasurement()}}
	svc := newTestService(sessions, &fakeEventRepo{}, grader)

	ctx := context.Background()
	res1, err := svc.Turn(ctx, Request{ItemID: bank.FirstItem().ID, Answer: "good"})
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	st1, _ := sessions.Get(ctx, res1.SessionID)

	res2, err := svc.Turn(ctx, Request{SessionID: res1.SessionID, ItemID: res1.NextItem.ID, Answer: "good"})
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	st2, _ := sessions.Get(ctx, res2.SessionID)

	if st2.ThetaVar >= st1.ThetaVar {
		t.Errorf("variance did not shrink: %v -> %v", st1.ThetaVar, st2.ThetaVar)
	}
	if res2.ThetaSE >= res1.ThetaSE {
		t.Errorf("SE did not shrink: %v -> %v", res1.ThetaSE, res2.ThetaSE)
	}
}
