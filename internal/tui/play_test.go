package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/turn"
)

func TestNewModelStartsOnFirstItem(t *testing.T) {
	m := NewModel(nil)
	if m.item.ID != bank.FirstItem().ID {
		t.Errorf("item = %q, want %q", m.item.ID, bank.FirstItem().ID)
	}
	if m.phase != phaseAnswer {
		t.Errorf("phase = %v, want phaseAnswer", m.phase)
	}
}

func TestProbeResultEntersProbePhase(t *testing.T) {
	m := NewModel(nil)
	res := &turn.Result{
		Phase:     turn.PhaseProbe,
		SessionID: "s1",
		Probe: &policy.Probe{
			Intent: policy.IntentMechanism,
			Text:   "What makes that happen?",
		},
		Measurement: measure.Measurement{},
	}

	next, _ := m.Update(turnResultMsg{res: res})
	got := next.(Model)

	if got.phase != phaseProbe {
		t.Fatalf("phase = %v, want phaseProbe", got.phase)
	}
	if got.sessionID != "s1" {
		t.Errorf("sessionID = %q, want s1", got.sessionID)
	}
	if got.pending == nil || got.pending.Probe.Text != res.Probe.Text {
		t.Error("pending probe not retained")
	}
}

func TestCompleteResultAdvancesItem(t *testing.T) {
	items := bank.Items()
	if len(items) < 2 {
		t.Skip("catalog too small")
	}
	next := items[1]

	m := NewModel(nil)
	res := &turn.Result{
		Phase:     turn.PhaseComplete,
		SessionID: "s1",
		TurnIndex: 1,
		ThetaMean: 0.4,
		ThetaSE:   0.8,
		NextItem:  &next,
	}

	nm, _ := m.Update(turnResultMsg{res: res})
	got := asModel(t, nm)
	if got.phase != phaseAnswer {
		t.Fatalf("phase = %v, want phaseAnswer", got.phase)
	}
	if got.item.ID != next.ID {
		t.Errorf("item = %q, want %q", got.item.ID, next.ID)
	}
	if got.turnCount != 1 {
		t.Errorf("turnCount = %d, want 1", got.turnCount)
	}
	if got.theta != 0.4 || got.se != 0.8 {
		t.Errorf("theta/se = %v/%v, want 0.4/0.8", got.theta, got.se)
	}
	if got.pending != nil {
		t.Error("pending probe should clear on completion")
	}
}

func TestCompleteWithoutNextItemFinishes(t *testing.T) {
	m := NewModel(nil)
	res := &turn.Result{Phase: turn.PhaseComplete, SessionID: "s1", TurnIndex: 3}

	nm, _ := m.Update(turnResultMsg{res: res})
	got := asModel(t, nm)
	if got.phase != phaseDone {
		t.Errorf("phase = %v, want phaseDone", got.phase)
	}
}

func TestTurnErrorRecoversPhase(t *testing.T) {
	m := NewModel(nil)
	m.phase = phaseWaiting

	nm, _ := m.Update(turnResultMsg{err: errors.New("provider down")})
	got := asModel(t, nm)
	if got.phase != phaseAnswer {
		t.Errorf("phase = %v, want phaseAnswer after error with no pending probe", got.phase)
	}
	if got.err == nil {
		t.Error("error not surfaced")
	}

	// With a probe outstanding, the error returns the learner to the probe.
	m.pending = &turn.Result{Probe: &policy.Probe{Intent: policy.IntentMechanism, Text: "Why?"}}
	nm, _ = m.Update(turnResultMsg{err: errors.New("provider down")})
	got = asModel(t, nm)
	if got.phase != phaseProbe {
		t.Errorf("phase = %v, want phaseProbe after error with pending probe", got.phase)
	}
}

func TestSubmitIgnoresEmptyInput(t *testing.T) {
	m := NewModel(nil)
	next, cmd := m.submit()
	got := next.(Model)
	if cmd != nil {
		t.Error("empty input should not dispatch a turn")
	}
	if got.phase != phaseAnswer {
		t.Errorf("phase = %v, want phaseAnswer", got.phase)
	}
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	got, ok := m.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", m)
	}
	return got
}
