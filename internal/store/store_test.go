package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := &SessionState{
		ID:        "sess-1",
		UserTag:   "alice",
		ThetaMean: 0,
		ThetaVar:  1.5,
		Asked:     []string{"C2-01"},
		Coverage:  map[string]int{"confounding": 1},
		TurnCount: 1,
	}
	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}
	if state.CreatedAt.IsZero() {
		t.Error("create should backfill timestamps")
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserTag != "alice" {
		t.Errorf("user_tag = %q, want alice", got.UserTag)
	}
	if got.ThetaVar != 1.5 {
		t.Errorf("theta_var = %v, want 1.5", got.ThetaVar)
	}
	if len(got.Asked) != 1 || got.Asked[0] != "C2-01" {
		t.Errorf("asked = %v, want [C2-01]", got.Asked)
	}
	if got.Coverage["confounding"] != 1 {
		t.Errorf("coverage = %v, want confounding:1", got.Coverage)
	}
}

func TestSessionGetNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SessionRepo().Get(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionCreateEmptyID(t *testing.T) {
	s := openTestStore(t)
	if err := s.SessionRepo().Create(context.Background(), &SessionState{}); err == nil {
		t.Error("create with empty id should fail")
	}
}

func TestSessionMutate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &SessionState{ID: "sess-1", ThetaVar: 1.5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Mutate(ctx, "sess-1", func(st *SessionState) error {
		st.ThetaMean = 0.3
		st.ThetaVar = 1.1
		st.Asked = append(st.Asked, "C4-01")
		st.Coverage["temporality"] = 1
		st.TurnCount++
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if updated.TurnCount != 1 {
		t.Errorf("turn_count = %d, want 1", updated.TurnCount)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get after mutate: %v", err)
	}
	if got.ThetaMean != 0.3 {
		t.Errorf("theta_mean = %v, want 0.3 persisted", got.ThetaMean)
	}
	if got.Coverage["temporality"] != 1 {
		t.Errorf("coverage = %v, want temporality:1 persisted", got.Coverage)
	}
}

func TestSessionMutateRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &SessionState{ID: "sess-1", ThetaVar: 1.5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	boom := errors.New("boom")
	_, err := repo.Mutate(ctx, "sess-1", func(st *SessionState) error {
		st.ThetaMean = 99
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ThetaMean != 0 {
		t.Errorf("theta_mean = %v, want 0 after rollback", got.ThetaMean)
	}
}

func TestSessionMutateNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SessionRepo().Mutate(context.Background(), "missing", func(*SessionState) error {
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := repo.Create(ctx, &SessionState{ID: id, ThetaVar: 1.5}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	// Touch "a" so it becomes the most recently updated.
	if _, err := repo.Mutate(ctx, "a", func(st *SessionState) error {
		st.TurnCount++
		return nil
	}); err != nil {
		t.Fatalf("mutate: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != "a" {
		t.Errorf("first = %q, want most recently updated session", list[0].ID)
	}
}

func TestTurnEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.AppendTurn(ctx, TurnEventData{
			SessionID:   "sess-1",
			TurnIndex:   i,
			ItemID:      "C2-01",
			FinalLabel:  "Partial",
			FinalP:      0.6,
			ProbeIntent: "Alternative",
			ProbeSource: "library",
			ThetaBefore: 0,
			ThetaAfter:  0.1,
			SEAfter:     1.1,
			Trace:       []string{"note"},
			Measurement: []byte(`{"labels":{}}`),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns, err := repo.ListTurns(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("len = %d, want 3", len(turns))
	}
	for i, tr := range turns {
		if tr.TurnIndex != i+1 {
			t.Errorf("turn[%d].index = %d, want %d", i, tr.TurnIndex, i+1)
		}
		if tr.Sequence == 0 {
			t.Errorf("turn[%d] missing sequence", i)
		}
	}
	if turns[0].Trace[0] != "note" {
		t.Errorf("trace = %v, want [note]", turns[0].Trace)
	}

	other, err := repo.ListTurns(ctx, "sess-2")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other session turns = %d, want 0", len(other))
	}
}

func TestLLMRequestAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "mock",
			Model:       "mock",
			Purpose:     "grade",
			Success:     true,
			RequestBody: "prompt",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(events))
	}
	if events[0].Sequence < events[1].Sequence {
		t.Error("expected newest first")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing (prev %d)", seq, prev)
		}
		prev = seq
	}
}
