package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/measure"
	"github.com/abhisek/caliper/internal/policy"
	"github.com/abhisek/caliper/internal/store"
	"github.com/abhisek/caliper/internal/turn"
)

type memSessionRepo struct {
	sessions map[string]*store.SessionState
}

func (r *memSessionRepo) Create(_ context.Context, s *store.SessionState) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*store.SessionState, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) List(_ context.Context) ([]*store.SessionState, error) {
	var out []*store.SessionState
	for _, s := range r.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSessionRepo) Mutate(_ context.Context, id string, fn func(*store.SessionState) error) (*store.SessionState, error) {
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

type memEventRepo struct {
	turns []store.TurnEventData
}

func (r *memEventRepo) AppendTurn(_ context.Context, d store.TurnEventData) error {
	r.turns = append(r.turns, d)
	return nil
}

func (r *memEventRepo) ListTurns(_ context.Context, sessionID string) ([]*store.TurnRecord, error) {
	var out []*store.TurnRecord
	for _, t := range r.turns {
		if t.SessionID == sessionID {
			out = append(out, &store.TurnRecord{TurnEventData: t})
		}
	}
	return out, nil
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (r *memEventRepo) ListLLMRequests(_ context.Context, _ int) ([]*store.LLMRequestRecord, error) {
	return []*store.LLMRequestRecord{}, nil
}

type stubGrader struct {
	m   measure.Measurement
	err error
}

func (g *stubGrader) Grade(_ context.Context, _ bank.Item, _ bank.Features, _ string) (measure.Measurement, error) {
	return g.m, g.err
}

func (g *stubGrader) GradeFollowup(_ context.Context, _ bank.Item, _ bank.Features, _, _, _ string) (measure.Measurement, error) {
	return g.m, g.err
}

func newTestServer(grader turn.Grader) (*Server, *memSessionRepo, *memEventRepo) {
	sessions := &memSessionRepo{sessions: map[string]*store.SessionState{}}
	events := &memEventRepo{}
	engine := policy.NewEngine(policy.DefaultConfig(), rand.New(rand.NewPCG(1, 1)))
	svc := turn.NewService(sessions, events, grader, engine, turn.DefaultConfig())
	srv := New(DefaultConfig(), NewHandlers(svc, grader, sessions, events))
	return srv, sessions, events
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{})
	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTurnEndpointCompletes(t *testing.T) {
	grader := &stubGrader{m: measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 0.9},
		Calibrations: measure.Calibrations{Confidence: 0.9},
		Extractions:  measure.Extractions{ReasonsCount: 2},
	}}
	srv, _, events := newTestServer(grader)

	w := doJSON(t, srv, http.MethodPost, "/v1/turn", map[string]any{
		"item_id": bank.FirstItem().ID,
		"answer":  "a complete answer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res turn.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, turn.PhaseComplete, res.Phase)
	assert.NotEmpty(t, res.SessionID)
	assert.NotNil(t, res.NextItem)
	assert.Len(t, events.turns, 1)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestTurnEndpointProbes(t *testing.T) {
	grader := &stubGrader{m: measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.7},
		Calibrations: measure.Calibrations{Confidence: 0.6},
	}}
	srv, _, _ := newTestServer(grader)

	w := doJSON(t, srv, http.MethodPost, "/v1/turn", map[string]any{
		"item_id": bank.FirstItem().ID,
		"answer":  "hm",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res turn.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, turn.PhaseProbe, res.Phase)
	require.NotNil(t, res.Probe)
	assert.NotEmpty(t, res.Probe.Text)
}

func TestTurnEndpointBadBody(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{})

	req := httptest.NewRequest(http.MethodPost, "/v1/turn", bytes.NewBufferString("{broken"))
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTurnEndpointUnknownItem(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{})

	w := doJSON(t, srv, http.MethodPost, "/v1/turn", map[string]any{
		"item_id": "nope",
		"answer":  "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "UNKNOWN_ITEM", errResp.Code)
}

func TestTurnEndpointUnknownSession(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{m: measure.Measurement{
		Labels:       map[string]float64{measure.LabelPartial: 0.5},
		Calibrations: measure.Calibrations{Confidence: 0.5},
	}})

	w := doJSON(t, srv, http.MethodPost, "/v1/turn", map[string]any{
		"session_id": "ghost",
		"item_id":    bank.FirstItem().ID,
		"answer":     "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJudgeEndpoint(t *testing.T) {
	grader := &stubGrader{m: measure.Measurement{
		Labels:       map[string]float64{measure.LabelIncorrect: 0.8},
		Calibrations: measure.Calibrations{Confidence: 0.7},
	}}
	srv, _, _ := newTestServer(grader)

	w := doJSON(t, srv, http.MethodPost, "/v1/judge", map[string]any{
		"item_id": bank.FirstItem().ID,
		"answer":  "wrong",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var m measure.Measurement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, 0.8, m.Label(measure.LabelIncorrect))
}

func TestListItemsEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{})
	w := doJSON(t, srv, http.MethodGet, "/v1/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []bank.Item `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(bank.Items()), len(body.Items))
}

func TestAdminSessionTurns(t *testing.T) {
	grader := &stubGrader{m: measure.Measurement{
		Labels:       map[string]float64{measure.LabelCorrectComplete: 0.9},
		Calibrations: measure.Calibrations{Confidence: 0.9},
		Extractions:  measure.Extractions{ReasonsCount: 2},
	}}
	srv, _, _ := newTestServer(grader)

	w := doJSON(t, srv, http.MethodPost, "/v1/turn", map[string]any{
		"item_id": bank.FirstItem().ID,
		"answer":  "good",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res turn.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	w = doJSON(t, srv, http.MethodGet, "/v1/admin/sessions/"+res.SessionID+"/turns", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Turns []store.TurnRecord `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Turns, 1)
	assert.Equal(t, bank.FirstItem().ID, body.Turns[0].ItemID)

	w = doJSON(t, srv, http.MethodGet, "/v1/admin/sessions/ghost/turns", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminLLMRequestsBadLimit(t *testing.T) {
	srv, _, _ := newTestServer(&stubGrader{})
	w := doJSON(t, srv, http.MethodGet, "/v1/admin/llm-requests?limit=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
