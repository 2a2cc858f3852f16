package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested session does not exist.
var ErrNotFound = errors.New("session not found")

// SessionState is the mutable per-learner assessment state.
type SessionState struct {
	ID        string
	UserTag   string
	ThetaMean float64
	ThetaVar  float64
	Asked     []string
	Coverage  map[string]int
	TurnCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionRepo manages session rows. Mutate is the only write path for
// existing sessions: it serializes concurrent turns on the same session
// and applies the update transactionally.
type SessionRepo interface {
	// Create stores a new session. The state's ID must be set.
	Create(ctx context.Context, state *SessionState) error

	// Get returns the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*SessionState, error)

	// List returns all sessions, most recently updated first.
	List(ctx context.Context) ([]*SessionState, error)

	// Mutate loads the session, applies fn, and saves the result in one
	// transaction. Concurrent Mutate calls for the same id run one at a
	// time; an error from fn rolls everything back.
	Mutate(ctx context.Context, id string, fn func(*SessionState) error) (*SessionState, error)
}

// TurnEventData captures one committed turn for the append-only log.
type TurnEventData struct {
	SessionID    string
	TurnIndex    int
	ItemID       string
	AnswerText   string
	FollowupText string
	FinalLabel   string
	FinalP       float64
	ProbeIntent  string
	ProbeSource  string
	ThetaBefore  float64
	ThetaAfter   float64
	SEAfter      float64
	NextItemID   string
	Trace        []string
	Measurement  []byte
}

// TurnRecord is a stored turn event read back from the log.
type TurnRecord struct {
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event read back from the log.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendTurn records a committed turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// ListTurns returns a session's turns in turn order.
	ListTurns(ctx context.Context, sessionID string) ([]*TurnRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent LLM request events,
	// newest first, capped at limit (0 = no cap).
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestRecord, error)
}
