package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/caliper/ent"
	"github.com/abhisek/caliper/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client

	// locks serializes Mutate calls per session id. SQLite has a single
	// writer anyway; the per-id lock keeps the read-modify-write cycle
	// atomic above the database too.
	locks sync.Map // map[string]*sync.Mutex
}

func (r *sessionRepo) Create(ctx context.Context, state *SessionState) error {
	if state.ID == "" {
		return fmt.Errorf("create session: empty id")
	}

	created, err := r.client.Session.Create().
		SetID(state.ID).
		SetUserTag(state.UserTag).
		SetThetaMean(state.ThetaMean).
		SetThetaVar(state.ThetaVar).
		SetAsked(state.Asked).
		SetCoverage(state.Coverage).
		SetTurnCount(state.TurnCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	state.CreatedAt = created.CreatedAt
	state.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionState, error) {
	s, err := r.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return entSessionToState(s), nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*SessionState, error) {
	rows, err := r.client.Session.Query().
		Order(ent.Desc(session.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*SessionState, len(rows))
	for i, s := range rows {
		out[i] = entSessionToState(s)
	}
	return out, nil
}

func (r *sessionRepo) Mutate(ctx context.Context, id string, fn func(*SessionState) error) (*SessionState, error) {
	mu := r.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	state, err := mutateInTx(ctx, tx, id, fn)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return state, nil
}

func mutateInTx(ctx context.Context, tx *ent.Tx, id string, fn func(*SessionState) error) (*SessionState, error) {
	row, err := tx.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	state := entSessionToState(row)
	if err := fn(state); err != nil {
		return nil, err
	}

	saved, err := tx.Session.UpdateOneID(id).
		SetUserTag(state.UserTag).
		SetThetaMean(state.ThetaMean).
		SetThetaVar(state.ThetaVar).
		SetAsked(state.Asked).
		SetCoverage(state.Coverage).
		SetTurnCount(state.TurnCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return entSessionToState(saved), nil
}

func (r *sessionRepo) lockFor(id string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func entSessionToState(s *ent.Session) *SessionState {
	coverage := s.Coverage
	if coverage == nil {
		coverage = map[string]int{}
	}
	return &SessionState{
		ID:        s.ID,
		UserTag:   s.UserTag,
		ThetaMean: s.ThetaMean,
		ThetaVar:  s.ThetaVar,
		Asked:     s.Asked,
		Coverage:  coverage,
		TurnCount: s.TurnCount,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
