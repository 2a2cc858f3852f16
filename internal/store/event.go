package store

import (
	"context"
	"fmt"

	"github.com/abhisek/caliper/ent"
	"github.com/abhisek/caliper/ent/llmrequestevent"
	"github.com/abhisek/caliper/ent/turnevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTurnIndex(data.TurnIndex).
		SetItemID(data.ItemID).
		SetAnswerText(data.AnswerText).
		SetFollowupText(data.FollowupText).
		SetFinalLabel(data.FinalLabel).
		SetFinalP(data.FinalP).
		SetProbeIntent(data.ProbeIntent).
		SetProbeSource(data.ProbeSource).
		SetThetaBefore(data.ThetaBefore).
		SetThetaAfter(data.ThetaAfter).
		SetSeAfter(data.SEAfter).
		SetNextItemID(data.NextItemID)

	if len(data.Trace) > 0 {
		builder = builder.SetTrace(data.Trace)
	}
	if len(data.Measurement) > 0 {
		builder = builder.SetMeasurement(data.Measurement)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListTurns(ctx context.Context, sessionID string) ([]*TurnRecord, error) {
	rows, err := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldTurnIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list turn events: %w", err)
	}

	out := make([]*TurnRecord, len(rows))
	for i, e := range rows {
		out[i] = &TurnRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				SessionID:    e.SessionID,
				TurnIndex:    e.TurnIndex,
				ItemID:       e.ItemID,
				AnswerText:   e.AnswerText,
				FollowupText: e.FollowupText,
				FinalLabel:   e.FinalLabel,
				FinalP:       e.FinalP,
				ProbeIntent:  e.ProbeIntent,
				ProbeSource:  e.ProbeSource,
				ThetaBefore:  e.ThetaBefore,
				ThetaAfter:   e.ThetaAfter,
				SEAfter:      e.SeAfter,
				NextItemID:   e.NextItemID,
				Trace:        e.Trace,
				Measurement:  e.Measurement,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	out := make([]*LLMRequestRecord, len(rows))
	for i, e := range rows {
		out[i] = &LLMRequestRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				RequestBody:  e.RequestBody,
				ResponseBody: e.ResponseBody,
			},
		}
	}
	return out, nil
}
