package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lexiz/ent"
	"github.com/abhisek/lexiz/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizType(data.QuizType).
		SetScore(data.Score).
		SetCorrectAnswers(data.CorrectAnswers).
		SetTotalPlayed(data.TotalPlayed).
		SetDurationSecs(data.DurationSecs).
		SetAccuracy(data.Accuracy)

	if len(data.PracticedIDs) > 0 {
		builder = builder.SetPracticedIds(data.PracticedIDs)
	}
	if len(data.CorrectIDs) > 0 {
		builder = builder.SetCorrectIds(data.CorrectIDs)
	}

	if _, err = builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordID(data.WordID).
		SetQuizType(data.QuizType).
		SetOutcome(data.Outcome).
		SetAttempts(data.Attempts).
		SetLearnerAnswer(data.LearnerAnswer).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetScoreDelta(data.ScoreDelta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			ID:             e.ID,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			SessionID:      e.SessionID,
			QuizType:       e.QuizType,
			Score:          e.Score,
			CorrectAnswers: e.CorrectAnswers,
			TotalPlayed:    e.TotalPlayed,
			DurationSecs:   e.DurationSecs,
			Accuracy:       e.Accuracy,
		})
	}
	return records, nil
}
