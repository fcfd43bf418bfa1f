package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codecompanion/ent"
	"github.com/abhisek/codecompanion/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetLessonID(data.LessonID).
		SetItemsServed(data.ItemsServed).
		SetItemsPassed(data.ItemsPassed).
		SetXpEarned(data.XPEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SessionSummaryRecord{
			SessionID:    e.SessionID,
			Timestamp:    e.Timestamp,
			LessonID:     e.LessonID,
			ItemsServed:  e.ItemsServed,
			ItemsPassed:  e.ItemsPassed,
			XPEarned:     e.XpEarned,
			DurationSecs: e.DurationSecs,
		}
	}
	return records, nil
}
