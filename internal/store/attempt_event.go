package store

import (
	"context"
	"fmt"

	"github.com/abhisek/codecompanion/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetItemID(data.ItemID).
		SetItemKind(data.ItemKind).
		SetAnswer(data.Answer).
		SetPassed(data.Passed).
		SetAttemptNo(data.AttemptNo).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ItemAttemptStats(ctx context.Context, itemID string) (AttemptStats, error) {
	query := r.client.AttemptEvent.Query()
	if itemID != "" {
		query = query.Where(attemptevent.ItemID(itemID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("count attempts: %w", err)
	}

	passed, err := query.Where(attemptevent.Passed(true)).Count(ctx)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("count passed attempts: %w", err)
	}

	return AttemptStats{Total: total, Passed: passed}, nil
}
