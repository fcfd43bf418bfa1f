package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCheckinEvent(ctx context.Context, data CheckinEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckinEvent.Create().
		SetSequence(seqNum).
		SetDate(data.Date).
		SetStreakDays(data.StreakDays).
		SetVitality(data.Vitality).
		SetStage(data.Stage).
		SetExtended(data.Extended).
		SetEvolved(data.Evolved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkin event: %w", err)
	}
	return nil
}
