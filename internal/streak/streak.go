// Package streak implements the daily check-in state machine and the
// companion evolution line it drives.
//
// A check-in compares today's calendar date with the learner's last active
// date. Same day is a no-op, a one-day gap extends the streak and may evolve
// the companion, and a longer gap resets the streak and drains the companion.
package streak

import (
	"fmt"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

// Vitality bounds and the per-day swing.
const (
	vitalityMax     = 100
	vitalityGain    = 10
	vitalityLossCap = 50
	weakThreshold   = 30 // below this a lapse also costs stages
)

// CheckIn is the outcome of a daily check-in.
type CheckIn struct {
	Extended bool   // streak grew by one
	Evolved  bool   // companion advanced a stage
	Message  string // ready-to-display summary
}

// Check applies the daily check-in to the learner, keyed on the calendar
// date of now. Calling it again on the same date is a no-op, so callers can
// run it unconditionally at startup.
func Check(l *learner.Learner, now time.Time) CheckIn {
	today := now.Format(learner.DateFormat)
	delta := daysBetween(l.LastActive, today)

	switch {
	case delta <= 0:
		return CheckIn{
			Message: "You've already checked in today! Keep learning to earn more XP.",
		}

	case delta == 1:
		l.StreakDays++
		l.CompanionVitality = min(vitalityMax, l.CompanionVitality+vitalityGain)
		if weekChanged(l.LastActive, today) {
			l.WeeklyXP = 0
		}
		l.LastActive = today
		l.TodayXP = 0
		l.AddActivity("streak", fmt.Sprintf("%d day streak!", l.StreakDays), 0)

		c := Companion{
			Type:     CompanionType(l.CompanionType),
			Stage:    l.CompanionStage,
			Vitality: l.CompanionVitality,
		}
		if c.CanEvolve() && l.StreakDays%3 == 0 {
			l.CompanionStage++
			c.Stage = l.CompanionStage
			l.AddActivity("evolution", fmt.Sprintf("Companion evolved to %s!", c.Name()), 0)
			return CheckIn{
				Extended: true,
				Evolved:  true,
				Message: fmt.Sprintf("🎉 Amazing! %d day streak!\n\nYour companion evolved to %s!",
					l.StreakDays, c.Name()),
			}
		}
		return CheckIn{
			Extended: true,
			Message:  fmt.Sprintf("✅ Great job! %d day streak!\n\nVitality +%d", l.StreakDays, vitalityGain),
		}

	default:
		vitalityLoss := min(delta*vitalityGain, vitalityLossCap)
		l.CompanionVitality = max(0, l.CompanionVitality-vitalityLoss)

		stageLoss := 0
		if l.CompanionVitality < weakThreshold && l.CompanionStage > 0 {
			stageLoss = min(delta-1, l.CompanionStage)
			l.CompanionStage -= stageLoss
		}

		l.StreakDays = 1
		if weekChanged(l.LastActive, today) {
			l.WeeklyXP = 0
		}
		l.LastActive = today
		l.TodayXP = 0

		return CheckIn{
			Message: fmt.Sprintf(
				"Welcome back! You missed %d days.\n\nVitality -%d, Stage -%d\n\nBut you're here now - let's keep going!",
				delta, vitalityLoss, stageLoss),
		}
	}
}

// weekChanged reports whether two DateFormat dates fall in different ISO
// weeks, which is when the weekly XP total rolls over.
func weekChanged(from, to string) bool {
	a, err := time.Parse(learner.DateFormat, from)
	if err != nil {
		return false
	}
	b, err := time.Parse(learner.DateFormat, to)
	if err != nil {
		return false
	}
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay != by || aw != bw
}

// daysBetween returns the whole calendar days from one DateFormat date to
// another. An unparsable 'from' counts as today, which keeps a corrupt
// snapshot from nuking the companion.
func daysBetween(from, to string) int {
	a, err := time.Parse(learner.DateFormat, from)
	if err != nil {
		return 0
	}
	b, err := time.Parse(learner.DateFormat, to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
