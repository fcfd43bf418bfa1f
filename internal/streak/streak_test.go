package streak

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

func day(s string) time.Time {
	d, err := time.Parse(learner.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCheck_SameDayIsNoOp(t *testing.T) {
	now := day("2026-08-28")
	l := learner.New("ada", "dragon", now)
	l.StreakDays = 4
	l.CompanionVitality = 80

	res := Check(l, now)

	if res.Extended || res.Evolved {
		t.Error("same-day check-in must not change anything")
	}
	if l.StreakDays != 4 || l.CompanionVitality != 80 {
		t.Errorf("state changed: streak %d vitality %d", l.StreakDays, l.CompanionVitality)
	}

	// Running it again still changes nothing.
	Check(l, now)
	if l.StreakDays != 4 {
		t.Error("repeated check-in must be idempotent")
	}
}

func TestCheck_NextDayExtends(t *testing.T) {
	l := learner.New("ada", "plant", day("2026-08-27"))
	l.StreakDays = 1
	l.CompanionVitality = 50
	l.TodayXP = 35

	res := Check(l, day("2026-08-28"))

	if !res.Extended {
		t.Fatal("one-day gap must extend the streak")
	}
	if l.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", l.StreakDays)
	}
	if l.CompanionVitality != 60 {
		t.Errorf("Vitality = %d, want 60", l.CompanionVitality)
	}
	if l.TodayXP != 0 {
		t.Errorf("TodayXP = %d, want reset to 0", l.TodayXP)
	}
	if l.LastActive != "2026-08-28" {
		t.Errorf("LastActive = %q, want today", l.LastActive)
	}
}

func TestCheck_WeeklyXPRollsOver(t *testing.T) {
	// Sunday to Monday crosses an ISO week boundary.
	l := learner.New("ada", "dragon", day("2026-01-04"))
	l.WeeklyXP = 120

	Check(l, day("2026-01-05"))
	if l.WeeklyXP != 0 {
		t.Errorf("WeeklyXP = %d, want reset on a new week", l.WeeklyXP)
	}

	// Midweek check-in keeps the running total.
	l.WeeklyXP = 40
	Check(l, day("2026-01-06"))
	if l.WeeklyXP != 40 {
		t.Errorf("WeeklyXP = %d, want 40 within the same week", l.WeeklyXP)
	}

	// A lapse that lands in a later week also rolls over.
	l.WeeklyXP = 40
	Check(l, day("2026-01-14"))
	if l.WeeklyXP != 0 {
		t.Errorf("WeeklyXP = %d, want reset after a multi-week lapse", l.WeeklyXP)
	}
}

func TestCheck_VitalityCappedAt100(t *testing.T) {
	l := learner.New("ada", "pet", day("2026-08-27"))
	l.CompanionVitality = 95

	Check(l, day("2026-08-28"))

	if l.CompanionVitality != 100 {
		t.Errorf("Vitality = %d, want capped at 100", l.CompanionVitality)
	}
}

func TestCheck_EvolutionEveryThirdDay(t *testing.T) {
	l := learner.New("ada", "dragon", day("2026-08-27"))
	l.StreakDays = 2 // becomes 3 on check-in
	l.CompanionVitality = 80

	res := Check(l, day("2026-08-28"))

	if !res.Evolved {
		t.Fatal("streak 3 with vitality >= 70 must evolve")
	}
	if l.CompanionStage != 1 {
		t.Errorf("Stage = %d, want 1", l.CompanionStage)
	}
	if !strings.Contains(res.Message, "Wyrmling") {
		t.Errorf("Message = %q, want new stage name", res.Message)
	}
}

func TestCheck_NoEvolutionWhenWeak(t *testing.T) {
	l := learner.New("ada", "dragon", day("2026-08-27"))
	l.StreakDays = 2
	l.CompanionVitality = 55 // 65 after the gain, below the bar

	res := Check(l, day("2026-08-28"))

	if res.Evolved || l.CompanionStage != 0 {
		t.Error("low vitality must block evolution")
	}
}

func TestCheck_NoEvolutionOffCycle(t *testing.T) {
	l := learner.New("ada", "dragon", day("2026-08-27"))
	l.StreakDays = 3 // becomes 4, not divisible by 3
	l.CompanionVitality = 100

	res := Check(l, day("2026-08-28"))

	if res.Evolved {
		t.Error("streak 4 must not evolve")
	}
}

func TestCheck_LapseDrainsVitalityAndStage(t *testing.T) {
	l := learner.New("ada", "plant", day("2026-08-25"))
	l.StreakDays = 9
	l.CompanionStage = 4
	l.CompanionVitality = 40

	res := Check(l, day("2026-08-28")) // 3 days gone

	if res.Extended {
		t.Fatal("a lapse must not extend the streak")
	}
	if l.CompanionVitality != 10 {
		t.Errorf("Vitality = %d, want 40 - min(3*10, 50) = 10", l.CompanionVitality)
	}
	if l.CompanionStage != 2 {
		t.Errorf("Stage = %d, want 4 - min(3-1, 4) = 2", l.CompanionStage)
	}
	if l.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want reset to 1", l.StreakDays)
	}
	if !strings.Contains(res.Message, "missed 3 days") {
		t.Errorf("Message = %q, want missed-days note", res.Message)
	}
}

func TestCheck_LapseVitalityLossCapped(t *testing.T) {
	l := learner.New("ada", "robot", day("2026-08-01"))
	l.CompanionVitality = 100
	l.CompanionStage = 0

	Check(l, day("2026-08-28")) // 27 days gone

	if l.CompanionVitality != 50 {
		t.Errorf("Vitality = %d, want 100 - 50 cap = 50", l.CompanionVitality)
	}
	if l.CompanionStage != 0 {
		t.Error("stage 0 must not go negative")
	}
}

func TestCheck_HealthyCompanionKeepsStagesOnLapse(t *testing.T) {
	l := learner.New("ada", "pet", day("2026-08-26"))
	l.CompanionStage = 5
	l.CompanionVitality = 100

	Check(l, day("2026-08-28")) // 2 days gone, vitality 80 stays above 30

	if l.CompanionStage != 5 {
		t.Errorf("Stage = %d, want unchanged 5", l.CompanionStage)
	}
}

func TestCompanion_NamesAndEvolution(t *testing.T) {
	tests := []struct {
		ctype CompanionType
		stage int
		want  string
	}{
		{Plant, 0, "Seed"},
		{Plant, 10, "World Tree"},
		{Pet, 7, "Majestic Phoenix"},
		{Dragon, 1, "Wyrmling"},
		{Robot, 10, "Digital God"},
		{Dragon, 99, "Primordial Dragon"}, // clamped
	}
	for _, tt := range tests {
		c := Companion{Type: tt.ctype, Stage: tt.stage}
		if got := c.Name(); got != tt.want {
			t.Errorf("Name(%s, %d) = %q, want %q", tt.ctype, tt.stage, got, tt.want)
		}
	}
}

func TestCompanion_CanEvolve(t *testing.T) {
	if (Companion{Type: Plant, Stage: 10, Vitality: 100}).CanEvolve() {
		t.Error("max stage must not evolve")
	}
	if (Companion{Type: Plant, Stage: 3, Vitality: 69}).CanEvolve() {
		t.Error("vitality below 70 must not evolve")
	}
	if !(Companion{Type: Plant, Stage: 3, Vitality: 70}).CanEvolve() {
		t.Error("vitality 70 at mid stage must evolve")
	}
}

func TestCompanionType_Valid(t *testing.T) {
	for _, ct := range CompanionTypes() {
		if !ct.Valid() {
			t.Errorf("%s must be valid", ct)
		}
	}
	if CompanionType("unicorn").Valid() {
		t.Error("unknown type accepted")
	}
}
