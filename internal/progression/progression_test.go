package progression

import (
	"testing"
	"time"

	"github.com/abhisek/codecompanion/internal/learner"
)

func TestLevel_Thresholds(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{300, 4},
		{500, 5},
		{6699, 15},
		{6700, 16},
		{99999, 16},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevel_Monotonic(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 7000; xp += 7 {
		got := Level(xp)
		if got < prev {
			t.Fatalf("Level(%d) = %d dropped below %d", xp, got, prev)
		}
		prev = got
	}
}

func TestMaxLevelMatchesTable(t *testing.T) {
	if MaxLevel != 16 {
		t.Errorf("MaxLevel = %d, want 16", MaxLevel)
	}
	if _, ok := NextLevelAt(MaxLevel); ok {
		t.Error("no level exists beyond MaxLevel")
	}
	if next, ok := NextLevelAt(MaxLevel - 1); !ok || next != 6700 {
		t.Errorf("NextLevelAt(%d) = %d,%v, want 6700,true", MaxLevel-1, next, ok)
	}
}

func TestProgressToNextLevel(t *testing.T) {
	p := ProgressToNextLevel(75)
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if p.Current != 25 || p.Needed != 100 {
		t.Errorf("Current/Needed = %d/%d, want 25/100", p.Current, p.Needed)
	}

	top := ProgressToNextLevel(7000)
	if !top.AtMax {
		t.Error("7000 XP must report AtMax")
	}
}

func TestAddXP_CrossesThreshold(t *testing.T) {
	l := learner.New("ada", "dragon", time.Now())
	l.XP = 45
	l.Level = Level(l.XP)

	award := AddXP(l, 10, "Exercise completed")

	if !award.LeveledUp {
		t.Fatal("45+10 XP must level up")
	}
	if award.OldLevel != 1 || award.NewLevel != 2 {
		t.Errorf("OldLevel/NewLevel = %d/%d, want 1/2", award.OldLevel, award.NewLevel)
	}
	if l.XP != 55 || l.Level != 2 {
		t.Errorf("learner XP/Level = %d/%d, want 55/2", l.XP, l.Level)
	}
	if len(l.ActivityLog) != 2 {
		t.Fatalf("ActivityLog = %+v, want xp_gain then level_up", l.ActivityLog)
	}
	if l.ActivityLog[0].Type != "xp_gain" || l.ActivityLog[1].Type != "level_up" {
		t.Errorf("log types = %s, %s, want xp_gain, level_up",
			l.ActivityLog[0].Type, l.ActivityLog[1].Type)
	}
}

func TestAddXP_NoLevelUp(t *testing.T) {
	l := learner.New("ada", "dragon", time.Now())

	award := AddXP(l, 10, "Exercise completed")

	if award.LeveledUp {
		t.Error("10 XP from zero must not level up")
	}
	if l.TodayXP != 10 || l.WeeklyXP != 10 {
		t.Errorf("TodayXP/WeeklyXP = %d/%d, want 10/10", l.TodayXP, l.WeeklyXP)
	}
	if len(l.ActivityLog) != 1 {
		t.Errorf("ActivityLog = %+v, want only the xp_gain entry", l.ActivityLog)
	}
}

func TestAddXP_MultiLevelJump(t *testing.T) {
	l := learner.New("ada", "dragon", time.Now())

	award := AddXP(l, 400, "Lesson completed")

	if award.NewLevel != 4 {
		t.Errorf("NewLevel = %d, want 4", award.NewLevel)
	}
}
