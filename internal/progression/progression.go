// Package progression maps lifetime XP onto levels and applies XP awards to
// the learner aggregate.
package progression

import (
	"fmt"

	"github.com/abhisek/codecompanion/internal/learner"
)

// levelThresholds[i] is the minimum lifetime XP for level i+1. The table is
// strictly increasing and starts at zero so every learner is at least level 1.
var levelThresholds = []int{
	0, 50, 150, 300, 500, 750, 1050, 1400, 1800, 2250,
	2750, 3300, 4000, 4800, 5700, 6700,
}

// MaxLevel is the highest attainable level.
var MaxLevel = len(levelThresholds)

// Level returns the level for a lifetime XP total. Negative XP is treated
// as zero.
func Level(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevelAt returns the XP threshold of the level after the given one, and
// false when the level is already the last.
func NextLevelAt(level int) (int, bool) {
	if level >= MaxLevel {
		return 0, false
	}
	return levelThresholds[level], true
}

// Progress describes how far through the current level a learner is.
type Progress struct {
	Level   int
	Current int  // XP earned within the current level
	Needed  int  // XP span of the current level, zero at max level
	AtMax   bool
}

// ProgressToNextLevel reports progress within the learner's current level.
func ProgressToNextLevel(xp int) Progress {
	level := Level(xp)
	next, ok := NextLevelAt(level)
	if !ok {
		return Progress{Level: level, AtMax: true}
	}
	floor := levelThresholds[level-1]
	return Progress{
		Level:   level,
		Current: xp - floor,
		Needed:  next - floor,
	}
}

// Award is the outcome of an XP grant.
type Award struct {
	Amount    int
	NewXP     int
	OldLevel  int
	NewLevel  int
	LeveledUp bool
}

// AddXP grants XP to the learner, updating the lifetime, daily, and weekly
// totals, and recomputes the level. The grant is logged with the given
// reason; a level change appends an extra level-up entry.
func AddXP(l *learner.Learner, amount int, reason string) Award {
	award := Award{Amount: amount, OldLevel: l.Level}

	l.XP += amount
	l.TodayXP += amount
	l.WeeklyXP += amount
	l.Level = Level(l.XP)
	l.AddActivity("xp_gain", reason, amount)

	award.NewXP = l.XP
	award.NewLevel = l.Level
	if l.Level > award.OldLevel {
		award.LeveledUp = true
		l.AddActivity("level_up", fmt.Sprintf("Reached level %d!", l.Level), 0)
	}
	return award
}
