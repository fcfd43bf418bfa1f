// Package achievements evaluates unlock conditions against the learner
// aggregate. Unlocks are idempotent and never revoked, even if the underlying
// condition later stops holding (vitality dips, streak resets).
package achievements

import "github.com/abhisek/codecompanion/internal/learner"

// Achievement pairs a stable ID with its display name and unlock condition.
type Achievement struct {
	ID        string
	Name      string
	Condition func(*learner.Learner) bool
}

// catalog is the full achievement set in display order.
var catalog = []Achievement{
	{"first_lesson", "First Steps", func(l *learner.Learner) bool { return l.LessonsCompleted() >= 1 }},
	{"lessons_3", "Quick Learner", func(l *learner.Learner) bool { return l.LessonsCompleted() >= 3 }},
	{"lessons_5", "Dedicated Student", func(l *learner.Learner) bool { return l.LessonsCompleted() >= 5 }},
	{"streak_7", "Week Warrior", func(l *learner.Learner) bool { return l.StreakDays >= 7 }},
	{"streak_30", "Month Master", func(l *learner.Learner) bool { return l.StreakDays >= 30 }},
	{"streak_100", "Century Scholar", func(l *learner.Learner) bool { return l.StreakDays >= 100 }},
	{"level_5", "Level 5 Unlocked", func(l *learner.Learner) bool { return l.Level >= 5 }},
	{"level_10", "Level 10 Unlocked", func(l *learner.Learner) bool { return l.Level >= 10 }},
	{"xp_500", "XP Champion", func(l *learner.Learner) bool { return l.XP >= 500 }},
	{"xp_1000", "XP Master", func(l *learner.Learner) bool { return l.XP >= 1000 }},
	{"companion_stage_5", "Rising Star", func(l *learner.Learner) bool { return l.CompanionStage >= 5 }},
	{"companion_max", "Legendary Companion", func(l *learner.Learner) bool { return l.CompanionStage >= 10 }},
	{"vitality_100", "Perfect Care", func(l *learner.Learner) bool { return l.CompanionVitality == 100 }},
	{"daily_goal_streak_5", "Consistent Learner", func(l *learner.Learner) bool { return l.StreakDays >= 5 }},
	{"exercises_10", "Practice Makes Perfect", func(l *learner.Learner) bool { return l.TotalExercisesCompleted >= 10 }},
	{"exercises_50", "Exercise Enthusiast", func(l *learner.Learner) bool { return l.TotalExercisesCompleted >= 50 }},
	{"hints_low", "Self Reliant", func(l *learner.Learner) bool {
		return l.TotalExercisesCompleted >= 10 && l.TotalHintsUsed < 5
	}},
	{"drills_10", "Drill Master", func(l *learner.Learner) bool { return l.TotalDrillsCompleted >= 10 }},
	{"drills_25", "Drill Expert", func(l *learner.Learner) bool { return l.TotalDrillsCompleted >= 25 }},
	{"bug_hunter", "Bug Hunter", func(l *learner.Learner) bool { return l.TotalBugsFixed >= 5 }},
	{"exterminator", "Bug Exterminator", func(l *learner.Learner) bool { return l.TotalBugsFixed >= 15 }},
	{"debug_master", "Debug Master", func(l *learner.Learner) bool { return l.TotalBugsFixed >= 30 }},
}

// All returns the catalog in display order.
func All() []Achievement {
	return catalog
}

// Count is the catalog size.
func Count() int {
	return len(catalog)
}

// Name returns the display name for an achievement ID, or the ID itself when
// unknown (old snapshots may carry retired IDs).
func Name(id string) string {
	for _, a := range catalog {
		if a.ID == id {
			return a.Name
		}
	}
	return id
}

// Check unlocks every achievement whose condition now holds and returns the
// display names of the newly unlocked ones, in catalog order. Already-held
// achievements are skipped, so repeated calls return nothing new.
func Check(l *learner.Learner) []string {
	var unlocked []string
	for _, a := range catalog {
		if l.Achievements[a.ID] {
			continue
		}
		if a.Condition(l) {
			l.Achievements[a.ID] = true
			unlocked = append(unlocked, a.Name)
		}
	}
	return unlocked
}
