package learner

import "time"

// MaxActivityLog caps the activity log length; oldest entries are dropped first.
const MaxActivityLog = 50

// DateFormat is the calendar-date layout used for LastActive and
// DailyChallengeCompleted.
const DateFormat = "2006-01-02"

// Activity is a single entry in the learner's activity log.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"` // "xp_gain", "level_up", "streak", "evolution", ...
	Text      string    `json:"text"`
	XPGained  int       `json:"xp_gained"`
}

// Learner is the single mutable progression aggregate. It is owned by the
// session for its lifetime and handed to the store only for serialization.
// Every field is always present with an explicit default set at construction,
// so use sites never need existence checks.
type Learner struct {
	Username string `json:"username"`

	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	StreakDays int    `json:"streak_days"`
	LastActive string `json:"last_active"` // calendar date, DateFormat

	DailyGoalXP  int `json:"daily_goal_xp"`
	TodayXP      int `json:"today_xp"`
	WeeklyXP     int `json:"weekly_xp"`
	WeeklyGoalXP int `json:"weekly_goal_xp"`

	CompanionType     string `json:"companion_type"`
	CompanionStage    int    `json:"companion_stage"`    // 0-10
	CompanionVitality int    `json:"companion_vitality"` // 0-100

	CompletedLessons   map[string]bool `json:"completed_lessons"`
	CompletedExercises map[string]int  `json:"completed_exercises"` // id -> completion count
	CompletedDrills    map[string]int  `json:"completed_drills"`

	Achievements map[string]bool `json:"achievements"`

	TotalExercisesCompleted int `json:"total_exercises_completed"`
	TotalDrillsCompleted    int `json:"total_drills_completed"`
	TotalBugsFixed          int `json:"total_bugs_fixed"`
	TotalHintsUsed          int `json:"total_hints_used"`
	PerfectScores           int `json:"perfect_scores"` // exercises completed without hints

	DailyChallengeCompleted string `json:"daily_challenge_completed"` // date, empty if never

	ActivityLog []Activity `json:"activity_log"`
}

// New creates a fresh aggregate for an onboarding learner.
func New(username, companionType string, now time.Time) *Learner {
	return &Learner{
		Username:           username,
		Level:              1,
		LastActive:         now.Format(DateFormat),
		DailyGoalXP:        50,
		WeeklyGoalXP:       200,
		CompanionType:      companionType,
		CompanionVitality:  100,
		CompletedLessons:   make(map[string]bool),
		CompletedExercises: make(map[string]int),
		CompletedDrills:    make(map[string]int),
		Achievements:       make(map[string]bool),
	}
}

// Normalize fills nil collections on an aggregate restored from a snapshot
// written by an older build.
func (l *Learner) Normalize() {
	if l.CompletedLessons == nil {
		l.CompletedLessons = make(map[string]bool)
	}
	if l.CompletedExercises == nil {
		l.CompletedExercises = make(map[string]int)
	}
	if l.CompletedDrills == nil {
		l.CompletedDrills = make(map[string]int)
	}
	if l.Achievements == nil {
		l.Achievements = make(map[string]bool)
	}
	if l.Level < 1 {
		l.Level = 1
	}
}

// AddActivity appends an entry to the activity log, dropping the oldest
// entries beyond MaxActivityLog.
func (l *Learner) AddActivity(activityType, text string, xpGained int) {
	l.ActivityLog = append(l.ActivityLog, Activity{
		Timestamp: time.Now(),
		Type:      activityType,
		Text:      text,
		XPGained:  xpGained,
	})
	if len(l.ActivityLog) > MaxActivityLog {
		l.ActivityLog = l.ActivityLog[len(l.ActivityLog)-MaxActivityLog:]
	}
}

// RecentActivity returns up to n most recent log entries, newest first.
func (l *Learner) RecentActivity(n int) []Activity {
	if n > len(l.ActivityLog) {
		n = len(l.ActivityLog)
	}
	out := make([]Activity, 0, n)
	for i := len(l.ActivityLog) - 1; i >= len(l.ActivityLog)-n; i-- {
		out = append(out, l.ActivityLog[i])
	}
	return out
}

// LessonsCompleted returns the number of distinct completed lessons.
func (l *Learner) LessonsCompleted() int {
	return len(l.CompletedLessons)
}
