package session

import "time"

// Summary holds the data displayed on the end-of-session summary screen.
type Summary struct {
	Duration        time.Duration
	ItemsServed     int
	ItemsPassed     int
	Accuracy        float64
	XPEarned        int
	LessonCompleted bool
	LeveledUp       bool
	NewAchievements []string
}

// buildSummary derives the summary figures from the session state.
func buildSummary(st *State, now time.Time) *Summary {
	var accuracy float64
	if st.ItemsServed > 0 {
		accuracy = float64(st.ItemsPassed) / float64(st.ItemsServed)
	}
	return &Summary{
		Duration:    now.Sub(st.StartTime),
		ItemsServed: st.ItemsServed,
		ItemsPassed: st.ItemsPassed,
		Accuracy:    accuracy,
		XPEarned:    st.XPEarned,
	}
}
