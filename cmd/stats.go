package cmd

import (
	"fmt"

	"github.com/abhisek/codecompanion/internal/achievements"
	"github.com/abhisek/codecompanion/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No learner profile yet. Run codecompanion to get started.")
			return nil
		}

		l := snap.Data.Learner
		fmt.Printf("Learner:      %s\n", l.Username)
		fmt.Printf("Level:        %d (%d XP)\n", l.Level, l.XP)
		fmt.Printf("Streak:       %d days\n", l.StreakDays)
		fmt.Printf("Companion:    %s (stage %d, vitality %d)\n",
			l.CompanionType, l.CompanionStage, l.CompanionVitality)
		fmt.Printf("Lessons:      %d completed\n", l.LessonsCompleted())
		fmt.Printf("Exercises:    %d completed (%d perfect)\n",
			l.TotalExercisesCompleted, l.PerfectScores)
		fmt.Printf("Drills:       %d completed (%d bugs fixed)\n",
			l.TotalDrillsCompleted, l.TotalBugsFixed)
		fmt.Printf("Achievements: %d / %d\n", len(l.Achievements), achievements.Count())

		eventRepo := st.EventRepo()
		stats, err := eventRepo.ItemAttemptStats(ctx, "")
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if stats.Total > 0 {
			fmt.Printf("Attempts:     %d total, %.0f%% passed\n",
				stats.Total, float64(stats.Passed)/float64(stats.Total)*100)
		}

		sessions, err := eventRepo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				what := s.LessonID
				if what == "" {
					what = "daily challenge"
				}
				fmt.Printf("  %s  %-20s %d/%d items  +%d XP\n",
					s.Timestamp.Format("2006-01-02"), what,
					s.ItemsPassed, s.ItemsServed, s.XPEarned)
			}
		}

		return nil
	},
}
