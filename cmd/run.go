package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/codecompanion/internal/app"
	"github.com/abhisek/codecompanion/internal/catalogio"
	"github.com/abhisek/codecompanion/internal/content"
	"github.com/abhisek/codecompanion/internal/sandbox"
	"github.com/abhisek/codecompanion/internal/selfupdate"
	"github.com/abhisek/codecompanion/internal/session"
	"github.com/abhisek/codecompanion/internal/store"
	"github.com/abhisek/codecompanion/internal/validate"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	snapRepo := st.SnapshotRepo()
	eventRepo := st.EventRepo()

	// Restore the learner from the latest snapshot, if one exists. A nil
	// learner sends the welcome screen into onboarding.
	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	validator := validate.New(sandbox.New(sandbox.DefaultConfig()))
	svc := session.NewService(nil, registry, validator, snapRepo, eventRepo)
	if snap != nil {
		svc.Learner = &snap.Data.Learner
	}

	updateNotice := checkForUpdate(ctx)

	if err := app.Run(app.Options{
		Service:   svc,
		EventRepo: eventRepo,
	}); err != nil {
		return err
	}

	// The TUI owns the terminal while it runs, so the notice waits for exit.
	select {
	case notice := <-updateNotice:
		if notice != "" {
			fmt.Fprintln(os.Stderr, notice)
		}
	default:
	}
	return nil
}

// checkForUpdate starts a background release check. Failures are silent; the
// channel delivers at most one human-readable notice.
func checkForUpdate(ctx context.Context) <-chan string {
	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(5 * time.Second))
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !res.UpdateAvailable {
			return
		}
		ch <- fmt.Sprintf("A new version is available: %s (run: codecompanion update)",
			res.LatestVersion)
	}()
	return ch
}

// loadRegistry returns the lesson catalog, reading external lesson packs
// when --lessons is set and falling back to the built-in catalog otherwise.
func loadRegistry(cmd *cobra.Command) (*content.Registry, error) {
	path, _ := cmd.Flags().GetString("lessons")
	if path == "" {
		return content.Default(), nil
	}
	lessons, err := catalogio.LoadPath(path)
	if err != nil {
		return nil, fmt.Errorf("load lesson pack %s: %w", path, err)
	}
	return content.NewRegistry(lessons)
}
