package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/queue"
)

// QueueWatch streams the live patient queue until the user presses Enter.
func (a *App) QueueWatch(ctx context.Context) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin, models.RoleDoctor, models.RoleStaff) {
		return nil
	}

	feed := queue.NewFeed(a.config.QueueFeedURL, a.sess.AccessToken, a.log)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	feedDone := make(chan error, 1)
	go func() { feedDone <- feed.Run(watchCtx) }()

	stop := make(chan struct{})
	go func() {
		// any line, including an empty one, stops the watch
		_, _ = a.reader.ReadString('\n')
		close(stop)
	}()

	printlnFn("Watching the live queue. Press Enter to stop.")

	for {
		select {
		case <-stop:
			return nil
		case err := <-feedDone:
			if errors.Is(err, queue.ErrUnauthorized) {
				printlnFn("The queue feed rejected your session. Try logging in again.")
			}
			return err
		case <-feed.Updates():
			snap := feed.Snapshot()
			printlnFn(fmt.Sprintf("--- queue (%d waiting) ---", len(snap)))
			for _, e := range snap {
				printlnFn(fmt.Sprintf("%2d. %s  %s", e.Position, e.PatientName, e.Status))
			}
		}
	}
}
