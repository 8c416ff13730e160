package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
)

// Verify manages the doctor verification queue.
//
// Verbs: "list" (the default), "approve <id>", "reject <id>" (prompts for a
// reason). After a decision the pending list is refetched.
func (a *App) Verify(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin) {
		return nil
	}

	verb := "list"
	if len(args) > 0 {
		verb = args[0]
		args = args[1:]
	}

	switch verb {
	case "list", "l":
		a.verifications.Fetch(ctx, services.ListParams{Page: 1, Limit: a.pageSize})
		if msg := a.verifications.Err(); msg != "" {
			printlnFn(msg)
			return nil
		}
		for _, v := range a.verifications.Items() {
			printlnFn(fmt.Sprintf("%s  %s <%s>  submitted %s  %d qualification(s)",
				v.ID, v.DoctorName, v.Email, v.SubmittedAt.Format(time.RFC3339), len(v.Qualifications)))
		}
		printlnFn(fmt.Sprintf("-- %d pending", a.verifications.Total()))

	case "approve":
		if len(args) == 0 {
			printlnFn("Usage: verify approve <id>")
			return nil
		}
		if err := a.profile.ApproveVerification(ctx, args[0]); err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn("Approved.")
		a.verifications.Fetch(ctx, services.ListParams{Page: 1, Limit: a.pageSize})

	case "reject":
		if len(args) == 0 {
			printlnFn("Usage: verify reject <id>")
			return nil
		}
		reason, err := a.promptText("Rejection reason")
		if err != nil {
			return err
		}
		if err := a.profile.RejectVerification(ctx, args[0], reason); err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn("Rejected.")
		a.verifications.Fetch(ctx, services.ListParams{Page: 1, Limit: a.pageSize})

	default:
		printlnFn("Unknown verb:", verb)
	}

	return nil
}
