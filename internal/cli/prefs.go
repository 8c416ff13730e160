package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Prefs shows or changes console preferences stored in the device database.
//
// Verbs: "show" (the default), "pagesize <n>".
func (a *App) Prefs(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	verb := "show"
	if len(args) > 0 {
		verb = args[0]
		args = args[1:]
	}

	switch verb {
	case "show":
		printlnFn(fmt.Sprintf("pagesize: %d", a.pageSize))

	case "pagesize":
		if len(args) == 0 {
			printlnFn("Usage: prefs pagesize <n>")
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 200 {
			printlnFn("Page size must be a number between 1 and 200.")
			return nil
		}
		if err := a.kv.Set(ctx, kvPageSize, []byte(strconv.Itoa(n))); err != nil {
			a.log.Error(ctx, "failed to save preference", "error", err)
			printlnFn("Failed to save the preference.")
			return err
		}
		a.pageSize = n
		printlnFn("Saved.")

	default:
		printlnFn("Unknown verb:", verb)
	}

	return nil
}
