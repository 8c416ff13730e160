package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
)

// splitList turns a comma separated answer into a trimmed slice; a blank
// answer stays nil so the backend keeps the current value.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func buildProfileUpdate(bio, license, specialties, languages string) services.UpdateProfessionalProfileRequest {
	return services.UpdateProfessionalProfileRequest{
		Bio:          bio,
		LicenseNo:    license,
		SpecialtyIDs: splitList(specialties),
		Languages:    splitList(languages),
	}
}

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func dayName(d int) string {
	if d >= 0 && d < len(dayNames) {
		return dayNames[d]
	}
	return strconv.Itoa(d)
}

// Availability shows or replaces the doctor's weekly consultation windows.
//
// Verbs: "list" (the default) and "set", which collects slots interactively
// and replaces the whole schedule.
func (a *App) Availability(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleDoctor) {
		return nil
	}

	verb := "list"
	if len(args) > 0 {
		verb = args[0]
	}

	switch verb {
	case "list", "l":
		slots, err := a.profile.GetAvailability(ctx)
		if err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		if len(slots) == 0 {
			printlnFn("No availability configured.")
			return nil
		}
		for _, s := range slots {
			printlnFn(fmt.Sprintf("%s  %s-%s", dayName(s.DayOfWeek), s.StartTime, s.EndTime))
		}

	case "set":
		var slots []models.AvailabilitySlot
		for {
			day, err := a.promptText("Day of week (0=Sun..6=Sat, blank to finish)")
			if err != nil {
				return err
			}
			if day == "" {
				break
			}
			d, err := strconv.Atoi(day)
			if err != nil || d < 0 || d > 6 {
				printlnFn("Day must be a number between 0 and 6.")
				continue
			}
			start, err := a.promptText("Start (HH:MM)")
			if err != nil {
				return err
			}
			end, err := a.promptText("End (HH:MM)")
			if err != nil {
				return err
			}
			slots = append(slots, models.AvailabilitySlot{DayOfWeek: d, StartTime: start, EndTime: end})
		}

		if err := a.profile.SetAvailability(ctx, slots); err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn(fmt.Sprintf("Saved %d slot(s).", len(slots)))

	default:
		printlnFn("Unknown verb:", verb)
	}

	return nil
}

// Profile shows or updates the doctor's professional profile.
//
// Verbs: "show" (the default) and "update".
func (a *App) Profile(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleDoctor) {
		return nil
	}

	verb := "show"
	if len(args) > 0 {
		verb = args[0]
	}

	switch verb {
	case "show":
		p, err := a.profile.GetProfessionalProfile(ctx)
		if err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn("License:", p.LicenseNo)
		printlnFn("Bio:", p.Bio)
		printlnFn("Specialties:", strings.Join(p.SpecialtyIDs, ", "))
		printlnFn("Languages:", strings.Join(p.Languages, ", "))
		if !p.Completed {
			printlnFn("Profile incomplete.")
		}

	case "update":
		bio, err := a.promptText("Bio (blank to keep)")
		if err != nil {
			return err
		}
		license, err := a.promptText("License number (blank to keep)")
		if err != nil {
			return err
		}
		specialties, err := a.promptText("Specialty IDs, comma separated (blank to keep)")
		if err != nil {
			return err
		}
		languages, err := a.promptText("Languages, comma separated (blank to keep)")
		if err != nil {
			return err
		}

		update := buildProfileUpdate(bio, license, specialties, languages)
		if _, err := a.profile.UpdateProfessionalProfile(ctx, update); err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn("Updated.")

	default:
		printlnFn("Unknown verb:", verb)
	}

	return nil
}
