package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/evizor/console/internal/api"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
	"github.com/evizor/console/internal/stores"
)

func (a *App) promptText(label string) (string, error) {
	return getSimpleText(a.reader, label, os.Stdout)
}

// promptOptionalBool reads y/n; a blank answer returns nil, meaning
// "leave unchanged".
func (a *App) promptOptionalBool(label string) (*bool, error) {
	answer, err := a.promptText(label + " (y/n, blank to keep)")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		v := true
		return &v, nil
	case "n", "no":
		v := false
		return &v, nil
	default:
		return nil, nil
	}
}

// runCrud dispatches a resource command line against its store.
//
// Verbs: "list [search]" (the default), "add", "update <id>", "delete <id>".
// Nil prompt funcs mark write verbs the resource does not support.
func runCrud[T any, C any, U any](
	ctx context.Context,
	a *App,
	st *stores.Store[T, C, U],
	args []string,
	render func(T) string,
	promptCreate func() (C, error),
	promptUpdate func() (U, error),
) error {
	verb := "list"
	if len(args) > 0 {
		verb = args[0]
		args = args[1:]
	}

	switch verb {
	case "list", "l":
		search := strings.Join(args, " ")
		st.Fetch(ctx, services.ListParams{Page: 1, Limit: a.pageSize, Search: search})
		if msg := st.Err(); msg != "" {
			printlnFn(msg)
			if len(st.Items()) == 0 {
				return nil
			}
			printlnFn("Showing previously loaded data:")
		}
		for _, it := range st.Items() {
			printlnFn(render(it))
		}
		printlnFn(fmt.Sprintf("-- %d of %d total", len(st.Items()), st.Total()))

	case "add":
		if promptCreate == nil {
			printlnFn("This resource cannot be created from the console.")
			return nil
		}
		req, err := promptCreate()
		if err != nil {
			return err
		}
		if !st.Create(ctx, req) {
			printlnFn(st.SubmitErr())
			return nil
		}
		printlnFn("Created.")

	case "update":
		if promptUpdate == nil {
			printlnFn("This resource cannot be updated from the console.")
			return nil
		}
		if len(args) == 0 {
			printlnFn("Usage: update <id>")
			return nil
		}
		req, err := promptUpdate()
		if err != nil {
			return err
		}
		if !st.Update(ctx, args[0], req) {
			printlnFn(st.SubmitErr())
			return nil
		}
		printlnFn("Updated.")

	case "delete":
		if len(args) == 0 {
			printlnFn("Usage: delete <id>")
			return nil
		}
		sure, err := getYesNo(a.reader, "Delete "+args[0]+"?", os.Stdout)
		if err != nil {
			return err
		}
		if !sure {
			printlnFn("Cancelled.")
			return nil
		}
		if !st.Delete(ctx, args[0]) {
			printlnFn(st.SubmitErr())
			return nil
		}
		printlnFn("Deleted.")

	default:
		printlnFn("Unknown verb:", verb)
	}

	return nil
}

func activeMark(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func (a *App) Tenants(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin) {
		return nil
	}
	return runCrud(ctx, a, a.tenants, args,
		func(t models.Tenant) string {
			return fmt.Sprintf("%s  %s (%s/%s)  %s", t.ID, t.Name, t.Province, t.Code, activeMark(t.IsActive))
		},
		func() (services.CreateTenantRequest, error) {
			var req services.CreateTenantRequest
			var err error
			if req.Name, err = a.promptText("Name"); err != nil {
				return req, err
			}
			if req.Province, err = a.promptText("Province"); err != nil {
				return req, err
			}
			if req.Code, err = a.promptText("Code (2-5 uppercase letters)"); err != nil {
				return req, err
			}
			req.Timezone, err = a.promptText("Timezone (blank for default)")
			return req, err
		},
		func() (services.UpdateTenantRequest, error) {
			var req services.UpdateTenantRequest
			var err error
			if req.Name, err = a.promptText("Name (blank to keep)"); err != nil {
				return req, err
			}
			if req.Timezone, err = a.promptText("Timezone (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}

func (a *App) Staff(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin, models.RoleStaff) {
		return nil
	}
	return runCrud(ctx, a, a.staff, args,
		func(s models.Staff) string {
			return fmt.Sprintf("%s  %s %s <%s>  %s  %s", s.ID, s.FirstName, s.LastName, s.Email, s.Position, activeMark(s.IsActive))
		},
		func() (services.CreateStaffRequest, error) {
			var req services.CreateStaffRequest
			var err error
			if req.Email, err = a.promptText("Email"); err != nil {
				return req, err
			}
			if req.FirstName, err = a.promptText("First name"); err != nil {
				return req, err
			}
			if req.LastName, err = a.promptText("Last name"); err != nil {
				return req, err
			}
			if req.Phone, err = a.promptText("Phone (+..., blank to skip)"); err != nil {
				return req, err
			}
			if req.Position, err = a.promptText("Position (blank to skip)"); err != nil {
				return req, err
			}
			req.TenantID, err = a.promptText("Tenant ID")
			return req, err
		},
		func() (services.UpdateStaffRequest, error) {
			var req services.UpdateStaffRequest
			var err error
			if req.FirstName, err = a.promptText("First name (blank to keep)"); err != nil {
				return req, err
			}
			if req.LastName, err = a.promptText("Last name (blank to keep)"); err != nil {
				return req, err
			}
			if req.Phone, err = a.promptText("Phone (blank to keep)"); err != nil {
				return req, err
			}
			if req.Position, err = a.promptText("Position (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}

func (a *App) Specialties(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin) {
		return nil
	}
	return runCrud(ctx, a, a.specialties, args,
		func(s models.Specialty) string {
			return fmt.Sprintf("%s  %s  %s", s.ID, s.Name, activeMark(s.IsActive))
		},
		func() (services.CreateSpecialtyRequest, error) {
			var req services.CreateSpecialtyRequest
			var err error
			if req.Name, err = a.promptText("Name"); err != nil {
				return req, err
			}
			req.Description, err = a.promptText("Description (blank to skip)")
			return req, err
		},
		func() (services.UpdateSpecialtyRequest, error) {
			var req services.UpdateSpecialtyRequest
			var err error
			if req.Name, err = a.promptText("Name (blank to keep)"); err != nil {
				return req, err
			}
			if req.Description, err = a.promptText("Description (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}

func (a *App) Symptoms(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin) {
		return nil
	}
	return runCrud(ctx, a, a.symptoms, args,
		func(s models.Symptom) string {
			return fmt.Sprintf("%s  %s  specialty=%s  %s", s.ID, s.Name, s.SpecialtyID, activeMark(s.IsActive))
		},
		func() (services.CreateSymptomRequest, error) {
			var req services.CreateSymptomRequest
			var err error
			if req.Name, err = a.promptText("Name"); err != nil {
				return req, err
			}
			req.SpecialtyID, err = a.promptText("Specialty ID (blank to skip)")
			return req, err
		},
		func() (services.UpdateSymptomRequest, error) {
			var req services.UpdateSymptomRequest
			var err error
			if req.Name, err = a.promptText("Name (blank to keep)"); err != nil {
				return req, err
			}
			if req.SpecialtyID, err = a.promptText("Specialty ID (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}

func (a *App) Qualifications(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleDoctor) {
		return nil
	}
	return runCrud(ctx, a, a.qualifications, args,
		func(q models.Qualification) string {
			verified := "pending"
			if q.Verified {
				verified = "verified"
			}
			return fmt.Sprintf("%s  %s, %s (%d)  %s", q.ID, q.Degree, q.Institution, q.Year, verified)
		},
		func() (services.CreateQualificationRequest, error) {
			var req services.CreateQualificationRequest
			var err error
			if req.Degree, err = a.promptText("Degree"); err != nil {
				return req, err
			}
			if req.Institution, err = a.promptText("Institution"); err != nil {
				return req, err
			}
			year, err := a.promptText("Year")
			if err != nil {
				return req, err
			}
			if req.Year, err = strconv.Atoi(year); err != nil {
				return req, fmt.Errorf("invalid year: %w", err)
			}
			req.DocumentURL, err = a.promptText("Document URL (blank to skip)")
			return req, err
		},
		func() (services.UpdateQualificationRequest, error) {
			var req services.UpdateQualificationRequest
			var err error
			if req.Degree, err = a.promptText("Degree (blank to keep)"); err != nil {
				return req, err
			}
			if req.Institution, err = a.promptText("Institution (blank to keep)"); err != nil {
				return req, err
			}
			year, err := a.promptText("Year (blank to keep)")
			if err != nil {
				return req, err
			}
			if year != "" {
				if req.Year, err = strconv.Atoi(year); err != nil {
					return req, fmt.Errorf("invalid year: %w", err)
				}
			}
			req.DocumentURL, err = a.promptText("Document URL (blank to keep)")
			return req, err
		})
}

func (a *App) Appointments(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin, models.RoleDoctor, models.RoleStaff) {
		return nil
	}
	return runCrud(ctx, a, a.appointments, args,
		func(ap models.Appointment) string {
			return fmt.Sprintf("%s  %s with %s  %s  %s",
				ap.ID, ap.PatientName, ap.DoctorName, ap.ScheduledAt.Format(time.RFC3339), ap.Status)
		},
		func() (services.CreateAppointmentRequest, error) {
			var req services.CreateAppointmentRequest
			var err error
			if req.PatientID, err = a.promptText("Patient ID"); err != nil {
				return req, err
			}
			if req.DoctorID, err = a.promptText("Doctor ID"); err != nil {
				return req, err
			}
			when, err := a.promptText("Scheduled at (RFC3339, e.g. 2026-09-01T10:30:00Z)")
			if err != nil {
				return req, err
			}
			if req.ScheduledAt, err = time.Parse(time.RFC3339, when); err != nil {
				return req, fmt.Errorf("invalid time: %w", err)
			}
			if req.SpecialtyID, err = a.promptText("Specialty ID (blank to skip)"); err != nil {
				return req, err
			}
			req.Notes, err = a.promptText("Notes (blank to skip)")
			return req, err
		},
		func() (services.UpdateAppointmentRequest, error) {
			var req services.UpdateAppointmentRequest
			status, err := a.promptText("Status (SCHEDULED/IN_PROGRESS/COMPLETED/CANCELLED, blank to keep)")
			if err != nil {
				return req, err
			}
			req.Status = models.AppointmentStatus(status)
			when, err := a.promptText("Scheduled at (RFC3339, blank to keep)")
			if err != nil {
				return req, err
			}
			if when != "" {
				t, err := time.Parse(time.RFC3339, when)
				if err != nil {
					return req, fmt.Errorf("invalid time: %w", err)
				}
				req.ScheduledAt = &t
			}
			req.Notes, err = a.promptText("Notes (blank to keep)")
			return req, err
		})
}

func (a *App) Pharmacies(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin, models.RoleStaff) {
		return nil
	}
	return runCrud(ctx, a, a.pharmacies, args,
		func(p models.Pharmacy) string {
			return fmt.Sprintf("%s  %s, %s  %s", p.ID, p.Name, p.Address, activeMark(p.IsActive))
		},
		func() (services.CreatePharmacyRequest, error) {
			var req services.CreatePharmacyRequest
			var err error
			if req.Name, err = a.promptText("Name"); err != nil {
				return req, err
			}
			if req.Address, err = a.promptText("Address"); err != nil {
				return req, err
			}
			if req.Phone, err = a.promptText("Phone (blank to skip)"); err != nil {
				return req, err
			}
			req.TenantID, err = a.promptText("Tenant ID")
			return req, err
		},
		func() (services.UpdatePharmacyRequest, error) {
			var req services.UpdatePharmacyRequest
			var err error
			if req.Name, err = a.promptText("Name (blank to keep)"); err != nil {
				return req, err
			}
			if req.Address, err = a.promptText("Address (blank to keep)"); err != nil {
				return req, err
			}
			if req.Phone, err = a.promptText("Phone (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}

// Users covers the account surface: list/update through the store, plus a
// "get <id>" detail view. Accounts are never created or deleted here.
func (a *App) Users(ctx context.Context, args []string) error {
	if !a.requireLogin() || !a.requireRole(models.RoleAdmin) {
		return nil
	}

	if len(args) > 0 && args[0] == "get" {
		if len(args) < 2 {
			printlnFn("Usage: users get <id>")
			return nil
		}
		u, err := a.users.Get(ctx, args[1])
		if err != nil {
			printlnFn(api.MessageFor(err))
			return nil
		}
		printlnFn(fmt.Sprintf("%s  %s <%s>", u.ID, u.FullName(), u.Email))
		printlnFn(fmt.Sprintf("role=%s  tenant=%s  %s", u.Role, u.TenantID, activeMark(u.IsActive)))
		if u.LastLoginAt != nil {
			printlnFn("last login:", u.LastLoginAt.Format(time.RFC3339))
		}
		return nil
	}

	return runCrud(ctx, a, a.userStore, args,
		func(u models.User) string {
			return fmt.Sprintf("%s  %s <%s>  %s  %s", u.ID, u.FullName(), u.Email, u.Role, activeMark(u.IsActive))
		},
		nil,
		func() (services.UpdateUserRequest, error) {
			var req services.UpdateUserRequest
			var err error
			if req.FirstName, err = a.promptText("First name (blank to keep)"); err != nil {
				return req, err
			}
			if req.LastName, err = a.promptText("Last name (blank to keep)"); err != nil {
				return req, err
			}
			if req.Phone, err = a.promptText("Phone (blank to keep)"); err != nil {
				return req, err
			}
			req.IsActive, err = a.promptOptionalBool("Active")
			return req, err
		})
}
