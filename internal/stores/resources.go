package stores

import (
	"context"

	"github.com/evizor/console/internal/logging"
	"github.com/evizor/console/internal/models"
	"github.com/evizor/console/internal/services"
)

type TenantStore = Store[models.Tenant, services.CreateTenantRequest, services.UpdateTenantRequest]

func NewTenantStore(svc *services.TenantService, log logging.Logger) *TenantStore {
	return New(func(t models.Tenant) string { return t.ID },
		Verbs[models.Tenant, services.CreateTenantRequest, services.UpdateTenantRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type StaffStore = Store[models.Staff, services.CreateStaffRequest, services.UpdateStaffRequest]

func NewStaffStore(svc *services.StaffService, log logging.Logger) *StaffStore {
	return New(func(s models.Staff) string { return s.ID },
		Verbs[models.Staff, services.CreateStaffRequest, services.UpdateStaffRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type SpecialtyStore = Store[models.Specialty, services.CreateSpecialtyRequest, services.UpdateSpecialtyRequest]

func NewSpecialtyStore(svc *services.SpecialtyService, log logging.Logger) *SpecialtyStore {
	return New(func(s models.Specialty) string { return s.ID },
		Verbs[models.Specialty, services.CreateSpecialtyRequest, services.UpdateSpecialtyRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type SymptomStore = Store[models.Symptom, services.CreateSymptomRequest, services.UpdateSymptomRequest]

func NewSymptomStore(svc *services.SymptomService, log logging.Logger) *SymptomStore {
	return New(func(s models.Symptom) string { return s.ID },
		Verbs[models.Symptom, services.CreateSymptomRequest, services.UpdateSymptomRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type PharmacyStore = Store[models.Pharmacy, services.CreatePharmacyRequest, services.UpdatePharmacyRequest]

func NewPharmacyStore(svc *services.PharmacyService, log logging.Logger) *PharmacyStore {
	return New(func(p models.Pharmacy) string { return p.ID },
		Verbs[models.Pharmacy, services.CreatePharmacyRequest, services.UpdatePharmacyRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type AppointmentStore = Store[models.Appointment, services.CreateAppointmentRequest, services.UpdateAppointmentRequest]

func NewAppointmentStore(svc *services.AppointmentService, log logging.Logger) *AppointmentStore {
	return New(func(a models.Appointment) string { return a.ID },
		Verbs[models.Appointment, services.CreateAppointmentRequest, services.UpdateAppointmentRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

type QualificationStore = Store[models.Qualification, services.CreateQualificationRequest, services.UpdateQualificationRequest]

func NewQualificationStore(svc *services.QualificationService, log logging.Logger) *QualificationStore {
	return New(func(q models.Qualification) string { return q.ID },
		Verbs[models.Qualification, services.CreateQualificationRequest, services.UpdateQualificationRequest]{
			Fetch:  svc.List,
			Create: svc.Create,
			Update: svc.Update,
			Delete: svc.Delete,
		}, log)
}

// userNoCreate is a placeholder payload type for the create verb the user
// store does not expose.
type userNoCreate struct{}

type UserStore = Store[models.User, userNoCreate, services.UpdateUserRequest]

// NewUserStore wires the read/update-only user surface; accounts are never
// created or deleted from the console.
func NewUserStore(svc *services.UserService, log logging.Logger) *UserStore {
	return New(func(u models.User) string { return u.ID },
		Verbs[models.User, userNoCreate, services.UpdateUserRequest]{
			Fetch:  svc.List,
			Update: svc.Update,
		}, log)
}

type verificationNoWrite struct{}

type VerificationStore = Store[models.PendingVerification, verificationNoWrite, verificationNoWrite]

// NewVerificationStore wires the admin verification queue. Approvals and
// rejections go through services.ProfileService directly and are followed by
// a fresh Fetch.
func NewVerificationStore(svc *services.ProfileService, log logging.Logger) *VerificationStore {
	return New(func(v models.PendingVerification) string { return v.ID },
		Verbs[models.PendingVerification, verificationNoWrite, verificationNoWrite]{
			Fetch: func(ctx context.Context, p services.ListParams) ([]models.PendingVerification, int, error) {
				return svc.PendingVerifications(ctx, p)
			},
		}, log)
}
