package services

import (
	"time"

	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreateAppointmentRequest struct {
	PatientID   string    `json:"patientId" validate:"required"`
	DoctorID    string    `json:"doctorId" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	SpecialtyID string    `json:"specialtyId,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	Status      models.AppointmentStatus `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	ScheduledAt *time.Time               `json:"scheduledAt,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
}

type AppointmentService struct {
	resource[models.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest]
}

func NewAppointmentService(c *httpclient.Client) *AppointmentService {
	return &AppointmentService{resource[models.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest]{c: c, path: "/appointments"}}
}
