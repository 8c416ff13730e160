package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
)

type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorName"`
	TenantID    string            `json:"tenantId"`
	SpecialtyID string            `json:"specialtyId,omitempty"`
	Status      AppointmentStatus `json:"status"`
	ScheduledAt time.Time         `json:"scheduledAt"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type Pharmacy struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	TenantID  string    `json:"tenantId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
