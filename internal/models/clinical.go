package models

import "time"

type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type Symptom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SpecialtyID string `json:"specialtyId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Qualification is a doctor's credential record, reviewed by admins during
// verification.
type Qualification struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
	DocumentURL string `json:"documentUrl,omitempty"`
	Verified    bool   `json:"verified"`
}

// AvailabilitySlot is one recurring weekly consultation window.
type AvailabilitySlot struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ProfessionalProfile is the doctor-facing profile the backend serves under
// /profile/professional.
type ProfessionalProfile struct {
	UserID       string   `json:"userId"`
	Bio          string   `json:"bio,omitempty"`
	LicenseNo    string   `json:"licenseNo"`
	SpecialtyIDs []string `json:"specialtyIds"`
	Languages    []string `json:"languages,omitempty"`
	Completed    bool     `json:"completed"`
}

// PendingVerification is a doctor awaiting admin review.
type PendingVerification struct {
	ID             string          `json:"id"`
	DoctorID       string          `json:"doctorId"`
	DoctorName     string          `json:"doctorName"`
	Email          string          `json:"email"`
	Qualifications []Qualification `json:"qualifications,omitempty"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	Status         string          `json:"status"`
}
