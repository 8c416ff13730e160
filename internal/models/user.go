// Package models holds the plain records mirroring eVizor backend resources.
package models

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RoleStaff   Role = "STAFF"
	RolePatient Role = "PATIENT"
)

// ConsoleRole reports whether the role is allowed to use the admin console.
func (r Role) ConsoleRole() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleStaff:
		return true
	default:
		return false
	}
}

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Phone       string     `json:"phone,omitempty"`
	Role        Role       `json:"role"`
	TenantID    string     `json:"tenantId,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Staff is a staff member record scoped to a tenant.
type Staff struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position,omitempty"`
	TenantID  string    `json:"tenantId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
