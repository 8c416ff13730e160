package services

import (
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreateStaffRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	Position  string `json:"position,omitempty"`
	TenantID  string `json:"tenantId" validate:"required"`
}

type UpdateStaffRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	Position  string `json:"position,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

type StaffService struct {
	resource[models.Staff, CreateStaffRequest, UpdateStaffRequest]
}

func NewStaffService(c *httpclient.Client) *StaffService {
	return &StaffService{resource[models.Staff, CreateStaffRequest, UpdateStaffRequest]{c: c, path: "/staff"}}
}
