package services

import (
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreateTenantRequest struct {
	Name     string `json:"name" validate:"required"`
	Province string `json:"province" validate:"required"`
	Code     string `json:"code" validate:"required,uppercase,min=2,max=5"`
	Timezone string `json:"timezone,omitempty"`
}

type UpdateTenantRequest struct {
	Name     string `json:"name,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// TenantService manages province/tenant records.
type TenantService struct {
	resource[models.Tenant, CreateTenantRequest, UpdateTenantRequest]
}

func NewTenantService(c *httpclient.Client) *TenantService {
	return &TenantService{resource[models.Tenant, CreateTenantRequest, UpdateTenantRequest]{c: c, path: "/tenant"}}
}
