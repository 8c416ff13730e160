package services

import (
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreatePharmacyRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
	TenantID string `json:"tenantId" validate:"required"`
}

type UpdatePharmacyRequest struct {
	Name     string `json:"name,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type PharmacyService struct {
	resource[models.Pharmacy, CreatePharmacyRequest, UpdatePharmacyRequest]
}

func NewPharmacyService(c *httpclient.Client) *PharmacyService {
	return &PharmacyService{resource[models.Pharmacy, CreatePharmacyRequest, UpdatePharmacyRequest]{c: c, path: "/pharmacies"}}
}
