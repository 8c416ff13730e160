package services

import (
	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreateSpecialtyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type UpdateSpecialtyRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type SpecialtyService struct {
	resource[models.Specialty, CreateSpecialtyRequest, UpdateSpecialtyRequest]
}

func NewSpecialtyService(c *httpclient.Client) *SpecialtyService {
	return &SpecialtyService{resource[models.Specialty, CreateSpecialtyRequest, UpdateSpecialtyRequest]{c: c, path: "/specialties"}}
}

type CreateSymptomRequest struct {
	Name        string `json:"name" validate:"required"`
	SpecialtyID string `json:"specialtyId,omitempty"`
}

type UpdateSymptomRequest struct {
	Name        string `json:"name,omitempty"`
	SpecialtyID string `json:"specialtyId,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

type SymptomService struct {
	resource[models.Symptom, CreateSymptomRequest, UpdateSymptomRequest]
}

func NewSymptomService(c *httpclient.Client) *SymptomService {
	return &SymptomService{resource[models.Symptom, CreateSymptomRequest, UpdateSymptomRequest]{c: c, path: "/symptoms"}}
}
