package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type CreateQualificationRequest struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Year        int    `json:"year" validate:"required,gte=1900,lte=2100"`
	DocumentURL string `json:"documentUrl,omitempty" validate:"omitempty,url"`
}

type UpdateQualificationRequest struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	DocumentURL string `json:"documentUrl,omitempty" validate:"omitempty,url"`
}

type UpdateProfessionalProfileRequest struct {
	Bio          string   `json:"bio,omitempty"`
	LicenseNo    string   `json:"licenseNo,omitempty"`
	SpecialtyIDs []string `json:"specialtyIds,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}

// ProfileService covers the doctor-profile surface: qualifications,
// availability, professional profile, and the admin verification queue.
type ProfileService struct {
	c              *httpclient.Client
	Qualifications *QualificationService
}

type QualificationService struct {
	resource[models.Qualification, CreateQualificationRequest, UpdateQualificationRequest]
}

func NewProfileService(c *httpclient.Client) *ProfileService {
	return &ProfileService{
		c: c,
		Qualifications: &QualificationService{
			resource[models.Qualification, CreateQualificationRequest, UpdateQualificationRequest]{c: c, path: "/profile/qualifications"},
		},
	}
}

func (s *ProfileService) GetAvailability(ctx context.Context) ([]models.AvailabilitySlot, error) {
	env, err := httpclient.Do[[]models.AvailabilitySlot](ctx, s.c, http.MethodGet, "/profile/availability", nil)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *ProfileService) SetAvailability(ctx context.Context, slots []models.AvailabilitySlot) error {
	env, err := httpclient.Do[any](ctx, s.c, http.MethodPut, "/profile/availability", slots)
	if err != nil {
		return err
	}
	return env.Err()
}

func (s *ProfileService) GetProfessionalProfile(ctx context.Context) (*models.ProfessionalProfile, error) {
	env, err := httpclient.Do[models.ProfessionalProfile](ctx, s.c, http.MethodGet, "/profile/professional", nil)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *ProfileService) UpdateProfessionalProfile(ctx context.Context, req UpdateProfessionalProfileRequest) (*models.ProfessionalProfile, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	env, err := httpclient.Do[models.ProfessionalProfile](ctx, s.c, http.MethodPut, "/profile/professional", req)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// PendingVerifications lists doctors awaiting admin review.
func (s *ProfileService) PendingVerifications(ctx context.Context, p ListParams) ([]models.PendingVerification, int, error) {
	env, err := httpclient.Do[[]models.PendingVerification](ctx, s.c, http.MethodGet, "/profile/admin/pending", nil, httpclient.WithQuery(p.query()))
	if err != nil {
		return nil, 0, err
	}
	if err := env.Err(); err != nil {
		return nil, 0, err
	}
	return env.Data, env.TotalCount(len(env.Data)), nil
}

func (s *ProfileService) ApproveVerification(ctx context.Context, id string) error {
	env, err := httpclient.Do[any](ctx, s.c, http.MethodPost, "/profile/admin/pending/"+url.PathEscape(id)+"/approve", nil)
	if err != nil {
		return err
	}
	return env.Err()
}

func (s *ProfileService) RejectVerification(ctx context.Context, id, reason string) error {
	env, err := httpclient.Do[any](ctx, s.c, http.MethodPost, "/profile/admin/pending/"+url.PathEscape(id)+"/reject",
		map[string]string{"reason": reason})
	if err != nil {
		return err
	}
	return env.Err()
}
