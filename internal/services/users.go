package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/evizor/console/internal/httpclient"
	"github.com/evizor/console/internal/models"
)

type UpdateUserRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UserService covers the read/update surface of /users; accounts are created
// through registration flows owned by the backend, never by the console.
type UserService struct {
	c *httpclient.Client
}

func NewUserService(c *httpclient.Client) *UserService {
	return &UserService{c: c}
}

func (s *UserService) List(ctx context.Context, p ListParams) ([]models.User, int, error) {
	env, err := httpclient.Do[[]models.User](ctx, s.c, http.MethodGet, "/users", nil, httpclient.WithQuery(p.query()))
	if err != nil {
		return nil, 0, err
	}
	if err := env.Err(); err != nil {
		return nil, 0, err
	}
	return env.Data, env.TotalCount(len(env.Data)), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	env, err := httpclient.Do[models.User](ctx, s.c, http.MethodGet, "/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	env, err := httpclient.Do[models.User](ctx, s.c, http.MethodPut, "/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
