package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/evizor/console/internal/httpclient"
)

// resource implements the four CRUD verbs every list-style endpoint shares.
// T is the entity, C and U the create/update payloads.
type resource[T any, C any, U any] struct {
	c    *httpclient.Client
	path string
}

func (r *resource[T, C, U]) List(ctx context.Context, p ListParams) ([]T, int, error) {
	env, err := httpclient.Do[[]T](ctx, r.c, http.MethodGet, r.path, nil, httpclient.WithQuery(p.query()))
	if err != nil {
		return nil, 0, err
	}
	if err := env.Err(); err != nil {
		return nil, 0, err
	}
	return env.Data, env.TotalCount(len(env.Data)), nil
}

func (r *resource[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	env, err := httpclient.Do[T](ctx, r.c, http.MethodPost, r.path, req)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *resource[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	env, err := httpclient.Do[T](ctx, r.c, http.MethodPut, r.path+"/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *resource[T, C, U]) Delete(ctx context.Context, id string) error {
	env, err := httpclient.Do[any](ctx, r.c, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return env.Err()
}
