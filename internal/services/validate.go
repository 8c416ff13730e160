package services

import (
	"net/http"

	"github.com/evizor/console/internal/api"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct checks a write payload before it goes on the wire, so
// obviously-broken submissions fail fast with the same error shape the
// backend would produce.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return &api.Error{
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
			Status:     false,
			Tag:        "Validation error",
		}
	}
	return nil
}
