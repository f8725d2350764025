package handler

import (
	"errors"

	"github.com/devcell/portal/internal/model"
	"github.com/devcell/portal/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotFormOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrFormNotFound):
		return model.NewNotFoundError("form")
	case errors.Is(err, service.ErrRowNotFound):
		return model.NewNotFoundError("row")
	case errors.Is(err, service.ErrPictureNotFound):
		return model.NewNotFoundError("picture")

	// ===== Upload Errors =====
	case errors.Is(err, service.ErrPictureTooLarge):
		return model.NewPayloadTooLargeError(err.Error())
	case errors.Is(err, service.ErrPictureBadType):
		return model.NewValidationError([]model.FieldError{{Field: "picture", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
