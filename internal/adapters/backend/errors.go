package backend

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
)

// ErrTransport marks failures where no HTTP response was received.
var ErrTransport = errors.New("backend unreachable")

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Path    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("backend %s: status %d: %s", e.Path, e.Status, e.Message)
}

func codeFor(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrCodeUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.ErrCodeValidation
	case http.StatusConflict:
		return apperrors.ErrCodeConflict
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apperrors.ErrCodeTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return apperrors.ErrCodeUnavailable
	default:
		return apperrors.ErrCodeInternal
	}
}
