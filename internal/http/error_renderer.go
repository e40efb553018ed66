package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
)

const (
	errMsgFixBelow = "Please fix the errors below."
	errMsgGeneric  = "An error occurred. Please try again."
)

// DetermineErrorStatus maps an error onto the status of a full-page render.
// htmx swaps are answered with 200 so the banner is swapped in; this is for
// plain navigations only.
func DetermineErrorStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsUnavailable(err):
		return http.StatusBadGateway
	case apperrors.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusOK
	}
}

// processError turns err into the banner message. Validation errors naming a
// field are moved into fieldErrors and the banner asks to fix the form.
// Returns "" if err is nil.
func processError(err error, fallback string, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = errMsgGeneric
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) && !apperrors.IsTimeout(err):
		return "Request timed out. Please try again."
	case errors.Is(err, context.Canceled) && !apperrors.IsCanceled(err):
		return "Request was canceled."
	}

	msg := apperrors.UserMessage(err, fallback)
	if field := apperrors.GetField(err); field != "" && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[field] = msg
		return errMsgFixBelow
	}
	return msg
}
