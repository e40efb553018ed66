package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
)

func TestDetermineErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", apperrors.NotFound("no such bill"), http.StatusNotFound},
		{"unavailable", fmt.Errorf("list: %w", apperrors.Unavailable("down")), http.StatusBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"validation", apperrors.Validation("bad"), http.StatusOK},
		{"plain", errors.New("x"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineErrorStatus(tt.err))
		})
	}
}

func TestProcessError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, processError(nil, "fallback", nil))
	})

	t.Run("field error moves below the form", func(t *testing.T) {
		var fields map[string]string
		msg := processError(apperrors.ValidationField("email", "Enter a valid email address."), "", &fields)
		assert.Equal(t, errMsgFixBelow, msg)
		assert.Equal(t, map[string]string{"email": "Enter a valid email address."}, fields)
	})

	t.Run("field error without a field map", func(t *testing.T) {
		msg := processError(apperrors.ValidationField("email", "Enter a valid email address."), "", nil)
		assert.Equal(t, "Enter a valid email address.", msg)
	})

	t.Run("operator message", func(t *testing.T) {
		assert.Equal(t, "Store already exists.", processError(apperrors.Conflict("Store already exists."), "fallback", nil))
	})

	t.Run("internal error uses fallback", func(t *testing.T) {
		assert.Equal(t, "Failed to fetch bills.", processError(errors.New("dial tcp: refused"), "Failed to fetch bills.", nil))
		assert.Equal(t, errMsgGeneric, processError(errors.New("dial tcp: refused"), "", nil))
	})

	t.Run("context errors", func(t *testing.T) {
		assert.Equal(t, "Request timed out. Please try again.", processError(context.DeadlineExceeded, "", nil))
		assert.Equal(t, "Request was canceled.", processError(context.Canceled, "", nil))
	})
}
