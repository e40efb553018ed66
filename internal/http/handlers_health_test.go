package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthHandler(map[string]HealthCheck{"redis": ok, "postgres": ok}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"redis":"ok","postgres":"ok"}}`, rec.Body.String())
	})

	t.Run("one check fails", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthHandler(map[string]HealthCheck{"redis": down, "postgres": ok}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","checks":{"redis":"connection refused","postgres":"ok"}}`, rec.Body.String())
	})

	t.Run("head has no body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HealthHandler(map[string]HealthCheck{"redis": down}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
