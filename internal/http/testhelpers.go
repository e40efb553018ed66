package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

// TestCSRFToken is the token NewFormRequest attaches as both cookie and form field.
const TestCSRFToken = "test-csrf-token"

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// SkipIfNoTemplates checks if templates are available and skips the test if not.
func SkipIfNoTemplates(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// CreateUIHandlersForTest creates UIHandlers with a template renderer and no
// services. Tests assign the services they exercise.
func CreateUIHandlersForTest(t *testing.T) *UIHandlers {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return nil
	}
	return &UIHandlers{T: tr}
}

// TestSession returns an authenticated session for role.
func TestSession(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + strings.ReplaceAll(strings.ToLower(string(role)), " ", "-"),
		Token:     "bearer-token",
		Identity:  &domainauth.Identity{Name: "Asha Operator", Role: role},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// WithTestSession puts session on the request context the way Protect does.
func WithTestSession(r *http.Request, session *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), session))
}

// NewFormRequest builds a urlencoded POST carrying a valid CSRF cookie and field.
func NewFormRequest(target string, values url.Values) *http.Request {
	if values == nil {
		values = url.Values{}
	}
	values.Set(csrfFormField, TestCSRFToken)
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: TestCSRFToken})
	return r
}

// AsHTMX marks r as an htmx request.
func AsHTMX(r *http.Request) *http.Request {
	r.Header.Set("Hx-Request", "true")
	return r
}
