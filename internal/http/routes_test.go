package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
)

var pathParam = regexp.MustCompile(`\{[^}]+\}`)

// concrete turns "GET /quote/{quoteId}" into a method and a request path.
func concrete(pattern string) (string, string) {
	method, path, _ := strings.Cut(pattern, " ")
	return method, pathParam.ReplaceAllString(path, "x1")
}

func newTestRouter(t *testing.T, svc *testServices) http.Handler {
	t.Helper()
	SkipIfNoTemplates(t)
	h, err := NewRouter(svc.router())
	require.NoError(t, err)
	return h
}

func routeRequest(method, path string) *http.Request {
	if method == http.MethodPost {
		return NewFormRequest(path, url.Values{})
	}
	return httptest.NewRequest(method, path, nil)
}

func TestRouter_EveryGatedRouteRedirectsAnonymousBrowsers(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	for _, rt := range uiRoutes(&UIHandlers{}) {
		method, path := concrete(rt.Pattern)
		t.Run(rt.Pattern, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, routeRequest(method, path))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, LoginPath, rec.Header().Get("Location"))
			assert.NotContains(t, rec.Body.String(), `id="content"`)
		})
	}
}

func TestRouter_EveryGatedRouteSendsHTMXRedirect(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	for _, rt := range uiRoutes(&UIHandlers{}) {
		method, path := concrete(rt.Pattern)
		t.Run(rt.Pattern, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, AsHTMX(routeRequest(method, path)))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, LoginPath, rec.Header().Get("Hx-Redirect"))
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestRouter_UnknownPathsAreGatedToo(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-screen", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRouter_ExpiredSessionIsTreatedAsAnonymous(t *testing.T) {
	svc := newTestServices()
	svc.auth.GetErr = errors.New("redis down")
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/overview", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRouter_RoleWithoutCapabilityGetsNotFound(t *testing.T) {
	session := TestSession(domainauth.RoleCustomerCare)
	svc := newTestServices(session)
	router := newTestRouter(t, svc)

	for _, rt := range uiRoutes(&UIHandlers{}) {
		if capability.Resolve(domainauth.RoleCustomerCare).Has(rt.Capability) {
			continue
		}
		method, path := concrete(rt.Pattern)
		t.Run(rt.Pattern, func(t *testing.T) {
			req := routeRequest(method, path)
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Page not found")
		})
	}
}

func TestRouter_AllowedScreenRenders(t *testing.T) {
	session := TestSession(domainauth.RoleCustomerCare)
	svc := newTestServices(session)
	svc.catalog.QuotesFn = func(context.Context) ([]model.Quote, error) {
		return []model.Quote{{QuoteID: "Q-77", ClientName: "Delhi Public School"}}, nil
	}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{"Q-77", "Delhi Public School", `href="/quote"`}))
	assert.NotContains(t, body, `href="/store-bills"`, "nav must only list the role's screens")
}

func TestRouter_LandingPageForSignedInOperator(t *testing.T) {
	session := TestSession(domainauth.RoleSuperAdmin)
	router := newTestRouter(t, newTestServices(session))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome, Asha Operator")
}

func TestRouter_PostWithoutCSRFTokenIsForbidden(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40b.c&password=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "script-src 'self' https://unpkg.com")
}

func TestStaticWithCacheHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := staticWithCacheHeaders(inner)

	tests := []struct {
		path string
		want string
	}{
		{"/static/css/app.css", "no-cache"},
		{"/static/js/app.1a2b3c4d.js", "public, max-age=31536000, immutable"},
		{"/static/css/app.1a2b3c4d.css.map", "public, max-age=31536000, immutable"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, rec.Header().Get("Cache-Control"), tt.path)
	}
}

func TestUIRoutes_MatchCapabilityTable(t *testing.T) {
	res := capability.Resolve(domainauth.RoleSuperAdmin)
	registered := map[string]bool{}

	for _, rt := range uiRoutes(&UIHandlers{}) {
		method, path := concrete(rt.Pattern)
		if method != http.MethodGet {
			continue
		}
		_, pattern, _ := strings.Cut(rt.Pattern, " ")
		registered[pattern] = true

		match, ok := res.Match(path)
		if assert.True(t, ok, "%s has no entry in the capability table", rt.Pattern) {
			assert.Equal(t, rt.Capability, match.Capability, "%s gated by a different capability", rt.Pattern)
		}
	}

	for _, route := range res.Routes {
		if route.Path == capability.LandingPath {
			continue
		}
		assert.True(t, registered[route.Path], "capability route %s has no GET handler", route.Path)
	}
}
