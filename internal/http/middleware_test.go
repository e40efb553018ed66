package httpx

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtect_RemembersWhereABrowserWasHeaded(t *testing.T) {
	var called bool
	h := Protect(newFakeAuth())(okHandler(&called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/online-orders?page=3", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	var remembered string
	for _, c := range rec.Result().Cookies() {
		if c.Name == postLoginRedirectCookie {
			remembered = c.Value
		}
	}
	assert.Equal(t, "/online-orders?page=3", remembered)
}

func TestProtect_DoesNotRememberHTMXOrPosts(t *testing.T) {
	h := Protect(newFakeAuth())(http.NotFoundHandler())

	for _, req := range []*http.Request{
		AsHTMX(httptest.NewRequest(http.MethodGet, "/online-orders", nil)),
		NewFormRequest("/store-creation", nil),
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		for _, c := range rec.Result().Cookies() {
			assert.NotEqual(t, postLoginRedirectCookie, c.Name, req.Method+" "+req.URL.Path)
		}
	}
}

func TestProtect_PutsSessionAndCapabilitiesInContext(t *testing.T) {
	session := TestSession(domainauth.RoleInventoryManager)
	var (
		seen *domainauth.Session
		res  capability.Resolution
	)
	h := Protect(newFakeAuth(session))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
		res = ResolutionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, session.ID, seen.ID)
	assert.True(t, res.Has(capability.Inventory))
	assert.False(t, res.Has(capability.Quotes))
}

func TestProtect_LoadsSessionOnEveryRequest(t *testing.T) {
	session := TestSession(domainauth.RoleSuperAdmin)
	auth := newFakeAuth(session)
	h := Protect(auth)(http.NotFoundHandler())

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/overview", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, 3, auth.getCalls)
}

func TestRequireCapability(t *testing.T) {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	tests := []struct {
		name string
		role domainauth.Role
		want int
	}{
		{"super admin", domainauth.RoleSuperAdmin, http.StatusOK},
		{"customer care", domainauth.RoleCustomerCare, http.StatusNotFound},
		{"product manager", domainauth.RoleProductManager, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := RequireCapability(capability.EditBills, notFound)(okHandler(&called))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, WithTestSession(httptest.NewRequest(http.MethodGet, "/req-edit-bills", nil), TestSession(tt.role)))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want == http.StatusOK, called)
		})
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	session := TestSession(domainauth.RoleSuperAdmin)
	mw := RedirectIfAuthenticated(newFakeAuth(session))

	t.Run("signed in browser", func(t *testing.T) {
		var called bool
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
		rec := httptest.NewRecorder()
		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, capability.LandingPath, rec.Header().Get("Location"))
	})

	t.Run("signed in htmx", func(t *testing.T) {
		var called bool
		req := AsHTMX(httptest.NewRequest(http.MethodGet, "/login", nil))
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
		rec := httptest.NewRecorder()
		mw(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, capability.LandingPath, rec.Header().Get("Hx-Redirect"))
	})

	t.Run("anonymous", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		mw(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.True(t, called)
	})
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overview", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "boom")
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quote", nil))

	out := buf.String()
	assert.True(t, ContainsAll(out, []string{"path=/quote", "status=418", "method=GET"}), out)
}

func TestCSRFProtection(t *testing.T) {
	mw := CSRFProtection("")

	t.Run("GET issues a token", func(t *testing.T) {
		var token string
		h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { token = GetCSRFToken(r) }))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		require.NotEmpty(t, token)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, csrfCookieName, cookies[0].Name)
		assert.Equal(t, token, cookies[0].Value)
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		var token string
		h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { token = GetCSRFToken(r) }))
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: TestCSRFToken})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, TestCSRFToken, token)
		assert.Empty(t, rec.Result().Cookies())
	})

	tests := []struct {
		name string
		req  func() *http.Request
		want int
	}{
		{
			name: "form field matches",
			req:  func() *http.Request { return NewFormRequest("/login", nil) },
			want: http.StatusOK,
		},
		{
			name: "header matches",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/logout", nil)
				r.Header.Set(csrfHeaderName, TestCSRFToken)
				r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: TestCSRFToken})
				return r
			},
			want: http.StatusOK,
		},
		{
			name: "header mismatch",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/logout", nil)
				r.Header.Set(csrfHeaderName, "other")
				r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: TestCSRFToken})
				return r
			},
			want: http.StatusForbidden,
		},
		{
			name: "no cookie",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("csrf_token="+TestCSRFToken))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			},
			want: http.StatusForbidden,
		},
		{
			name: "json body",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
				r.Header.Set("Content-Type", "application/json")
				r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: TestCSRFToken})
				return r
			},
			want: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req())
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestIsSecureRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, isSecureRequest(r))

	r.Header.Set("X-Forwarded-Proto", "http, HTTPS")
	assert.True(t, isSecureRequest(r))
}
