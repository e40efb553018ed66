package httpx

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func authHandlers(t *testing.T) (*UIHandlers, *testServices) {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	svc := newTestServices()
	return svc.handlers(tr), svc
}

func TestLogin_Success(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.LoginFn = func(_ context.Context, email, password string) (*domainauth.Session, error) {
		assert.Equal(t, "asha@jhaver.in", email)
		assert.Equal(t, "s3cret", password)
		return TestSession(domainauth.RoleCustomerCare), nil
	}

	rec := httptest.NewRecorder()
	h.Login(rec, NewFormRequest("/login", url.Values{"email": {" asha@jhaver.in "}, "password": {"s3cret"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, capability.LandingPath, rec.Header().Get("Location"))
	c := findCookie(rec, sessionCookieName)
	require.NotNil(t, c)
	assert.Equal(t, "sess-customer-care", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Positive(t, c.MaxAge)
}

func TestLogin_ReturnsToRememberedScreen(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return TestSession(domainauth.RoleSuperAdmin), nil
	}

	req := AsHTMX(NewFormRequest("/login", url.Values{"email": {"a@b.in"}, "password": {"x"}}))
	req.AddCookie(&http.Cookie{Name: postLoginRedirectCookie, Value: "/online-orders?page=2"})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/online-orders?page=2", rec.Header().Get("Hx-Redirect"))
	cleared := findCookie(rec, postLoginRedirectCookie)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestLogin_FailureShowsFieldErrors(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return nil, apperrors.ValidationField("password", "Incorrect password.")
	}

	rec := httptest.NewRecorder()
	h.Login(rec, NewFormRequest("/login", url.Values{"email": {"asha@jhaver.in"}, "password": {"nope"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{errMsgFixBelow, "Incorrect password.", `value="asha@jhaver.in"`}), body)
	assert.NotContains(t, body, "nope")
	assert.Nil(t, findCookie(rec, sessionCookieName))
}

func TestLogin_FailureDoesNotLogEmail(t *testing.T) {
	h, svc := authHandlers(t)
	var buf bytes.Buffer
	h.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return nil, apperrors.ValidationField("password", "Incorrect password.")
	}

	h.Login(httptest.NewRecorder(), NewFormRequest("/login", url.Values{"email": {"asha@jhaver.in"}, "password": {"nope"}}))

	assert.Contains(t, buf.String(), "login failed")
	assert.NotContains(t, buf.String(), "asha@jhaver.in")
}

func TestLogin_RevokesPreviousSession(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return TestSession(domainauth.RoleSuperAdmin), nil
	}
	next := TestSession(domainauth.RoleSuperAdmin)

	req := NewFormRequest("/login", url.Values{"email": {"a@b.in"}, "password": {"x"}})
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-stale"})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"sess-stale"}, svc.auth.loggedOut)
	c := findCookie(rec, sessionCookieName)
	require.NotNil(t, c)
	assert.Equal(t, next.ID, c.Value)
}

func TestLogin_SameSessionIsNotRevoked(t *testing.T) {
	h, svc := authHandlers(t)
	current := TestSession(domainauth.RoleSuperAdmin)
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return current, nil
	}

	req := NewFormRequest("/login", url.Values{"email": {"a@b.in"}, "password": {"x"}})
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: current.ID})
	h.Login(httptest.NewRecorder(), req)

	assert.Empty(t, svc.auth.loggedOut)
}

func TestLogin_UnexpectedErrorUsesFallback(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.LoginFn = func(context.Context, string, string) (*domainauth.Session, error) {
		return nil, context.DeadlineExceeded
	}

	rec := httptest.NewRecorder()
	h.Login(rec, NewFormRequest("/login", url.Values{"email": {"a@b.in"}, "password": {"x"}}))

	assert.Contains(t, rec.Body.String(), "Request timed out. Please try again.")
}

func TestLogout(t *testing.T) {
	session := TestSession(domainauth.RoleSuperAdmin)
	h, svc := authHandlers(t)
	svc.auth.sessions[session.ID] = session

	for range 2 {
		req := NewFormRequest("/logout", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.ID})
		rec := httptest.NewRecorder()
		h.Logout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, LoginPath, rec.Header().Get("Location"))
		cleared := findCookie(rec, sessionCookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	}
	assert.Equal(t, []string{session.ID, session.ID}, svc.auth.loggedOut)
	assert.Empty(t, svc.auth.sessions)
}

func TestLogout_WithoutCookie(t *testing.T) {
	h, svc := authHandlers(t)

	rec := httptest.NewRecorder()
	h.Logout(rec, AsHTMX(NewFormRequest("/logout", nil)))

	assert.Equal(t, LoginPath, rec.Header().Get("Hx-Redirect"))
	assert.Empty(t, svc.auth.loggedOut)
}

func TestForgotPassword(t *testing.T) {
	h, svc := authHandlers(t)
	var asked string
	svc.auth.ForgotFn = func(_ context.Context, email string) error {
		asked = email
		return nil
	}

	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, NewFormRequest("/forgot-password", url.Values{"email": {"asha@jhaver.in"}}))

	assert.Equal(t, "asha@jhaver.in", asked)
	assert.Contains(t, rec.Body.String(), "a reset link is on its way")
}

func TestForgotPassword_Failure(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.ForgotFn = func(context.Context, string) error {
		return apperrors.ValidationField("email", "Enter a valid email address.")
	}

	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, NewFormRequest("/forgot-password", url.Values{"email": {"asha"}}))

	assert.True(t, ContainsAll(rec.Body.String(), []string{"Enter a valid email address.", `value="asha"`}))
}

func TestResetPassword(t *testing.T) {
	h, svc := authHandlers(t)
	var gotToken, gotPassword, gotConfirm string
	svc.auth.ResetFn = func(_ context.Context, token, password, confirm string) error {
		gotToken, gotPassword, gotConfirm = token, password, confirm
		return nil
	}

	rec := httptest.NewRecorder()
	h.ResetPassword(rec, NewFormRequest("/reset-password", url.Values{
		"token": {"tok-1"}, "password": {"Newpass#1"}, "confirmPassword": {"Newpass#1"},
	}))

	assert.Equal(t, "tok-1", gotToken)
	assert.Equal(t, "Newpass#1", gotPassword)
	assert.Equal(t, "Newpass#1", gotConfirm)
	assert.Contains(t, rec.Body.String(), "Your password has been reset. Please sign in.")
}

func TestResetPassword_MismatchKeepsToken(t *testing.T) {
	h, svc := authHandlers(t)
	svc.auth.ResetFn = func(context.Context, string, string, string) error {
		return apperrors.ValidationField("confirmPassword", "Passwords do not match.")
	}

	rec := httptest.NewRecorder()
	h.ResetPassword(rec, NewFormRequest("/reset-password", url.Values{
		"token": {"tok-1"}, "password": {"a"}, "confirmPassword": {"b"},
	}))

	assert.True(t, ContainsAll(rec.Body.String(), []string{"Passwords do not match.", `value="tok-1"`}))
}

func TestResetPasswordPage_CarriesToken(t *testing.T) {
	h, _ := authHandlers(t)

	rec := httptest.NewRecorder()
	h.ResetPasswordPage(rec, httptest.NewRequest(http.MethodGet, "/reset-password?token=abc123", nil))

	assert.Contains(t, rec.Body.String(), `value="abc123"`)
}

func TestSetSessionCookie_ExpiredSession(t *testing.T) {
	rec := httptest.NewRecorder()
	setSessionCookie(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "sess-1", time.Now().Add(-time.Minute), "")

	c := findCookie(rec, sessionCookieName)
	require.NotNil(t, c)
	assert.Zero(t, c.MaxAge)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", capability.LandingPath},
		{"/online-orders", "/online-orders"},
		{"/quote/Q-1?x=1", "/quote/Q-1?x=1"},
		{"//evil.example", capability.LandingPath},
		{"/\\evil.example", capability.LandingPath},
		{"https://evil.example/x", capability.LandingPath},
		{"relative/path", capability.LandingPath},
		{"/login", capability.LandingPath},
		{"/login?next=/x", capability.LandingPath},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), tt.in)
	}
}
