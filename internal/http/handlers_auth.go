package httpx

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
)

const postLoginRedirectCookie = "post_login_redirect"

// authForm is echoed back into the auth pages after a failed submit.
// Passwords are never echoed.
type authForm struct {
	Email string
	Token string
}

// LoginPage renders the sign-in form.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderAuthPage(w, r, PageMeta{Title: "Login", PageTitle: "Sign in", CurrentPage: PageLogin}, nil)
}

// Login signs the operator in and sends them to the landing screen, or back
// to the screen that first redirected them here.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Login", PageTitle: "Sign in", CurrentPage: PageLogin}
	if _, err := parseForm(r); err != nil {
		h.renderAuthPage(w, r, meta, &Flash{Error: "Could not read the submitted form."})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	session, err := h.Auth.Login(r.Context(), email, password)
	if err != nil {
		h.logger().WarnContext(r.Context(), "login failed", "error", err)
		var fields map[string]string
		msg := processError(err, "An error occurred during login.", &fields)
		h.renderAuthPage(w, r, meta, &Flash{Error: msg, Fields: fields, Form: authForm{Email: email}})
		return
	}

	// A browser that signs in again drops its previous session.
	if prev, cErr := r.Cookie(sessionCookieName); cErr == nil && prev.Value != "" && prev.Value != session.ID {
		if err := h.Auth.Logout(r.Context(), prev.Value); err != nil {
			h.logger().WarnContext(r.Context(), "revoke previous session failed", "error", err)
		}
	}
	setSessionCookie(w, r, session.ID, session.ExpiresAt, h.CookieDomain)
	target := capability.LandingPath
	if c, err := r.Cookie(postLoginRedirectCookie); err == nil {
		target = safeRedirectPath(c.Value)
		clearCookie(w, r, postLoginRedirectCookie, "")
	}
	h.logger().InfoContext(r.Context(), "operator signed in", "role", string(session.Role()))

	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout ends the session. Signing out twice is the same as once.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if err := h.Auth.Logout(r.Context(), c.Value); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)
	redirectToLogin(w, r)
}

// ForgotPasswordPage renders the reset-link request form.
func (h *UIHandlers) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.renderAuthPage(w, r, forgotMeta(), nil)
}

// ForgotPassword asks the backend to email a reset link.
func (h *UIHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if _, err := parseForm(r); err != nil {
		h.renderAuthPage(w, r, forgotMeta(), &Flash{Error: "Could not read the submitted form."})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	if err := h.Auth.ForgotPassword(r.Context(), email); err != nil {
		h.logger().WarnContext(r.Context(), "forgot password failed", "error", err)
		var fields map[string]string
		msg := processError(err, "An error occurred during forgot request.", &fields)
		h.renderAuthPage(w, r, forgotMeta(), &Flash{Error: msg, Fields: fields, Form: authForm{Email: email}})
		return
	}
	h.renderAuthPage(w, r, forgotMeta(), &Flash{Success: "If the address is registered, a reset link is on its way."})
}

// ResetPasswordPage renders the new-password form for the token in the link.
func (h *UIHandlers) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	h.renderAuthPage(w, r, resetMeta(), &Flash{Form: authForm{Token: token}})
}

// ResetPassword sets the new password and points the operator at the login page.
func (h *UIHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if _, err := parseForm(r); err != nil {
		h.renderAuthPage(w, r, resetMeta(), &Flash{Error: "Could not read the submitted form."})
		return
	}
	token := r.PostFormValue("token")
	err := h.Auth.ResetPassword(r.Context(), token, r.PostFormValue("password"), r.PostFormValue("confirmPassword"))
	if err != nil {
		h.logger().WarnContext(r.Context(), "reset password failed", "error", err)
		var fields map[string]string
		msg := processError(err, "An error occurred while resetting the password.", &fields)
		h.renderAuthPage(w, r, resetMeta(), &Flash{Error: msg, Fields: fields, Form: authForm{Token: token}})
		return
	}
	h.renderAuthPage(w, r, PageMeta{Title: "Login", PageTitle: "Sign in", CurrentPage: PageLogin},
		&Flash{Success: "Your password has been reset. Please sign in."})
}

func forgotMeta() PageMeta {
	return PageMeta{Title: "Forgot Password", PageTitle: "Forgot password", CurrentPage: PageForgotPassword}
}

func resetMeta() PageMeta {
	return PageMeta{Title: "Reset Password", PageTitle: "Reset password", CurrentPage: PageResetPassword}
}

func (h *UIHandlers) renderAuthPage(w http.ResponseWriter, r *http.Request, meta PageMeta, f *Flash) {
	if f != nil {
		r = r.WithContext(withFlash(r.Context(), *f))
	}
	data := basePageData(r, meta)
	data["ContentTemplate"] = ContentTemplateFor(meta.CurrentPage)
	if err := h.T.RenderAuth(w, r, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "auth page render")
	}
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string, expiresAt time.Time, domain string) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if expiresAt.IsZero() || maxAge <= 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request, domain string) {
	clearCookie(w, r, sessionCookieName, domain)
}

func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// rememberRedirect stores where a signed-out browser was headed.
func rememberRedirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || IsHTMX(r) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     postLoginRedirectCookie,
		Value:    r.URL.RequestURI(),
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectPath accepts only same-origin absolute paths.
func safeRedirectPath(candidate string) string {
	if candidate == "" || !strings.HasPrefix(candidate, "/") || strings.HasPrefix(candidate, "//") ||
		strings.HasPrefix(candidate, "/\\") {
		return capability.LandingPath
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return capability.LandingPath
	}
	if u.Path == LoginPath {
		return capability.LandingPath
	}
	return candidate
}
