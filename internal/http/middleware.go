package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
)

// LoginPath is where unauthenticated operators are sent.
const LoginPath = "/login"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush keeps streamed downloads flowing through the logger.
func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionLoader loads the server-side session behind a cookie value.
type SessionLoader interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Protect is the access gate. The session is loaded on every request; an
// unauthenticated browser is redirected to the login page and receives no
// screen content.
func Protect(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := getSessionFromRequest(r, sessions)
			if !session.IsAuthenticated() {
				rememberRedirect(w, r)
				redirectToLogin(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), session)))
		})
	}
}

// RedirectIfAuthenticated sends signed-in operators away from the login page.
func RedirectIfAuthenticated(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if getSessionFromRequest(r, sessions).IsAuthenticated() {
				if IsHTMX(r) {
					HTMX(w).Redirect(capability.LandingPath)
					return
				}
				http.Redirect(w, r, capability.LandingPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCapability renders notFound unless the operator's role holds c.
// It must run inside Protect.
func RequireCapability(c capability.Capability, notFound http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ResolutionFromContext(r.Context()).Has(c) {
				notFound(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getSessionFromRequest(r *http.Request, sessions SessionLoader) *domainauth.Session {
	if sessions == nil {
		return nil
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, err := sessions.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

// redirectToLogin sends browsers to the login page. htmx requests get an
// HX-Redirect so the whole document navigates instead of swapping a fragment.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		HTMX(w).Redirect(LoginPath)
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
