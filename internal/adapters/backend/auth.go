package backend

import (
	"context"
	"net/http"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const loginFallback = "An error occurred during login"

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	var res ports.LoginResult
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/dashboard/dashboardLogin",
		body:     map[string]string{"email": email, "password": password},
		result:   atLoginData,
		fallback: loginFallback,
		public:   true,
	}, &res)
	if err != nil {
		return ports.LoginResult{}, err
	}
	if res.AccessToken == "" {
		return ports.LoginResult{}, apperrors.Unauthorized(loginFallback)
	}
	return res, nil
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/dashboard/forgot-password",
		body:     map[string]string{"email": email},
		fallback: "Failed to send reset link. Please try again.",
		public:   true,
	}, nil)
}

// ResetPassword sets a new password using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/dashboard/reset-password",
		body:     map[string]string{"token": token, "newPassword": newPassword},
		fallback: "Failed to reset password. The link may have expired.",
		public:   true,
	}, nil)
}
