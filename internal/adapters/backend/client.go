// Package backend implements the ports.Backend interface over the uniform
// retailer's REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 16 << 20

	networkErrorMessage = "Network error. Please check your connection and try again."
	timeoutMessage      = "The server took too long to respond. Please try again."
	sessionMessage      = "Your session has expired. Please log in again."
)

// Config configures the backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the retailer backend. The bearer token is read from the
// request context (see auth.WithToken).
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

var _ ports.Backend = (*Client)(nil)

// NewClient creates a backend client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base URL must be http or https, got %q", base.Scheme)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{base: base, http: hc, logger: logger.With("component", "backend")}, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	form   *multipartForm
	// result selects the payload inside the response envelope; nil decodes the whole body.
	result *Extractor
	// fallback is shown to the operator when the backend sends no message.
	fallback string
	// public calls are made without a bearer token.
	public bool
}

type multipartForm struct {
	fileField string
	file      ports.Upload
	fields    map[string]string
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.form != nil:
		buf, ct, err := encodeMultipart(r.form)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "Could not read the selected file.")
		}
		body, contentType = buf, ct
	case r.body != nil:
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, r.fallback)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, r.fallback)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if !r.public {
		token, ok := domainauth.TokenFromContext(ctx)
		if !ok {
			return nil, apperrors.Unauthorized(sessionMessage)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func encodeMultipart(f *multipartForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range f.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if f.file.Content != nil {
		part, err := w.CreateFormFile(f.fileField, f.file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// do performs r and decodes the selected payload into out (when non-nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	body, err := c.roundTrip(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := r.result.Decode(body, out); err != nil {
		c.logger.WarnContext(ctx, "backend response could not be decoded",
			"method", r.method, "path", r.path, "error", err)
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, r.fallback)
	}
	return nil
}

// doMessage performs r and returns the backend's message, or success when the
// response carries none.
func (c *Client) doMessage(ctx context.Context, r request, success string) (string, error) {
	body, err := c.roundTrip(ctx, r)
	if err != nil {
		return "", err
	}
	if msg := messageOf(body); msg != "" {
		return msg, nil
	}
	return success, nil
}

func (c *Client) roundTrip(ctx context.Context, r request) ([]byte, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, r, err)
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if cerr := resp.Body.Close(); cerr != nil {
		readErr = errors.Join(readErr, fmt.Errorf("close response body: %w", cerr))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(ctx, r, resp.StatusCode, body)
	}
	if readErr != nil {
		return nil, c.transportError(ctx, r, readErr)
	}
	return body, nil
}

// download performs r and hands the open body to the caller.
func (c *Client) download(ctx context.Context, r request) (ports.Download, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return ports.Download{}, err
	}
	req.Header.Set("Accept", "application/octet-stream")
	resp, err := c.http.Do(req)
	if err != nil {
		return ports.Download{}, c.transportError(ctx, r, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
		return ports.Download{}, c.statusError(ctx, r, resp.StatusCode, body)
	}
	return ports.Download{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    attachmentName(resp.Header.Get("Content-Disposition")),
	}, nil
}

func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func (c *Client) transportError(ctx context.Context, r request, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "Request canceled.")
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		c.logger.WarnContext(ctx, "backend request timed out", "method", r.method, "path", r.path)
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, timeoutMessage)
	}
	c.logger.ErrorContext(ctx, "backend transport failure", "method", r.method, "path", r.path, "error", err)
	return apperrors.Wrap(fmt.Errorf("%w: %w", ErrTransport, err), apperrors.ErrCodeUnavailable, networkErrorMessage)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

func (c *Client) statusError(ctx context.Context, r request, status int, body []byte) error {
	apiErr := &APIError{Status: status, Path: r.path, Message: messageOf(body)}
	msg := apiErr.Message
	if msg == "" {
		msg = r.fallback
	}
	c.logger.InfoContext(ctx, "backend returned error status",
		"method", r.method, "path", r.path, "status", status, "message", apiErr.Message)
	return &apperrors.AppError{Code: codeFor(status), Message: msg, Cause: apiErr}
}
