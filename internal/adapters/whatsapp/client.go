// Package whatsapp delivers invoice documents to customers through the
// WhatsApp Cloud API: the file is uploaded as media, then referenced from an
// approved document template.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const (
	mediaAPIVersion    = "v13.0"
	messageAPIVersion  = "v18.0"
	defaultGraphURL    = "https://graph.facebook.com"
	defaultTemplate    = "invoice_template"
	defaultCountryCode = "91"
)

// Config captures the Cloud API settings we need.
type Config struct {
	GraphURL      string
	PhoneNumberID string
	AccessToken   string
	TemplateName  string
	CountryCode   string
	Timeout       time.Duration
	RetryLimit    int
	Client        *http.Client
}

// Client sends documents through one WhatsApp business number.
type Client struct {
	graphURL      string
	phoneNumberID string
	accessToken   string
	templateName  string
	countryCode   string
	retryLimit    int
	client        *http.Client
}

var _ ports.DocumentSender = (*Client)(nil)

// NewClient builds a WhatsApp client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.PhoneNumberID) == "" {
		return nil, errors.New("whatsapp phone number id is required")
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("whatsapp access token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		graphURL:      strings.TrimRight(fallbackString(strings.TrimSpace(cfg.GraphURL), defaultGraphURL), "/"),
		phoneNumberID: strings.TrimSpace(cfg.PhoneNumberID),
		accessToken:   strings.TrimSpace(cfg.AccessToken),
		templateName:  fallbackString(strings.TrimSpace(cfg.TemplateName), defaultTemplate),
		countryCode:   fallbackString(strings.TrimSpace(cfg.CountryCode), defaultCountryCode),
		retryLimit:    max(cfg.RetryLimit, 0),
		client:        hc,
	}, nil
}

// SendDocument uploads doc and sends it with the invoice template.
func (c *Client) SendDocument(ctx context.Context, doc ports.Document) error {
	to, err := c.recipient(doc.Phone)
	if err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return apperrors.Validation("Nothing to send: the document is empty.")
	}

	var mediaID string
	err = c.withRetry(ctx, func() error {
		id, uerr := c.uploadMedia(ctx, doc)
		mediaID = id
		return uerr
	})
	if err != nil {
		return c.deliveryError(doc.Phone, err)
	}

	err = c.withRetry(ctx, func() error {
		return c.sendTemplate(ctx, to, mediaID, doc.Filename)
	})
	if err != nil {
		return c.deliveryError(doc.Phone, err)
	}
	return nil
}

// recipient normalises a customer phone to an international number.
func (c *Client) recipient(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) > 10 && strings.HasPrefix(digits, c.countryCode) {
		digits = digits[len(c.countryCode):]
	}
	if len(digits) != 10 {
		return "", apperrors.ValidationField("phone", "Customer phone number is missing or invalid.")
	}
	return c.countryCode + digits, nil
}

func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	attempts := c.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) {
			return err
		}
		if attempt < attempts-1 {
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return lastErr
}

func (c *Client) uploadMedia(ctx context.Context, doc ports.Document) (string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := w.WriteField("messaging_product", "whatsapp"); err != nil {
		return "", fmt.Errorf("write media form: %w", err)
	}
	mimeType := fallbackString(doc.MIMEType, "application/pdf")
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fallbackString(doc.Filename, "invoice.pdf")))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("create media part: %w", err)
	}
	if _, err := part.Write(doc.Content); err != nil {
		return "", fmt.Errorf("write media part: %w", err)
	}
	if err := w.WriteField("type", mimeType); err != nil {
		return "", fmt.Errorf("write media form: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close media form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/media", c.graphURL, mediaAPIVersion, c.phoneNumberID)
	var out struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, endpoint, w.FormDataContentType(), buf, &out); err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("upload media: response carried no media id")
	}
	return out.ID, nil
}

func (c *Client) sendTemplate(ctx context.Context, to, mediaID, filename string) error {
	msg := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template": map[string]any{
			"name":     c.templateName,
			"language": map[string]string{"code": "en"},
			"components": []map[string]any{{
				"type": "header",
				"parameters": []map[string]any{{
					"type": "document",
					"document": map[string]string{
						"id":       mediaID,
						"filename": fallbackString(filename, "invoice.pdf"),
					},
				}},
			}},
		},
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode whatsapp message: %w", err)
	}
	endpoint := fmt.Sprintf("%s/%s/%s/messages", c.graphURL, messageAPIVersion, c.phoneNumberID)
	if err := c.post(ctx, endpoint, "application/json", bytes.NewReader(body), nil); err != nil {
		return fmt.Errorf("send template: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("create whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return handleErrorResponse(resp)
	}
	return decodeSuccess(resp, out)
}

func decodeSuccess(resp *http.Response, out any) error {
	var decodeErr error
	if out != nil {
		decodeErr = json.NewDecoder(resp.Body).Decode(out)
		if decodeErr != nil {
			decodeErr = fmt.Errorf("decode whatsapp response: %w", decodeErr)
		}
	}
	if _, err := io.Copy(io.Discard, resp.Body); err != nil && decodeErr == nil {
		decodeErr = fmt.Errorf("drain whatsapp response body: %w", err)
	}
	if err := resp.Body.Close(); err != nil {
		return errors.Join(decodeErr, fmt.Errorf("close response body: %w", err))
	}
	return decodeErr
}

// GraphError is an error response from the Cloud API.
type GraphError struct {
	Status  int
	Code    int
	Message string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("whatsapp api %d (code %d): %s", e.Status, e.Code, e.Message)
}

// Incapable reports whether the recipient cannot receive WhatsApp messages.
func (e *GraphError) Incapable() bool {
	return strings.Contains(strings.ToLower(e.Message), "incapable")
}

func handleErrorResponse(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return errors.Join(
				fmt.Errorf("read whatsapp error response: %w", readErr),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("read whatsapp error response: %w", readErr)
	}
	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}

	gerr := &GraphError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error"`
	}
	if json.Unmarshal(respBody, &envelope) == nil && envelope.Error.Message != "" {
		gerr.Message = envelope.Error.Message
		gerr.Code = envelope.Error.Code
	}
	return gerr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var gerr *GraphError
	if errors.As(err, &gerr) {
		return gerr.Status == http.StatusTooManyRequests || gerr.Status >= 500
	}
	return true
}

func (c *Client) deliveryError(phone string, err error) error {
	var gerr *GraphError
	if errors.As(err, &gerr) && gerr.Incapable() {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation,
			fmt.Sprintf("%s incapable of receiving WhatsApp message.", phone))
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "Error in sending the invoice to WhatsApp.")
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
