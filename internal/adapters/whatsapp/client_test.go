package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

func newTestClient(t *testing.T, h http.Handler, retries int) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{
		GraphURL:      srv.URL,
		PhoneNumberID: "PN1",
		AccessToken:   "wa-token",
		RetryLimit:    retries,
		Timeout:       time.Second,
	})
	require.NoError(t, err)
	return c
}

func sampleDoc() ports.Document {
	return ports.Document{
		Phone:    "98765 43210",
		Filename: "invoice-ORD-1.pdf",
		MIMEType: "application/pdf",
		Content:  []byte("%PDF-1.3 test"),
	}
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{AccessToken: "x"})
	require.Error(t, err)
	_, err = NewClient(Config{PhoneNumberID: "1"})
	require.Error(t, err)

	c, err := NewClient(Config{PhoneNumberID: "1", AccessToken: "x", RetryLimit: -3})
	require.NoError(t, err)
	assert.Equal(t, defaultGraphURL, c.graphURL)
	assert.Equal(t, defaultTemplate, c.templateName)
	assert.Zero(t, c.retryLimit)
}

func TestRecipient(t *testing.T) {
	c, err := NewClient(Config{PhoneNumberID: "1", AccessToken: "x"})
	require.NoError(t, err)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "9876543210", want: "919876543210"},
		{in: "+91 98765-43210", want: "919876543210"},
		{in: "919876543210", want: "919876543210"},
		{in: "", wantErr: true},
		{in: "N/A", wantErr: true},
		{in: "12345", wantErr: true},
	}
	for _, tt := range tests {
		got, err := c.recipient(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			assert.True(t, apperrors.IsValidation(err))
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSendDocument(t *testing.T) {
	var sent map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/v13.0/PN1/media", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer wa-token", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whatsapp", r.FormValue("messaging_product"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		raw, _ := io.ReadAll(f)
		assert.Equal(t, "%PDF-1.3 test", string(raw))
		assert.Equal(t, "invoice-ORD-1.pdf", hdr.Filename)
		assert.Equal(t, "application/pdf", hdr.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"id":"MEDIA-1"}`)
	})
	mux.HandleFunc("/v18.0/PN1/messages", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		_, _ = io.WriteString(w, `{"messages":[{"id":"wamid.1"}]}`)
	})

	c := newTestClient(t, mux, 0)
	require.NoError(t, c.SendDocument(context.Background(), sampleDoc()))

	require.NotNil(t, sent)
	assert.Equal(t, "whatsapp", sent["messaging_product"])
	assert.Equal(t, "919876543210", sent["to"])
	assert.Equal(t, "template", sent["type"])
	tpl := sent["template"].(map[string]any)
	assert.Equal(t, "invoice_template", tpl["name"])
	header := tpl["components"].([]any)[0].(map[string]any)
	param := header["parameters"].([]any)[0].(map[string]any)
	assert.Equal(t, "document", param["type"])
	assert.Equal(t, "MEDIA-1", param["document"].(map[string]any)["id"])
}

func TestSendDocumentRetriesServerErrors(t *testing.T) {
	var uploads atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v13.0/PN1/media", func(w http.ResponseWriter, _ *http.Request) {
		if uploads.Add(1) == 1 {
			http.Error(w, "temporarily unavailable", http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"id":"MEDIA-2"}`)
	})
	mux.HandleFunc("/v18.0/PN1/messages", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	c := newTestClient(t, mux, 2)
	require.NoError(t, c.SendDocument(context.Background(), sampleDoc()))
	assert.Equal(t, int32(2), uploads.Load())
}

func TestSendDocumentIncapableRecipient(t *testing.T) {
	var messages atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v13.0/PN1/media", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"MEDIA-3"}`)
	})
	mux.HandleFunc("/v18.0/PN1/messages", func(w http.ResponseWriter, _ *http.Request) {
		messages.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Recipient phone number is incapable of receiving this message","code":131026}}`)
	})

	c := newTestClient(t, mux, 3)
	err := c.SendDocument(context.Background(), sampleDoc())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "98765 43210 incapable of receiving WhatsApp message.", apperrors.UserMessage(err, ""))
	assert.Equal(t, int32(1), messages.Load(), "client errors are not retried")

	var gerr *GraphError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 131026, gerr.Code)
}

func TestSendDocumentGenericFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v13.0/PN1/media", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	})
	c := newTestClient(t, mux, 1)

	err := c.SendDocument(context.Background(), sampleDoc())
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Equal(t, "Error in sending the invoice to WhatsApp.", apperrors.UserMessage(err, ""))
}

func TestSendDocumentStopsOnCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v13.0/PN1/media", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	c := newTestClient(t, mux, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := c.SendDocument(ctx, sampleDoc())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSendDocumentRejectsEmptyContent(t *testing.T) {
	c := newTestClient(t, http.NewServeMux(), 0)
	doc := sampleDoc()
	doc.Content = nil
	err := c.SendDocument(context.Background(), doc)
	assert.True(t, apperrors.IsValidation(err))
}
