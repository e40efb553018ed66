package httpx

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// DownloadOpts describes one file download.
type DownloadOpts struct {
	// Fetch opens the backend stream.
	Fetch func(ctx context.Context) (ports.Download, error)
	// Filename is used when the backend does not name the file.
	Filename string
	// OnError re-renders the screen the download was started from.
	OnError      http.HandlerFunc
	ErrorMessage string
}

// streamDownload copies a backend file to the browser as an attachment. On
// failure nothing is streamed and the originating screen shows the error.
func (h *UIHandlers) streamDownload(w http.ResponseWriter, r *http.Request, opts DownloadOpts) {
	dl, err := opts.Fetch(r.Context())
	if err != nil {
		h.downloadFailed(w, r, opts, err)
		return
	}
	defer func() {
		if cerr := dl.Body.Close(); cerr != nil {
			h.logger().DebugContext(r.Context(), "closing download body", "error", cerr)
		}
	}()

	name := dl.Filename
	if name == "" {
		name = opts.Filename
	}
	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	setAttachmentHeaders(w, contentType, name)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, dl.Body); err != nil {
		h.logger().WarnContext(r.Context(), "download interrupted", "path", r.URL.Path, "error", err)
	}
}

// writePDF sends an in-memory PDF as an attachment.
func (h *UIHandlers) writePDF(w http.ResponseWriter, r *http.Request, pdf []byte, filename string) {
	setAttachmentHeaders(w, "application/pdf", filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.logger().WarnContext(r.Context(), "pdf write failed", "path", r.URL.Path, "error", err)
	}
}

func (h *UIHandlers) downloadFailed(w http.ResponseWriter, r *http.Request, opts DownloadOpts, err error) {
	if h.handleUnauthorized(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), "download failed", "path", r.URL.Path, "error", err)
	msg := processError(err, opts.ErrorMessage, nil)
	if opts.OnError == nil {
		http.Error(w, msg, DetermineErrorStatus(err))
		return
	}
	triggerToast(w, msg, "error")
	h.rerender(w, r, opts.OnError, Flash{Error: msg})
}

func setAttachmentHeaders(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": path.Base(strings.ReplaceAll(filename, "\\", "/")),
	}))
	w.Header().Set("Cache-Control", "no-store")
}

// errNoFile marks an upload form submitted without its file.
var errNoFile = errors.New("no file uploaded")

// formFile reads one uploaded file from a multipart form. The caller closes
// the returned file.
func formFile(r *http.Request, field string) (ports.Upload, multipart.File, error) {
	if _, err := parseForm(r); err != nil {
		return ports.Upload{}, nil, apperrors.ValidationField(field, "Could not read the uploaded file.")
	}
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return ports.Upload{}, nil, errNoFile
		}
		return ports.Upload{}, nil, apperrors.ValidationField(field, "Could not read the uploaded file.")
	}
	return ports.Upload{Filename: hdr.Filename, Content: f}, f, nil
}
