package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jhaverenterprises/uniform-admin/internal/http/validation"
)

// formErrorKey carries a parse failure that belongs to no single field.
const formErrorKey = "_form"

// ActionParser reads and validates the posted form. A non-empty error map
// stops the action before any backend call.
type ActionParser[T any] func(r *http.Request) (T, map[string]string)

// ActionOpts contains all options needed to run a detail screen action.
type ActionOpts[T any] struct {
	W http.ResponseWriter
	R *http.Request
	// Parse reads the form. Optional; without it the zero T is passed to Do.
	Parse ActionParser[T]
	// Do performs the single backend call and returns the success message.
	Do func(ctx context.Context, in T) (string, error)
	// Render re-renders the screen the action was posted from. It runs with
	// the outcome in the request context.
	Render http.HandlerFunc
	// ErrorMessage is shown when Do fails without an operator-facing message.
	ErrorMessage string
	// KeepForm echoes the parsed input back into the form on failure.
	KeepForm bool
	// Extra is filled by Do with results the re-rendered screen shows,
	// whether the action succeeded or not. Optional.
	Extra map[string]any
}

// HandleAction validates, performs one backend call and re-renders the
// screen: a success banner and toast on success, the inline error on failure
// with the screen state otherwise untouched.
func HandleAction[T any](h *UIHandlers, opts ActionOpts[T]) {
	var in T
	if opts.Parse != nil {
		var fields map[string]string
		in, fields = opts.Parse(opts.R)
		if len(fields) > 0 {
			msg := errMsgFixBelow
			if general, ok := fields[formErrorKey]; ok {
				msg = general
				delete(fields, formErrorKey)
			}
			f := Flash{Error: msg, Fields: fields}
			if opts.KeepForm {
				f.Form = in
			}
			h.rerender(opts.W, opts.R, opts.Render, f)
			return
		}
	}

	msg, err := opts.Do(opts.R.Context(), in)
	if err != nil {
		if h.handleUnauthorized(opts.W, opts.R, err) {
			return
		}
		h.logger().WarnContext(opts.R.Context(), "action failed", "path", opts.R.URL.Path, "error", err)
		var fields map[string]string
		f := Flash{Error: processError(err, opts.ErrorMessage, &fields), Extra: opts.Extra}
		f.Fields = fields
		if opts.KeepForm {
			f.Form = in
		}
		triggerToast(opts.W, f.Error, "error")
		h.rerender(opts.W, opts.R, opts.Render, f)
		return
	}

	triggerToast(opts.W, msg, "success")
	h.rerender(opts.W, opts.R, opts.Render, Flash{Success: msg, Extra: opts.Extra})
}

func (h *UIHandlers) rerender(w http.ResponseWriter, r *http.Request, render http.HandlerFunc, f Flash) {
	render(w, r.WithContext(withFlash(r.Context(), f)))
}

// parseForm parses the posted body, urlencoded or multipart.
func parseForm(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return r.PostForm, nil
}

// formParser decodes and validates the posted form into T.
func formParser[T any](msgs validation.Messages) ActionParser[T] {
	return func(r *http.Request) (T, map[string]string) {
		var in T
		values, err := parseForm(r)
		if err != nil {
			return in, map[string]string{formErrorKey: "Could not read the submitted form."}
		}
		errs := parseAndValidate(values, &in, msgs)
		return in, errs
	}
}
