package httpx

import (
	"net/http"
)

// HTMXResponse provides a fluent API for building htmx responses.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX creates a new HTMXResponse.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect sets HX-Redirect and writes 204. Return right after calling it.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Trigger fires a client-side event after the swap.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// PushURL pushes url into the browser history.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	SetHXPushURL(h.w, url)
	return h
}

// Retarget moves the swap to selector using strategy, e.g. the inline error
// banner of a list so the rows already on screen stay put.
func (h *HTMXResponse) Retarget(selector, strategy string) *HTMXResponse {
	SetHXRetarget(h.w, selector)
	if strategy != "" {
		SetHXReswap(h.w, strategy)
	}
	return h
}

// Discard answers a superseded request. htmx performs no swap on 204.
func (h *HTMXResponse) Discard() {
	h.w.WriteHeader(http.StatusNoContent)
}
