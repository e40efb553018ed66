package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsHistoryRestore reports true when htmx is restoring history.
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// WantsPartial returns true when only the content region should be rendered.
// History restores need the whole document.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// HXTarget returns the id of the element being updated.
func HXTarget(r *http.Request) string { return r.Header.Get("Hx-Target") }

// SetHXRedirect instructs htmx to navigate the browser to url.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXPushURL pushes url into the browser history for the new content.
func SetHXPushURL(w http.ResponseWriter, url string) { w.Header().Set("Hx-Push-Url", url) }

// SetHXRetarget swaps the response into selector instead of the requested target.
func SetHXRetarget(w http.ResponseWriter, selector string) { w.Header().Set("Hx-Retarget", selector) }

// SetHXReswap overrides the swap strategy of the request.
func SetHXReswap(w http.ResponseWriter, strategy string) { w.Header().Set("Hx-Reswap", strategy) }

// SetHXTrigger triggers a client-side event after the swap, merging with any
// event already set on the response.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}
	events := map[string]any{}
	if prev := w.Header().Get("Hx-Trigger"); prev != "" {
		if err := json.Unmarshal([]byte(prev), &events); err != nil {
			events = map[string]any{}
		}
	}
	events[event] = value
	b, err := json.Marshal(events)
	if err != nil {
		w.Header().Set("Hx-Trigger", "{\""+event+"\":true}")
		return
	}
	w.Header().Set("Hx-Trigger", string(b))
}
