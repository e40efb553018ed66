package httpx

import (
	"context"
	"net/http"
)

// Overview renders the sales summary trimmed to the operator's role.
func (h *UIHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Overview", PageTitle: "Overview", CurrentPage: PageOverview},
		ErrorMessage: "Failed to load the overview.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			view, err := h.Catalog.Overview(ctx, GetSessionFromContext(ctx).Role())
			if err != nil {
				return err
			}
			data["Overview"] = view
			return nil
		},
	})
}
