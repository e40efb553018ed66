package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
)

const raisedTabAll = "All"

//nolint:gochecknoglobals // static tab declarations
var raisedTabs = listview.Tabs{Default: raisedTabAll, Allowed: model.RaisedInventoryTabs}

// RaisedInventories renders stock requests raised by stores.
func (h *UIHandlers) RaisedInventories(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.RaisedInventory]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Raised Inventory Requests", PageTitle: "Raised Inventory Requests", CurrentPage: PageRaisedInventory},
		BasePath:     "/raised-inventory",
		Tabs:         raisedTabs,
		PageSize:     pageSizeRaised,
		ItemsKey:     "Requests",
		ErrorMessage: "Failed to fetch raised inventory requests.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.RaisedInventory, error) {
			return h.Stores.RaisedInventories(ctx)
		},
		Filter: func(q listview.Query) listview.Predicate[model.RaisedInventory] {
			if q.Tab == raisedTabAll {
				return nil
			}
			return listview.FieldEquals(func(ri model.RaisedInventory) string { return ri.Status }, q.Tab)
		},
	})
}

// RaisedInventoryDetail renders one stock request. The ?draft= size filter
// only narrows DRAFT requests and defaults to approved sizes.
func (h *UIHandlers) RaisedInventoryDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	draft := r.URL.Query().Get("draft")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Raised Inventory " + id, PageTitle: "Raised Inventory Request", CurrentPage: PageRaisedInventoryDetail},
		ErrorMessage: "Failed to fetch raised inventory request.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["RequestID"] = id
			detail, err := h.Stores.RaisedInventory(ctx, id)
			if err != nil {
				return err
			}
			data["Detail"] = detail
			data["Lines"] = detail.Lines(draft)
			if detail.Status == model.StatusDraft {
				data["DraftFilters"] = draftFilterLinks(id, model.NormalizeDraftFilter(draft))
			}
			return nil
		},
	})
}

func draftFilterLinks(id, current string) []FilterOption {
	base := "/raised-inventory/" + url.PathEscape(id)
	opts := make([]FilterOption, 0, len(model.DraftFilters))
	for _, f := range model.DraftFilters {
		opts = append(opts, FilterOption{
			Label:    f,
			Value:    f,
			URL:      base + "?draft=" + url.QueryEscape(f),
			Selected: current == f,
		})
	}
	return opts
}

// ApproveRaisedInventory accepts a stock request.
func (h *UIHandlers) ApproveRaisedInventory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	HandleAction(h, ActionOpts[struct{}]{
		W:            w,
		R:            r,
		Render:       h.RaisedInventoryDetail,
		ErrorMessage: "Failed to approve inventory request.",
		Do: func(ctx context.Context, _ struct{}) (string, error) {
			msg, err := h.Stores.ApproveRaisedInventory(ctx, id)
			return orDefault(msg, "Inventory request approved."), err
		},
	})
}

// RejectRaisedInventory declines a stock request; a note is required.
func (h *UIHandlers) RejectRaisedInventory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	HandleAction(h, ActionOpts[decisionForm]{
		W:            w,
		R:            r,
		Parse:        formParser[decisionForm](noteMessages),
		Render:       h.RaisedInventoryDetail,
		ErrorMessage: "Failed to reject inventory request.",
		KeepForm:     true,
		Do: func(ctx context.Context, in decisionForm) (string, error) {
			msg, err := h.Stores.RejectRaisedInventory(ctx, id, in.Note)
			return orDefault(msg, "Inventory request rejected."), err
		},
	})
}
