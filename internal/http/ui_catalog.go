package httpx

import (
	"context"
	"net/http"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

//nolint:gochecknoglobals // static tab declarations
var couponTabs = listview.Tabs{Default: model.CouponPending, Allowed: model.CouponTabs}

// Coupons renders issued coupons by status.
func (h *UIHandlers) Coupons(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Coupon]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Coupons", PageTitle: "Coupons", CurrentPage: PageCoupons},
		BasePath:     "/coupon",
		Tabs:         couponTabs,
		TabLabels:    map[string]string{model.CouponPending: "Pending", model.CouponExpired: "Expired", model.CouponUsed: "Used"},
		PageSize:     pageSizeCoupons,
		ItemsKey:     "Coupons",
		ErrorMessage: "Failed to load coupons.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.Coupon, error) {
			return h.Catalog.Coupons(ctx)
		},
		Filter: func(q listview.Query) listview.Predicate[model.Coupon] {
			return listview.FieldEquals(func(c model.Coupon) string { return c.Status }, q.Tab)
		},
	})
}

// Quotes renders quote requests.
func (h *UIHandlers) Quotes(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Quote]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Quotes", PageTitle: "Quote Requests", CurrentPage: PageQuotes},
		BasePath:     "/quote",
		PageSize:     pageSizeQuotes,
		ItemsKey:     "Quotes",
		ErrorMessage: "Failed to load quotes.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.Quote, error) {
			return h.Catalog.Quotes(ctx)
		},
	})
}

// QuoteDetail renders one quote request.
func (h *UIHandlers) QuoteDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("quoteId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Quote " + id, PageTitle: "Quote Details", CurrentPage: PageQuote},
		ErrorMessage: "Failed to load quote details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			quote, err := h.Catalog.Quote(ctx, id)
			if err != nil {
				return err
			}
			data["Quote"] = quote
			return nil
		},
	})
}

// Contacts renders website contact submissions.
func (h *UIHandlers) Contacts(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.ContactForm]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Contact Form Data", PageTitle: "Contact Form Data", CurrentPage: PageContacts},
		BasePath:     "/form-data",
		PageSize:     pageSizeContacts,
		ItemsKey:     "Contacts",
		ErrorMessage: "Failed to load contact form data.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.ContactForm, error) {
			return h.Catalog.Contacts(ctx)
		},
	})
}

// DownloadContacts streams the contact submissions as CSV.
func (h *UIHandlers) DownloadContacts(w http.ResponseWriter, r *http.Request) {
	h.streamDownload(w, r, DownloadOpts{
		Fetch: func(ctx context.Context) (ports.Download, error) {
			return h.Catalog.DownloadContacts(ctx)
		},
		Filename:     "contact-form-data.csv",
		OnError:      h.Contacts,
		ErrorMessage: "Failed to download contact form data.",
	})
}
