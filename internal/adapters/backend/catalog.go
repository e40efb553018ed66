package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// Quotes lists bulk quote requests.
func (c *Client) Quotes(ctx context.Context) ([]model.Quote, error) {
	var out []model.Quote
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/getQuotes",
		fallback: "Failed to load quotes.",
	}, &out)
	return out, err
}

// Quote returns one quote with its products.
func (c *Client) Quote(ctx context.Context, id string) (model.QuoteDetail, error) {
	var out model.QuoteDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/getQuoteDetails/" + url.PathEscape(id),
		fallback: "No quote details found.",
	}, &out)
	return out, err
}

// Coupons lists every coupon.
func (c *Client) Coupons(ctx context.Context) ([]model.Coupon, error) {
	var out []model.Coupon
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/coupon/all-coupons-data",
		result:   atCoupons,
		fallback: "Failed to load coupons.",
	}, &out)
	return out, err
}

// Contacts lists contact form submissions.
func (c *Client) Contacts(ctx context.Context) ([]model.ContactForm, error) {
	var out []model.ContactForm
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/get-contacts",
		result:   atData,
		fallback: "Failed to load contact submissions.",
	}, &out)
	return out, err
}

// DownloadContacts exports contact submissions as CSV.
func (c *Client) DownloadContacts(ctx context.Context) (ports.Download, error) {
	return c.download(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/download-contacts",
		fallback: "Failed to download contacts.",
	})
}
