package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// Bills lists in-store bills, for one store when storeID is set.
func (c *Client) Bills(ctx context.Context, storeID string) ([]model.Bill, error) {
	path := "/store/get-bills"
	if storeID != "" {
		path += "/" + url.PathEscape(storeID)
	}
	var out []model.Bill
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		result:   atBills,
		fallback: "Failed to load bills.",
	}, &out)
	return out, err
}

// BillDetails returns one bill with its products.
func (c *Client) BillDetails(ctx context.Context, billID string) (model.BillDetails, error) {
	var out model.BillDetails
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/get-bill-details/" + url.PathEscape(billID),
		result:   atResult,
		fallback: "Failed to load bill details.",
	}, &out)
	return out, err
}

// DeletedBills lists bills with delete requests.
func (c *Client) DeletedBills(ctx context.Context) ([]model.Bill, error) {
	var out []model.Bill
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/get-all-deleted-bills",
		result:   atDeletedBills,
		fallback: "Failed to load deleted bills.",
	}, &out)
	return out, err
}

// ValidateBillDelete approves or rejects a store's delete request.
func (c *Client) ValidateBillDelete(ctx context.Context, storeID, billID string, d model.Decision) (string, error) {
	return c.doMessage(ctx, request{
		method: http.MethodPatch,
		path:   "/store/validate-bill-delete-req/",
		query: url.Values{
			"storeId":    {storeID},
			"billId":     {billID},
			"isApproved": {strconv.FormatBool(d.Approve)},
		},
		body:     map[string]string{"ValidatedBillDeleteNote": d.Note},
		fallback: "Failed to validate delete request.",
	}, decisionMessage("Bill delete request", d))
}

// EditRequests lists bill edit requests.
func (c *Client) EditRequests(ctx context.Context) ([]model.BillEditRequest, error) {
	var out []model.BillEditRequest
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/get-bill-edit-reqs",
		result:   atBills,
		fallback: "Failed to load edit requests.",
	}, &out)
	return out, err
}

// EditRequest returns the current bill alongside the requested edit.
func (c *Client) EditRequest(ctx context.Context, id string) (model.BillEditDetail, error) {
	var out model.BillEditDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/get-bill-edit-req-details/" + url.PathEscape(id),
		result:   atResult,
		fallback: "Failed to load edit request.",
	}, &out)
	return out, err
}

// ValidateBillEdit approves or rejects an edit request and returns the
// resulting bill.
func (c *Client) ValidateBillEdit(ctx context.Context, id string, d model.Decision) (model.BillDetails, error) {
	var out model.BillDetails
	err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/store/validate-bill-edit-req/",
		query: url.Values{
			"editBillReqId": {id},
			"isApproved":    {strconv.FormatBool(d.Approve)},
		},
		body:     map[string]string{"validateNote": d.Note},
		result:   atResult,
		fallback: "Failed to validate edit request.",
	}, &out)
	return out, err
}

// UploadInvoice stores the regenerated invoice PDF of an approved edit.
func (c *Client) UploadInvoice(ctx context.Context, billID, editBillReqID string, pdf ports.Upload) (string, error) {
	return c.doMessage(ctx, request{
		method: http.MethodPost,
		path:   "/uploadToS3/updateInvoice",
		form: &multipartForm{fileField: "pdf", file: pdf, fields: map[string]string{
			"billId":        billID,
			"editBillReqId": editBillReqID,
		}},
		fallback: "Failed to upload invoice.",
	}, "Invoice uploaded to S3 successfully!")
}

// DownloadEditRequests exports all edit requests.
func (c *Client) DownloadEditRequests(ctx context.Context) (ports.Download, error) {
	return c.download(ctx, request{
		method:   http.MethodGet,
		path:     "/store/download-bill-edit-reqs",
		fallback: "Failed to download edit requests.",
	})
}

func decisionMessage(subject string, d model.Decision) string {
	if d.Approve {
		return subject + " approved."
	}
	return subject + " rejected."
}
