package httpx

import (
	"context"
	"net/http"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/http/validation"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

//nolint:gochecknoglobals // static tab declarations
var (
	editTabs = listview.Tabs{
		Default: model.EditTabPending,
		Allowed: []string{model.EditTabPending, model.EditTabApproved, model.EditTabRejected},
	}
	deletedTabs = listview.Tabs{
		Default: model.StatusPending,
		Allowed: []string{model.StatusPending, model.StatusRejected, model.StatusApproved},
	}
	noteMessages = validation.Messages{"note": "Please enter a note for this decision."}
)

// decisionForm is the note posted with an approve or reject.
type decisionForm struct {
	Note    string `form:"note"    validate:"required"`
	StoreID string `form:"storeId"`
}

// StoreBills renders in-store bills with a store filter.
func (h *UIHandlers) StoreBills(w http.ResponseWriter, r *http.Request) {
	var stores []model.StoreName
	HandleList(ListHandlerOpts[model.Bill]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Store Bills", PageTitle: "Store Bills", CurrentPage: PageStoreBills},
		BasePath:     "/store-bills",
		PageSize:     pageSizeStoreBills,
		ItemsKey:     "Bills",
		ErrorMessage: "Failed to fetch bills.",
		Fetch: func(ctx context.Context, q listview.Query) ([]model.Bill, error) {
			list, err := h.Bills.Bills(ctx, q.Store)
			if err != nil {
				return nil, err
			}
			stores = list.Stores
			return list.Bills, nil
		},
		Enrich: func(b *TemplateDataBuilder, q listview.Query) {
			b.With("StoreOptions", storeOptions(q, "/store-bills", stores))
		},
	})
}

// StoreBillDetail renders one bill with its products.
func (h *UIHandlers) StoreBillDetail(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("billId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Bill " + billID, PageTitle: "Bill Details", CurrentPage: PageStoreBill},
		ErrorMessage: "Failed to fetch bill details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.loadBill(ctx, billID, data)
		},
	})
}

func (h *UIHandlers) loadBill(ctx context.Context, billID string, data map[string]any) error {
	data["BillID"] = billID
	bill, err := h.Bills.Bill(ctx, billID)
	if err != nil {
		return err
	}
	data["Bill"] = bill
	data["History"] = h.Bills.History(ctx, billID)
	return nil
}

// StoreBillInvoice downloads the invoice PDF of a bill.
func (h *UIHandlers) StoreBillInvoice(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("billId")
	h.pdfDownload(w, r, h.StoreBillDetail, "Failed to generate the invoice.", func(ctx context.Context) ([]byte, string, error) {
		return h.Bills.BillInvoice(ctx, billID)
	})
}

func (h *UIHandlers) pdfDownload(w http.ResponseWriter, r *http.Request, onError http.HandlerFunc, errMsg string,
	render func(ctx context.Context) ([]byte, string, error),
) {
	pdf, name, err := render(r.Context())
	if err != nil {
		h.downloadFailed(w, r, DownloadOpts{OnError: onError, ErrorMessage: errMsg}, err)
		return
	}
	h.writePDF(w, r, pdf, name)
}

// EditBills renders bill edit requests by decision state.
func (h *UIHandlers) EditBills(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.BillEditRequest]{
		Handler:  h,
		W:        w,
		R:        r,
		Meta:     PageMeta{Title: "Requested Edit Bills", PageTitle: "Requested Edit Bills", CurrentPage: PageEditBills},
		BasePath: "/req-edit-bills",
		Tabs:     editTabs,
		TabLabels: map[string]string{
			model.EditTabPending:  "Pending",
			model.EditTabApproved: "Approved",
			model.EditTabRejected: "Rejected",
		},
		PageSize:     pageSizeEditBills,
		ItemsKey:     "Requests",
		ErrorMessage: "Failed to fetch bill edit requests.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.BillEditRequest, error) {
			return h.Bills.EditRequests(ctx)
		},
		Filter: func(q listview.Query) listview.Predicate[model.BillEditRequest] {
			return listview.FieldEquals(model.BillEditRequest.Tab, q.Tab)
		},
	})
}

// DownloadEditBills exports the edit requests.
func (h *UIHandlers) DownloadEditBills(w http.ResponseWriter, r *http.Request) {
	h.streamDownload(w, r, DownloadOpts{
		Fetch: func(ctx context.Context) (ports.Download, error) {
			return h.Bills.DownloadEditRequests(ctx)
		},
		Filename:     "bill-edit-requests.csv",
		OnError:      h.EditBills,
		ErrorMessage: "Failed to download bill edit requests.",
	})
}

// EditBillDetail renders the current bill next to the requested edit.
func (h *UIHandlers) EditBillDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Edit Request " + id, PageTitle: "Bill Edit Request", CurrentPage: PageEditBill},
		ErrorMessage: "Failed to fetch bill edit request.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["RequestID"] = id
			detail, err := h.Bills.EditRequest(ctx, id)
			if err != nil {
				return err
			}
			data["Detail"] = detail
			data["History"] = h.Bills.History(ctx, id)
			return nil
		},
	})
}

// ApproveEditBill approves an edit request and stores the updated invoice.
func (h *UIHandlers) ApproveEditBill(w http.ResponseWriter, r *http.Request) {
	h.decideEdit(w, r, true)
}

// RejectEditBill rejects an edit request.
func (h *UIHandlers) RejectEditBill(w http.ResponseWriter, r *http.Request) {
	h.decideEdit(w, r, false)
}

// decideEdit requires a note; without one no backend call is made.
func (h *UIHandlers) decideEdit(w http.ResponseWriter, r *http.Request, approve bool) {
	id := r.PathValue("id")
	extra := map[string]any{}
	HandleAction(h, ActionOpts[decisionForm]{
		W:            w,
		R:            r,
		Parse:        formParser[decisionForm](noteMessages),
		Render:       h.EditBillDetail,
		ErrorMessage: "Failed to validate bill edit request.",
		KeepForm:     true,
		Extra:        extra,
		Do: func(ctx context.Context, in decisionForm) (string, error) {
			out, err := h.Bills.DecideEdit(ctx, id, model.Decision{Approve: approve, Note: in.Note})
			if err != nil {
				return "", err
			}
			if out.UploadError != "" {
				extra["UploadError"] = out.UploadError
			}
			return out.Message, nil
		},
	})
}

// EditBillInvoice downloads the invoice of the requested edit.
func (h *UIHandlers) EditBillInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.pdfDownload(w, r, h.EditBillDetail, "Failed to generate the invoice.", func(ctx context.Context) ([]byte, string, error) {
		return h.Bills.EditInvoice(ctx, id)
	})
}

// DeletedBills renders bill delete requests by state with a store filter.
func (h *UIHandlers) DeletedBills(w http.ResponseWriter, r *http.Request) {
	var stores []model.StoreName
	HandleList(ListHandlerOpts[model.Bill]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Deleted Bills", PageTitle: "Deleted Bills", CurrentPage: PageDeletedBills},
		BasePath:     "/deleted-bills",
		Tabs:         deletedTabs,
		PageSize:     pageSizeDeletedBills,
		ItemsKey:     "Bills",
		ErrorMessage: "Failed to fetch deleted bills.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.Bill, error) {
			list, err := h.Bills.DeletedBills(ctx)
			if err != nil {
				return nil, err
			}
			stores = list.Stores
			return list.Bills, nil
		},
		Filter: func(q listview.Query) listview.Predicate[model.Bill] {
			return listview.All(
				listview.FieldEquals(func(b model.Bill) string { return b.DeleteReqStatus }, q.Tab),
				listview.FieldEquals(func(b model.Bill) string { return b.StoreID }, q.Store),
			)
		},
		Enrich: func(b *TemplateDataBuilder, q listview.Query) {
			b.With("StoreOptions", storeOptions(q, "/deleted-bills", stores))
		},
	})
}

// DeletedBillDetail renders a bill awaiting a delete decision.
func (h *UIHandlers) DeletedBillDetail(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("billId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Deleted Bill " + billID, PageTitle: "Bill Delete Request", CurrentPage: PageDeletedBill},
		ErrorMessage: "Failed to fetch bill details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.loadBill(ctx, billID, data)
		},
	})
}

// ApproveDeletedBill approves a delete request.
func (h *UIHandlers) ApproveDeletedBill(w http.ResponseWriter, r *http.Request) {
	h.decideDelete(w, r, true)
}

// RejectDeletedBill rejects a delete request.
func (h *UIHandlers) RejectDeletedBill(w http.ResponseWriter, r *http.Request) {
	h.decideDelete(w, r, false)
}

func (h *UIHandlers) decideDelete(w http.ResponseWriter, r *http.Request, approve bool) {
	billID := r.PathValue("billId")
	HandleAction(h, ActionOpts[decisionForm]{
		W:            w,
		R:            r,
		Parse:        formParser[decisionForm](noteMessages),
		Render:       h.DeletedBillDetail,
		ErrorMessage: "Failed to validate bill delete request.",
		KeepForm:     true,
		Do: func(ctx context.Context, in decisionForm) (string, error) {
			return h.Bills.DecideDelete(ctx, in.StoreID, billID, model.Decision{Approve: approve, Note: in.Note})
		},
	})
}
