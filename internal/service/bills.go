package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// BillServiceOptions groups dependencies for BillService.
type BillServiceOptions struct {
	Bills  ports.BillAPI  // Required
	Stores ports.StoreAPI // Required: store names for the filters
	Config BillConfig
}

// BillConfig holds optional collaborators.
type BillConfig struct {
	Renderer ports.InvoiceRenderer
	Audit    *Auditor
	Logger   *slog.Logger
}

// BillService covers store bills and the moderation of their edit and
// delete requests.
type BillService struct {
	bills    ports.BillAPI
	stores   ports.StoreAPI
	renderer ports.InvoiceRenderer
	audit    *Auditor
	logger   *slog.Logger
}

// NewBillService constructs a BillService.
func NewBillService(opts BillServiceOptions) *BillService {
	if opts.Bills == nil {
		panic("BillService: Bills is required")
	}
	if opts.Stores == nil {
		panic("BillService: Stores is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BillService{
		bills:    opts.Bills,
		stores:   opts.Stores,
		renderer: opts.Config.Renderer,
		audit:    opts.Config.Audit,
		logger:   logger.With("component", "bill_service"),
	}
}

// BillList is a list of bills with the store names for the filter control.
type BillList struct {
	Bills  []model.Bill
	Stores []model.StoreName
}

// Bills lists bills, optionally for one store, alongside the store names.
func (s *BillService) Bills(ctx context.Context, storeID string) (*BillList, error) {
	return s.withStores(ctx, func(ctx context.Context) ([]model.Bill, error) {
		return s.bills.Bills(ctx, storeID)
	})
}

// DeletedBills lists bills with a delete request, alongside the store names.
func (s *BillService) DeletedBills(ctx context.Context) (*BillList, error) {
	return s.withStores(ctx, s.bills.DeletedBills)
}

func (s *BillService) withStores(ctx context.Context, list func(context.Context) ([]model.Bill, error)) (*BillList, error) {
	var out BillList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bills, err := list(gctx)
		if err != nil {
			return err
		}
		out.Bills = bills
		return nil
	})
	g.Go(func() error {
		stores, err := s.stores.StoreNames(gctx)
		if err != nil {
			s.logger.WarnContext(ctx, "store names unavailable", "error", err)
			return nil
		}
		out.Stores = stores
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bill fetches one bill with its products.
func (s *BillService) Bill(ctx context.Context, billID string) (model.BillDetails, error) {
	return s.bills.BillDetails(ctx, billID)
}

// BillInvoice renders the invoice PDF of a bill.
func (s *BillService) BillInvoice(ctx context.Context, billID string) ([]byte, string, error) {
	bill, err := s.bills.BillDetails(ctx, billID)
	if err != nil {
		return nil, "", err
	}
	return s.render(ctx, bill)
}

func (s *BillService) render(ctx context.Context, bill model.BillDetails) ([]byte, string, error) {
	if s.renderer == nil {
		return nil, "", apperrors.Unavailable("Invoice rendering is not configured.")
	}
	pdf, err := s.renderer.RenderBill(ctx, bill)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to generate the invoice.")
	}
	return pdf, invoiceFilename(bill), nil
}

func invoiceFilename(bill model.BillDetails) string {
	name := bill.InvoiceNo
	if name == "" {
		name = "invoice-" + bill.BillID
	}
	return name + ".pdf"
}

// requireNote validates a moderation decision before any backend call.
func requireNote(d model.Decision) (model.Decision, error) {
	d.Note = strings.TrimSpace(d.Note)
	if d.Note == "" {
		return d, apperrors.ValidationField("note", "Please enter a note before submitting.")
	}
	return d, nil
}

// DecideDelete approves or rejects a bill delete request. The note is required.
func (s *BillService) DecideDelete(ctx context.Context, storeID, billID string, d model.Decision) (msg string, err error) {
	d, err = requireNote(d)
	if err != nil {
		return "", err
	}
	defer func() { s.audit.Record(ctx, model.AuditBillDelete, billID, d, err) }()

	msg, err = s.bills.ValidateBillDelete(ctx, storeID, billID, d)
	if err != nil {
		return "", fmt.Errorf("validate bill delete: %w", err)
	}
	return msg, nil
}

// EditRequests lists bill edit requests.
func (s *BillService) EditRequests(ctx context.Context) ([]model.BillEditRequest, error) {
	return s.bills.EditRequests(ctx)
}

// EditRequest fetches the current bill and the requested edit.
func (s *BillService) EditRequest(ctx context.Context, id string) (model.BillEditDetail, error) {
	return s.bills.EditRequest(ctx, id)
}

// EditInvoice renders the invoice the requested edit would produce.
func (s *BillService) EditInvoice(ctx context.Context, id string) ([]byte, string, error) {
	detail, err := s.bills.EditRequest(ctx, id)
	if err != nil {
		return nil, "", err
	}
	bill := detail.RequestedBillEdit
	if bill.BillID == "" {
		bill = detail.CurrentBill
	}
	return s.render(ctx, bill)
}

// EditOutcome is the result of moderating an edit request. UploadError is
// set when the approval succeeded but the regenerated invoice was not stored.
type EditOutcome struct {
	Message     string
	Bill        model.BillDetails
	UploadError string
}

// DecideEdit approves or rejects a bill edit request. On approval the
// updated invoice is rendered and uploaded; an upload failure does not undo
// the approval.
func (s *BillService) DecideEdit(ctx context.Context, id string, d model.Decision) (out *EditOutcome, err error) {
	d, err = requireNote(d)
	if err != nil {
		return nil, err
	}
	defer func() { s.audit.Record(ctx, model.AuditBillEdit, id, d, err) }()

	bill, err := s.bills.ValidateBillEdit(ctx, id, d)
	if err != nil {
		return nil, fmt.Errorf("validate bill edit: %w", err)
	}
	out = &EditOutcome{Bill: bill, Message: "Bill Edit Request rejected."}
	if !d.Approve {
		return out, nil
	}

	out.Message = "Bill Edit Request validated successfully!"
	if uploadErr := s.uploadInvoice(ctx, id, bill); uploadErr != nil {
		s.logger.WarnContext(ctx, "approved edit without invoice upload", "edit_request_id", id, "error", uploadErr)
		out.UploadError = apperrors.UserMessage(uploadErr, "Failed to upload the updated invoice.")
	}
	return out, nil
}

func (s *BillService) uploadInvoice(ctx context.Context, editID string, bill model.BillDetails) error {
	pdf, name, err := s.render(ctx, bill)
	if err != nil {
		return err
	}
	_, err = s.bills.UploadInvoice(ctx, bill.BillID, editID, ports.Upload{
		Filename: strings.TrimSuffix(name, ".pdf") + "edited.pdf",
		Content:  bytes.NewReader(pdf),
	})
	return err
}

// DownloadEditRequests exports the edit requests as a file.
func (s *BillService) DownloadEditRequests(ctx context.Context) (ports.Download, error) {
	return s.bills.DownloadEditRequests(ctx)
}

// History returns recorded decisions for a bill or request.
func (s *BillService) History(ctx context.Context, resourceID string) []model.AuditEntry {
	entries, err := s.audit.History(ctx, resourceID)
	if err != nil {
		s.logger.WarnContext(ctx, "audit history unavailable", "resource_id", resourceID, "error", err)
		return nil
	}
	return entries
}
