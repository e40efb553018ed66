package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders   ports.OrderAPI  // Required
	Delivery InvoiceDelivery // Optional: both fields may be nil
	Config   OrderConfig
}

// InvoiceDelivery renders customer invoices and sends them out.
type InvoiceDelivery struct {
	Renderer ports.InvoiceRenderer
	Sender   ports.DocumentSender
}

// OrderConfig holds optional collaborators.
type OrderConfig struct {
	Audit  *Auditor
	Logger *slog.Logger
}

// OrderService covers online orders: listing, shipping and refunds.
type OrderService struct {
	orders   ports.OrderAPI
	renderer ports.InvoiceRenderer
	sender   ports.DocumentSender
	audit    *Auditor
	logger   *slog.Logger

	refundMu  sync.Mutex
	refunding map[string]struct{}
}

// NewOrderService constructs an OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Orders == nil {
		panic("OrderService: Orders is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{
		orders:    opts.Orders,
		renderer:  opts.Delivery.Renderer,
		sender:    opts.Delivery.Sender,
		audit:     opts.Config.Audit,
		logger:    logger.With("component", "order_service"),
		refunding: make(map[string]struct{}),
	}
}

// Orders lists online orders across every product group.
func (s *OrderService) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.Orders(ctx, model.Groups)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// OrderView is the order detail screen: the order plus the predefined boxes
// offered when assigning it to a courier.
type OrderView struct {
	Order model.OrderDetails
	Boxes []model.Box
}

// Assigned reports whether the order already has a courier shipment.
func (v OrderView) Assigned() bool {
	return v.Order.Status == model.OrderStatusAssigned || v.Order.ShiprocketShipmentID != ""
}

// Details fetches the order and the box presets concurrently. A failed box
// lookup only hides the presets.
func (s *OrderService) Details(ctx context.Context, orderID string) (*OrderView, error) {
	var view OrderView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		order, err := s.orders.OrderDetails(gctx, orderID)
		if err != nil {
			return err
		}
		view.Order = order
		return nil
	})
	g.Go(func() error {
		boxes, err := s.orders.Boxes(gctx)
		if err != nil {
			s.logger.WarnContext(ctx, "predefined boxes unavailable", "error", err)
			return nil
		}
		view.Boxes = boxes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}

// StepStatus is the outcome of one shipping step.
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// Shipping steps in execution order.
const (
	StepAssign         = "Assign to courier"
	StepManifest       = "Generate manifest"
	StepCourierInvoice = "Courier invoice"
	StepRenderInvoice  = "Customer invoice"
	StepSendInvoice    = "Send on WhatsApp"
)

var shippingSteps = []string{StepAssign, StepManifest, StepCourierInvoice, StepRenderInvoice, StepSendInvoice}

// StepResult reports one step. URL is set for steps that produce a document.
type StepResult struct {
	Step    string
	Status  StepStatus
	Message string
	URL     string
}

// ShipmentReport lists every shipping step. Completed steps are never rolled back.
type ShipmentReport struct {
	OrderID  string
	Shipment model.Shipment
	Steps    []StepResult
}

// Failed reports whether any step failed.
func (r *ShipmentReport) Failed() bool { return r.FailedStep() != nil }

// FailedStep returns the step that stopped the run, or nil.
func (r *ShipmentReport) FailedStep() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StepFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

func (r *ShipmentReport) done(step, msg, url string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepDone, Message: msg, URL: url})
}

func (r *ShipmentReport) fail(step string, err error, fallback string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepFailed, Message: apperrors.UserMessage(err, fallback)})
}

func (r *ShipmentReport) skipRest(reason string) {
	for _, step := range shippingSteps[len(r.Steps):] {
		r.Steps = append(r.Steps, StepResult{Step: step, Status: StepSkipped, Message: reason})
	}
}

// Ship assigns the order to the courier and runs the follow-up steps. The
// returned error covers invalid input only; step failures are in the report.
func (s *OrderService) Ship(ctx context.Context, orderID string, box model.Box) (*ShipmentReport, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, apperrors.NotFound("Order not found.")
	}
	if !box.Positive() {
		return nil, apperrors.ValidationField("box", "Dimensions and weight must be positive numbers.")
	}

	report := &ShipmentReport{OrderID: orderID}
	defer func() {
		var outcome error
		if st := report.FailedStep(); st != nil {
			outcome = fmt.Errorf("%s: %s", st.Step, st.Message)
		}
		s.audit.Record(ctx, model.AuditShipment, orderID, model.Decision{Approve: true}, outcome)
	}()

	shipment, err := s.orders.AssignCourier(ctx, orderID, box)
	if err != nil {
		report.fail(StepAssign, err, "Failed to assign order to Shiprocket.")
		report.skipRest("Not attempted.")
		return report, nil
	}
	report.Shipment = shipment
	report.done(StepAssign, "Assigned to Shiprocket.", "")

	manifestURL, err := s.orders.GenerateManifest(ctx, []string{shipment.ShipmentID})
	if err != nil {
		report.fail(StepManifest, err, "Failed to generate manifest.")
		report.skipRest("Not attempted.")
		return report, nil
	}
	report.done(StepManifest, "Manifest generated.", manifestURL)

	invoiceURL, err := s.orders.PrintInvoice(ctx, []string{shipment.OrderID})
	if err != nil {
		report.fail(StepCourierInvoice, err, "Error generating invoice.")
		report.skipRest("Not attempted.")
		return report, nil
	}
	report.done(StepCourierInvoice, "Courier invoice ready.", invoiceURL)

	doc, err := s.renderInvoice(ctx, orderID)
	if err != nil {
		report.fail(StepRenderInvoice, err, "Failed to render the customer invoice.")
		report.skipRest("Not attempted.")
		return report, nil
	}
	report.done(StepRenderInvoice, "Customer invoice rendered.", "")

	if s.sender == nil {
		report.skipRest("WhatsApp delivery is not configured.")
		return report, nil
	}
	if err := s.sender.SendDocument(ctx, doc); err != nil {
		report.fail(StepSendInvoice, err, "Error in sending the invoice to WhatsApp.")
		return report, nil
	}
	report.done(StepSendInvoice, "Invoice sent successfully via WhatsApp!", "")
	return report, nil
}

func (s *OrderService) renderInvoice(ctx context.Context, orderID string) (ports.Document, error) {
	if s.renderer == nil {
		return ports.Document{}, apperrors.Unavailable("Invoice rendering is not configured.")
	}
	order, err := s.orders.OrderDetails(ctx, orderID)
	if err != nil {
		return ports.Document{}, err
	}
	pdf, err := s.renderer.RenderOrder(ctx, order)
	if err != nil {
		return ports.Document{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to render the customer invoice.")
	}
	return ports.Document{
		Phone:    order.ContactPhone(),
		Filename: "invoice-" + order.OrderID + ".pdf",
		MIMEType: "application/pdf",
		Content:  pdf,
	}, nil
}

// SendInvoice renders the customer invoice again and re-sends it on WhatsApp.
func (s *OrderService) SendInvoice(ctx context.Context, orderID string) error {
	if s.sender == nil {
		return apperrors.Unavailable("WhatsApp delivery is not configured.")
	}
	doc, err := s.renderInvoice(ctx, orderID)
	if err != nil {
		return err
	}
	return s.sender.SendDocument(ctx, doc)
}

// Label generates the courier label for an assigned order.
func (s *OrderService) Label(ctx context.Context, orderID string) (string, error) {
	order, err := s.orders.OrderDetails(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ShiprocketShipmentID == "" {
		return "", apperrors.Validation("Order has not been assigned to a courier yet.")
	}
	return s.orders.GenerateLabel(ctx, []string{order.ShiprocketShipmentID})
}

// CourierInvoice asks the courier for the invoice of an assigned order.
func (s *OrderService) CourierInvoice(ctx context.Context, orderID string) (string, error) {
	order, err := s.orders.OrderDetails(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ShiprocketOrderID == "" {
		return "", apperrors.Validation("Order has not been assigned to a courier yet.")
	}
	return s.orders.PrintInvoice(ctx, []string{order.ShiprocketOrderID})
}

// Track returns the courier tracking data for an AWB.
func (s *OrderService) Track(ctx context.Context, awb string) (model.Tracking, error) {
	if strings.TrimSpace(awb) == "" {
		return model.Tracking{}, apperrors.NotFound("No tracking number for this order.")
	}
	return s.orders.Track(ctx, awb)
}

// CancelledOrders returns one server-side page of cancelled or refunded orders.
func (s *OrderService) CancelledOrders(ctx context.Context, kind string, page, limit int) (model.OrderPage, error) {
	if kind != model.CancelKindRefunded {
		kind = model.CancelKindCancelled
	}
	return s.orders.CancelledOrders(ctx, kind, max(page, 1), limit)
}

// CancelledOrder fetches a cancelled order for the refund screen.
func (s *OrderService) CancelledOrder(ctx context.Context, orderID string) (model.OrderDetails, error) {
	return s.orders.OrderDetails(ctx, orderID)
}

// Refund marks a cancelled order's refund as paid. Only one refund per order
// may be in flight; a concurrent second call is rejected.
func (s *OrderService) Refund(ctx context.Context, orderID string) (msg string, err error) {
	if !s.beginRefund(orderID) {
		return "", apperrors.Conflict("Refund is already being processed.")
	}
	defer s.endRefund(orderID)
	defer func() {
		s.audit.Record(ctx, model.AuditRefund, orderID, model.Decision{Approve: true}, err)
	}()

	order, err := s.orders.OrderDetails(ctx, orderID)
	if err != nil {
		return "", withMessage(err, "Failed to process refund.")
	}
	if !order.Refundable() {
		return "", apperrors.Validation("Refund is only possible while its status is Pending.")
	}
	if _, err = s.orders.UpdateRefundStatus(ctx, orderID); err != nil {
		return "", withMessage(err, "Failed to process refund.")
	}
	return "Refund has been processed successfully.", nil
}

func (s *OrderService) beginRefund(orderID string) bool {
	s.refundMu.Lock()
	defer s.refundMu.Unlock()
	if _, busy := s.refunding[orderID]; busy {
		return false
	}
	s.refunding[orderID] = struct{}{}
	return true
}

func (s *OrderService) endRefund(orderID string) {
	s.refundMu.Lock()
	delete(s.refunding, orderID)
	s.refundMu.Unlock()
}
