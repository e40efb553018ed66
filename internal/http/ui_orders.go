package httpx

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/service"
)

//nolint:gochecknoglobals // static tab declarations
var (
	orderTabs  = listview.Tabs{Default: model.OrderStatusPending, Allowed: []string{model.OrderStatusPending, model.OrderStatusAssigned}}
	cancelTabs = listview.Tabs{Default: model.CancelKindCancelled, Allowed: []string{model.CancelKindCancelled, model.CancelKindRefunded}}
)

// OnlineOrders renders the online orders list with Pending and Assigned tabs.
func (h *UIHandlers) OnlineOrders(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Order]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Online Orders", PageTitle: "Online Orders", CurrentPage: PageOnlineOrders},
		BasePath:     "/online-orders",
		Tabs:         orderTabs,
		PageSize:     pageSizeOrders,
		ItemsKey:     "Orders",
		ErrorMessage: "Failed to load orders.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.Order, error) {
			return h.Orders.Orders(ctx)
		},
		Filter: func(q listview.Query) listview.Predicate[model.Order] {
			return listview.FieldEquals(func(o model.Order) string { return o.Status }, q.Tab)
		},
	})
}

// OrderDetail renders one order with its shipping actions.
func (h *UIHandlers) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Order " + orderID, PageTitle: "Order Details", CurrentPage: PageOrder},
		ErrorMessage: "Failed to load order details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["OrderID"] = orderID
			view, err := h.Orders.Details(ctx, orderID)
			if err != nil {
				return err
			}
			data["View"] = view
			data["Order"] = view.Order
			if awb := view.Order.ShiprocketAWBCode; awb != "" {
				// Tracking is optional on this screen.
				if tracking, err := h.Orders.Track(ctx, awb); err == nil {
					data["Tracking"] = tracking
				}
			}
			return nil
		},
	})
}

// shipForm holds the box dimensions posted from the order screen. Preset
// boxes post their stored dimensions through the same fields.
type shipForm struct {
	Length  decimal.Decimal `form:"length"`
	Breadth decimal.Decimal `form:"breadth"`
	Height  decimal.Decimal `form:"height"`
	Weight  decimal.Decimal `form:"weight"`
}

func (f shipForm) box() model.Box {
	return model.Box{Length: f.Length, Breadth: f.Breadth, Height: f.Height, Weight: f.Weight}
}

func parseShipForm(r *http.Request) (shipForm, map[string]string) {
	in, errs := formParser[shipForm](nil)(r)
	if len(errs) == 0 && !in.box().Positive() {
		errs = map[string]string{"box": "Dimensions and weight must be positive numbers."}
	}
	return in, errs
}

// ShipOrder assigns the order to the courier and runs the follow-up steps.
// Every step is reported; a failed step stops the ones after it.
func (h *UIHandlers) ShipOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	extra := map[string]any{}
	HandleAction(h, ActionOpts[shipForm]{
		W:            w,
		R:            r,
		Parse:        parseShipForm,
		Render:       h.OrderDetail,
		ErrorMessage: "Failed to assign order to Shiprocket.",
		KeepForm:     true,
		Extra:        extra,
		Do: func(ctx context.Context, in shipForm) (string, error) {
			report, err := h.Orders.Ship(ctx, orderID, in.box())
			if err != nil {
				return "", err
			}
			extra["Shipment"] = report
			if st := report.FailedStep(); st != nil {
				return "", apperrors.Unavailable(st.Step + ": " + st.Message)
			}
			return "Order shipped. " + lastStepMessage(report), nil
		},
	})
}

func lastStepMessage(report *service.ShipmentReport) string {
	for i := len(report.Steps) - 1; i >= 0; i-- {
		if report.Steps[i].Status == service.StepDone {
			return report.Steps[i].Message
		}
	}
	return ""
}

// OrderLabel generates the courier label and links it on the order screen.
func (h *UIHandlers) OrderLabel(w http.ResponseWriter, r *http.Request) {
	h.documentAction(w, r, "Label generated.", "Failed to generate label.", h.Orders.Label)
}

// OrderCourierInvoice fetches the courier invoice link.
func (h *UIHandlers) OrderCourierInvoice(w http.ResponseWriter, r *http.Request) {
	h.documentAction(w, r, "Invoice generated.", "Error generating invoice.", h.Orders.CourierInvoice)
}

func (h *UIHandlers) documentAction(w http.ResponseWriter, r *http.Request, okMsg, errMsg string,
	fetch func(ctx context.Context, orderID string) (string, error),
) {
	orderID := r.PathValue("orderId")
	extra := map[string]any{}
	HandleAction(h, ActionOpts[struct{}]{
		W:            w,
		R:            r,
		Render:       h.OrderDetail,
		ErrorMessage: errMsg,
		Extra:        extra,
		Do: func(ctx context.Context, _ struct{}) (string, error) {
			url, err := fetch(ctx, orderID)
			if err != nil {
				return "", err
			}
			extra["DocumentURL"] = url
			return okMsg, nil
		},
	})
}

// SendOrderInvoice re-sends the customer invoice over WhatsApp.
func (h *UIHandlers) SendOrderInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	HandleAction(h, ActionOpts[struct{}]{
		W:            w,
		R:            r,
		Render:       h.OrderDetail,
		ErrorMessage: "Error in sending the invoice to WhatsApp.",
		Do: func(ctx context.Context, _ struct{}) (string, error) {
			if err := h.Orders.SendInvoice(ctx, orderID); err != nil {
				return "", err
			}
			return "Invoice sent successfully via WhatsApp!", nil
		},
	})
}

// Tracking renders courier tracking for an AWB.
func (h *UIHandlers) Tracking(w http.ResponseWriter, r *http.Request) {
	awb := r.PathValue("awb")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Tracking " + awb, PageTitle: "Shipment Tracking", CurrentPage: PageTracking},
		ErrorMessage: "Failed to load tracking details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["AWB"] = awb
			tracking, err := h.Orders.Track(ctx, awb)
			if err != nil {
				return err
			}
			data["Tracking"] = tracking
			return nil
		},
	})
}

// CancelOrders renders cancelled and refunded orders, paged by the backend.
func (h *UIHandlers) CancelOrders(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Order]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Cancel Orders", PageTitle: "Cancelled Orders", CurrentPage: PageCancelOrders},
		BasePath:     "/cancel-orders",
		Tabs:         cancelTabs,
		TabLabels:    map[string]string{model.CancelKindCancelled: "Cancelled", model.CancelKindRefunded: "Refunded"},
		PageSize:     pageSizeCancelled,
		ItemsKey:     "Orders",
		ErrorMessage: "Failed to load cancelled orders.",
		FetchPage: func(ctx context.Context, q listview.Query) ([]model.Order, int, error) {
			page, err := h.Orders.CancelledOrders(ctx, q.Tab, q.Page, pageSizeCancelled)
			if err != nil {
				return nil, 0, err
			}
			return page.Orders, page.TotalPages, nil
		},
	})
}

// CancelDetail renders a cancelled order with its refund action.
func (h *UIHandlers) CancelDetail(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Cancelled Order " + orderID, PageTitle: "Cancelled Order", CurrentPage: PageCancelOrder},
		ErrorMessage: "Failed to load order details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["OrderID"] = orderID
			order, err := h.Orders.CancelledOrder(ctx, orderID)
			if err != nil {
				return err
			}
			data["Order"] = order
			return nil
		},
	})
}

// RefundOrder marks the refund of a cancelled order as processed.
func (h *UIHandlers) RefundOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	HandleAction(h, ActionOpts[struct{}]{
		W:            w,
		R:            r,
		Render:       h.CancelDetail,
		ErrorMessage: "Failed to process refund.",
		Do: func(ctx context.Context, _ struct{}) (string, error) {
			return h.Orders.Refund(ctx, orderID)
		},
	})
}
