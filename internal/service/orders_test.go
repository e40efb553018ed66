package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/mocks"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

type orderFixture struct {
	orders   *mocks.MockOrderAPI
	renderer *mocks.MockInvoiceRenderer
	sender   *mocks.MockDocumentSender
	audit    *mocks.MockAuditRepository
}

func newOrderService(t *testing.T, withSender bool) (*orderFixture, *OrderService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &orderFixture{
		orders:   mocks.NewMockOrderAPI(ctrl),
		renderer: mocks.NewMockInvoiceRenderer(ctrl),
		sender:   mocks.NewMockDocumentSender(ctrl),
		audit:    mocks.NewMockAuditRepository(ctrl),
	}
	delivery := InvoiceDelivery{Renderer: f.renderer}
	if withSender {
		delivery.Sender = f.sender
	}
	svc := NewOrderService(OrderServiceOptions{
		Orders:   f.orders,
		Delivery: delivery,
		Config:   OrderConfig{Audit: NewAuditor(f.audit, nil)},
	})
	return f, svc
}

func testBox() model.Box {
	return model.Box{
		Length:  decimal.NewFromInt(30),
		Breadth: decimal.NewFromInt(20),
		Height:  decimal.NewFromInt(10),
		Weight:  decimal.RequireFromString("0.5"),
	}
}

func testOrder() model.OrderDetails {
	return model.OrderDetails{
		OrderID:     "ORD-1",
		Status:      model.OrderStatusPending,
		UserDetails: model.UserDetails{Name: "Ravi", PhoneNumber: "N/A"},
		AddressDetails: model.AddressDetails{
			Phone: "9876543210",
		},
	}
}

func TestNewOrderService_RequiresOrders(t *testing.T) {
	assert.Panics(t, func() { NewOrderService(OrderServiceOptions{}) })
}

func TestOrderService_Ship_InvalidBox(t *testing.T) {
	_, svc := newOrderService(t, true)

	box := testBox()
	box.Weight = decimal.Zero
	_, err := svc.Ship(context.Background(), "ORD-1", box)
	require.Error(t, err)
	assert.Equal(t, "Dimensions and weight must be positive numbers.", apperrors.UserMessage(err, ""))
}

func TestOrderService_Ship_AllSteps(t *testing.T) {
	f, svc := newOrderService(t, true)
	ctx := domainauth.WithIdentity(context.Background(), domainauth.Identity{Name: "Asha", Role: domainauth.RoleSuperAdmin})

	gomock.InOrder(
		f.orders.EXPECT().AssignCourier(gomock.Any(), "ORD-1", testBox()).
			Return(model.Shipment{ShipmentID: "SH-9", OrderID: "SR-9"}, nil),
		f.orders.EXPECT().GenerateManifest(gomock.Any(), []string{"SH-9"}).Return("https://x/manifest.pdf", nil),
		f.orders.EXPECT().PrintInvoice(gomock.Any(), []string{"SR-9"}).Return("https://x/invoice.pdf", nil),
		f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(testOrder(), nil),
		f.renderer.EXPECT().RenderOrder(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil),
		f.sender.EXPECT().SendDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc ports.Document) error {
				assert.Equal(t, "9876543210", doc.Phone, "address phone replaces N/A")
				assert.Equal(t, "invoice-ORD-1.pdf", doc.Filename)
				return nil
			}),
	)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Equal(t, model.AuditShipment, e.Action)
			assert.Equal(t, "Asha", e.Operator)
			assert.Equal(t, auditOK, e.Outcome)
			return nil
		})

	report, err := svc.Ship(ctx, "ORD-1", testBox())
	require.NoError(t, err)
	require.Len(t, report.Steps, 5)
	for _, st := range report.Steps {
		assert.Equal(t, StepDone, st.Status, st.Step)
	}
	assert.False(t, report.Failed())
	assert.Equal(t, "https://x/manifest.pdf", report.Steps[1].URL)
	assert.Equal(t, "SH-9", report.Shipment.ShipmentID)
}

func TestOrderService_Ship_StopsAtFailedStep(t *testing.T) {
	f, svc := newOrderService(t, true)

	f.orders.EXPECT().AssignCourier(gomock.Any(), "ORD-1", gomock.Any()).
		Return(model.Shipment{ShipmentID: "SH-9", OrderID: "SR-9"}, nil)
	f.orders.EXPECT().GenerateManifest(gomock.Any(), gomock.Any()).
		Return("", apperrors.Internal("Manifest generated but no URL available."))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Contains(t, e.Outcome, "Manifest generated but no URL available.")
			return errors.New("db down")
		})

	report, err := svc.Ship(context.Background(), "ORD-1", testBox())
	require.NoError(t, err, "audit failures never fail the action")
	require.Len(t, report.Steps, 5)
	assert.Equal(t, StepDone, report.Steps[0].Status)
	assert.Equal(t, StepFailed, report.Steps[1].Status)
	assert.Equal(t, "Manifest generated but no URL available.", report.Steps[1].Message)
	for _, st := range report.Steps[2:] {
		assert.Equal(t, StepSkipped, st.Status)
	}
	assert.Equal(t, StepManifest, report.FailedStep().Step)
}

func TestOrderService_Ship_WithoutSender(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().AssignCourier(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Shipment{ShipmentID: "S", OrderID: "O"}, nil)
	f.orders.EXPECT().GenerateManifest(gomock.Any(), gomock.Any()).Return("m", nil)
	f.orders.EXPECT().PrintInvoice(gomock.Any(), gomock.Any()).Return("i", nil)
	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(testOrder(), nil)
	f.renderer.EXPECT().RenderOrder(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	report, err := svc.Ship(context.Background(), "ORD-1", testBox())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, StepSkipped, report.Steps[4].Status)
	assert.Equal(t, "WhatsApp delivery is not configured.", report.Steps[4].Message)
}

func TestOrderService_Details_ToleratesBoxFailure(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(testOrder(), nil)
	f.orders.EXPECT().Boxes(gomock.Any()).Return(nil, errors.New("boom"))

	view, err := svc.Details(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", view.Order.OrderID)
	assert.Empty(t, view.Boxes)
	assert.False(t, view.Assigned())
}

func TestOrderService_Details_OrderFailure(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(model.OrderDetails{}, apperrors.NotFound("Order not found."))
	f.orders.EXPECT().Boxes(gomock.Any()).Return([]model.Box{testBox()}, nil).AnyTimes()

	_, err := svc.Details(context.Background(), "ORD-1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_LabelRequiresShipment(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(testOrder(), nil)
	_, err := svc.Label(context.Background(), "ORD-1")
	assert.True(t, apperrors.IsValidation(err))

	assigned := testOrder()
	assigned.ShiprocketShipmentID = "SH-1"
	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(assigned, nil)
	f.orders.EXPECT().GenerateLabel(gomock.Any(), []string{"SH-1"}).Return("https://x/label.pdf", nil)
	url, err := svc.Label(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "https://x/label.pdf", url)
}

func TestOrderService_SendInvoice_NotConfigured(t *testing.T) {
	_, svc := newOrderService(t, false)
	err := svc.SendInvoice(context.Background(), "ORD-1")
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestOrderService_CancelledOrders_DefaultsKind(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().CancelledOrders(gomock.Any(), model.CancelKindCancelled, 1, 10).
		Return(model.OrderPage{TotalPages: 2}, nil)
	page, err := svc.CancelledOrders(context.Background(), "bogus", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
}

func refundableOrder() model.OrderDetails {
	o := testOrder()
	o.RefundPaymentStatus = model.RefundStatusPending
	return o
}

func TestOrderService_Refund_Success(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(refundableOrder(), nil)
	f.orders.EXPECT().UpdateRefundStatus(gomock.Any(), "ORD-1").Return("ok", nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := svc.Refund(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "Refund has been processed successfully.", msg)
}

func TestOrderService_Refund_OnlyWhenPending(t *testing.T) {
	f, svc := newOrderService(t, false)

	done := testOrder()
	done.RefundPaymentStatus = "Completed"
	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(done, nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Refund(context.Background(), "ORD-1")
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderService_Refund_Failure(t *testing.T) {
	f, svc := newOrderService(t, false)

	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(refundableOrder(), nil)
	f.orders.EXPECT().UpdateRefundStatus(gomock.Any(), "ORD-1").Return("", errors.New("socket closed"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Equal(t, model.AuditRefund, e.Action)
			assert.NotEqual(t, auditOK, e.Outcome)
			return nil
		})

	_, err := svc.Refund(context.Background(), "ORD-1")
	require.Error(t, err)
	assert.Equal(t, "Failed to process refund.", apperrors.UserMessage(err, ""))
	assert.True(t, apperrors.IsInternal(err))
}

func TestOrderService_Refund_RejectsConcurrentCall(t *testing.T) {
	f, svc := newOrderService(t, false)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.orders.EXPECT().OrderDetails(gomock.Any(), "ORD-1").Return(refundableOrder(), nil)
	f.orders.EXPECT().UpdateRefundStatus(gomock.Any(), "ORD-1").DoAndReturn(
		func(context.Context, string) (string, error) {
			close(entered)
			<-release
			return "ok", nil
		})
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.Refund(context.Background(), "ORD-1")
		errc <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first refund never reached the backend")
	}

	_, err := svc.Refund(context.Background(), "ORD-1")
	require.Error(t, err)
	assert.Equal(t, "Refund is already being processed.", apperrors.UserMessage(err, ""))
	assert.True(t, apperrors.IsConflict(err))

	close(release)
	require.NoError(t, <-errc)

	// the flag clears once the first call returns
	assert.True(t, svc.beginRefund("ORD-1"))
	svc.endRefund("ORD-1")
}
