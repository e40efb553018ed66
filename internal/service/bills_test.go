package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/mocks"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

type billFixture struct {
	bills    *mocks.MockBillAPI
	stores   *mocks.MockStoreAPI
	renderer *mocks.MockInvoiceRenderer
	audit    *mocks.MockAuditRepository
}

func newBillService(t *testing.T) (*billFixture, *BillService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &billFixture{
		bills:    mocks.NewMockBillAPI(ctrl),
		stores:   mocks.NewMockStoreAPI(ctrl),
		renderer: mocks.NewMockInvoiceRenderer(ctrl),
		audit:    mocks.NewMockAuditRepository(ctrl),
	}
	svc := NewBillService(BillServiceOptions{
		Bills:  f.bills,
		Stores: f.stores,
		Config: BillConfig{Renderer: f.renderer, Audit: NewAuditor(f.audit, nil)},
	})
	return f, svc
}

func TestBillService_DecideEdit_RequiresNote(t *testing.T) {
	// no expectations: any backend call fails the test
	_, svc := newBillService(t)

	for _, note := range []string{"", "   "} {
		_, err := svc.DecideEdit(context.Background(), "E1", model.Decision{Approve: true, Note: note})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "note", apperrors.GetField(err))
	}
}

func TestBillService_DecideDelete_RequiresNote(t *testing.T) {
	_, svc := newBillService(t)

	_, err := svc.DecideDelete(context.Background(), "S1", "B1", model.Decision{Approve: false})
	assert.Equal(t, "note", apperrors.GetField(err))
}

func TestBillService_DecideEdit_ApproveUploadsInvoice(t *testing.T) {
	f, svc := newBillService(t)
	updated := model.BillDetails{Bill: model.Bill{BillID: "B1"}, InvoiceNo: "INV-7"}

	f.bills.EXPECT().ValidateBillEdit(gomock.Any(), "E1", model.Decision{Approve: true, Note: "ok"}).Return(updated, nil)
	f.renderer.EXPECT().RenderBill(gomock.Any(), updated).Return([]byte("%PDF-edited"), nil)
	f.bills.EXPECT().UploadInvoice(gomock.Any(), "B1", "E1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, up ports.Upload) (string, error) {
			assert.Equal(t, "INV-7edited.pdf", up.Filename)
			raw, err := io.ReadAll(up.Content)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-edited", string(raw))
			return "Invoice uploaded to S3 successfully!", nil
		})
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Equal(t, model.AuditBillEdit, e.Action)
			assert.Equal(t, "E1", e.ResourceID)
			assert.True(t, e.Approved)
			assert.Equal(t, "ok", e.Note)
			return nil
		})

	out, err := svc.DecideEdit(context.Background(), "E1", model.Decision{Approve: true, Note: "  ok "})
	require.NoError(t, err)
	assert.Equal(t, "Bill Edit Request validated successfully!", out.Message)
	assert.Empty(t, out.UploadError)
}

func TestBillService_DecideEdit_UploadFailureReportedSeparately(t *testing.T) {
	f, svc := newBillService(t)
	updated := model.BillDetails{Bill: model.Bill{BillID: "B1"}}

	f.bills.EXPECT().ValidateBillEdit(gomock.Any(), "E1", gomock.Any()).Return(updated, nil)
	f.renderer.EXPECT().RenderBill(gomock.Any(), updated).Return([]byte("%PDF"), nil)
	f.bills.EXPECT().UploadInvoice(gomock.Any(), "B1", "E1", gomock.Any()).
		Return("", apperrors.Unavailable("Failed to upload invoice."))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.DecideEdit(context.Background(), "E1", model.Decision{Approve: true, Note: "fine"})
	require.NoError(t, err)
	assert.Equal(t, "Bill Edit Request validated successfully!", out.Message)
	assert.Equal(t, "Failed to upload invoice.", out.UploadError)
}

func TestBillService_DecideEdit_RejectSkipsUpload(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().ValidateBillEdit(gomock.Any(), "E1", model.Decision{Approve: false, Note: "wrong qty"}).
		Return(model.BillDetails{}, nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	out, err := svc.DecideEdit(context.Background(), "E1", model.Decision{Note: "wrong qty"})
	require.NoError(t, err)
	assert.Equal(t, "Bill Edit Request rejected.", out.Message)
}

func TestBillService_DecideEdit_BackendFailure(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().ValidateBillEdit(gomock.Any(), "E1", gomock.Any()).
		Return(model.BillDetails{}, apperrors.Conflict("Request already validated"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Contains(t, e.Outcome, "Request already validated")
			return nil
		})

	_, err := svc.DecideEdit(context.Background(), "E1", model.Decision{Approve: true, Note: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Request already validated", apperrors.UserMessage(err, ""))
}

func TestBillService_DecideDelete(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().ValidateBillDelete(gomock.Any(), "S1", "B1", model.Decision{Approve: true, Note: "dup"}).
		Return("Bill delete request approved.", nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := svc.DecideDelete(context.Background(), "S1", "B1", model.Decision{Approve: true, Note: "dup"})
	require.NoError(t, err)
	assert.Equal(t, "Bill delete request approved.", msg)
}

func TestBillService_Bills_StoreNamesOptional(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().Bills(gomock.Any(), "S1").Return([]model.Bill{{BillID: "B1"}}, nil)
	f.stores.EXPECT().StoreNames(gomock.Any()).Return(nil, errors.New("timeout"))

	list, err := svc.Bills(context.Background(), "S1")
	require.NoError(t, err)
	assert.Len(t, list.Bills, 1)
	assert.Empty(t, list.Stores)
}

func TestBillService_DeletedBills(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().DeletedBills(gomock.Any()).Return([]model.Bill{{BillID: "B1", DeleteReqStatus: model.StatusPending}}, nil)
	f.stores.EXPECT().StoreNames(gomock.Any()).Return([]model.StoreName{{StoreID: "S1", StoreName: "Banjara"}}, nil)

	list, err := svc.DeletedBills(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Bills, 1)
	assert.Equal(t, "Banjara", list.Stores[0].StoreName)
}

func TestBillService_EditInvoice_FallsBackToCurrentBill(t *testing.T) {
	f, svc := newBillService(t)
	current := model.BillDetails{Bill: model.Bill{BillID: "B1"}, InvoiceNo: "INV-1"}

	f.bills.EXPECT().EditRequest(gomock.Any(), "E1").Return(model.BillEditDetail{CurrentBill: current}, nil)
	f.renderer.EXPECT().RenderBill(gomock.Any(), current).Return([]byte("%PDF"), nil)

	pdf, name, err := svc.EditInvoice(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "INV-1.pdf", name)
	assert.Equal(t, []byte("%PDF"), pdf)
}

func TestBillService_BillInvoice_RenderFailure(t *testing.T) {
	f, svc := newBillService(t)

	f.bills.EXPECT().BillDetails(gomock.Any(), "B1").Return(model.BillDetails{Bill: model.Bill{BillID: "B1"}}, nil)
	f.renderer.EXPECT().RenderBill(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

	_, _, err := svc.BillInvoice(context.Background(), "B1")
	require.Error(t, err)
	assert.Equal(t, "Failed to generate the invoice.", apperrors.UserMessage(err, ""))
}

func TestBillService_HistoryDisabledWithoutRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewBillService(BillServiceOptions{
		Bills:  mocks.NewMockBillAPI(ctrl),
		Stores: mocks.NewMockStoreAPI(ctrl),
	})
	assert.Nil(t, svc.History(context.Background(), "B1"))
}
