package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/mocks"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

type storeFixture struct {
	stores *mocks.MockStoreAPI
	bills  *mocks.MockBillAPI
	audit  *mocks.MockAuditRepository
}

func newStoreService(t *testing.T) (*storeFixture, *StoreService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &storeFixture{
		stores: mocks.NewMockStoreAPI(ctrl),
		bills:  mocks.NewMockBillAPI(ctrl),
		audit:  mocks.NewMockAuditRepository(ctrl),
	}
	svc := NewStoreService(StoreServiceOptions{
		Stores: f.stores,
		Bills:  f.bills,
		Config: StoreConfig{Audit: NewAuditor(f.audit, nil)},
	})
	return f, svc
}

func testStore() model.Store {
	return model.Store{
		StoreID:       "S1",
		StoreName:     "Banjara Hills",
		StoreAddress:  "Road 12",
		City:          "Hyderabad",
		Pincode:       "500034",
		State:         "Telangana",
		UserName:      "banjara",
		PhoneNo:       "9876543210",
		EmailID:       "banjara@example.com",
		StoreOverview: model.StoreOverview{CommissionPercentage: decimal.NewFromInt(10)},
	}
}

func inputFrom(s model.Store) model.StoreInput {
	return model.StoreInput{
		StoreName:            s.StoreName,
		StoreAddress:         s.StoreAddress,
		City:                 s.City,
		Pincode:              s.Pincode,
		State:                s.State,
		CommissionPercentage: int(s.StoreOverview.CommissionPercentage.IntPart()),
		UserName:             s.UserName,
		PhoneNo:              s.PhoneNo,
		EmailID:              s.EmailID,
	}
}

func TestNewStoreService_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() { NewStoreService(StoreServiceOptions{}) })
}

func TestStoreService_StoreDetails_ToleratesSecondaryFailures(t *testing.T) {
	f, svc := newStoreService(t)

	f.stores.EXPECT().StoreDetails(gomock.Any(), "S1").Return(testStore(), nil)
	f.bills.EXPECT().Bills(gomock.Any(), "S1").Return(nil, errors.New("timeout"))
	f.stores.EXPECT().AssignedInventories(gomock.Any(), "S1").
		Return([]model.AssignedInventory{{AssignedInventoryID: "A1"}}, nil)

	view, err := svc.StoreDetails(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "Banjara Hills", view.Store.StoreName)
	assert.Empty(t, view.Bills)
	assert.Len(t, view.Assigned, 1)
}

func TestStoreService_StoreDetails_StoreRequired(t *testing.T) {
	f, svc := newStoreService(t)

	f.stores.EXPECT().StoreDetails(gomock.Any(), "S1").Return(model.Store{}, apperrors.NotFound("Store not found"))
	f.bills.EXPECT().Bills(gomock.Any(), "S1").Return(nil, nil).AnyTimes()
	f.stores.EXPECT().AssignedInventories(gomock.Any(), "S1").Return(nil, nil).AnyTimes()

	_, err := svc.StoreDetails(context.Background(), "S1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStoreService_UpdateStore_NoChanges(t *testing.T) {
	f, svc := newStoreService(t)
	store := testStore()

	f.stores.EXPECT().StoreDetails(gomock.Any(), "S1").Return(store, nil)

	_, err := svc.UpdateStore(context.Background(), "S1", inputFrom(store))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "No changes to update.", apperrors.UserMessage(err, ""))
}

func TestStoreService_UpdateStore(t *testing.T) {
	f, svc := newStoreService(t)
	store := testStore()
	in := inputFrom(store)
	in.City = "Secunderabad"

	f.stores.EXPECT().StoreDetails(gomock.Any(), "S1").Return(store, nil)
	f.stores.EXPECT().UpdateStore(gomock.Any(), "S1", in).Return("Store updated successfully", nil)

	msg, err := svc.UpdateStore(context.Background(), "S1", in)
	require.NoError(t, err)
	assert.Equal(t, "Store updated successfully", msg)
}

func TestStoreService_UpdateStore_PasswordOnlyIsAChange(t *testing.T) {
	f, svc := newStoreService(t)
	store := testStore()
	in := inputFrom(store)
	in.Password = "secret1"

	f.stores.EXPECT().StoreDetails(gomock.Any(), "S1").Return(store, nil)
	f.stores.EXPECT().UpdateStore(gomock.Any(), "S1", in).Return("ok", nil)

	_, err := svc.UpdateStore(context.Background(), "S1", in)
	require.NoError(t, err)
}

func TestStoreService_AssignInventory_RequiresCSV(t *testing.T) {
	_, svc := newStoreService(t)

	cases := []ports.Upload{
		{},
		{Filename: "stock.xlsx", Content: strings.NewReader("x")},
	}
	for _, up := range cases {
		_, err := svc.AssignInventory(context.Background(), "S1", up)
		require.Error(t, err)
		assert.Equal(t, "file", apperrors.GetField(err))
	}
}

func TestStoreService_AssignInventory(t *testing.T) {
	f, svc := newStoreService(t)
	up := ports.Upload{Filename: "stock.CSV", Content: strings.NewReader("styleCoat,quantity\n")}

	f.stores.EXPECT().AssignInventory(gomock.Any(), "S1", up).Return("Inventory assigned", nil)

	msg, err := svc.AssignInventory(context.Background(), "S1", up)
	require.NoError(t, err)
	assert.Equal(t, "Inventory assigned", msg)
}

func TestStoreService_AssignedInventories(t *testing.T) {
	f, svc := newStoreService(t)

	f.stores.EXPECT().AssignedInventories(gomock.Any(), "").Return([]model.AssignedInventory{{AssignedInventoryID: "A1"}}, nil)
	f.stores.EXPECT().StoreNames(gomock.Any()).Return([]model.StoreName{{StoreID: "S1"}}, nil)

	list, err := svc.AssignedInventories(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Len(t, list.Stores, 1)
}

func TestStoreService_RejectRaisedInventory_RequiresNote(t *testing.T) {
	_, svc := newStoreService(t)

	_, err := svc.RejectRaisedInventory(context.Background(), "R1", " ")
	require.Error(t, err)
	assert.Equal(t, "note", apperrors.GetField(err))
}

func TestStoreService_RejectRaisedInventory_AuditsNote(t *testing.T) {
	f, svc := newStoreService(t)

	f.stores.EXPECT().RejectRaisedInventory(gomock.Any(), "R1").Return("Request rejected", nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.Equal(t, model.AuditRaisedInventory, e.Action)
			assert.False(t, e.Approved)
			assert.Equal(t, "short of stock", e.Note)
			assert.Equal(t, auditOK, e.Outcome)
			return nil
		})

	msg, err := svc.RejectRaisedInventory(context.Background(), "R1", "short of stock")
	require.NoError(t, err)
	assert.Equal(t, "Request rejected", msg)
}

func TestStoreService_ApproveRaisedInventory(t *testing.T) {
	f, svc := newStoreService(t)

	f.stores.EXPECT().ApproveRaisedInventory(gomock.Any(), "R1").Return("", apperrors.Conflict("Already approved"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e model.AuditEntry) error {
			assert.True(t, e.Approved)
			assert.Contains(t, e.Outcome, "Already approved")
			return nil
		})

	_, err := svc.ApproveRaisedInventory(context.Background(), "R1")
	assert.True(t, apperrors.IsConflict(err))
}
