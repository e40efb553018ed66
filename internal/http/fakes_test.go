package httpx

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
	"github.com/jhaverenterprises/uniform-admin/internal/service"
)

var errNotStubbed = errors.New("not stubbed")

type fakeAuth struct {
	mu        sync.Mutex
	sessions  map[string]*domainauth.Session
	loggedOut []string
	LoginFn   func(ctx context.Context, email, password string) (*domainauth.Session, error)
	ForgotFn  func(ctx context.Context, email string) error
	ResetFn   func(ctx context.Context, token, password, confirm string) error
	GetErr    error
	LogoutErr error
	getCalls  int
}

func newFakeAuth(sessions ...*domainauth.Session) *fakeAuth {
	f := &fakeAuth{sessions: map[string]*domainauth.Session{}}
	for _, s := range sessions {
		f.sessions[s.ID] = s
	}
	return f
}

func (f *fakeAuth) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, domainauth.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if f.LoginFn == nil {
		return nil, errNotStubbed
	}
	s, err := f.LoginFn(ctx, email, password)
	if err == nil && s != nil {
		f.mu.Lock()
		f.sessions[s.ID] = s
		f.mu.Unlock()
	}
	return s, err
}

func (f *fakeAuth) Logout(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedOut = append(f.loggedOut, id)
	delete(f.sessions, id)
	return f.LogoutErr
}

func (f *fakeAuth) ForgotPassword(ctx context.Context, email string) error {
	if f.ForgotFn == nil {
		return errNotStubbed
	}
	return f.ForgotFn(ctx, email)
}

func (f *fakeAuth) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if f.ResetFn == nil {
		return errNotStubbed
	}
	return f.ResetFn(ctx, token, password, confirm)
}

type fakeOrders struct {
	OrdersFn          func(ctx context.Context) ([]model.Order, error)
	DetailsFn         func(ctx context.Context, orderID string) (*service.OrderView, error)
	ShipFn            func(ctx context.Context, orderID string, box model.Box) (*service.ShipmentReport, error)
	SendInvoiceFn     func(ctx context.Context, orderID string) error
	LabelFn           func(ctx context.Context, orderID string) (string, error)
	CourierInvoiceFn  func(ctx context.Context, orderID string) (string, error)
	TrackFn           func(ctx context.Context, awb string) (model.Tracking, error)
	CancelledOrdersFn func(ctx context.Context, kind string, page, limit int) (model.OrderPage, error)
	CancelledOrderFn  func(ctx context.Context, orderID string) (model.OrderDetails, error)
	RefundFn          func(ctx context.Context, orderID string) (string, error)
}

func (f *fakeOrders) Orders(ctx context.Context) ([]model.Order, error) {
	if f.OrdersFn == nil {
		return nil, errNotStubbed
	}
	return f.OrdersFn(ctx)
}

func (f *fakeOrders) Details(ctx context.Context, id string) (*service.OrderView, error) {
	if f.DetailsFn == nil {
		return nil, errNotStubbed
	}
	return f.DetailsFn(ctx, id)
}

func (f *fakeOrders) Ship(ctx context.Context, id string, box model.Box) (*service.ShipmentReport, error) {
	if f.ShipFn == nil {
		return nil, errNotStubbed
	}
	return f.ShipFn(ctx, id, box)
}

func (f *fakeOrders) SendInvoice(ctx context.Context, id string) error {
	if f.SendInvoiceFn == nil {
		return errNotStubbed
	}
	return f.SendInvoiceFn(ctx, id)
}

func (f *fakeOrders) Label(ctx context.Context, id string) (string, error) {
	if f.LabelFn == nil {
		return "", errNotStubbed
	}
	return f.LabelFn(ctx, id)
}

func (f *fakeOrders) CourierInvoice(ctx context.Context, id string) (string, error) {
	if f.CourierInvoiceFn == nil {
		return "", errNotStubbed
	}
	return f.CourierInvoiceFn(ctx, id)
}

func (f *fakeOrders) Track(ctx context.Context, awb string) (model.Tracking, error) {
	if f.TrackFn == nil {
		return model.Tracking{}, errNotStubbed
	}
	return f.TrackFn(ctx, awb)
}

func (f *fakeOrders) CancelledOrders(ctx context.Context, kind string, page, limit int) (model.OrderPage, error) {
	if f.CancelledOrdersFn == nil {
		return model.OrderPage{}, errNotStubbed
	}
	return f.CancelledOrdersFn(ctx, kind, page, limit)
}

func (f *fakeOrders) CancelledOrder(ctx context.Context, id string) (model.OrderDetails, error) {
	if f.CancelledOrderFn == nil {
		return model.OrderDetails{}, errNotStubbed
	}
	return f.CancelledOrderFn(ctx, id)
}

func (f *fakeOrders) Refund(ctx context.Context, id string) (string, error) {
	if f.RefundFn == nil {
		return "", errNotStubbed
	}
	return f.RefundFn(ctx, id)
}

type fakeBills struct {
	BillsFn         func(ctx context.Context, storeID string) (*service.BillList, error)
	DeletedBillsFn  func(ctx context.Context) (*service.BillList, error)
	BillFn          func(ctx context.Context, billID string) (model.BillDetails, error)
	BillInvoiceFn   func(ctx context.Context, billID string) ([]byte, string, error)
	DecideDeleteFn  func(ctx context.Context, storeID, billID string, d model.Decision) (string, error)
	EditRequestsFn  func(ctx context.Context) ([]model.BillEditRequest, error)
	EditRequestFn   func(ctx context.Context, id string) (model.BillEditDetail, error)
	EditInvoiceFn   func(ctx context.Context, id string) ([]byte, string, error)
	DecideEditFn    func(ctx context.Context, id string, d model.Decision) (*service.EditOutcome, error)
	DownloadEditsFn func(ctx context.Context) (ports.Download, error)
	HistoryEntries  []model.AuditEntry
	decideEditCalls int
	decideDelCalls  int
}

func (f *fakeBills) Bills(ctx context.Context, storeID string) (*service.BillList, error) {
	if f.BillsFn == nil {
		return nil, errNotStubbed
	}
	return f.BillsFn(ctx, storeID)
}

func (f *fakeBills) DeletedBills(ctx context.Context) (*service.BillList, error) {
	if f.DeletedBillsFn == nil {
		return nil, errNotStubbed
	}
	return f.DeletedBillsFn(ctx)
}

func (f *fakeBills) Bill(ctx context.Context, id string) (model.BillDetails, error) {
	if f.BillFn == nil {
		return model.BillDetails{}, errNotStubbed
	}
	return f.BillFn(ctx, id)
}

func (f *fakeBills) BillInvoice(ctx context.Context, id string) ([]byte, string, error) {
	if f.BillInvoiceFn == nil {
		return nil, "", errNotStubbed
	}
	return f.BillInvoiceFn(ctx, id)
}

func (f *fakeBills) DecideDelete(ctx context.Context, storeID, billID string, d model.Decision) (string, error) {
	f.decideDelCalls++
	if f.DecideDeleteFn == nil {
		return "", errNotStubbed
	}
	return f.DecideDeleteFn(ctx, storeID, billID, d)
}

func (f *fakeBills) EditRequests(ctx context.Context) ([]model.BillEditRequest, error) {
	if f.EditRequestsFn == nil {
		return nil, errNotStubbed
	}
	return f.EditRequestsFn(ctx)
}

func (f *fakeBills) EditRequest(ctx context.Context, id string) (model.BillEditDetail, error) {
	if f.EditRequestFn == nil {
		return model.BillEditDetail{}, errNotStubbed
	}
	return f.EditRequestFn(ctx, id)
}

func (f *fakeBills) EditInvoice(ctx context.Context, id string) ([]byte, string, error) {
	if f.EditInvoiceFn == nil {
		return nil, "", errNotStubbed
	}
	return f.EditInvoiceFn(ctx, id)
}

func (f *fakeBills) DecideEdit(ctx context.Context, id string, d model.Decision) (*service.EditOutcome, error) {
	f.decideEditCalls++
	if f.DecideEditFn == nil {
		return nil, errNotStubbed
	}
	return f.DecideEditFn(ctx, id, d)
}

func (f *fakeBills) DownloadEditRequests(ctx context.Context) (ports.Download, error) {
	if f.DownloadEditsFn == nil {
		return ports.Download{}, errNotStubbed
	}
	return f.DownloadEditsFn(ctx)
}

func (f *fakeBills) History(context.Context, string) []model.AuditEntry { return f.HistoryEntries }

type fakeStores struct {
	StoreNamesFn          func(ctx context.Context) ([]model.StoreName, error)
	CreateStoreFn         func(ctx context.Context, in model.StoreInput) (string, error)
	StoreDetailsFn        func(ctx context.Context, storeID string) (*service.StoreView, error)
	UpdateStoreFn         func(ctx context.Context, storeID string, in model.StoreInput) (string, error)
	AssignInventoryFn     func(ctx context.Context, storeID string, file ports.Upload) (string, error)
	AssignedInventoriesFn func(ctx context.Context, storeID string) (*service.AssignedList, error)
	AssignedInventoryFn   func(ctx context.Context, id string) (model.AssignedInventoryDetail, error)
	RaisedInventoriesFn   func(ctx context.Context) ([]model.RaisedInventory, error)
	RaisedInventoryFn     func(ctx context.Context, id string) (model.RaisedInventoryDetail, error)
	ApproveRaisedFn       func(ctx context.Context, id string) (string, error)
	RejectRaisedFn        func(ctx context.Context, id, note string) (string, error)
}

func (f *fakeStores) StoreNames(ctx context.Context) ([]model.StoreName, error) {
	if f.StoreNamesFn == nil {
		return nil, errNotStubbed
	}
	return f.StoreNamesFn(ctx)
}

func (f *fakeStores) CreateStore(ctx context.Context, in model.StoreInput) (string, error) {
	if f.CreateStoreFn == nil {
		return "", errNotStubbed
	}
	return f.CreateStoreFn(ctx, in)
}

func (f *fakeStores) StoreDetails(ctx context.Context, id string) (*service.StoreView, error) {
	if f.StoreDetailsFn == nil {
		return nil, errNotStubbed
	}
	return f.StoreDetailsFn(ctx, id)
}

func (f *fakeStores) UpdateStore(ctx context.Context, id string, in model.StoreInput) (string, error) {
	if f.UpdateStoreFn == nil {
		return "", errNotStubbed
	}
	return f.UpdateStoreFn(ctx, id, in)
}

func (f *fakeStores) AssignInventory(ctx context.Context, id string, file ports.Upload) (string, error) {
	if f.AssignInventoryFn == nil {
		return "", errNotStubbed
	}
	return f.AssignInventoryFn(ctx, id, file)
}

func (f *fakeStores) AssignedInventories(ctx context.Context, storeID string) (*service.AssignedList, error) {
	if f.AssignedInventoriesFn == nil {
		return nil, errNotStubbed
	}
	return f.AssignedInventoriesFn(ctx, storeID)
}

func (f *fakeStores) AssignedInventory(ctx context.Context, id string) (model.AssignedInventoryDetail, error) {
	if f.AssignedInventoryFn == nil {
		return model.AssignedInventoryDetail{}, errNotStubbed
	}
	return f.AssignedInventoryFn(ctx, id)
}

func (f *fakeStores) RaisedInventories(ctx context.Context) ([]model.RaisedInventory, error) {
	if f.RaisedInventoriesFn == nil {
		return nil, errNotStubbed
	}
	return f.RaisedInventoriesFn(ctx)
}

func (f *fakeStores) RaisedInventory(ctx context.Context, id string) (model.RaisedInventoryDetail, error) {
	if f.RaisedInventoryFn == nil {
		return model.RaisedInventoryDetail{}, errNotStubbed
	}
	return f.RaisedInventoryFn(ctx, id)
}

func (f *fakeStores) ApproveRaisedInventory(ctx context.Context, id string) (string, error) {
	if f.ApproveRaisedFn == nil {
		return "", errNotStubbed
	}
	return f.ApproveRaisedFn(ctx, id)
}

func (f *fakeStores) RejectRaisedInventory(ctx context.Context, id, note string) (string, error) {
	if f.RejectRaisedFn == nil {
		return "", errNotStubbed
	}
	return f.RejectRaisedFn(ctx, id, note)
}

type fakeInventory struct {
	ProductsFn          func(ctx context.Context, group string) ([]model.InventoryItem, error)
	SchoolsFn           func(ctx context.Context) ([]model.StoreName, error)
	UpdateVariantFn     func(ctx context.Context, in model.VariantUpdate) (string, error)
	RemoveVariantFn     func(ctx context.Context, in model.VariantRef) (string, error)
	BulkUploadFn        func(ctx context.Context, group, school string, file ports.Upload) (string, error)
	DownloadInventoryFn func(ctx context.Context, school string) (ports.Download, error)
	UploadHistoriesFn   func(ctx context.Context) ([]model.UploadHistory, error)
	UploadHistoryFn     func(ctx context.Context, id string) (model.UploadHistoryDetail, error)
	BarcodesFn          func(ctx context.Context, id string) (ports.Download, error)
}

func (f *fakeInventory) Products(ctx context.Context, group string) ([]model.InventoryItem, error) {
	if f.ProductsFn == nil {
		return nil, errNotStubbed
	}
	return f.ProductsFn(ctx, group)
}

func (f *fakeInventory) Schools(ctx context.Context) ([]model.StoreName, error) {
	if f.SchoolsFn == nil {
		return nil, nil
	}
	return f.SchoolsFn(ctx)
}

func (f *fakeInventory) UpdateVariant(ctx context.Context, in model.VariantUpdate) (string, error) {
	if f.UpdateVariantFn == nil {
		return "", errNotStubbed
	}
	return f.UpdateVariantFn(ctx, in)
}

func (f *fakeInventory) RemoveVariant(ctx context.Context, in model.VariantRef) (string, error) {
	if f.RemoveVariantFn == nil {
		return "", errNotStubbed
	}
	return f.RemoveVariantFn(ctx, in)
}

func (f *fakeInventory) BulkUpload(ctx context.Context, group, school string, file ports.Upload) (string, error) {
	if f.BulkUploadFn == nil {
		return "", errNotStubbed
	}
	return f.BulkUploadFn(ctx, group, school, file)
}

func (f *fakeInventory) DownloadInventory(ctx context.Context, school string) (ports.Download, error) {
	if f.DownloadInventoryFn == nil {
		return ports.Download{}, errNotStubbed
	}
	return f.DownloadInventoryFn(ctx, school)
}

func (f *fakeInventory) UploadHistories(ctx context.Context) ([]model.UploadHistory, error) {
	if f.UploadHistoriesFn == nil {
		return nil, errNotStubbed
	}
	return f.UploadHistoriesFn(ctx)
}

func (f *fakeInventory) UploadHistory(ctx context.Context, id string) (model.UploadHistoryDetail, error) {
	if f.UploadHistoryFn == nil {
		return model.UploadHistoryDetail{}, errNotStubbed
	}
	return f.UploadHistoryFn(ctx, id)
}

func (f *fakeInventory) Barcodes(ctx context.Context, id string) (ports.Download, error) {
	if f.BarcodesFn == nil {
		return ports.Download{}, errNotStubbed
	}
	return f.BarcodesFn(ctx, id)
}

type fakeCatalog struct {
	OverviewFn         func(ctx context.Context, role domainauth.Role) (*service.OverviewView, error)
	QuotesFn           func(ctx context.Context) ([]model.Quote, error)
	QuoteFn            func(ctx context.Context, id string) (model.QuoteDetail, error)
	CouponsFn          func(ctx context.Context) ([]model.Coupon, error)
	ContactsFn         func(ctx context.Context) ([]model.ContactForm, error)
	DownloadContactsFn func(ctx context.Context) (ports.Download, error)
}

func (f *fakeCatalog) Overview(ctx context.Context, role domainauth.Role) (*service.OverviewView, error) {
	if f.OverviewFn == nil {
		return nil, errNotStubbed
	}
	return f.OverviewFn(ctx, role)
}

func (f *fakeCatalog) Quotes(ctx context.Context) ([]model.Quote, error) {
	if f.QuotesFn == nil {
		return nil, errNotStubbed
	}
	return f.QuotesFn(ctx)
}

func (f *fakeCatalog) Quote(ctx context.Context, id string) (model.QuoteDetail, error) {
	if f.QuoteFn == nil {
		return model.QuoteDetail{}, errNotStubbed
	}
	return f.QuoteFn(ctx, id)
}

func (f *fakeCatalog) Coupons(ctx context.Context) ([]model.Coupon, error) {
	if f.CouponsFn == nil {
		return nil, errNotStubbed
	}
	return f.CouponsFn(ctx)
}

func (f *fakeCatalog) Contacts(ctx context.Context) ([]model.ContactForm, error) {
	if f.ContactsFn == nil {
		return nil, errNotStubbed
	}
	return f.ContactsFn(ctx)
}

func (f *fakeCatalog) DownloadContacts(ctx context.Context) (ports.Download, error) {
	if f.DownloadContactsFn == nil {
		return ports.Download{}, errNotStubbed
	}
	return f.DownloadContactsFn(ctx)
}

// testServices bundles fakes for a router or handler under test.
type testServices struct {
	auth      *fakeAuth
	orders    *fakeOrders
	bills     *fakeBills
	stores    *fakeStores
	inventory *fakeInventory
	catalog   *fakeCatalog
}

func newTestServices(sessions ...*domainauth.Session) *testServices {
	return &testServices{
		auth:      newFakeAuth(sessions...),
		orders:    &fakeOrders{},
		bills:     &fakeBills{},
		stores:    &fakeStores{},
		inventory: &fakeInventory{},
		catalog:   &fakeCatalog{},
	}
}

func (s *testServices) handlers(tr *TemplateRenderer) *UIHandlers {
	return &UIHandlers{
		T:         tr,
		Auth:      s.auth,
		Orders:    s.orders,
		Bills:     s.bills,
		Stores:    s.stores,
		Inventory: s.inventory,
		Catalog:   s.catalog,
	}
}

func (s *testServices) router() RouterServices {
	return RouterServices{
		Auth:      s.auth,
		Orders:    s.orders,
		Bills:     s.bills,
		Stores:    s.stores,
		Inventory: s.inventory,
		Catalog:   s.catalog,
	}
}
