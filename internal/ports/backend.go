package ports

import (
	"context"
	"io"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
)

// Upload is a file sent to the backend as a multipart part.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Download is a binary backend response. Callers must close Body.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
}

// OverviewAPI reads the sales summary.
type OverviewAPI interface {
	Overview(ctx context.Context) (model.Overview, error)
}

// OrderAPI covers online orders, shipping and refunds.
type OrderAPI interface {
	Orders(ctx context.Context, groups []string) ([]model.Order, error)
	OrderDetails(ctx context.Context, orderID string) (model.OrderDetails, error)
	Boxes(ctx context.Context) ([]model.Box, error)
	AssignCourier(ctx context.Context, orderID string, box model.Box) (model.Shipment, error)
	GenerateManifest(ctx context.Context, shipmentIDs []string) (string, error)
	GenerateLabel(ctx context.Context, shipmentIDs []string) (string, error)
	PrintInvoice(ctx context.Context, orderIDs []string) (string, error)
	Track(ctx context.Context, awb string) (model.Tracking, error)
	CancelledOrders(ctx context.Context, kind string, page, limit int) (model.OrderPage, error)
	UpdateRefundStatus(ctx context.Context, orderID string) (string, error)
}

// InventoryAPI covers warehouse products and bulk uploads.
type InventoryAPI interface {
	ActiveProducts(ctx context.Context, group string) ([]model.Product, error)
	UpdateVariant(ctx context.Context, in model.VariantUpdate) (string, error)
	RemoveVariant(ctx context.Context, in model.VariantRef) (string, error)
	BulkUpload(ctx context.Context, group, schoolName string, file Upload) (string, error)
	DownloadInventory(ctx context.Context, schoolName string) (Download, error)
	UploadHistories(ctx context.Context) ([]model.UploadHistory, error)
	UploadHistory(ctx context.Context, uploadID string) (model.UploadHistoryDetail, error)
	Barcodes(ctx context.Context, uploadID string) (Download, error)
}

// StoreAPI covers stores, assignments and stock requests.
type StoreAPI interface {
	StoreNames(ctx context.Context) ([]model.StoreName, error)
	CreateStore(ctx context.Context, in model.StoreInput) (string, error)
	StoreDetails(ctx context.Context, storeID string) (model.Store, error)
	UpdateStore(ctx context.Context, storeID string, in model.StoreInput) (string, error)
	AssignInventory(ctx context.Context, storeID string, file Upload) (string, error)
	// AssignedInventories lists every assignment when storeID is empty.
	AssignedInventories(ctx context.Context, storeID string) ([]model.AssignedInventory, error)
	AssignedInventory(ctx context.Context, id string) (model.AssignedInventoryDetail, error)
	RaisedInventories(ctx context.Context) ([]model.RaisedInventory, error)
	RaisedInventory(ctx context.Context, id string) (model.RaisedInventoryDetail, error)
	ApproveRaisedInventory(ctx context.Context, id string) (string, error)
	RejectRaisedInventory(ctx context.Context, id string) (string, error)
}

// BillAPI covers in-store bills and their moderation.
type BillAPI interface {
	// Bills lists every store's bills when storeID is empty.
	Bills(ctx context.Context, storeID string) ([]model.Bill, error)
	BillDetails(ctx context.Context, billID string) (model.BillDetails, error)
	DeletedBills(ctx context.Context) ([]model.Bill, error)
	ValidateBillDelete(ctx context.Context, storeID, billID string, d model.Decision) (string, error)
	EditRequests(ctx context.Context) ([]model.BillEditRequest, error)
	EditRequest(ctx context.Context, id string) (model.BillEditDetail, error)
	ValidateBillEdit(ctx context.Context, id string, d model.Decision) (model.BillDetails, error)
	UploadInvoice(ctx context.Context, billID, editBillReqID string, pdf Upload) (string, error)
	DownloadEditRequests(ctx context.Context) (Download, error)
}

// CatalogAPI covers quotes, coupons and contact submissions.
type CatalogAPI interface {
	Quotes(ctx context.Context) ([]model.Quote, error)
	Quote(ctx context.Context, id string) (model.QuoteDetail, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
	Contacts(ctx context.Context) ([]model.ContactForm, error)
	DownloadContacts(ctx context.Context) (Download, error)
}

// Backend bundles every backend port; the HTTP client implements it.
type Backend interface {
	AuthProvider
	OverviewAPI
	OrderAPI
	InventoryAPI
	StoreAPI
	BillAPI
	CatalogAPI
}
