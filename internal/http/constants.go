package httpx

// CurrentPage constants identify screens in templates and navigation.
const (
	PageHome     = "home"
	PageNotFound = "not-found"

	PageLogin          = "login"
	PageForgotPassword = "forgot-password"
	PageResetPassword  = "reset-password"

	PageOverview = "overview"

	// Warehouse stock.
	PageInventory             = "inventory"
	PageUploadHistory         = "upload-history"
	PageUploadHistoryProducts = "upload-history-products"

	// Stores and their stock.
	PageStores                  = "stores"
	PageStore                   = "store"
	PageAssignedInventory       = "assigned-inventory"
	PageAssignedInventoryDetail = "assigned-inventory-detail"
	PageRaisedInventory         = "raised-inventory"
	PageRaisedInventoryDetail   = "raised-inventory-detail"

	// Bills.
	PageStoreBills   = "store-bills"
	PageStoreBill    = "store-bill"
	PageEditBills    = "edit-bills"
	PageEditBill     = "edit-bill"
	PageDeletedBills = "deleted-bills"
	PageDeletedBill  = "deleted-bill"

	// Orders.
	PageOnlineOrders = "online-orders"
	PageOrder        = "order"
	PageTracking     = "tracking"
	PageCancelOrders = "cancel-orders"
	PageCancelOrder  = "cancel-order"

	// Catalog.
	PageCoupons  = "coupons"
	PageQuotes   = "quotes"
	PageQuote    = "quote"
	PageContacts = "contacts"
)

// Page sizes of the list screens.
const (
	pageSizeOrders       = 10
	pageSizeCancelled    = 10
	pageSizeCoupons      = 5
	pageSizeDeletedBills = 5
	pageSizeEditBills    = 5
	pageSizeRaised       = 5
	pageSizeStoreBills   = 10
	pageSizeAssigned     = 10
	pageSizeInventory    = 10
	pageSizeUploads      = 10
	pageSizeQuotes       = 10
	pageSizeContacts     = 10
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// Session cookie name shared by auth handlers and the access gate.
const sessionCookieName = "session_id"

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:                    "home-content",
	PageNotFound:                "not-found-content",
	PageLogin:                   "login-content",
	PageForgotPassword:          "forgot-password-content",
	PageResetPassword:           "reset-password-content",
	PageOverview:                "overview-content",
	PageInventory:               "inventory-content",
	PageUploadHistory:           "upload-history-content",
	PageUploadHistoryProducts:   "upload-history-products-content",
	PageStores:                  "stores-content",
	PageStore:                   "store-content",
	PageAssignedInventory:       "assigned-inventory-content",
	PageAssignedInventoryDetail: "assigned-inventory-detail-content",
	PageRaisedInventory:         "raised-inventory-content",
	PageRaisedInventoryDetail:   "raised-inventory-detail-content",
	PageStoreBills:              "store-bills-content",
	PageStoreBill:               "store-bill-content",
	PageEditBills:               "edit-bills-content",
	PageEditBill:                "edit-bill-content",
	PageDeletedBills:            "deleted-bills-content",
	PageDeletedBill:             "deleted-bill-content",
	PageOnlineOrders:            "online-orders-content",
	PageOrder:                   "order-content",
	PageTracking:                "tracking-content",
	PageCancelOrders:            "cancel-orders-content",
	PageCancelOrder:             "cancel-order-content",
	PageCoupons:                 "coupons-content",
	PageQuotes:                  "quotes-content",
	PageQuote:                   "quote-content",
	PageContacts:                "contacts-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages render the not-found content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "not-found-content"
}
