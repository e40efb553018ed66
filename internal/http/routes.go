package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"

	"github.com/go-chi/chi/v5/middleware"

	uniformadmin "github.com/jhaverenterprises/uniform-admin"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthService
	Orders    OrderService
	Bills     BillService
	Stores    StoreService
	Inventory InventoryService
	Catalog   CatalogService

	// HealthChecks are run by /healthz. Optional.
	HealthChecks map[string]HealthCheck

	CookieDomain string
	// LoginRateLimit caps login and forgot-password posts per IP per minute.
	// Zero disables the limit.
	LoginRateLimit int
	SSLRedirect    bool
	// Compression gzips HTML and static responses when set.
	Compression      bool
	CompressionLevel int
	IsDev            bool         // Development mode: templates and static files are read from disk
	Logger           *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the console's HTTP handler with its middleware chain.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ui, err := setupUIHandlers(services, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	health := HealthHandler(services.HealthChecks)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)
	mux.Handle("GET /static/", staticWithFallback(services.IsDev, logger))

	registerAuthRoutes(mux, ui, services)
	registerUIRoutes(mux, ui, services.Auth)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		Logging(logger),
		Recover(logger),
		SecureHeaders(SecurityConfig{SSLRedirect: services.SSLRedirect, IsDev: services.IsDev}),
	}
	if services.Compression {
		chain = append(chain, Compression(CompressionConfig{Level: services.CompressionLevel, Logger: logger}))
	}
	chain = append(chain, CSRFProtection(services.CookieDomain))
	var handler http.Handler = mux
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler, nil
}

// templateFS picks the template source: disk in dev mode for live edits,
// the embedded copy otherwise.
func templateFS(isDev bool) (fs.FS, error) {
	if isDev {
		return os.DirFS(TemplatePathFromRoot), nil
	}
	return fs.Sub(uniformadmin.TemplateFS, TemplatePathFromRoot)
}

func setupUIHandlers(services RouterServices, logger *slog.Logger) (*UIHandlers, error) {
	tfs, err := templateFS(services.IsDev)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: tfs, Logger: logger})
	if err != nil {
		return nil, err
	}
	return &UIHandlers{
		T:            tr,
		Auth:         services.Auth,
		Orders:       services.Orders,
		Bills:        services.Bills,
		Stores:       services.Stores,
		Inventory:    services.Inventory,
		Catalog:      services.Catalog,
		Guard:        listview.NewGuard(),
		CookieDomain: services.CookieDomain,
		IsDev:        services.IsDev,
		Logger:       logger,
	}, nil
}

func registerAuthRoutes(mux *http.ServeMux, ui *UIHandlers, services RouterServices) {
	limit := RateLimitPerIP(services.LoginRateLimit)
	signedOut := RedirectIfAuthenticated(services.Auth)

	mux.Handle("GET /login", signedOut(http.HandlerFunc(ui.LoginPage)))
	mux.Handle("POST /login", limit(http.HandlerFunc(ui.Login)))
	mux.HandleFunc("POST /logout", ui.Logout)
	mux.HandleFunc("GET /forgot-password", ui.ForgotPasswordPage)
	mux.Handle("POST /forgot-password", limit(http.HandlerFunc(ui.ForgotPassword)))
	mux.HandleFunc("GET /reset-password", ui.ResetPasswordPage)
	mux.HandleFunc("POST /reset-password", ui.ResetPassword)
}

// uiRoute binds one method and pattern to the capability that unlocks it.
type uiRoute struct {
	Pattern    string
	Capability capability.Capability
	Handler    http.HandlerFunc
}

// uiRoutes lists every gated screen, action and download. Deep links and
// actions share the capability of the screen they belong to.
func uiRoutes(ui *UIHandlers) []uiRoute {
	return []uiRoute{
		{"GET /overview", capability.Overview, ui.Overview},

		{"GET /inventory", capability.Inventory, ui.InventoryPage},
		{"POST /inventory/update", capability.Inventory, ui.UpdateVariant},
		{"POST /inventory/remove", capability.Inventory, ui.RemoveVariant},
		{"POST /inventory/upload", capability.Inventory, ui.UploadInventory},
		{"GET /inventory/download", capability.Inventory, ui.DownloadInventory},
		{"GET /inventory/download/{schoolName}", capability.Inventory, ui.DownloadInventory},

		{"GET /uploaded-history", capability.UploadHistory, ui.UploadHistories},
		{"GET /upload-history/{uploadId}/products", capability.UploadHistory, ui.UploadHistoryProducts},
		{"GET /upload-history/{uploadId}/barcodes", capability.UploadHistory, ui.DownloadBarcodes},

		{"GET /store-bills", capability.StoreBills, ui.StoreBills},
		{"GET /store-bills-details/{billId}", capability.StoreBills, ui.StoreBillDetail},
		{"GET /store-bills-details/{billId}/invoice.pdf", capability.StoreBills, ui.StoreBillInvoice},

		{"GET /store-creation", capability.Stores, ui.StoresPage},
		{"POST /store-creation", capability.Stores, ui.CreateStore},
		{"GET /store-details/{storeId}", capability.Stores, ui.StoreDetail},
		{"POST /store-details/{storeId}", capability.Stores, ui.UpdateStore},
		{"POST /store-details/{storeId}/assign-inventory", capability.Stores, ui.AssignInventory},

		{"GET /raised-inventory", capability.RaisedInventory, ui.RaisedInventories},
		{"GET /raised-inventory/{id}", capability.RaisedInventory, ui.RaisedInventoryDetail},
		{"POST /raised-inventory/{id}/approve", capability.RaisedInventory, ui.ApproveRaisedInventory},
		{"POST /raised-inventory/{id}/reject", capability.RaisedInventory, ui.RejectRaisedInventory},

		{"GET /online-orders", capability.OnlineOrders, ui.OnlineOrders},
		{"GET /order-details/{orderId}", capability.OnlineOrders, ui.OrderDetail},
		{"POST /order-details/{orderId}/ship", capability.OnlineOrders, ui.ShipOrder},
		{"POST /order-details/{orderId}/label", capability.OnlineOrders, ui.OrderLabel},
		{"POST /order-details/{orderId}/invoice", capability.OnlineOrders, ui.OrderCourierInvoice},
		{"POST /order-details/{orderId}/send-invoice", capability.OnlineOrders, ui.SendOrderInvoice},
		{"GET /tracking/{awb}", capability.OnlineOrders, ui.Tracking},

		{"GET /cancel-orders", capability.CancelOrders, ui.CancelOrders},
		{"GET /cancel-details/{orderId}", capability.CancelOrders, ui.CancelDetail},
		{"POST /cancel-details/{orderId}/refund", capability.CancelOrders, ui.RefundOrder},

		{"GET /coupon", capability.Coupons, ui.Coupons},

		{"GET /quote", capability.Quotes, ui.Quotes},
		{"GET /quote/{quoteId}", capability.Quotes, ui.QuoteDetail},

		{"GET /assigned-inventory", capability.AssignedInventory, ui.AssignedInventories},
		{"GET /inventory-details/{inventoryId}", capability.AssignedInventory, ui.AssignedInventoryDetail},

		{"GET /req-edit-bills", capability.EditBills, ui.EditBills},
		{"GET /req-edit-bills/download", capability.EditBills, ui.DownloadEditBills},
		{"GET /req-edit-bills/{id}", capability.EditBills, ui.EditBillDetail},
		{"GET /req-edit-bills/{id}/invoice.pdf", capability.EditBills, ui.EditBillInvoice},
		{"POST /req-edit-bills/{id}/approve", capability.EditBills, ui.ApproveEditBill},
		{"POST /req-edit-bills/{id}/reject", capability.EditBills, ui.RejectEditBill},

		{"GET /deleted-bills", capability.DeletedBills, ui.DeletedBills},
		{"GET /deleted-bills/{billId}", capability.DeletedBills, ui.DeletedBillDetail},
		{"POST /deleted-bills/{billId}/approve", capability.DeletedBills, ui.ApproveDeletedBill},
		{"POST /deleted-bills/{billId}/reject", capability.DeletedBills, ui.RejectDeletedBill},

		{"GET /form-data", capability.Contacts, ui.Contacts},
		{"GET /form-data/download", capability.Contacts, ui.DownloadContacts},
	}
}

func registerUIRoutes(mux *http.ServeMux, ui *UIHandlers, sessions SessionLoader) {
	protect := Protect(sessions)
	for _, rt := range uiRoutes(ui) {
		mux.Handle(rt.Pattern, protect(RequireCapability(rt.Capability, ui.NotFound)(rt.Handler)))
	}
	// Landing page and every unmatched path.
	mux.Handle("GET /", protect(http.HandlerFunc(ui.Index)))
}

// staticWithFallback serves /static/* from disk in dev mode and from the
// embedded copy otherwise.
func staticWithFallback(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	staticSub, err := fs.Sub(uniformadmin.StaticFS, "frontend/static")
	if err != nil {
		logger.Error("failed to create sub-filesystem for static assets", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// Content-hashed filenames, e.g. app.abc12345.css.
var hashedFilePattern = regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		handler.ServeHTTP(w, r)
	})
}
