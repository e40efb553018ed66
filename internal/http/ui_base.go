package httpx

import (
	"bytes"
	"context"
	"html"
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/http/ui/viewmodel"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
	"github.com/jhaverenterprises/uniform-admin/internal/service"
)

// AuthService is the session surface used by the auth pages and the gate.
type AuthService interface {
	SessionLoader
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirm string) error
}

// OrderService is a minimal interface for the order screens.
type OrderService interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Details(ctx context.Context, orderID string) (*service.OrderView, error)
	Ship(ctx context.Context, orderID string, box model.Box) (*service.ShipmentReport, error)
	SendInvoice(ctx context.Context, orderID string) error
	Label(ctx context.Context, orderID string) (string, error)
	CourierInvoice(ctx context.Context, orderID string) (string, error)
	Track(ctx context.Context, awb string) (model.Tracking, error)
	CancelledOrders(ctx context.Context, kind string, page, limit int) (model.OrderPage, error)
	CancelledOrder(ctx context.Context, orderID string) (model.OrderDetails, error)
	Refund(ctx context.Context, orderID string) (string, error)
}

// BillService is a minimal interface for the bill screens.
type BillService interface {
	Bills(ctx context.Context, storeID string) (*service.BillList, error)
	DeletedBills(ctx context.Context) (*service.BillList, error)
	Bill(ctx context.Context, billID string) (model.BillDetails, error)
	BillInvoice(ctx context.Context, billID string) ([]byte, string, error)
	DecideDelete(ctx context.Context, storeID, billID string, d model.Decision) (string, error)
	EditRequests(ctx context.Context) ([]model.BillEditRequest, error)
	EditRequest(ctx context.Context, id string) (model.BillEditDetail, error)
	EditInvoice(ctx context.Context, id string) ([]byte, string, error)
	DecideEdit(ctx context.Context, id string, d model.Decision) (*service.EditOutcome, error)
	DownloadEditRequests(ctx context.Context) (ports.Download, error)
	History(ctx context.Context, resourceID string) []model.AuditEntry
}

// StoreService is a minimal interface for the store and store stock screens.
type StoreService interface {
	StoreNames(ctx context.Context) ([]model.StoreName, error)
	CreateStore(ctx context.Context, in model.StoreInput) (string, error)
	StoreDetails(ctx context.Context, storeID string) (*service.StoreView, error)
	UpdateStore(ctx context.Context, storeID string, in model.StoreInput) (string, error)
	AssignInventory(ctx context.Context, storeID string, file ports.Upload) (string, error)
	AssignedInventories(ctx context.Context, storeID string) (*service.AssignedList, error)
	AssignedInventory(ctx context.Context, id string) (model.AssignedInventoryDetail, error)
	RaisedInventories(ctx context.Context) ([]model.RaisedInventory, error)
	RaisedInventory(ctx context.Context, id string) (model.RaisedInventoryDetail, error)
	ApproveRaisedInventory(ctx context.Context, id string) (string, error)
	RejectRaisedInventory(ctx context.Context, id, note string) (string, error)
}

// InventoryService is a minimal interface for the warehouse stock screens.
type InventoryService interface {
	Products(ctx context.Context, group string) ([]model.InventoryItem, error)
	Schools(ctx context.Context) ([]model.StoreName, error)
	UpdateVariant(ctx context.Context, in model.VariantUpdate) (string, error)
	RemoveVariant(ctx context.Context, in model.VariantRef) (string, error)
	BulkUpload(ctx context.Context, group, schoolName string, file ports.Upload) (string, error)
	DownloadInventory(ctx context.Context, schoolName string) (ports.Download, error)
	UploadHistories(ctx context.Context) ([]model.UploadHistory, error)
	UploadHistory(ctx context.Context, uploadID string) (model.UploadHistoryDetail, error)
	Barcodes(ctx context.Context, uploadID string) (ports.Download, error)
}

// CatalogService is a minimal interface for overview, quotes, coupons and contacts.
type CatalogService interface {
	Overview(ctx context.Context, role domainauth.Role) (*service.OverviewView, error)
	Quotes(ctx context.Context) ([]model.Quote, error)
	Quote(ctx context.Context, id string) (model.QuoteDetail, error)
	Coupons(ctx context.Context) ([]model.Coupon, error)
	Contacts(ctx context.Context) ([]model.ContactForm, error)
	DownloadContacts(ctx context.Context) (ports.Download, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService      = (*service.AuthService)(nil)
	_ OrderService     = (*service.OrderService)(nil)
	_ BillService      = (*service.BillService)(nil)
	_ StoreService     = (*service.StoreService)(nil)
	_ InventoryService = (*service.InventoryService)(nil)
	_ CatalogService   = (*service.CatalogService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Auth      AuthService
	Orders    OrderService
	Bills     BillService
	Stores    StoreService
	Inventory InventoryService
	Catalog   CatalogService
	// Guard discards list fetches superseded by a newer one for the same
	// operator and screen. Nil disables the check.
	Guard        *listview.Guard
	CookieDomain string
	IsDev        bool // Development mode flag for enhanced error reporting
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}

	session := GetSessionFromContext(r.Context())
	if !session.IsAuthenticated() {
		return layout
	}
	layout.IsAuthenticated = true
	layout.Operator = &viewmodel.Operator{Name: session.DisplayName(), Role: string(session.Role())}

	res := ResolutionFromContext(r.Context())
	activePath := ""
	if rt, ok := res.Match(r.URL.Path); ok {
		if s, ok := capability.ScreenFor(rt.Capability); ok {
			activePath = s.Path
		}
	}
	for _, e := range res.NavEntries {
		layout.Nav = append(layout.Nav, viewmodel.NavItem{
			Label:  e.Label,
			Icon:   e.Icon,
			Path:   e.Path,
			Active: e.Path == activePath,
		})
	}
	return layout
}

// basePageData constructs the common page data map with operator context and
// any flash left by an action.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"CSRFToken":       layout.CSRFToken,
		"IsAuthenticated": layout.IsAuthenticated,
		"Nav":             layout.Nav,
		"Errors":          map[string]string{},
	}
	if layout.Operator != nil {
		data["Operator"] = layout.Operator
	}

	if f, ok := flashFromContext(r.Context()); ok {
		if f.Success != "" {
			data["SuccessMessage"] = f.Success
		}
		if f.Error != "" {
			data["Error"] = true
			data["ErrorMessage"] = f.Error
		}
		if len(f.Fields) > 0 {
			data["Errors"] = f.Fields
		}
		if f.Form != nil {
			data["Form"] = f.Form
		}
		for k, v := range f.Extra {
			data[k] = v
		}
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta PageMeta
	// ErrorMessage is shown when Fetch fails without an operator-facing message.
	ErrorMessage string
	Fetch        func(ctx context.Context, data map[string]any) error
}

// Page builds base data, runs the fetch and renders. A failed fetch renders
// the page with an inline banner; a rejected session signs the operator out.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if h.handleUnauthorized(w, r, err) {
				return
			}
			h.logger().WarnContext(r.Context(), "page fetch failed",
				"page", spec.Meta.CurrentPage, "path", r.URL.Path, "error", err)
			markPageError(data, processError(err, spec.ErrorMessage, nil))
			if !WantsPartial(r) {
				h.renderPageStatus(w, r, data, DetermineErrorStatus(err))
				return
			}
		}
	}
	h.renderDashboardPage(w, r, data)
}

func markPageError(data map[string]any, msg string) {
	data["Error"] = true
	if msg == "" {
		msg = "An unexpected error occurred. Please try again."
	}
	data["ErrorMessage"] = msg
}

// renderDashboardPage renders a dashboard page with proper htmx partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderPageStatus(w, r, data, http.StatusOK)
}

func (h *UIHandlers) renderPageStatus(w http.ResponseWriter, r *http.Request, data map[string]any, status int) {
	if !WantsPartial(r) {
		var buf bytes.Buffer
		if err := h.T.t.ExecuteTemplate(&buf, "layout", data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
			return
		}
		writeHTML(w, status, buf.Bytes(), h.logger())
		return
	}

	title, _ := data["Title"].(string)
	pageTitle, _ := data["PageTitle"].(string)
	currentPage, _ := data["CurrentPage"].(string)

	var buf bytes.Buffer
	// A <title> lets htmx update document.title on partial swaps; the header
	// title is replaced out of band.
	buf.WriteString(`<title>` + html.EscapeString(title) + `</title>`)
	buf.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(pageTitle) + `</h1>`)
	if err := h.T.t.ExecuteTemplate(&buf, ContentTemplateFor(currentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})
	// htmx only swaps 2xx responses, so partials always answer 200.
	writeHTML(w, http.StatusOK, buf.Bytes(), h.logger())
}

func writeHTML(w http.ResponseWriter, status int, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
	}
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response body", "error", err)
	}
}

// NotFound renders the not-found screen inside the normal layout with a 404.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Page Not Found", PageTitle: "Page Not Found", CurrentPage: PageNotFound})
	data["Path"] = r.URL.Path
	if WantsPartial(r) {
		h.renderDashboardPage(w, r, data)
		return
	}
	h.renderPageStatus(w, r, data, http.StatusNotFound)
}

// Index serves the landing route and sends every other unmatched path to NotFound.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != capability.LandingPath {
		h.NotFound(w, r)
		return
	}
	h.Page(w, r, PageSpec{Meta: PageMeta{Title: "Home", PageTitle: "Welcome", CurrentPage: PageHome}})
}

// handleUnauthorized ends the local session when the backend rejected its
// token and sends the browser to the login page. It reports whether it
// handled err.
func (h *UIHandlers) handleUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	if session := GetSessionFromContext(r.Context()); session != nil && h.Auth != nil {
		if logoutErr := h.Auth.Logout(context.WithoutCancel(r.Context()), session.ID); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout after rejected token failed", "error", logoutErr)
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)
	redirectToLogin(w, r)
	return true
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		body := `<div class="dev-error"><h2>Template Rendering Error</h2>` +
			`<p><strong>Context:</strong> ` + html.EscapeString(context) + `</p>` +
			`<p><strong>Path:</strong> ` + html.EscapeString(r.URL.Path) + `</p>` +
			`<pre>` + html.EscapeString(err.Error()) + `</pre></div>`
		if _, writeErr := w.Write([]byte(body)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
