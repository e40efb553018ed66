package service

import (
	"context"
	"log/slog"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Catalog  ports.CatalogAPI  // Required
	Overview ports.OverviewAPI // Required
	Logger   *slog.Logger
}

// CatalogService covers the read-only screens: overview, quotes, coupons
// and contact form submissions.
type CatalogService struct {
	catalog  ports.CatalogAPI
	overview ports.OverviewAPI
	logger   *slog.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Catalog == nil {
		panic("CatalogService: Catalog is required")
	}
	if opts.Overview == nil {
		panic("CatalogService: Overview is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		catalog:  opts.Catalog,
		overview: opts.Overview,
		logger:   logger.With("component", "catalog_service"),
	}
}

// OverviewView is the sales summary trimmed to what a role may see.
type OverviewView struct {
	Groups       []model.GroupTotals
	Total        model.OverviewTotals
	ShowAmounts  bool
	ShowQuantity bool
	// ShowBreakdown adds cancelled, offline and net order counts.
	ShowBreakdown bool
}

// Overview fetches the sales summary. Amounts are only shown to super
// admins and customer care sees online order counts only.
func (s *CatalogService) Overview(ctx context.Context, role auth.Role) (*OverviewView, error) {
	o, err := s.overview.Overview(ctx)
	if err != nil {
		return nil, err
	}
	view := &OverviewView{Groups: o.Groups, Total: o.Total}
	switch role {
	case auth.RoleSuperAdmin:
		view.ShowAmounts, view.ShowQuantity, view.ShowBreakdown = true, true, true
	case auth.RoleProductManager, auth.RoleInventoryManager:
		view.ShowQuantity, view.ShowBreakdown = true, true
	}
	return view, nil
}

// Quotes lists quote requests.
func (s *CatalogService) Quotes(ctx context.Context) ([]model.Quote, error) {
	return s.catalog.Quotes(ctx)
}

// Quote fetches one quote request.
func (s *CatalogService) Quote(ctx context.Context, id string) (model.QuoteDetail, error) {
	return s.catalog.Quote(ctx, id)
}

// Coupons lists coupons of every status.
func (s *CatalogService) Coupons(ctx context.Context) ([]model.Coupon, error) {
	return s.catalog.Coupons(ctx)
}

// Contacts lists contact form submissions.
func (s *CatalogService) Contacts(ctx context.Context) ([]model.ContactForm, error) {
	return s.catalog.Contacts(ctx)
}

// DownloadContacts exports contact submissions as CSV.
func (s *CatalogService) DownloadContacts(ctx context.Context) (ports.Download, error) {
	dl, err := s.catalog.DownloadContacts(ctx)
	if err != nil {
		return ports.Download{}, withMessage(err, "Failed to download contacts.")
	}
	if dl.Filename == "" {
		dl.Filename = "contacts.csv"
	}
	return dl, nil
}
