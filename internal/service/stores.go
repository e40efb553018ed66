package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// StoreServiceOptions groups dependencies for StoreService.
type StoreServiceOptions struct {
	Stores ports.StoreAPI // Required
	Bills  ports.BillAPI  // Required: bills shown on the store detail screen
	Config StoreConfig
}

// StoreConfig holds optional collaborators.
type StoreConfig struct {
	Audit  *Auditor
	Logger *slog.Logger
}

// StoreService covers retail stores, the inventory assigned to them and the
// stock requests they raise.
type StoreService struct {
	stores ports.StoreAPI
	bills  ports.BillAPI
	audit  *Auditor
	logger *slog.Logger
}

// NewStoreService constructs a StoreService.
func NewStoreService(opts StoreServiceOptions) *StoreService {
	if opts.Stores == nil {
		panic("StoreService: Stores is required")
	}
	if opts.Bills == nil {
		panic("StoreService: Bills is required")
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreService{
		stores: opts.Stores,
		bills:  opts.Bills,
		audit:  opts.Config.Audit,
		logger: logger.With("component", "store_service"),
	}
}

// StoreNames lists every store for switchers and filters.
func (s *StoreService) StoreNames(ctx context.Context) ([]model.StoreName, error) {
	return s.stores.StoreNames(ctx)
}

// CreateStore creates a store. Input is validated by the caller.
func (s *StoreService) CreateStore(ctx context.Context, in model.StoreInput) (string, error) {
	return s.stores.CreateStore(ctx, in)
}

// StoreView is the store detail screen.
type StoreView struct {
	Store    model.Store
	Bills    []model.Bill
	Assigned []model.AssignedInventory
}

// StoreDetails fetches the store, its bills and its assigned inventory
// concurrently. Only the store itself is required.
func (s *StoreService) StoreDetails(ctx context.Context, storeID string) (*StoreView, error) {
	var view StoreView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		store, err := s.stores.StoreDetails(gctx, storeID)
		if err != nil {
			return err
		}
		view.Store = store
		return nil
	})
	g.Go(func() error {
		bills, err := s.bills.Bills(gctx, storeID)
		if err != nil {
			s.logger.WarnContext(ctx, "store bills unavailable", "store_id", storeID, "error", err)
			return nil
		}
		view.Bills = bills
		return nil
	})
	g.Go(func() error {
		assigned, err := s.stores.AssignedInventories(gctx, storeID)
		if err != nil {
			s.logger.WarnContext(ctx, "assigned inventory unavailable", "store_id", storeID, "error", err)
			return nil
		}
		view.Assigned = assigned
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateStore saves changed store details. Submitting the current values
// again is rejected.
func (s *StoreService) UpdateStore(ctx context.Context, storeID string, in model.StoreInput) (string, error) {
	current, err := s.stores.StoreDetails(ctx, storeID)
	if err != nil {
		return "", fmt.Errorf("load store: %w", err)
	}
	if unchanged(current, in) {
		return "", apperrors.Validation("No changes to update.")
	}
	return s.stores.UpdateStore(ctx, storeID, in)
}

func unchanged(cur model.Store, in model.StoreInput) bool {
	return cur.StoreName == in.StoreName &&
		cur.StoreAddress == in.StoreAddress &&
		cur.City == in.City &&
		cur.Pincode == in.Pincode &&
		cur.State == in.State &&
		cur.UserName == in.UserName &&
		cur.PhoneNo == in.PhoneNo &&
		cur.EmailID == in.EmailID &&
		cur.StoreOverview.CommissionPercentage.IntPart() == int64(in.CommissionPercentage) &&
		in.Password == ""
}

// AssignInventory uploads a CSV of stock to assign to the store.
func (s *StoreService) AssignInventory(ctx context.Context, storeID string, file ports.Upload) (string, error) {
	if file.Content == nil || !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return "", apperrors.ValidationField("file", "Please select a CSV file to upload.")
	}
	return s.stores.AssignInventory(ctx, storeID, file)
}

// AssignedList is the assigned inventory screen.
type AssignedList struct {
	Items  []model.AssignedInventory
	Stores []model.StoreName
}

// AssignedInventories lists assignments, optionally for one store.
func (s *StoreService) AssignedInventories(ctx context.Context, storeID string) (*AssignedList, error) {
	var out AssignedList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.stores.AssignedInventories(gctx, storeID)
		if err != nil {
			return err
		}
		out.Items = items
		return nil
	})
	g.Go(func() error {
		stores, err := s.stores.StoreNames(gctx)
		if err != nil {
			s.logger.WarnContext(ctx, "store names unavailable", "error", err)
			return nil
		}
		out.Stores = stores
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignedInventory fetches one assignment with its stock lines.
func (s *StoreService) AssignedInventory(ctx context.Context, id string) (model.AssignedInventoryDetail, error) {
	return s.stores.AssignedInventory(ctx, id)
}

// RaisedInventories lists stock requests raised by stores.
func (s *StoreService) RaisedInventories(ctx context.Context) ([]model.RaisedInventory, error) {
	return s.stores.RaisedInventories(ctx)
}

// RaisedInventory fetches one stock request.
func (s *StoreService) RaisedInventory(ctx context.Context, id string) (model.RaisedInventoryDetail, error) {
	return s.stores.RaisedInventory(ctx, id)
}

// ApproveRaisedInventory accepts a stock request.
func (s *StoreService) ApproveRaisedInventory(ctx context.Context, id string) (msg string, err error) {
	d := model.Decision{Approve: true}
	defer func() { s.audit.Record(ctx, model.AuditRaisedInventory, id, d, err) }()
	return s.stores.ApproveRaisedInventory(ctx, id)
}

// RejectRaisedInventory declines a stock request. The note is kept in the
// audit trail only; the backend takes no reason.
func (s *StoreService) RejectRaisedInventory(ctx context.Context, id, note string) (msg string, err error) {
	d, err := requireNote(model.Decision{Note: note})
	if err != nil {
		return "", err
	}
	defer func() { s.audit.Record(ctx, model.AuditRaisedInventory, id, d, err) }()
	return s.stores.RejectRaisedInventory(ctx, id)
}
