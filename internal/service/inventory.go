package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// DefaultGroup is shown when no product group is selected.
const DefaultGroup = "ELITE"

// InventoryServiceOptions groups dependencies for InventoryService.
type InventoryServiceOptions struct {
	Inventory ports.InventoryAPI // Required
	Stores    ports.StoreAPI     // Required: school names for upload and download
	Logger    *slog.Logger
}

// InventoryService covers warehouse stock and bulk uploads.
type InventoryService struct {
	inventory ports.InventoryAPI
	stores    ports.StoreAPI
	logger    *slog.Logger
}

// NewInventoryService constructs an InventoryService.
func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.Inventory == nil {
		panic("InventoryService: Inventory is required")
	}
	if opts.Stores == nil {
		panic("InventoryService: Stores is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{
		inventory: opts.Inventory,
		stores:    opts.Stores,
		logger:    logger.With("component", "inventory_service"),
	}
}

// NormalizeGroup maps an unknown group to DefaultGroup.
func NormalizeGroup(group string) string {
	group = strings.ToUpper(strings.TrimSpace(group))
	if slices.Contains(model.Groups, group) {
		return group
	}
	return DefaultGroup
}

// Products returns the active stock of a group as one row per style coat.
func (s *InventoryService) Products(ctx context.Context, group string) ([]model.InventoryItem, error) {
	products, err := s.inventory.ActiveProducts(ctx, NormalizeGroup(group))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return model.FlattenProducts(products), nil
}

// Schools lists the school names offered by upload and download.
func (s *InventoryService) Schools(ctx context.Context) ([]model.StoreName, error) {
	names, err := s.stores.StoreNames(ctx)
	if err != nil {
		return nil, withMessage(err, "Failed to fetch store names.")
	}
	return names, nil
}

// UpdateVariant changes the quantity and price of one style coat.
func (s *InventoryService) UpdateVariant(ctx context.Context, in model.VariantUpdate) (string, error) {
	in.Group = NormalizeGroup(in.Group)
	if in.NewPrice.IsNegative() {
		return "", apperrors.ValidationField("newPrice", "Price cannot be negative.")
	}
	msg, err := s.inventory.UpdateVariant(ctx, in)
	if err != nil {
		return "", withMessage(err, "Failed to update product. Please try again later.")
	}
	return msg, nil
}

// RemoveVariant deletes one style coat.
func (s *InventoryService) RemoveVariant(ctx context.Context, in model.VariantRef) (string, error) {
	in.Group = NormalizeGroup(in.Group)
	msg, err := s.inventory.RemoveVariant(ctx, in)
	if err != nil {
		return "", withMessage(err, "Failed to delete item. Please try again later.")
	}
	return msg, nil
}

// BulkUpload sends a CSV of products for a group. TOGS uploads need a school.
func (s *InventoryService) BulkUpload(ctx context.Context, group, schoolName string, file ports.Upload) (string, error) {
	if file.Content == nil || file.Filename == "" {
		return "", apperrors.ValidationField("file", "Please select a file to upload.")
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return "", apperrors.ValidationField("file", "Only CSV files can be uploaded.")
	}
	group = strings.ToUpper(strings.TrimSpace(group))
	schoolName = strings.TrimSpace(schoolName)
	if group == "TOGS" && schoolName == "" {
		return "", apperrors.ValidationField("schoolName", "Please select a school name.")
	}
	return s.inventory.BulkUpload(ctx, group, schoolName, file)
}

// DownloadInventory exports the stock of one school.
func (s *InventoryService) DownloadInventory(ctx context.Context, schoolName string) (ports.Download, error) {
	schoolName = strings.TrimSpace(schoolName)
	if schoolName == "" {
		return ports.Download{}, apperrors.ValidationField("schoolName", "Please select a school.")
	}
	dl, err := s.inventory.DownloadInventory(ctx, schoolName)
	if err != nil {
		return ports.Download{}, withMessage(err, "Failed to download inventory.")
	}
	if dl.Filename == "" {
		dl.Filename = "inventory_" + schoolName + ".csv"
	}
	return dl, nil
}

// UploadHistories lists previous bulk uploads.
func (s *InventoryService) UploadHistories(ctx context.Context) ([]model.UploadHistory, error) {
	return s.inventory.UploadHistories(ctx)
}

// UploadHistory fetches the products of one upload.
func (s *InventoryService) UploadHistory(ctx context.Context, uploadID string) (model.UploadHistoryDetail, error) {
	return s.inventory.UploadHistory(ctx, uploadID)
}

// Barcodes downloads the barcode sheet of one upload.
func (s *InventoryService) Barcodes(ctx context.Context, uploadID string) (ports.Download, error) {
	dl, err := s.inventory.Barcodes(ctx, uploadID)
	if err != nil {
		return ports.Download{}, withMessage(err, "Failed to generate barcodes.")
	}
	if dl.Filename == "" {
		dl.Filename = "barcodes_" + uploadID + ".pdf"
	}
	return dl, nil
}
