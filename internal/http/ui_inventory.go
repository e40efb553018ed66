package httpx

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/http/validation"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
	"github.com/jhaverenterprises/uniform-admin/internal/service"
)

//nolint:gochecknoglobals // static validation copy
var variantMessages = validation.Messages{
	"newPrice.gt":     "Price must be greater than zero.",
	"newQuantity.gte": "Quantity cannot be negative.",
}

// InventoryPage renders warehouse stock of one product group.
func (h *UIHandlers) InventoryPage(w http.ResponseWriter, r *http.Request) {
	var schools []model.StoreName
	HandleList(ListHandlerOpts[model.InventoryItem]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Inventory", PageTitle: "Inventory", CurrentPage: PageInventory},
		BasePath:     "/inventory",
		PageSize:     pageSizeInventory,
		ItemsKey:     "Items",
		ErrorMessage: "Failed to fetch products.",
		Fetch: func(ctx context.Context, q listview.Query) ([]model.InventoryItem, error) {
			var items []model.InventoryItem
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				items, err = h.Inventory.Products(gctx, q.Group)
				return err
			})
			g.Go(func() error {
				names, err := h.Inventory.Schools(gctx)
				if err != nil {
					// Only the upload and download pickers need schools.
					h.logger().WarnContext(ctx, "school names unavailable", "error", err)
					return nil
				}
				schools = names
				return nil
			})
			return items, g.Wait()
		},
		Enrich: func(b *TemplateDataBuilder, q listview.Query) {
			group := service.NormalizeGroup(q.Group)
			tabs := make([]TabLink, 0, len(model.Groups))
			for _, g := range model.Groups {
				tabs = append(tabs, TabLink{Label: g, URL: q.WithGroup("/inventory", g), Active: g == group})
			}
			b.With("Tabs", tabs).
				With("Group", group).
				With("Schools", schools)
		},
	})
}

// UpdateVariant changes quantity and price of one style coat.
func (h *UIHandlers) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	HandleAction(h, ActionOpts[model.VariantUpdate]{
		W:            w,
		R:            r,
		Parse:        formParser[model.VariantUpdate](variantMessages),
		Render:       h.InventoryPage,
		ErrorMessage: "Failed to update product. Please try again later.",
		KeepForm:     true,
		Do: func(ctx context.Context, in model.VariantUpdate) (string, error) {
			msg, err := h.Inventory.UpdateVariant(ctx, in)
			return orDefault(msg, "Product updated successfully."), err
		},
	})
}

// RemoveVariant deletes one style coat.
func (h *UIHandlers) RemoveVariant(w http.ResponseWriter, r *http.Request) {
	HandleAction(h, ActionOpts[model.VariantRef]{
		W:            w,
		R:            r,
		Parse:        formParser[model.VariantRef](nil),
		Render:       h.InventoryPage,
		ErrorMessage: "Failed to delete item. Please try again later.",
		Do: func(ctx context.Context, in model.VariantRef) (string, error) {
			msg, err := h.Inventory.RemoveVariant(ctx, in)
			return orDefault(msg, "Item deleted successfully."), err
		},
	})
}

type uploadForm struct {
	Group      string `form:"group" validate:"required"`
	SchoolName string `form:"schoolName"`
	file       ports.Upload
}

// UploadInventory sends a product CSV for a group.
func (h *UIHandlers) UploadInventory(w http.ResponseWriter, r *http.Request) {
	var closeFile func()
	defer func() {
		if closeFile != nil {
			closeFile()
		}
	}()
	HandleAction(h, ActionOpts[uploadForm]{
		W: w,
		R: r,
		Parse: func(r *http.Request) (uploadForm, map[string]string) {
			upload, f, err := formFile(r, "file")
			if err != nil {
				return uploadForm{}, uploadFieldError(err)
			}
			closeFile = func() { _ = f.Close() }
			in, errs := formParser[uploadForm](validation.Messages{"group": "Please select a group."})(r)
			in.file = upload
			return in, errs
		},
		Render:       h.InventoryPage,
		ErrorMessage: "Failed to upload file.",
		Do: func(ctx context.Context, in uploadForm) (string, error) {
			msg, err := h.Inventory.BulkUpload(ctx, in.Group, in.SchoolName, in.file)
			return orDefault(msg, "File uploaded successfully."), err
		},
	})
}

func uploadFieldError(err error) map[string]string {
	if field := apperrors.GetField(err); field != "" {
		return map[string]string{field: apperrors.UserMessage(err, "Could not read the uploaded file.")}
	}
	return map[string]string{"file": "Please select a file to upload."}
}

// DownloadInventory exports the stock of one school.
func (h *UIHandlers) DownloadInventory(w http.ResponseWriter, r *http.Request) {
	school := r.PathValue("schoolName")
	if school == "" {
		school = r.URL.Query().Get("schoolName")
	}
	h.streamDownload(w, r, DownloadOpts{
		Fetch: func(ctx context.Context) (ports.Download, error) {
			return h.Inventory.DownloadInventory(ctx, school)
		},
		Filename:     "inventory.csv",
		OnError:      h.InventoryPage,
		ErrorMessage: "Failed to download inventory.",
	})
}

// UploadHistories renders previous bulk uploads.
func (h *UIHandlers) UploadHistories(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.UploadHistory]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Uploaded History", PageTitle: "Uploaded History", CurrentPage: PageUploadHistory},
		BasePath:     "/uploaded-history",
		PageSize:     pageSizeUploads,
		ItemsKey:     "Uploads",
		ErrorMessage: "Failed to load upload history.",
		Fetch: func(ctx context.Context, _ listview.Query) ([]model.UploadHistory, error) {
			return h.Inventory.UploadHistories(ctx)
		},
	})
}

// UploadHistoryProducts renders the products of one upload.
func (h *UIHandlers) UploadHistoryProducts(w http.ResponseWriter, r *http.Request) {
	uploadID := r.PathValue("uploadId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Upload " + uploadID, PageTitle: "Uploaded Products", CurrentPage: PageUploadHistoryProducts},
		ErrorMessage: "Failed to load uploaded products.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["UploadID"] = uploadID
			detail, err := h.Inventory.UploadHistory(ctx, uploadID)
			if err != nil {
				return err
			}
			data["Upload"] = detail
			return nil
		},
	})
}

// DownloadBarcodes streams the barcode sheet of one upload.
func (h *UIHandlers) DownloadBarcodes(w http.ResponseWriter, r *http.Request) {
	uploadID := r.PathValue("uploadId")
	h.streamDownload(w, r, DownloadOpts{
		Fetch: func(ctx context.Context) (ports.Download, error) {
			return h.Inventory.Barcodes(ctx, uploadID)
		},
		Filename:     "barcodes.pdf",
		OnError:      h.UploadHistoryProducts,
		ErrorMessage: "Failed to generate barcodes.",
	})
}

func orDefault(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
