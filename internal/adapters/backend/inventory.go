package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// ActiveProducts lists the warehouse catalogue of one group.
func (c *Client) ActiveProducts(ctx context.Context, group string) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/" + url.PathEscape(strings.ToUpper(group)) + "/getAllActiveProducts",
		result:   atProducts,
		fallback: "Failed to load inventory.",
	}, &out)
	return out, err
}

// UpdateVariant changes stock and price for a style code.
func (c *Client) UpdateVariant(ctx context.Context, in model.VariantUpdate) (string, error) {
	return c.doMessage(ctx, request{
		method: http.MethodPatch,
		path:   "/dashboard/updateVariant",
		body: map[string]any{
			"group":       in.Group,
			"styleCoat":   in.StyleCoat,
			"newQuantity": in.NewQuantity,
			"newPrice":    json.Number(in.NewPrice.String()),
		},
		fallback: "Failed to update product. Please try again later.",
	}, "Item Edited successfully!")
}

// RemoveVariant deletes a style code from the catalogue.
func (c *Client) RemoveVariant(ctx context.Context, in model.VariantRef) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodDelete,
		path:     "/dashboard/removeVariant",
		body:     in,
		fallback: "Failed to delete item. Please try again later.",
	}, "Item deleted successfully!")
}

// BulkUpload sends an inventory spreadsheet for a group.
func (c *Client) BulkUpload(ctx context.Context, group, schoolName string, file ports.Upload) (string, error) {
	suffix, ok := model.UploadGroups[strings.ToUpper(group)]
	if !ok {
		return "", apperrors.ValidationField("group", "Invalid category selected.")
	}
	fields := map[string]string{}
	if schoolName != "" {
		fields["schoolName"] = schoolName
	}
	return c.doMessage(ctx, request{
		method:   http.MethodPost,
		path:     "/bulkUpload/bulkUpload" + suffix,
		form:     &multipartForm{fileField: "file", file: file, fields: fields},
		fallback: "Error uploading file. Please try again.",
	}, "File uploaded successfully!")
}

// DownloadInventory exports a school's stock.
func (c *Client) DownloadInventory(ctx context.Context, schoolName string) (ports.Download, error) {
	return c.download(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/downloadInventory/" + url.PathEscape(schoolName),
		fallback: "Failed to download inventory.",
	})
}

// UploadHistories lists past bulk uploads.
func (c *Client) UploadHistories(ctx context.Context) ([]model.UploadHistory, error) {
	var out []model.UploadHistory
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/uploadHistories",
		result:   atData,
		fallback: "Failed to load upload history.",
	}, &out)
	return out, err
}

// UploadHistory returns one upload with its products.
func (c *Client) UploadHistory(ctx context.Context, uploadID string) (model.UploadHistoryDetail, error) {
	var out model.UploadHistoryDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/uploadedHistory/" + url.PathEscape(uploadID) + "/products",
		fallback: "Failed to load uploaded products.",
	}, &out)
	return out, err
}

// Barcodes downloads the barcode sheet for an upload.
func (c *Client) Barcodes(ctx context.Context, uploadID string) (ports.Download, error) {
	return c.download(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/" + url.PathEscape(uploadID) + "/generateBarcodes",
		fallback: "Failed to generate barcodes.",
	})
}
