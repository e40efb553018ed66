package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
)

// Overview returns the per-group sales summary.
func (c *Client) Overview(ctx context.Context) (model.Overview, error) {
	var out model.Overview
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/getOverview",
		fallback: "Failed to load overview.",
	}, &out)
	return out, err
}

// Orders lists online orders for the given product groups.
func (c *Client) Orders(ctx context.Context, groups []string) ([]model.Order, error) {
	var q url.Values
	if len(groups) > 0 {
		q = url.Values{"groups": {strings.Join(groups, ",")}}
	}
	var out []model.Order
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/getOrders",
		query:    q,
		result:   atOrders,
		fallback: "Failed to load orders.",
	}, &out)
	return out, err
}

// OrderDetails returns one online order.
func (c *Client) OrderDetails(ctx context.Context, orderID string) (model.OrderDetails, error) {
	var out model.OrderDetails
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/getOrderDetails/" + url.PathEscape(orderID),
		result:   atOrderDetails,
		fallback: "Failed to load order details.",
	}, &out)
	if err != nil {
		return model.OrderDetails{}, err
	}
	if out.OrderID == "" {
		return model.OrderDetails{}, apperrors.NotFound("Order not found.")
	}
	return out, nil
}

// Boxes lists the predefined parcel sizes.
func (c *Client) Boxes(ctx context.Context) ([]model.Box, error) {
	var out []model.Box
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/predefined/boxes",
		fallback: "Failed to load box sizes.",
	}, &out)
	return out, err
}

// AssignCourier books a shipment for the order with the given parcel.
func (c *Client) AssignCourier(ctx context.Context, orderID string, box model.Box) (model.Shipment, error) {
	var out model.Shipment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/dashboard/assignToShipRocket/" + url.PathEscape(orderID),
		body: map[string]any{
			"boxLength":  json.Number(box.Length.String()),
			"boxBreadth": json.Number(box.Breadth.String()),
			"boxHeight":  json.Number(box.Height.String()),
			"boxWeight":  json.Number(box.Weight.String()),
		},
		result:   atShipment,
		fallback: "Failed to assign order to Shiprocket.",
	}, &out)
	if err != nil {
		return model.Shipment{}, err
	}
	if out.ShipmentID == "" {
		return model.Shipment{}, apperrors.Internal("Failed to assign order to Shiprocket.")
	}
	return out, nil
}

type manifestResponse struct {
	Status      int    `json:"status"`
	ManifestURL string `json:"manifest_url"`
}

// GenerateManifest creates the courier manifest and returns its URL.
func (c *Client) GenerateManifest(ctx context.Context, shipmentIDs []string) (string, error) {
	var out manifestResponse
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/dashboard/manifests/generate",
		body:     map[string][]string{"shipment_id": shipmentIDs},
		fallback: "Failed to generate manifest.",
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Status != 1 || out.ManifestURL == "" {
		return "", apperrors.Internal("Manifest generated but no URL available.")
	}
	return out.ManifestURL, nil
}

// GenerateLabel creates shipping labels and returns their URL.
func (c *Client) GenerateLabel(ctx context.Context, shipmentIDs []string) (string, error) {
	return c.documentURL(ctx, "/dashboard/generate/label", "shipment_id", shipmentIDs, atLabelURL, "Label creation failed.")
}

// PrintInvoice creates the courier invoice and returns its URL.
func (c *Client) PrintInvoice(ctx context.Context, orderIDs []string) (string, error) {
	return c.documentURL(ctx, "/dashboard/print/invoice", "ids", orderIDs, atInvoiceURL, "Invoice creation failed.")
}

func (c *Client) documentURL(ctx context.Context, path, key string, ids []string, at *Extractor, failure string) (string, error) {
	var out string
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     path,
		body:     map[string][]string{key: ids},
		result:   at,
		fallback: failure,
	}, &out)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", apperrors.Internal(failure)
	}
	return out, nil
}

// Track returns courier tracking for an airway bill.
func (c *Client) Track(ctx context.Context, awb string) (model.Tracking, error) {
	var out model.Tracking
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/dashboard/track/awb/" + url.PathEscape(awb),
		result:   atTracking,
		fallback: "Failed to load tracking details.",
	}, &out)
	return out, err
}

// CancelledOrders returns one server page of cancelled or refunded orders.
func (c *Client) CancelledOrders(ctx context.Context, kind string, page, limit int) (model.OrderPage, error) {
	path := "/dashboard/getCanceledOrders"
	if kind == model.CancelKindRefunded {
		path = "/dashboard/getRefundedOrders"
	}
	var out model.OrderPage
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		query:    url.Values{"page": {strconv.Itoa(page)}, "limit": {strconv.Itoa(limit)}},
		fallback: "Failed to load orders.",
	}, &out)
	return out, err
}

// UpdateRefundStatus marks the order's refund as paid.
func (c *Client) UpdateRefundStatus(ctx context.Context, orderID string) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPatch,
		path:     "/dashboard/updateRefundStatus/" + url.PathEscape(orderID),
		body:     map[string]string{},
		fallback: "Failed to process refund.",
	}, "Refund payment status updated successfully.")
}
