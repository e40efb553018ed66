package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// StoreNames lists store ids and names.
func (c *Client) StoreNames(ctx context.Context) ([]model.StoreName, error) {
	var out []model.StoreName
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/store-names",
		result:   atStoreNames,
		fallback: "Failed to load stores.",
	}, &out)
	return out, err
}

// CreateStore registers a new store and its login.
func (c *Client) CreateStore(ctx context.Context, in model.StoreInput) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPost,
		path:     "/store/create-store",
		body:     in,
		fallback: "Failed to create store.",
	}, "Store created successfully!")
}

// StoreDetails returns one store with its sales overview.
func (c *Client) StoreDetails(ctx context.Context, storeID string) (model.Store, error) {
	var out model.Store
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/get-storeDetails/" + url.PathEscape(storeID),
		result:   atData,
		fallback: "Failed to load store details.",
	}, &out)
	return out, err
}

// UpdateStore changes store details. An empty password is not sent.
func (c *Client) UpdateStore(ctx context.Context, storeID string, in model.StoreInput) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPatch,
		path:     "/store/update-store/" + url.PathEscape(storeID),
		body:     in,
		fallback: "Error updating store details. Please try again.",
	}, "Store details updated successfully!")
}

// AssignInventory uploads a stock sheet to a store.
func (c *Client) AssignInventory(ctx context.Context, storeID string, file ports.Upload) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPost,
		path:     "/store/assign-inventory/" + url.PathEscape(storeID),
		form:     &multipartForm{fileField: "file", file: file},
		fallback: "Failed to assign inventory.",
	}, "Inventory assigned successfully!")
}

// AssignedInventories lists assignments, for one store when storeID is set.
func (c *Client) AssignedInventories(ctx context.Context, storeID string) ([]model.AssignedInventory, error) {
	path := "/store/assigned-inventories"
	if storeID != "" {
		path += "/" + url.PathEscape(storeID)
	}
	var out []model.AssignedInventory
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		result:   atAssigned,
		fallback: "Failed to load assigned inventory.",
	}, &out)
	return out, err
}

// AssignedInventory returns one assignment with its products.
func (c *Client) AssignedInventory(ctx context.Context, id string) (model.AssignedInventoryDetail, error) {
	var out model.AssignedInventoryDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/assigned-inventory-details/" + url.PathEscape(id),
		fallback: "Failed to load inventory details.",
	}, &out)
	return out, err
}

// RaisedInventories lists stock requests raised by stores.
func (c *Client) RaisedInventories(ctx context.Context) ([]model.RaisedInventory, error) {
	var out []model.RaisedInventory
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/raised-inventory-requests",
		result:   atRaisedRequest,
		fallback: "Failed to load raised inventory.",
	}, &out)
	return out, err
}

// RaisedInventory returns one stock request.
func (c *Client) RaisedInventory(ctx context.Context, id string) (model.RaisedInventoryDetail, error) {
	var out model.RaisedInventoryDetail
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/store/raised-inventory-details/" + url.PathEscape(id),
		fallback: "Failed to load raised inventory details.",
	}, &out)
	return out, err
}

// ApproveRaisedInventory accepts a stock request.
func (c *Client) ApproveRaisedInventory(ctx context.Context, id string) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPatch,
		path:     "/store/approve-inventory-request/" + url.PathEscape(id),
		body:     map[string]string{},
		fallback: "Failed to accept inventory.",
	}, "Inventory accepted.")
}

// RejectRaisedInventory declines a stock request.
func (c *Client) RejectRaisedInventory(ctx context.Context, id string) (string, error) {
	return c.doMessage(ctx, request{
		method:   http.MethodPatch,
		path:     "/store/reject-inventory-request/" + url.PathEscape(id),
		body:     map[string]string{},
		fallback: "Failed to reject inventory.",
	}, "Inventory rejected.")
}
