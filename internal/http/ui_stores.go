package httpx

import (
	"context"
	"net/http"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/http/validation"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

//nolint:gochecknoglobals // static validation copy
var storeMessages = validation.Messages{
	"pincode.len":              "Pincode must be 6 digits.",
	"pincode.numeric":          "Pincode must be 6 digits.",
	"phoneNo.len":              "Phone number must be 10 digits.",
	"phoneNo.numeric":          "Phone number must be 10 digits.",
	"emailID.email":            "Please enter a valid email address.",
	"commissionPercentage.lte": "Commission must be between 0 and 100.",
	"commissionPercentage.gte": "Commission must be between 0 and 100.",
	"password.min":             "Password must be at least 6 characters.",
}

// StoresPage renders the store cards and the create store form. ?store= picks
// the card shown in full.
func (h *UIHandlers) StoresPage(w http.ResponseWriter, r *http.Request) {
	q := listview.ParseQuery(r.URL.Query(), listview.Tabs{})
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Store Creation", PageTitle: "Stores", CurrentPage: PageStores},
		ErrorMessage: "Failed to fetch store names.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			stores, err := h.Stores.StoreNames(ctx)
			if err != nil {
				return err
			}
			data["Stores"] = stores
			data["StoreOptions"] = storeOptions(q, "/store-creation", stores)
			if q.Store == "" {
				return nil
			}
			view, err := h.Stores.StoreDetails(ctx, q.Store)
			if err != nil {
				return err
			}
			data["Selected"] = view
			return nil
		},
	})
}

func parseStoreForm(requirePassword bool) ActionParser[model.StoreInput] {
	parse := formParser[model.StoreInput](storeMessages)
	return func(r *http.Request) (model.StoreInput, map[string]string) {
		in, errs := parse(r)
		if requirePassword && in.Password == "" {
			if errs == nil {
				errs = map[string]string{}
			}
			if _, ok := errs["password"]; !ok {
				errs["password"] = "Password is required."
			}
		}
		return in, errs
	}
}

// CreateStore creates a store from the validated form.
func (h *UIHandlers) CreateStore(w http.ResponseWriter, r *http.Request) {
	HandleAction(h, ActionOpts[model.StoreInput]{
		W:            w,
		R:            r,
		Parse:        parseStoreForm(true),
		Render:       h.StoresPage,
		ErrorMessage: "Failed to create store.",
		KeepForm:     true,
		Do: func(ctx context.Context, in model.StoreInput) (string, error) {
			msg, err := h.Stores.CreateStore(ctx, in)
			return orDefault(msg, "Store created successfully."), err
		},
	})
}

// StoreDetail renders a store with its bills and assigned inventory.
func (h *UIHandlers) StoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID := r.PathValue("storeId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Store Details", PageTitle: "Store Details", CurrentPage: PageStore},
		ErrorMessage: "Failed to fetch store details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["StoreID"] = storeID
			view, err := h.Stores.StoreDetails(ctx, storeID)
			if err != nil {
				return err
			}
			data["View"] = view
			if _, ok := data["Form"]; !ok {
				data["Form"] = storeInputFrom(view.Store)
			}
			return nil
		},
	})
}

func storeInputFrom(s model.Store) model.StoreInput {
	return model.StoreInput{
		StoreName:            s.StoreName,
		StoreAddress:         s.StoreAddress,
		City:                 s.City,
		Pincode:              s.Pincode,
		State:                s.State,
		CommissionPercentage: int(s.StoreOverview.CommissionPercentage.IntPart()),
		UserName:             s.UserName,
		PhoneNo:              s.PhoneNo,
		EmailID:              s.EmailID,
	}
}

// UpdateStore saves the edited store details.
func (h *UIHandlers) UpdateStore(w http.ResponseWriter, r *http.Request) {
	storeID := r.PathValue("storeId")
	HandleAction(h, ActionOpts[model.StoreInput]{
		W:            w,
		R:            r,
		Parse:        parseStoreForm(false),
		Render:       h.StoreDetail,
		ErrorMessage: "Failed to update store.",
		KeepForm:     true,
		Do: func(ctx context.Context, in model.StoreInput) (string, error) {
			msg, err := h.Stores.UpdateStore(ctx, storeID, in)
			return orDefault(msg, "Store updated successfully."), err
		},
	})
}

// AssignInventory uploads a stock CSV to the store.
func (h *UIHandlers) AssignInventory(w http.ResponseWriter, r *http.Request) {
	storeID := r.PathValue("storeId")
	var closeFile func()
	defer func() {
		if closeFile != nil {
			closeFile()
		}
	}()
	HandleAction(h, ActionOpts[ports.Upload]{
		W: w,
		R: r,
		Parse: func(r *http.Request) (ports.Upload, map[string]string) {
			upload, f, err := formFile(r, "file")
			if err != nil {
				return ports.Upload{}, uploadFieldError(err)
			}
			closeFile = func() { _ = f.Close() }
			return upload, nil
		},
		Render:       h.StoreDetail,
		ErrorMessage: "Failed to assign inventory.",
		Do: func(ctx context.Context, file ports.Upload) (string, error) {
			msg, err := h.Stores.AssignInventory(ctx, storeID, file)
			return orDefault(msg, "Inventory assigned successfully."), err
		},
	})
}

// AssignedInventories renders stock assigned to stores with a store filter.
func (h *UIHandlers) AssignedInventories(w http.ResponseWriter, r *http.Request) {
	var stores []model.StoreName
	HandleList(ListHandlerOpts[model.AssignedInventory]{
		Handler:      h,
		W:            w,
		R:            r,
		Meta:         PageMeta{Title: "Assigned Inventory", PageTitle: "Assigned Inventory", CurrentPage: PageAssignedInventory},
		BasePath:     "/assigned-inventory",
		PageSize:     pageSizeAssigned,
		ItemsKey:     "Assigned",
		ErrorMessage: "Failed to load assigned inventory.",
		Fetch: func(ctx context.Context, q listview.Query) ([]model.AssignedInventory, error) {
			list, err := h.Stores.AssignedInventories(ctx, q.Store)
			if err != nil {
				return nil, err
			}
			stores = list.Stores
			return list.Items, nil
		},
		Enrich: func(b *TemplateDataBuilder, q listview.Query) {
			b.With("StoreOptions", storeOptions(q, "/assigned-inventory", stores))
		},
	})
}

// AssignedInventoryDetail renders the stock lines of one assignment.
func (h *UIHandlers) AssignedInventoryDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("inventoryId")
	h.Page(w, r, PageSpec{
		Meta:         PageMeta{Title: "Inventory Details", PageTitle: "Assigned Inventory Details", CurrentPage: PageAssignedInventoryDetail},
		ErrorMessage: "Failed to load inventory details.",
		Fetch: func(ctx context.Context, data map[string]any) error {
			detail, err := h.Stores.AssignedInventory(ctx, id)
			if err != nil {
				return err
			}
			data["Detail"] = detail
			return nil
		},
	})
}
