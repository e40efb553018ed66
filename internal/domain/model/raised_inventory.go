package model

import "github.com/shopspring/decimal"

// Raised inventory statuses beyond the shared moderation ones.
const (
	StatusReceived = "RECEIVED"
	StatusDraft    = "DRAFT"
)

// RaisedInventoryTabs are the list filters; "All" disables filtering.
var RaisedInventoryTabs = []string{"All", StatusPending, StatusApproved, StatusRejected, StatusReceived, StatusDraft}

// RaisedInventory is a store's stock request as listed.
type RaisedInventory struct {
	RaisedInventoryID string `json:"raisedInventoryId"`
	Status            string `json:"status"`
	ReceivedDate      string `json:"receivedDate"`
}

// RaisedSize is one requested size.
type RaisedSize struct {
	Size                string          `json:"size"`
	Quantity            int             `json:"quantity"`
	QuantityInWarehouse int             `json:"quantityInWarehouse"`
	StyleCoat           string          `json:"styleCoat"`
	SKU                 string          `json:"sku"`
	IsApproved          bool            `json:"isApproved"`
	IsReceived          bool            `json:"isReceived"`
	Price               decimal.Decimal `json:"price"`
}

// RaisedVariant groups requested sizes by colour.
type RaisedVariant struct {
	Color        Color        `json:"color"`
	VariantSizes []RaisedSize `json:"variantSizes"`
}

// RaisedProduct is a requested product.
type RaisedProduct struct {
	ProductType string          `json:"productType"`
	Group       string          `json:"group"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Gender      string          `json:"gender"`
	Material    string          `json:"material"`
	Price       decimal.Decimal `json:"price"`
	Variants    []RaisedVariant `json:"variants"`
}

// RaisedLine is a flattened product × colour × size row.
type RaisedLine struct {
	ProductType         string
	Group               string
	Category            string
	SubCategory         string
	Gender              string
	Material            string
	Price               decimal.Decimal
	Color               string
	Size                string
	Quantity            int
	QuantityInWarehouse int
	StyleCoat           string
	SKU                 string
	IsApproved          bool
	IsReceived          bool
}

// RaisedInventoryDetail is a full stock request.
type RaisedInventoryDetail struct {
	RaisedInventoryID string          `json:"raisedInventoryId"`
	StoreName         string          `json:"storeName"`
	Status            string          `json:"Status"`
	TotalAmountRaised decimal.Decimal `json:"totalAmountRaised"`
	ApprovedDate      string          `json:"approvedDate"`
	ReceivedDate      string          `json:"receivedDate"`
	RejectedDate      string          `json:"rejectedDate"`
	Products          []RaisedProduct `json:"products"`
}

// Actionable reports whether approve and reject may be offered.
func (d RaisedInventoryDetail) Actionable() bool {
	switch d.Status {
	case StatusApproved, StatusRejected, StatusReceived:
		return false
	default:
		return true
	}
}

// Draft filters apply only to DRAFT requests.
const (
	DraftApproved            = "APPROVED"
	DraftNotApproved         = "NOT APPROVED"
	DraftApprovedReceived    = "APPROVED AND RECEIVED"
	DraftApprovedNotReceived = "APPROVED AND NOT RECEIVED"
)

// DraftFilters lists the nested size filters in display order.
var DraftFilters = []string{DraftApproved, DraftNotApproved, DraftApprovedReceived, DraftApprovedNotReceived}

// NormalizeDraftFilter returns filter when it is a known draft filter and
// DraftApproved otherwise.
func NormalizeDraftFilter(filter string) string {
	for _, f := range DraftFilters {
		if f == filter {
			return f
		}
	}
	return DraftApproved
}

func draftPredicate(filter string) func(RaisedSize) bool {
	switch filter {
	case DraftApproved:
		return func(s RaisedSize) bool { return s.IsApproved }
	case DraftNotApproved:
		return func(s RaisedSize) bool { return !s.IsApproved }
	case DraftApprovedReceived:
		return func(s RaisedSize) bool { return s.IsApproved && s.IsReceived }
	case DraftApprovedNotReceived:
		return func(s RaisedSize) bool { return s.IsApproved && !s.IsReceived }
	default:
		return nil
	}
}

// Lines flattens the request. DRAFT requests are narrowed by the size
// filter, which defaults to approved sizes; every other status lists all
// sizes.
func (d RaisedInventoryDetail) Lines(draftFilter string) []RaisedLine {
	var keep func(RaisedSize) bool
	if d.Status == StatusDraft {
		keep = draftPredicate(NormalizeDraftFilter(draftFilter))
	}
	var out []RaisedLine
	for _, p := range d.Products {
		for _, v := range p.Variants {
			for _, s := range v.VariantSizes {
				if keep != nil && !keep(s) {
					continue
				}
				price := s.Price
				if price.IsZero() {
					price = p.Price
				}
				out = append(out, RaisedLine{
					ProductType:         p.ProductType,
					Group:               p.Group,
					Category:            p.Category,
					SubCategory:         p.SubCategory,
					Gender:              p.Gender,
					Material:            p.Material,
					Price:               price,
					Color:               v.Color.Name,
					Size:                s.Size,
					Quantity:            s.Quantity,
					QuantityInWarehouse: s.QuantityInWarehouse,
					StyleCoat:           s.StyleCoat,
					SKU:                 s.SKU,
					IsApproved:          s.IsApproved,
					IsReceived:          s.IsReceived,
				})
			}
		}
	}
	return out
}
