package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InventorySize is a size of an active product variant.
type InventorySize struct {
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	StyleCoat string `json:"styleCoat"`
}

// InventoryVariant groups sizes by colour.
type InventoryVariant struct {
	Color Color           `json:"color"`
	Sizes []InventorySize `json:"sizes"`
}

// Product is an active catalogue product of one group.
type Product struct {
	SchoolName  string             `json:"schoolName"`
	Group       string             `json:"group"`
	Category    string             `json:"category"`
	SubCategory string             `json:"subCategory"`
	Gender      string             `json:"gender"`
	Fit         string             `json:"fit"`
	Pattern     string             `json:"pattern"`
	ProductType string             `json:"productType"`
	Sleeves     string             `json:"sleeves"`
	Cuff        string             `json:"cuff"`
	Fabric      string             `json:"fabric"`
	Price       decimal.Decimal    `json:"price"`
	Variants    []InventoryVariant `json:"variants"`
}

// InventoryItem is one editable row of the inventory table, keyed by style code.
type InventoryItem struct {
	Group       string
	School      string
	Category    string
	SubCategory string
	Gender      string
	ProductType string
	Fit         string
	Fabric      string
	Color       string
	Size        string
	StyleCoat   string
	Price       decimal.Decimal
	Quantity    int
}

// FlattenProducts turns products into inventory rows, skipping sizes without a style code.
func FlattenProducts(products []Product) []InventoryItem {
	var out []InventoryItem
	for _, p := range products {
		for _, v := range p.Variants {
			for _, s := range v.Sizes {
				if strings.TrimSpace(s.StyleCoat) == "" {
					continue
				}
				out = append(out, InventoryItem{
					Group:       p.Group,
					School:      p.SchoolName,
					Category:    p.Category,
					SubCategory: p.SubCategory,
					Gender:      p.Gender,
					ProductType: p.ProductType,
					Fit:         p.Fit,
					Fabric:      p.Fabric,
					Color:       v.Color.Name,
					Size:        s.Size,
					StyleCoat:   s.StyleCoat,
					Price:       p.Price,
					Quantity:    s.Quantity,
				})
			}
		}
	}
	return out
}

// VariantUpdate changes the stock and price of one style code.
type VariantUpdate struct {
	Group       string          `json:"group"       form:"group"       validate:"required"`
	StyleCoat   string          `json:"styleCoat"   form:"styleCoat"   validate:"required"`
	NewQuantity int             `json:"newQuantity" form:"newQuantity" validate:"gte=0"`
	NewPrice    decimal.Decimal `json:"newPrice"    form:"newPrice"    validate:"gt=0"`
}

// VariantRef identifies a variant to remove.
type VariantRef struct {
	Group     string `json:"group"     form:"group"     validate:"required"`
	StyleCoat string `json:"styleCoat" form:"styleCoat" validate:"required"`
}

// UploadGroups maps an inventory group to its bulk upload endpoint suffix.
var UploadGroups = map[string]string{
	"ELITE":    "Elites",
	"TOGS":     "Togs",
	"HEAL":     "Heals",
	"WORKWEAR": "WorkWears",
	"SPIRIT":   "Spirits",
	"SHIELD":   "Shields",
}

// UploadHistory is one bulk upload.
type UploadHistory struct {
	UploadedID            string          `json:"uploadedId"`
	UploadedDate          string          `json:"uploadedDate"`
	TotalAmountOfUploaded decimal.Decimal `json:"totalAmountOfUploaded"`
}

// UploadedProduct is a product row of one upload.
type UploadedProduct struct {
	Group       string          `json:"group"`
	ProductType string          `json:"productType"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Gender      string          `json:"gender"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	StyleCoat   string          `json:"styleCoat"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// UploadHistoryDetail is one upload with its products.
type UploadHistoryDetail struct {
	History  UploadHistory     `json:"historyDetails"`
	Products []UploadedProduct `json:"products"`
}
