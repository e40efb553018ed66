package model

import "github.com/shopspring/decimal"

// StoreName is an entry of the store picker.
type StoreName struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}

// StoreOverview holds the store's billing figures.
type StoreOverview struct {
	StoreID              string          `json:"storeId"`
	TotalBilledAmount    decimal.Decimal `json:"totalBilledAmount"`
	ActiveBillCount      int             `json:"activeBillCount"`
	DeletedBillCount     int             `json:"deletedBillCount"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	CommissionEarned     decimal.Decimal `json:"commissionEarned"`
}

// Store is a retail outlet and its login.
type Store struct {
	StoreID       string        `json:"storeId"`
	StoreName     string        `json:"storeName"`
	StoreAddress  string        `json:"storeAddress"`
	City          string        `json:"city"`
	Pincode       string        `json:"pincode"`
	State         string        `json:"state"`
	UserName      string        `json:"userName"`
	PhoneNo       string        `json:"phoneNo"`
	EmailID       string        `json:"emailID"`
	Password      string        `json:"password"`
	StoreOverview StoreOverview `json:"storeOverview"`
}

// StoreInput is the create/update store form.
type StoreInput struct {
	StoreName            string `json:"storeName"            form:"storeName"            validate:"required,max=120"`
	StoreAddress         string `json:"storeAddress"         form:"storeAddress"         validate:"required"`
	City                 string `json:"city"                 form:"city"                 validate:"required"`
	Pincode              string `json:"pincode"              form:"pincode"              validate:"required,numeric,len=6"`
	State                string `json:"state"                form:"state"                validate:"required"`
	CommissionPercentage int    `json:"commissionPercentage" form:"commissionPercentage" validate:"gte=0,lte=100"`
	UserName             string `json:"userName"             form:"userName"             validate:"required"`
	PhoneNo              string `json:"phoneNo"              form:"phoneNo"              validate:"required,numeric,len=10"`
	EmailID              string `json:"emailID"              form:"emailID"              validate:"required,email"`
	Password             string `json:"password,omitempty"   form:"password"             validate:"omitempty,min=6"`
}

// AssignedInventory is a shipment of warehouse stock to a store.
type AssignedInventory struct {
	AssignedInventoryID   string          `json:"assignedInventoryId"`
	StoreID               string          `json:"storeId"`
	StoreName             string          `json:"storeName"`
	Status                string          `json:"status"`
	AssignedDate          string          `json:"assignedDate"`
	ReceivedDate          string          `json:"receivedDate"`
	TotalAmountOfAssigned decimal.Decimal `json:"totalAmountOfAssigned"`
}

// StockSize is one size line with a quantity.
type StockSize struct {
	Size      string `json:"size"`
	StyleCoat string `json:"styleCoat"`
	Quantity  int    `json:"quantity"`
}

// StockVariant groups sizes by colour.
type StockVariant struct {
	Color        Color       `json:"color"`
	VariantSizes []StockSize `json:"variantSizes"`
}

// StockProduct is a product inside an assignment.
type StockProduct struct {
	ProductType string          `json:"productType"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Gender      string          `json:"gender"`
	Fit         string          `json:"fit"`
	Price       decimal.Decimal `json:"price"`
	Variants    []StockVariant  `json:"variants"`
}

// StockLine is a flattened product × colour × size row.
type StockLine struct {
	ProductType string
	Category    string
	SubCategory string
	Gender      string
	Fit         string
	Color       string
	Size        string
	StyleCoat   string
	Price       decimal.Decimal
	Quantity    int
}

// AssignedInventoryDetail is one assignment with its store and products.
type AssignedInventoryDetail struct {
	AssignedInventory
	StoreDetails Store          `json:"storeDetails"`
	Products     []StockProduct `json:"products"`
}

// Lines flattens the assignment.
func (d AssignedInventoryDetail) Lines() []StockLine {
	var out []StockLine
	for _, p := range d.Products {
		for _, v := range p.Variants {
			for _, s := range v.VariantSizes {
				out = append(out, StockLine{
					ProductType: p.ProductType,
					Category:    p.Category,
					SubCategory: p.SubCategory,
					Gender:      p.Gender,
					Fit:         p.Fit,
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
