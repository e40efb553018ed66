package model

import "github.com/shopspring/decimal"

// Moderation states shared by bill edit, bill delete and raised inventory requests.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Bill is one in-store bill as listed on the bills screens.
type Bill struct {
	ID                 string          `json:"_id"`
	BillID             string          `json:"billId"`
	StoreID            string          `json:"storeId"`
	StoreName          string          `json:"storeName"`
	DateOfBill         string          `json:"dateOfBill"`
	TotalAmount        decimal.Decimal `json:"TotalAmount"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	PriceAfterDiscount decimal.Decimal `json:"priceAfterDiscount"`
	EditStatus         string          `json:"editStatus"`
	DeleteReqStatus    string          `json:"deleteReqStatus"`
}

// Customer is the walk-in customer printed on a bill.
type Customer struct {
	Name  string `json:"customerName"`
	Phone string `json:"customerPhone"`
	Email string `json:"customerEmail"`
}

// BillVariantSize is one billed size.
type BillVariantSize struct {
	ID              string `json:"_id"`
	Size            string `json:"size"`
	StyleCoat       string `json:"styleCoat"`
	BilledQuantity  int    `json:"billedQuantity"`
	QuantityInStore int    `json:"quantityInStore"`
}

// BillVariant groups billed sizes by colour.
type BillVariant struct {
	VariantID    string            `json:"variantId"`
	Color        Color             `json:"color"`
	VariantSizes []BillVariantSize `json:"variantSizes"`
}

// BillProduct is one billed product.
type BillProduct struct {
	ProductID   string          `json:"productId"`
	ProductType string          `json:"productType"`
	Category    string          `json:"category"`
	Gender      string          `json:"gender"`
	Pattern     string          `json:"pattern"`
	Price       decimal.Decimal `json:"price"`
	Variants    []BillVariant   `json:"variants"`
}

// BillLine is a flattened product × colour × size row.
type BillLine struct {
	ProductID       string
	ProductType     string
	Category        string
	Gender          string
	Color           string
	Size            string
	StyleCoat       string
	Price           decimal.Decimal
	BilledQuantity  int
	QuantityInStore int
}

// SubTotal is price times billed quantity.
func (l BillLine) SubTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.BilledQuantity)))
}

// BillDetails is a full bill, used by bill, deleted bill and edit request screens.
type BillDetails struct {
	Bill
	InvoiceNo                     string        `json:"invoiceNo"`
	InvoiceURL                    string        `json:"invoiceUrl"`
	ApprovedInvoiceURL            string        `json:"approvedInvoiceUrl"`
	ModeOfPayment                 string        `json:"modeOfPayment"`
	Customer                      Customer      `json:"customer"`
	Products                      []BillProduct `json:"products"`
	DateOfDeleteBillReq           string        `json:"dateOfDeleteBillReq"`
	DateOfDeletion                string        `json:"dateOfDeletion"`
	DateOfDeleteBillReqValidation string        `json:"dateOfDeleteBillReqValidation"`
	RequestedBillDeleteNote       string        `json:"RequestedBillDeleteNote"`
	ValidatedBillDeleteNote       string        `json:"ValidatedBillDeleteNote"`
	DateOfValidate                string        `json:"dateOfValidate"`
	ReqNote                       string        `json:"reqNote"`
	ValidateNote                  string        `json:"validateNote"`
}

// Lines flattens products into printable rows.
func (b BillDetails) Lines() []BillLine {
	var out []BillLine
	for _, p := range b.Products {
		for _, v := range p.Variants {
			for _, s := range v.VariantSizes {
				out = append(out, BillLine{
					ProductID:       p.ProductID,
					ProductType:     p.ProductType,
					Category:        p.Category,
					Gender:          p.Gender,
					Color:           v.Color.Name,
					Size:            s.Size,
					StyleCoat:       s.StyleCoat,
					Price:           p.Price,
					BilledQuantity:  s.BilledQuantity,
					QuantityInStore: s.QuantityInStore,
				})
			}
		}
	}
	return out
}

// BillEditRequest is a row of the requested edit bills list.
// IsApproved is nil while pending.
type BillEditRequest struct {
	EditBillReqID     string `json:"editBillReqId"`
	DateOfBill        string `json:"dateOfBill"`
	DateOfBillEditReq string `json:"dateOfBillEditReq"`
	IsApproved        *bool  `json:"isApproved"`
}

// Edit request tab values.
const (
	EditTabPending  = "pending"
	EditTabApproved = "approved"
	EditTabRejected = "rejected"
)

// Tab maps IsApproved onto the list tab it belongs to.
func (r BillEditRequest) Tab() string {
	switch {
	case r.IsApproved == nil:
		return EditTabPending
	case *r.IsApproved:
		return EditTabApproved
	default:
		return EditTabRejected
	}
}

// BillEditDetail pairs the bill as stored with the edit the store asked for.
type BillEditDetail struct {
	CurrentBill       BillDetails `json:"currentBill"`
	RequestedBillEdit BillDetails `json:"requestedBillEdit"`
}

// Pending reports whether the edit still awaits a decision.
func (d BillEditDetail) Pending() bool { return d.CurrentBill.EditStatus == StatusPending }

// Decision is an approve or reject with the operator's note.
type Decision struct {
	Approve bool
	Note    string
}
