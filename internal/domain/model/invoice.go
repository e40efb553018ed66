package model

import "github.com/shopspring/decimal"

// Seller details printed on every invoice.
const (
	SellerName    = "Jhaver Enterprises"
	SellerEmail   = "info@jhaverenterprises.com"
	SellerGSTIN   = "36BDOPJ3833D1ZA"
	SellerAddress = "AWF15 NSL Icon, Rd No. 12, Hyderabad - 500034"
	SellerBank    = "Account Name: Jhaver Enterprises | Account No: 123456789 | IFSC: ABCD0123456"
)

// GSTRate is the rate applied for each of CGST and SGST.
var GSTRate = decimal.RequireFromString("0.06")

// InvoiceTotals is the money summary printed under an invoice table.
// Every figure derives from the backend's bill totals; no discount is computed here.
type InvoiceTotals struct {
	TotalAmount        decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	PriceAfterDiscount decimal.Decimal
	CGST               decimal.Decimal
	SGST               decimal.Decimal
	TotalTax           decimal.Decimal
	InvoiceTotal       decimal.Decimal
}

// TotalsFor derives the invoice summary of a bill.
func TotalsFor(b BillDetails) InvoiceTotals {
	cgst := b.PriceAfterDiscount.Mul(GSTRate).Round(2)
	return InvoiceTotals{
		TotalAmount:        b.TotalAmount,
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.TotalAmount.Sub(b.PriceAfterDiscount),
		PriceAfterDiscount: b.PriceAfterDiscount,
		CGST:               cgst,
		SGST:               cgst,
		TotalTax:           cgst.Add(cgst),
		InvoiceTotal:       b.PriceAfterDiscount,
	}
}

// OrderTotals derives the invoice summary of an online order. Coupon and slab
// discounts are already folded into TotalPriceAfterDiscount by the backend.
func OrderTotals(o OrderDetails) InvoiceTotals {
	cgst := o.TotalPriceAfterDiscount.Mul(GSTRate).Round(2)
	return InvoiceTotals{
		TotalAmount:        o.TotalAmount,
		DiscountPercentage: o.CouponDiscountPercentage,
		DiscountAmount:     o.TotalAmount.Sub(o.TotalPriceAfterDiscount),
		PriceAfterDiscount: o.TotalPriceAfterDiscount,
		CGST:               cgst,
		SGST:               cgst,
		TotalTax:           cgst.Add(cgst),
		InvoiceTotal:       o.TotalPriceAfterDiscount,
	}
}
