package model

import "github.com/shopspring/decimal"

// Quote is a bulk-order enquiry as listed.
type Quote struct {
	QuoteID            string `json:"quoteID"`
	ClientName         string `json:"clientName"`
	ClientEmail        string `json:"clientEmail"`
	ClientPhoneNo      string `json:"clientPhoneNo"`
	DateOfQuoteRecived string `json:"dateOfQuoteRecived"`
}

// QuoteAddress is where a quote should be delivered.
type QuoteAddress struct {
	Name             string `json:"name"`
	OrganizationName string `json:"organizationName"`
	ContactPhone     string `json:"contactPhone"`
	Email            string `json:"email"`
	Lane             string `json:"lane"`
	Street           string `json:"street"`
	PostalCode       string `json:"postalCode"`
}

// QuoteProduct describes the catalogue product a quote asks for.
type QuoteProduct struct {
	Group       string `json:"group"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	ProductType string `json:"productType"`
	Gender      string `json:"gender"`
	Fit         string `json:"fit"`
	Neckline    string `json:"neckline"`
	Sleeves     string `json:"sleeves"`
}

// QuoteProductDetails is the requested product, colour, size and quantity.
type QuoteProductDetails struct {
	Product          QuoteProduct `json:"product"`
	Color            Color        `json:"color"`
	Size             string       `json:"size"`
	QuantityRequired int          `json:"quantityRequired"`
	LogoURL          string       `json:"logoUrl"`
	LogoPosition     string       `json:"logoPosition"`
}

// QuoteDetail is one enquiry in full.
type QuoteDetail struct {
	QuoteID            string              `json:"quoteId"`
	DateOfQuoteRecived string              `json:"dateOfQuoteRecived"`
	UserDetails        UserDetails         `json:"userDetails"`
	AddressDetails     QuoteAddress        `json:"addressDetails"`
	ProductDetails     QuoteProductDetails `json:"productDetails"`
}

// Coupon tab values.
const (
	CouponPending = "pending"
	CouponExpired = "expired"
	CouponUsed    = "used"
)

// CouponTabs lists coupon tabs in display order.
var CouponTabs = []string{CouponPending, CouponExpired, CouponUsed}

// Coupon is an issued discount code.
type Coupon struct {
	ID                 string          `json:"_id"`
	CouponCode         string          `json:"couponCode"`
	CustomerID         string          `json:"customerId"`
	OrderID            string          `json:"orderId"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	ExpiryDate         string          `json:"expiryDate"`
	Status             string          `json:"status"`
}

// ContactForm is a website contact submission.
type ContactForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Message      string `json:"message"`
	CreatedAt    string `json:"createdAt"`
}
