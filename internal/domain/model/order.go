package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Online order statuses used by the orders tabs.
const (
	OrderStatusPending  = "Pending"
	OrderStatusAssigned = "Assigned"
)

// RefundStatusPending is the only refund status that allows processing a refund.
const RefundStatusPending = "Pending"

// Groups are the product groups sold online.
var Groups = []string{"ELITE", "HEAL", "TOGS", "WORKWEAR", "SPIRIT", "SHIELD"}

// Order is one row of the online, cancelled or refunded order lists.
type Order struct {
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	DateOfOrder string `json:"dateOfOrder"`
}

// UserDetails is the ordering customer.
type UserDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
}

// AddressDetails is the delivery address of an order.
type AddressDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	PinCode   string `json:"pinCode"`
}

// Color is a named product colour.
type Color struct {
	Name string `json:"name"`
}

// ProductSummary is the catalogue part of an ordered product.
type ProductSummary struct {
	SchoolName  string `json:"schoolName"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	ProductType string `json:"productType"`
}

// OrderProduct is one ordered line.
type OrderProduct struct {
	ProductID              string          `json:"productId"`
	Group                  string          `json:"group"`
	Size                   string          `json:"size"`
	Color                  Color           `json:"color"`
	QuantityOrdered        int             `json:"quantityOrdered"`
	Price                  decimal.Decimal `json:"price"`
	LogoURL                string          `json:"logoUrl"`
	LogoPosition           string          `json:"logoPosition"`
	SlabDiscountPercentage decimal.Decimal `json:"slabDiscountPercentage"`
	SlabDiscountAmount     decimal.Decimal `json:"slabDiscountAmount"`
	ProductDetails         ProductSummary  `json:"productDetails"`
}

// OrderDetails is a full online order, also used for cancelled orders.
type OrderDetails struct {
	OrderID                  string          `json:"orderId"`
	Status                   string          `json:"status"`
	DeliveryStatus           string          `json:"deliveryStatus"`
	DateOfOrder              string          `json:"dateOfOrder"`
	DateOfCanceled           string          `json:"dateOfCanceled"`
	DateOfRefunded           string          `json:"dateOfRefunded"`
	RefundPaymentStatus      string          `json:"refund_payment_status"`
	UserDetails              UserDetails     `json:"userDetails"`
	AddressDetails           AddressDetails  `json:"addressDetails"`
	Products                 []OrderProduct  `json:"products"`
	CouponCode               string          `json:"couponCode"`
	CouponDiscountPercentage decimal.Decimal `json:"couponDiscountPercentage"`
	CouponDiscountAmount     decimal.Decimal `json:"couponDiscountAmount"`
	TotalAmount              decimal.Decimal `json:"TotalAmount"`
	TotalDiscountAmount      decimal.Decimal `json:"TotalDiscountAmount"`
	TotalPriceAfterDiscount  decimal.Decimal `json:"TotalPriceAfterDiscount"`
	ShiprocketOrderID        string          `json:"shiprocket_order_id"`
	ShiprocketShipmentID     string          `json:"shiprocket_shipment_id"`
	ShiprocketAWBCode        string          `json:"shiprocket_awb_code"`
}

// ContactPhone is the number documents are sent to: the account phone, or the
// delivery phone when the account has none.
func (o OrderDetails) ContactPhone() string {
	p := strings.TrimSpace(o.UserDetails.PhoneNumber)
	if p == "" || strings.EqualFold(p, "N/A") {
		return strings.TrimSpace(o.AddressDetails.Phone)
	}
	return p
}

// Refundable reports whether the refund action may be offered.
func (o OrderDetails) Refundable() bool { return o.RefundPaymentStatus == RefundStatusPending }

// Box is a predefined parcel size.
type Box struct {
	ID      string          `json:"_id"`
	Length  decimal.Decimal `json:"boxLength"`
	Breadth decimal.Decimal `json:"boxBreadth"`
	Height  decimal.Decimal `json:"boxHeight"`
	Weight  decimal.Decimal `json:"boxWeight"`
}

// Positive reports whether every dimension and the weight are above zero.
func (b Box) Positive() bool {
	return b.Length.IsPositive() && b.Breadth.IsPositive() && b.Height.IsPositive() && b.Weight.IsPositive()
}

// Shipment identifies a courier assignment.
type Shipment struct {
	ShipmentID string `json:"shipment_id"`
	OrderID    string `json:"order_id"`
}

// TrackActivity is one scan event.
type TrackActivity struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// ShipmentTrack is the current courier state.
type ShipmentTrack struct {
	AWBCode         string `json:"awb_code"`
	CourierName     string `json:"courier_name"`
	CurrentStatus   string `json:"current_status"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DeliveredDate   string `json:"delivered_date"`
	EDD             string `json:"edd"`
	ShippedDate     string `json:"pickup_date"`
	ConsigneeName   string `json:"consignee_name"`
	DestinationCity string `json:"delivered_to"`
}

// Tracking is the courier tracking payload.
type Tracking struct {
	TrackStatus     int             `json:"track_status"`
	ShipmentStatus  int             `json:"shipment_status"`
	TrackURL        string          `json:"track_url"`
	ShipmentTrack   []ShipmentTrack `json:"shipment_track"`
	TrackActivities []TrackActivity `json:"shipment_track_activities"`
}

// OrderPage is one server-paged slice of cancelled or refunded orders.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	TotalPages int     `json:"totalPages"`
}

// Cancelled order list kinds.
const (
	CancelKindCancelled = "cancelled"
	CancelKindRefunded  = "refunded"
)
