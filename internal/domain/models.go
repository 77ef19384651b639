package domain

import (
	"encoding/json"
	"time"
)

// CheckoutRequest is the storefront's checkout submission
type CheckoutRequest struct {
	GatewayOrderID   string        `json:"razorpay_order_id"`
	GatewayPaymentID string        `json:"razorpay_payment_id"`
	GatewaySignature string        `json:"razorpay_signature"`
	OrderDetails     OrderDetails  `json:"orderDetails" binding:"required"`
	PaymentMethod    PaymentMethod `json:"paymentMethod" binding:"required,oneof=prepaid cod"`
}

// OrderDetails is the customer's order as the storefront sends it
type OrderDetails struct {
	OrderNumber string     `json:"order_number" binding:"required"`
	FullName    string     `json:"full_name"`
	AddressLine string     `json:"address_line"`
	City        string     `json:"city"`
	Pincode     string     `json:"pincode"`
	State       string     `json:"state"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Items       []LineItem `json:"items"`
	Total       float64    `json:"total"`
}

// LineItem is forwarded to the shipping provider untouched
type LineItem = json.RawMessage

// ShipmentResult is the shipping provider's response body
type ShipmentResult = json.RawMessage

// ShippingToken is a provider bearer token and the moment it stops being reused
type ShippingToken struct {
	Value     string
	ExpiresAt time.Time
}

// ValidAt reports whether the token may still be used at now
func (t *ShippingToken) ValidAt(now time.Time) bool {
	return t != nil && t.Value != "" && now.Before(t.ExpiresAt)
}
