package shiprocket

import (
	"time"

	"github.com/CalvinKoushik/ecom-backend/internal/domain"
)

const (
	// DefaultPickupLocation is the pickup address nickname registered with Shiprocket
	DefaultPickupLocation = "Primary"

	billingCountry = "India"

	packageLength  = 10
	packageBreadth = 10
	packageHeight  = 10
	packageWeight  = 0.5
)

// ShipmentPayload is the body of the adhoc order endpoint
type ShipmentPayload struct {
	OrderID        string `json:"order_id"`
	OrderDate      string `json:"order_date"`
	PickupLocation string `json:"pickup_location"`

	BillingCustomerName string `json:"billing_customer_name"`
	BillingAddress      string `json:"billing_address"`
	BillingCity         string `json:"billing_city"`
	BillingPincode      string `json:"billing_pincode"`
	BillingState        string `json:"billing_state"`
	BillingCountry      string `json:"billing_country"`
	BillingEmail        string `json:"billing_email"`
	BillingPhone        string `json:"billing_phone"`

	ShippingIsBilling bool              `json:"shipping_is_billing"`
	OrderItems        []domain.LineItem `json:"order_items"`

	PaymentMethod string  `json:"payment_method"`
	SubTotal      float64 `json:"sub_total"`

	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

// PayloadBuilder maps storefront orders onto ShipmentPayload
type PayloadBuilder struct {
	PickupLocation string
	Now            func() time.Time
}

// NewPayloadBuilder creates a builder using the wall clock
func NewPayloadBuilder(pickupLocation string) *PayloadBuilder {
	if pickupLocation == "" {
		pickupLocation = DefaultPickupLocation
	}
	return &PayloadBuilder{
		PickupLocation: pickupLocation,
		Now:            time.Now,
	}
}

// Build never fails; fields are copied through without validation.
func (b *PayloadBuilder) Build(details domain.OrderDetails, method domain.PaymentMethod) *ShipmentPayload {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	return &ShipmentPayload{
		OrderID:        details.OrderNumber,
		OrderDate:      now().UTC().Format("2006-01-02"),
		PickupLocation: b.PickupLocation,

		BillingCustomerName: details.FullName,
		BillingAddress:      details.AddressLine,
		BillingCity:         details.City,
		BillingPincode:      details.Pincode,
		BillingState:        details.State,
		BillingCountry:      billingCountry,
		BillingEmail:        details.Email,
		BillingPhone:        details.Phone,

		ShippingIsBilling: true,
		OrderItems:        details.Items,

		PaymentMethod: method.ProviderLabel(),
		SubTotal:      details.Total,

		Length:  packageLength,
		Breadth: packageBreadth,
		Height:  packageHeight,
		Weight:  packageWeight,
	}
}
