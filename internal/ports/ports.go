package ports

import (
	"context"
	"encoding/json"

	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
	"github.com/CalvinKoushik/ecom-backend/internal/shiprocket"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// TokenProvider supplies shipping provider bearer tokens
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// ShipmentCreator creates shipments with the shipping provider
type ShipmentCreator interface {
	CreateShipment(ctx context.Context, token string, payload *shiprocket.ShipmentPayload) (json.RawMessage, error)
}

// GatewayOrderCreator creates payment gateway orders
type GatewayOrderCreator interface {
	CreateOrder(ctx context.Context, order razorpay.OrderRequest) (json.RawMessage, error)
}
