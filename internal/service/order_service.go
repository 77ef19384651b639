package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/ports"
	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

const orderCurrency = "INR"

// OrderService creates payment gateway orders for the storefront
type OrderService struct {
	gateway ports.GatewayOrderCreator
	logger  *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(gateway ports.GatewayOrderCreator, logger *zap.Logger) *OrderService {
	return &OrderService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateOrder creates a gateway order for amount rupees and returns the gateway's order object
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (json.RawMessage, error) {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return nil, &errors.ValidationError{Message: "Invalid amount"}
	}

	paise := int64(math.Round(req.Amount * 100))
	if paise < 1 {
		return nil, &errors.ValidationError{Message: "Invalid amount"}
	}

	// Razorpay caps receipts at 40 characters.
	order := razorpay.OrderRequest{
		Amount:   paise,
		Currency: orderCurrency,
		Receipt:  "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	resp, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Gateway order created",
		zap.Int64("amount", order.Amount),
		zap.String("receipt", order.Receipt),
	)

	return resp, nil
}
