package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/domain"
	"github.com/CalvinKoushik/ecom-backend/internal/ports"
	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
	"github.com/CalvinKoushik/ecom-backend/internal/shiprocket"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

// CheckoutService verifies a payment and books the shipment for it
type CheckoutService struct {
	gatewaySecret string
	builder       *shiprocket.PayloadBuilder
	tokens        ports.TokenProvider
	shipments     ports.ShipmentCreator
	logger        *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	gatewaySecret string,
	builder *shiprocket.PayloadBuilder,
	tokens ports.TokenProvider,
	shipments ports.ShipmentCreator,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		gatewaySecret: gatewaySecret,
		builder:       builder,
		tokens:        tokens,
		shipments:     shipments,
		logger:        logger,
	}
}

// Checkout runs verify-then-ship. Each external call is made at most once.
func (s *CheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.ShipmentResult, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, &errors.ValidationError{Message: fmt.Sprintf("Invalid payment method %q", req.PaymentMethod)}
	}

	if req.PaymentMethod.RequiresVerification() {
		if !razorpay.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature, s.gatewaySecret) {
			s.logger.Warn("Payment signature mismatch",
				zap.String("order_number", req.OrderDetails.OrderNumber),
				zap.String("razorpay_order_id", req.GatewayOrderID),
			)
			return nil, &errors.ValidationError{Message: "Invalid signature"}
		}
		s.logger.Info("Payment verified",
			zap.String("order_number", req.OrderDetails.OrderNumber),
			zap.String("razorpay_payment_id", req.GatewayPaymentID),
		)
	}

	payload := s.builder.Build(req.OrderDetails, req.PaymentMethod)

	token, err := s.tokens.Token(ctx)
	if err != nil {
		var authErr *errors.AuthError
		if !stderrors.As(err, &authErr) {
			err = &errors.AuthError{Err: err}
		}
		return nil, err
	}

	shipment, err := s.shipments.CreateShipment(ctx, token, payload)
	if err != nil {
		var providerErr *errors.ProviderError
		if !stderrors.As(err, &providerErr) {
			return nil, &errors.ProviderError{Err: err}
		}
		// A rejected token is dropped so the next checkout logs in again.
		if providerErr.StatusCode == http.StatusUnauthorized {
			s.tokens.Invalidate()
		}
		return nil, err
	}

	s.logger.Info("Shipment created",
		zap.String("order_number", req.OrderDetails.OrderNumber),
		zap.String("payment_method", payload.PaymentMethod),
	)

	return shipment, nil
}
