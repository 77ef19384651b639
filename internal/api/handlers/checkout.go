package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/api/middleware"
	"github.com/CalvinKoushik/ecom-backend/internal/domain"
	"github.com/CalvinKoushik/ecom-backend/internal/service"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

// CheckoutResponse is returned when the shipment was created
type CheckoutResponse struct {
	Success  bool                  `json:"success"`
	Shipment domain.ShipmentResult `json:"shipment"`
}

// HandleCheckout handles POST /checkout and POST /verify-payment
func HandleCheckout(checkout *service.CheckoutService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logger.With(zap.String("request_id", middleware.GetRequestID(c)))

		var req domain.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid checkout request",
				"details": err.Error(),
			})
			return
		}

		shipment, err := checkout.Checkout(c.Request.Context(), req)
		if err != nil {
			var validationErr *errors.ValidationError
			if stderrors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": validationErr.Message,
				})
				return
			}

			logger.Error("Checkout failed",
				zap.String("order_number", req.OrderDetails.OrderNumber),
				zap.String("payment_method", string(req.PaymentMethod)),
				zap.Error(err),
			)

			body := gin.H{
				"success": false,
				"message": "Checkout failed",
			}
			var providerErr *errors.ProviderError
			if stderrors.As(err, &providerErr) {
				if detail := errors.Detail(providerErr.Body); detail != nil {
					body["details"] = detail
				}
			}
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			Success:  true,
			Shipment: shipment,
		})
	}
}
