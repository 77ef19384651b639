package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/api/middleware"
	"github.com/CalvinKoushik/ecom-backend/internal/service"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

// HandleCreateOrder handles POST /create-order
func HandleCreateOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}

		order, err := orders.CreateOrder(c.Request.Context(), req)
		if err != nil {
			var validationErr *errors.ValidationError
			if stderrors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
				return
			}

			logger.Error("Failed to create gateway order",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Float64("amount", req.Amount),
				zap.Error(err),
			)

			body := gin.H{"error": "Failed to create order"}
			var gatewayErr *errors.GatewayError
			if stderrors.As(err, &gatewayErr) {
				if detail := errors.Detail(gatewayErr.Body); detail != nil {
					body["details"] = detail
				}
			}
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", order)
	}
}
