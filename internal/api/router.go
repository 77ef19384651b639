package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/api/handlers"
	"github.com/CalvinKoushik/ecom-backend/internal/api/middleware"
	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/internal/service"
)

const serviceName = "ecom-backend"

// Services groups what the handlers call into
type Services struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	// Liveness
	router.GET("/", handlers.HandleHealth(serviceName))
	router.GET("/health", handlers.HandleHealth(serviceName))

	router.POST("/create-order", handlers.HandleCreateOrder(svcs.Orders, logger))

	// Older storefront builds still post to /verify-payment
	checkout := handlers.HandleCheckout(svcs.Checkout, logger)
	router.POST("/checkout", checkout)
	router.POST("/verify-payment", checkout)

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	c.AddAllowHeaders(middleware.RequestIDHeader)
	c.AddExposeHeaders(middleware.RequestIDHeader)
	c.MaxAge = 12 * time.Hour
	return c
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
