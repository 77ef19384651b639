package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth handles GET / and GET /health
func HandleHealth(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	}
}
