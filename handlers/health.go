package handlers

import (
	"net/http"

	"roomfinder/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Hi, I'm roomfinder",
		"services": utils.GetHealthStatus(),
	})
}
