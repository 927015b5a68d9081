// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Room endpoints
	ListRoomsHandler      gin.HandlerFunc
	AvailableRoomsHandler gin.HandlerFunc
	QueryOptionsHandler   gin.HandlerFunc
	FindPathHandler       gin.HandlerFunc
	MapHandler            gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
