package routes

import (
	"time"

	"roomfinder/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers the availability and pathfinding endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.GET("/available", hb.AvailableRoomsHandler)
		api.GET("/options", hb.QueryOptionsHandler)
		api.GET("/path", hb.FindPathHandler)
	}
}

// RegisterMapRoute registers the grid description used by the renderer.
func RegisterMapRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/map", hb.MapHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRoomRoutes(r, hb)
	RegisterMapRoute(r, hb)
	RegisterHealthRoute(r, hb)
}
