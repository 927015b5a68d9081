package handlers

import (
	"errors"
	"net/http"
	"strings"

	"roomfinder/models"
	"roomfinder/services/locator"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FindPathHandler handles GET /api/rooms/path?room=ICT 203.
// An unknown room is a 404; an unreachable room is a 200 with an empty path.
func (h *RoomHandler) FindPathHandler(c *gin.Context) {
	logger := getLogger(c)

	room := strings.TrimSpace(c.Query("room"))
	if room == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter", "room is required")
		return
	}

	result, err := h.Service.FindPath(c.Request.Context(), room)
	if err != nil {
		if errors.Is(err, locator.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found", err.Error())
			return
		}
		logger.Error("FindPathHandler: path search failed", zap.String("room", room), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute path", err.Error())
		return
	}

	path := []models.Coordinate(result.Path)
	if path == nil {
		path = []models.Coordinate{}
	}
	c.JSON(http.StatusOK, models.PathResponse{
		Room:      result.Room,
		Start:     result.Start,
		Goal:      result.Goal,
		Path:      path,
		Length:    len(path),
		Reachable: result.Found,
	})
}
