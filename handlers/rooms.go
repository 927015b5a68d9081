package handlers

import (
	"errors"
	"net/http"
	"strings"

	"roomfinder/models"
	"roomfinder/services/roomfinder"
	"roomfinder/services/schedule"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the availability and map endpoints.
type RoomHandler struct {
	Service roomfinder.RoomFinderService
}

func NewRoomHandler(service roomfinder.RoomFinderService) *RoomHandler {
	return &RoomHandler{Service: service}
}

// ListRoomsHandler handles GET /api/rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms := h.Service.Rooms()
	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "count": len(rooms)})
}

// AvailableRoomsHandler handles GET /api/rooms/available?day=Monday&time=8:30 AM.
func (h *RoomHandler) AvailableRoomsHandler(c *gin.Context) {
	logger := getLogger(c)

	day := strings.TrimSpace(c.Query("day"))
	rawTime := strings.TrimSpace(c.Query("time"))
	if day == "" || rawTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameters", "day and time are required")
		return
	}

	at, err := schedule.NewClock(rawTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		return
	}

	rooms, err := h.Service.AvailableRooms(c.Request.Context(), day, at)
	if err != nil {
		if errors.Is(err, roomfinder.ErrInvalidDay) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid day", err.Error())
			return
		}
		logger.Error("AvailableRoomsHandler: availability query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}

	resp := models.AvailableRoomsResponse{
		Day:   day,
		Time:  at.Label,
		Rooms: rooms.Sorted(),
		Count: len(rooms),
	}
	if resp.Count == 0 {
		resp.Message = "No rooms available at the selected time"
	}
	logger.Debug("availability computed", zap.String("day", day), zap.Int("minute", at.Minute), zap.Int("count", resp.Count))
	c.JSON(http.StatusOK, resp)
}

// QueryOptionsHandler handles GET /api/rooms/options.
func (h *RoomHandler) QueryOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.QueryOptions())
}

// MapHandler handles GET /api/map.
func (h *RoomHandler) MapHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Map())
}
