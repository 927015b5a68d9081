package roomfinder

import (
	"context"

	"roomfinder/models"
	"roomfinder/services/schedule"
)

// RoomFinderService is the operation surface offered to the HTTP layer.
type RoomFinderService interface {
	AvailableRooms(ctx context.Context, day string, at schedule.Clock) (models.RoomSet, error)
	FindPath(ctx context.Context, room string) (PathResult, error)
	Rooms() []string
	Map() models.MapResponse
	QueryOptions() models.QueryOptions
}

// PathResult is a computed walk from the origin to a room.
// Found is false and Path empty when the room cannot be reached.
type PathResult struct {
	Room     string
	Start    models.Coordinate
	Goal     models.Coordinate
	Path     models.Path
	Found    bool
	Expanded int
}
