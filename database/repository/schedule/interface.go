// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"roomfinder/models"
)

// ErrEmptySource is returned when a source holds no usable rows.
var ErrEmptySource = errors.New("data source is empty")

// ScheduleRepository supplies the raw timetable and the room universe.
type ScheduleRepository interface {
	LoadSchedule(ctx context.Context) ([]models.ScheduleRow, error)
	LoadRooms(ctx context.Context) ([]models.RoomRecord, error)
}
