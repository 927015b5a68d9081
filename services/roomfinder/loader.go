package roomfinder

import (
	"context"
	"fmt"

	scheduleRepo "roomfinder/database/repository/schedule"
	"roomfinder/models"
	"roomfinder/services/locator"
	"roomfinder/services/schedule"

	"go.uber.org/zap"
)

// Catalog is everything built from the data sources at startup.
type Catalog struct {
	Filter  *schedule.Filter
	Locator *locator.RoomLocator
}

// LoadCatalog reads both sources and builds the filter and locator. Any failure
// returns an error and nothing partially built.
func LoadCatalog(ctx context.Context, repo scheduleRepo.ScheduleRepository, locatorCfg models.LocatorConfig, ordering schedule.TimeOrdering, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := locator.NewRoomLocator(locatorCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid locator table: %w", err)
	}

	rows, err := repo.LoadSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", err)
	}
	records, err := repo.LoadRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	index := schedule.NewScheduleIndex(rows, ordering, logger)
	rooms := models.RoomSetFromRecords(records)
	filter := schedule.NewFilter(index, rooms, logger)

	for _, name := range rooms.Sorted() {
		if _, err := loc.Locate(name); err != nil {
			logger.Warn("room has no map location", zap.String("room", name))
		}
	}

	logger.Info("catalog loaded",
		zap.Int("entries", index.Len()),
		zap.Int("skipped", index.Skipped()),
		zap.Int("rooms", len(rooms)),
		zap.Int("gridSize", loc.GridSize()),
		zap.String("ordering", string(ordering)))

	return &Catalog{Filter: filter, Locator: loc}, nil
}
