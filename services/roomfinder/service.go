package roomfinder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"roomfinder/models"
	"roomfinder/services/locator"
	"roomfinder/services/pathfinder"
	"roomfinder/services/schedule"
	"roomfinder/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrInvalidDay is returned for a day that is not a weekday name.
var ErrInvalidDay = errors.New("invalid day")

const availabilityCachePrefix = "rooms:available:"

// DefaultRoomFinderService wires the availability filter, the locator and the pathfinder.
// Every collaborator is read-only, so one instance serves concurrent requests.
type DefaultRoomFinderService struct {
	Filter        *schedule.Filter
	Locator       *locator.RoomLocator
	Grid          pathfinder.Grid
	Cache         *redis.Client // nil disables caching
	CacheTTL      time.Duration
	SearchTimeout time.Duration
	Logger        *zap.Logger
}

// NewDefaultRoomFinderService sizes the grid from the locator table.
func NewDefaultRoomFinderService(filter *schedule.Filter, loc *locator.RoomLocator, cache *redis.Client, logger *zap.Logger) *DefaultRoomFinderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRoomFinderService{
		Filter:        filter,
		Locator:       loc,
		Grid:          pathfinder.NewGrid(loc.GridSize()),
		Cache:         cache,
		CacheTTL:      5 * time.Minute,
		SearchTimeout: 2 * time.Second,
		Logger:        logger,
	}
}

// AvailableRooms returns the rooms free on day at the given time. An empty set is a valid answer.
func (s *DefaultRoomFinderService) AvailableRooms(ctx context.Context, day string, at schedule.Clock) (models.RoomSet, error) {
	weekday, ok := NormalizeDay(day)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	key := AvailabilityCacheKey(s.Filter.Fingerprint(), weekday, at, s.Filter.Index().Ordering())
	if rooms, hit := s.cachedRooms(ctx, key); hit {
		return rooms, nil
	}

	rooms := s.Filter.AvailableRooms(weekday, at)
	s.storeRooms(ctx, key, rooms)
	return rooms, nil
}

// FindPath resolves room and walks to it from the origin.
func (s *DefaultRoomFinderService) FindPath(ctx context.Context, room string) (PathResult, error) {
	goal, err := s.Locator.Locate(room)
	if err != nil {
		return PathResult{}, err
	}
	start := s.Locator.Origin()

	if s.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.SearchTimeout)
		defer cancel()
	}

	res, err := s.Grid.SearchContext(ctx, start, goal)
	if err != nil {
		return PathResult{}, fmt.Errorf("path search to %q: %w", room, err)
	}
	if !res.Found {
		s.Logger.Warn("room unreachable from origin",
			zap.String("room", room),
			zap.Stringer("start", start),
			zap.Stringer("goal", goal))
	}

	return PathResult{
		Room:     strings.TrimSpace(room),
		Start:    start,
		Goal:     goal,
		Path:     res.Path,
		Found:    res.Found,
		Expanded: res.Expanded,
	}, nil
}

func (s *DefaultRoomFinderService) Rooms() []string {
	return s.Filter.Rooms()
}

func (s *DefaultRoomFinderService) Map() models.MapResponse {
	return models.MapResponse{
		GridSize: s.Locator.GridSize(),
		Origin:   s.Locator.Origin(),
		Rooms:    s.Locator.Rooms(),
	}
}

func (s *DefaultRoomFinderService) QueryOptions() models.QueryOptions {
	return DefaultQueryOptions()
}

func (s *DefaultRoomFinderService) cachedRooms(ctx context.Context, key string) (models.RoomSet, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var names []string
	if err := json.Unmarshal([]byte(data), &names); err != nil {
		s.Logger.Warn("availability cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	rooms := make(models.RoomSet, len(names))
	for _, name := range names {
		if s.Filter.HasRoom(name) {
			rooms[name] = struct{}{}
		}
	}
	return rooms, true
}

func (s *DefaultRoomFinderService) storeRooms(ctx context.Context, key string, rooms models.RoomSet) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(rooms.Sorted())
	if err != nil {
		s.Logger.Warn("failed to marshal availability", zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		s.Logger.Warn("availability cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// AvailabilityCacheKey identifies one availability query against one catalog.
// Lexical queries key on the display label because two labels for the same
// minute can compare differently.
func AvailabilityCacheKey(fingerprint, day string, at schedule.Clock, ordering schedule.TimeOrdering) string {
	timePart := fmt.Sprintf("%d", at.Minute)
	if ordering == schedule.OrderingLexical {
		timePart = at.Label
	}
	return availabilityCachePrefix + fingerprint + ":" + strings.ToLower(day) + ":" + timePart + ":" + string(ordering)
}

// NormalizeDay maps "monday", "MONDAY " and friends to "Monday".
func NormalizeDay(day string) (string, bool) {
	trimmed := strings.TrimSpace(day)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(trimmed, d.String()) {
			return d.String(), true
		}
	}
	return "", false
}

// DefaultQueryOptions are the choices the building kiosk offers: Monday to
// Saturday, hourly from 7:00 AM to 7:00 PM.
func DefaultQueryOptions() models.QueryOptions {
	days := make([]string, 0, 6)
	for d := time.Monday; d <= time.Saturday; d++ {
		days = append(days, d.String())
	}
	times := make([]string, 0, 13)
	for hour := 7; hour <= 19; hour++ {
		times = append(times, utils.FormatClock(hour*60))
	}
	return models.QueryOptions{Days: days, Times: times}
}
