package locator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"roomfinder/models"
)

// DefaultOrigin is the reserved table entry the walk starts from.
const DefaultOrigin = "START"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrMissingOrigin = errors.New("locator table has no origin entry")
	ErrOutOfBounds   = errors.New("room coordinate outside the grid")
	ErrDuplicateRoom = errors.New("room listed twice in locator table")
	ErrInvalidGrid   = errors.New("grid size must be positive")
	ErrEmptyRoomName = errors.New("room name is empty")
)

// RoomNotFoundError carries the name that missed the table.
type RoomNotFoundError struct {
	Room string
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room not found: %q", e.Room)
}

func (e *RoomNotFoundError) Is(target error) bool { return target == ErrRoomNotFound }

// RoomLocator maps room names to grid cells. Read-only after construction.
type RoomLocator struct {
	gridSize   int
	originName string
	origin     models.Coordinate
	table      map[string]models.Coordinate
	rooms      []models.RoomLocation
}

// NewRoomLocator validates cfg and builds the lookup table.
func NewRoomLocator(cfg models.LocatorConfig) (*RoomLocator, error) {
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrid, cfg.GridSize)
	}
	originName := strings.TrimSpace(cfg.Origin)
	if originName == "" {
		originName = DefaultOrigin
	}

	l := &RoomLocator{
		gridSize:   cfg.GridSize,
		originName: originName,
		table:      make(map[string]models.Coordinate, len(cfg.Rooms)),
		rooms:      make([]models.RoomLocation, 0, len(cfg.Rooms)),
	}
	for _, room := range cfg.Rooms {
		name := strings.TrimSpace(room.Name)
		if name == "" {
			return nil, ErrEmptyRoomName
		}
		if _, dup := l.table[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoom, name)
		}
		if room.X < 0 || room.X >= cfg.GridSize || room.Y < 0 || room.Y >= cfg.GridSize {
			return nil, fmt.Errorf("%w: %q at (%d,%d), grid size %d", ErrOutOfBounds, name, room.X, room.Y, cfg.GridSize)
		}
		l.table[name] = room.Coordinate()
		l.rooms = append(l.rooms, models.RoomLocation{Name: name, X: room.X, Y: room.Y})
	}

	origin, ok := l.table[originName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingOrigin, originName)
	}
	l.origin = origin

	sort.Slice(l.rooms, func(i, j int) bool { return l.rooms[i].Name < l.rooms[j].Name })
	return l, nil
}

// Locate returns the cell of the named room.
func (l *RoomLocator) Locate(name string) (models.Coordinate, error) {
	key := strings.TrimSpace(name)
	c, ok := l.table[key]
	if !ok {
		return models.Coordinate{}, &RoomNotFoundError{Room: key}
	}
	return c, nil
}

// Origin returns the cell every walk starts from.
func (l *RoomLocator) Origin() models.Coordinate { return l.origin }

func (l *RoomLocator) OriginName() string { return l.originName }

func (l *RoomLocator) GridSize() int { return l.gridSize }

// Rooms returns the table sorted by name, origin included.
func (l *RoomLocator) Rooms() []models.RoomLocation {
	return append([]models.RoomLocation(nil), l.rooms...)
}
