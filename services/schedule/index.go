package schedule

import (
	"errors"
	"fmt"

	"roomfinder/models"
	"roomfinder/utils"

	"go.uber.org/zap"
)

// ErrMalformedEntry marks a timetable row whose time range cannot be split into two bounds.
var ErrMalformedEntry = errors.New("malformed schedule entry")

// ScheduleIndex answers occupancy queries over a fixed set of entries.
// It is never mutated after construction and is safe for concurrent use.
type ScheduleIndex struct {
	entries  []models.ScheduleEntry
	ordering TimeOrdering
	skipped  int
}

// ParseEntry converts a raw row into an entry with minute-of-day bounds.
func ParseEntry(row models.ScheduleRow) (models.ScheduleEntry, error) {
	start, end, err := utils.ParseTimeRange(row.Time)
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("%w: room %q day %q: %v", ErrMalformedEntry, row.Room, row.Day, err)
	}
	// ParseTimeRange accepted exactly two bounds, so the split cannot fail.
	startLabel, endLabel, _ := utils.SplitTimeRange(row.Time)
	return models.ScheduleEntry{
		Room:        row.Room,
		Day:         row.Day,
		StartMinute: start,
		EndMinute:   end,
		StartLabel:  startLabel,
		EndLabel:    endLabel,
	}, nil
}

// ParseLexicalEntry only requires two non-empty bounds, matching the legacy
// string comparison. Minutes are filled in when the range also parses canonically.
func ParseLexicalEntry(row models.ScheduleRow) (models.ScheduleEntry, error) {
	startLabel, endLabel, ok := utils.SplitTimeRange(row.Time)
	if !ok || startLabel == "" || endLabel == "" {
		return models.ScheduleEntry{}, fmt.Errorf("%w: room %q day %q: %q needs exactly two bounds", ErrMalformedEntry, row.Room, row.Day, row.Time)
	}
	entry := models.ScheduleEntry{
		Room:       row.Room,
		Day:        row.Day,
		StartLabel: startLabel,
		EndLabel:   endLabel,
	}
	if start, end, err := utils.ParseTimeRange(row.Time); err == nil {
		entry.StartMinute, entry.EndMinute = start, end
	}
	return entry, nil
}

// parse applies the row rules of the ordering.
func (o TimeOrdering) parse(row models.ScheduleRow) (models.ScheduleEntry, error) {
	if o == OrderingLexical {
		return ParseLexicalEntry(row)
	}
	return ParseEntry(row)
}

// NewScheduleIndex parses rows into an index. Malformed rows are logged and skipped.
func NewScheduleIndex(rows []models.ScheduleRow, ordering TimeOrdering, logger *zap.Logger) *ScheduleIndex {
	if logger == nil {
		logger = zap.NewNop()
	}
	idx := &ScheduleIndex{
		entries:  make([]models.ScheduleEntry, 0, len(rows)),
		ordering: ordering,
	}
	for i, row := range rows {
		entry, err := ordering.parse(row)
		if err != nil {
			idx.skipped++
			logger.Warn("skipping schedule entry",
				zap.Int("index", i),
				zap.String("room", row.Room),
				zap.String("time", row.Time),
				zap.Error(err))
			continue
		}
		idx.entries = append(idx.entries, entry)
	}
	return idx
}

// NewScheduleIndexFromEntries builds an index from entries that are already parsed.
func NewScheduleIndexFromEntries(entries []models.ScheduleEntry, ordering TimeOrdering) *ScheduleIndex {
	return &ScheduleIndex{
		entries:  append([]models.ScheduleEntry(nil), entries...),
		ordering: ordering,
	}
}

// IsOccupied reports whether some entry holds room on day at the given time.
func (idx *ScheduleIndex) IsOccupied(room, day string, at Clock) bool {
	for _, e := range idx.entries {
		if e.Room == room && idx.ordering.Matches(e, day, at) {
			return true
		}
	}
	return false
}

// OccupiedRooms returns every room held on day at the given time.
func (idx *ScheduleIndex) OccupiedRooms(day string, at Clock) models.RoomSet {
	return OccupiedRooms(idx.entries, day, at, idx.ordering)
}

// Entries returns a copy of the parsed entries.
func (idx *ScheduleIndex) Entries() []models.ScheduleEntry {
	return append([]models.ScheduleEntry(nil), idx.entries...)
}

func (idx *ScheduleIndex) Len() int { return len(idx.entries) }

// Skipped is the number of malformed rows dropped at construction.
func (idx *ScheduleIndex) Skipped() int { return idx.skipped }

func (idx *ScheduleIndex) Ordering() TimeOrdering { return idx.ordering }
