package schedule

import (
	"fmt"
	"sort"
	"strconv"

	"roomfinder/models"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// OccupiedRooms collects the rooms of every entry matching day and time. O(len(schedule)).
func OccupiedRooms(schedule []models.ScheduleEntry, day string, at Clock, ordering TimeOrdering) models.RoomSet {
	occupied := make(models.RoomSet)
	for _, e := range schedule {
		if ordering.Matches(e, day, at) {
			occupied[e.Room] = struct{}{}
		}
	}
	return occupied
}

// Available returns allRooms minus the rooms occupied on day at the given time.
// The result is always a subset of allRooms; an empty set means no room is free.
func Available(allRooms models.RoomSet, schedule []models.ScheduleEntry, day string, at Clock, ordering TimeOrdering) models.RoomSet {
	return allRooms.Difference(OccupiedRooms(schedule, day, at, ordering))
}

// Filter answers availability queries against a fixed index and room universe.
type Filter struct {
	index       *ScheduleIndex
	rooms       models.RoomSet
	fingerprint string
}

// NewFilter copies the room universe. Scheduled rooms outside the universe are
// reported once and otherwise ignored.
func NewFilter(index *ScheduleIndex, rooms models.RoomSet, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	universe := make(models.RoomSet, len(rooms))
	for name := range rooms {
		universe[name] = struct{}{}
	}

	unknown := make(models.RoomSet)
	for _, e := range index.entries {
		if !universe.Contains(e.Room) {
			unknown[e.Room] = struct{}{}
		}
	}
	if len(unknown) > 0 {
		logger.Warn("timetable references rooms outside the room list", zap.Strings("rooms", unknown.Sorted()))
	}

	return &Filter{index: index, rooms: universe, fingerprint: fingerprint(index, universe)}
}

// fingerprint hashes the ordering, the room universe and the parsed entries.
// Row order in the source does not change it.
func fingerprint(index *ScheduleIndex, rooms models.RoomSet) string {
	lines := make([]string, 0, len(index.entries))
	for _, e := range index.entries {
		lines = append(lines, fmt.Sprintf("%s\x1f%s\x1f%d\x1f%d\x1f%s\x1f%s",
			e.Room, e.Day, e.StartMinute, e.EndMinute, e.StartLabel, e.EndLabel))
	}
	sort.Strings(lines)

	d := xxhash.New()
	d.WriteString(string(index.ordering))
	for _, name := range rooms.Sorted() {
		d.WriteString("\x1erooms\x1f" + name)
	}
	for _, line := range lines {
		d.WriteString("\x1eentry\x1f" + line)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// AvailableRooms returns the free rooms on day at the given time.
func (f *Filter) AvailableRooms(day string, at Clock) models.RoomSet {
	return Available(f.rooms, f.index.entries, day, at, f.index.ordering)
}

// OccupiedRooms returns the held rooms, restricted to the room universe.
func (f *Filter) OccupiedRooms(day string, at Clock) models.RoomSet {
	held := f.index.OccupiedRooms(day, at)
	out := make(models.RoomSet, len(held))
	for name := range held {
		if f.rooms.Contains(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// HasRoom reports whether name belongs to the room universe.
func (f *Filter) HasRoom(name string) bool { return f.rooms.Contains(name) }

// Rooms returns the room universe in sorted order.
func (f *Filter) Rooms() []string { return f.rooms.Sorted() }

func (f *Filter) Index() *ScheduleIndex { return f.index }

// Fingerprint identifies the timetable and room universe answers are computed from.
func (f *Filter) Fingerprint() string { return f.fingerprint }
