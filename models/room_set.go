package models

import "sort"

// RoomSet is a set of room names.
type RoomSet map[string]struct{}

func NewRoomSet(names ...string) RoomSet {
	set := make(RoomSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// RoomSetFromRecords builds the room universe from the room source.
func RoomSetFromRecords(records []RoomRecord) RoomSet {
	set := make(RoomSet, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		set[r.Name] = struct{}{}
	}
	return set
}

func (s RoomSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Difference returns the rooms of s that are not in other.
func (s RoomSet) Difference(other RoomSet) RoomSet {
	out := make(RoomSet, len(s))
	for name := range s {
		if !other.Contains(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Sorted returns the names in ascending order.
func (s RoomSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
