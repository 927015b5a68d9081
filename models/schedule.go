package models

// ScheduleRow is one raw row of the timetable source.
type ScheduleRow struct {
	Room string `bson:"room" json:"room"`
	Day  string `bson:"day" json:"day"`
	Time string `bson:"time" json:"time"` // e.g., "8:00 AM - 9:00 AM"
}

// ScheduleEntry is a parsed occupancy record.
type ScheduleEntry struct {
	Room        string `json:"room"`
	Day         string `json:"day"`
	StartMinute int    `json:"start"` // minutes from midnight (e.g., 480 for 8:00 AM)
	EndMinute   int    `json:"end"`   // inclusive
	StartLabel  string `json:"startLabel"`
	EndLabel    string `json:"endLabel"`
}

// RoomRecord is one row of the room source.
type RoomRecord struct {
	Name string `bson:"room" json:"room"`
}
