package models

// AvailableRoomsResponse is returned by the availability endpoint.
type AvailableRoomsResponse struct {
	Day     string   `json:"day"`
	Time    string   `json:"time"`
	Rooms   []string `json:"rooms"`
	Count   int      `json:"count"`
	Message string   `json:"message,omitempty"`
}

// PathResponse is consumed by the map renderer, one cell at a time.
type PathResponse struct {
	Room      string       `json:"room"`
	Start     Coordinate   `json:"start"`
	Goal      Coordinate   `json:"goal"`
	Path      []Coordinate `json:"path"`
	Length    int          `json:"length"`
	Reachable bool         `json:"reachable"`
}

// MapResponse describes the grid the renderer draws.
type MapResponse struct {
	GridSize int            `json:"gridSize"`
	Origin   Coordinate     `json:"origin"`
	Rooms    []RoomLocation `json:"rooms"`
}

// QueryOptions lists the day and time choices offered to users.
type QueryOptions struct {
	Days  []string `json:"days"`
	Times []string `json:"times"`
}
