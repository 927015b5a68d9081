package models

import "fmt"

// Coordinate is a grid cell.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Path is an ordered walk from start to goal, both included.
// An empty path means the goal could not be reached.
type Path []Coordinate

func (p Path) Empty() bool { return len(p) == 0 }

// RoomLocation binds a room name to a grid cell.
type RoomLocation struct {
	Name string `mapstructure:"name" json:"name"`
	X    int    `mapstructure:"x" json:"x"`
	Y    int    `mapstructure:"y" json:"y"`
}

func (l RoomLocation) Coordinate() Coordinate {
	return Coordinate{X: l.X, Y: l.Y}
}

// LocatorConfig is the static building map.
type LocatorConfig struct {
	GridSize int            `mapstructure:"gridSize" json:"gridSize"`
	Origin   string         `mapstructure:"origin" json:"origin"`
	Rooms    []RoomLocation `mapstructure:"rooms" json:"rooms"`
}
