package game

import "time"

type CellType int
type GameState int

const (
	// Outside is reported for coordinates beyond the maze bounds
	Outside CellType = iota - 1
	Wall
	Floor
	VisitedFloor
)

func (cellType CellType) String() string {
	switch cellType {
	case Outside:
		return "outside"
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case VisitedFloor:
		return "visited"
	default:
		return "unknown"
	}
}

// Walkable returns whether an actor may step onto a cell of this type
func (cellType CellType) Walkable() bool {
	return cellType == Floor || cellType == VisitedFloor
}

const (
	// TileSize is the edge of a cell, in animation units
	TileSize = 15

	// DefaultAnimationStep moves an actor across a cell in 3 ticks
	DefaultAnimationStep = 5

	DefaultTickPeriod = 40 * time.Millisecond

	// SpriteFrames is the number of walk-cycle frames per facing
	SpriteFrames = 3

	MinDimension = 5
)

const (
	Won GameState = iota
	Ongoing
	Paused
)

func (state GameState) String() string {
	switch state {
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
