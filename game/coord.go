package game

import (
	"fmt"
	"strings"
)

type Direction int

const (
	None Direction = iota
	Down
	Left
	Right
	Up
)

// Directions in carving order, before shuffling
var Directions = []Direction{Down, Up, Left, Right}

var directionNames = map[Direction]string{
	None:  "none",
	Down:  "down",
	Left:  "left",
	Right: "right",
	Up:    "up",
}

func (dir Direction) String() string {
	if name, ok := directionNames[dir]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

// Delta returns the unit step of the direction, with y growing downwards
func (dir Direction) Delta() (dx, dy int) {
	switch dir {
	case Down:
		return 0, 1
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (dir Direction) Opposite() Direction {
	switch dir {
	case Down:
		return Up
	case Up:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// ParseDirection accepts the lowercase direction names, ignoring case and
// surrounding whitespace
func ParseDirection(name string) (Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for dir, dirName := range directionNames {
		if dir != None && dirName == name {
			return dir, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Coord is a cell position; X grows rightwards and Y downwards
type Coord struct {
	X, Y int
}

func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

func (coord Coord) Add(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: coord.X + dx, Y: coord.Y + dy}
}

// Step returns the coordinate n cells away in the given direction
func (coord Coord) Step(dir Direction, n int) Coord {
	dx, dy := dir.Delta()
	return Coord{X: coord.X + dx*n, Y: coord.Y + dy*n}
}
