package game

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Maze struct {
	width, height int // in number of cells
	cells         [][]CellType

	start, goal Coord
}

// NewMaze creates a maze filled with walls. Start and goal are fixed to the
// inner corners and never move afterwards.
func NewMaze(width, height int) (*Maze, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	maze := Maze{
		width:  width,
		height: height,
		cells:  make([][]CellType, height),
		start:  Coord{X: 1, Y: 1},
		goal:   Coord{X: width - 2, Y: height - 2},
	}

	// CellType's zero value is Wall
	for y := range maze.cells {
		maze.cells[y] = make([]CellType, width)
	}

	return &maze, nil
}

func ValidateDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// FitDimension rounds a cell count down to the nearest odd value
func FitDimension(n int) int {
	return n - (n+1)%2
}

func (maze *Maze) Width() int {
	return maze.width
}

func (maze *Maze) Height() int {
	return maze.height
}

func (maze *Maze) Start() Coord {
	return maze.start
}

func (maze *Maze) Goal() Coord {
	return maze.goal
}

func (maze *Maze) InBounds(coord Coord) bool {
	return coord.X >= 0 && coord.Y >= 0 && coord.X < maze.width && coord.Y < maze.height
}

// CellType returns Outside for coordinates beyond the maze
func (maze *Maze) CellType(coord Coord) CellType {
	if !maze.InBounds(coord) {
		return Outside
	}
	return maze.cells[coord.Y][coord.X]
}

func (maze *Maze) onBorder(coord Coord) bool {
	return coord.X == 0 || coord.Y == 0 || coord.X == maze.width-1 || coord.Y == maze.height-1
}

func (maze *Maze) carve(coord Coord) {
	maze.cells[coord.Y][coord.X] = Floor
}

// MarkVisited leaves a trail marker on a floor cell. Marking a wall is a
// caller error and is ignored.
func (maze *Maze) MarkVisited(coord Coord) {
	switch maze.CellType(coord) {
	case Floor:
		maze.cells[coord.Y][coord.X] = VisitedFloor
	case VisitedFloor:
	default:
		log.WithField("cell", coord).Warn("Refusing to mark non-floor cell as visited")
	}
}

// Cells returns a row-major copy of the grid
func (maze *Maze) Cells() [][]CellType {
	out := make([][]CellType, maze.height)
	for y, row := range maze.cells {
		out[y] = append([]CellType(nil), row...)
	}
	return out
}

// Floors returns the number of walkable cells
func (maze *Maze) Floors() int {
	count := 0
	for _, row := range maze.cells {
		for _, cellType := range row {
			if cellType.Walkable() {
				count++
			}
		}
	}
	return count
}

const (
	layoutWall    = '#'
	layoutFloor   = ' '
	layoutVisited = '.'
	layoutStart   = 'S'
	layoutGoal    = 'G'
)

func (maze *Maze) String() string {
	var out strings.Builder
	for y, row := range maze.cells {
		for x, cellType := range row {
			coord := Coord{X: x, Y: y}
			switch {
			case coord == maze.start:
				out.WriteRune(layoutStart)
			case coord == maze.goal:
				out.WriteRune(layoutGoal)
			case cellType == Floor:
				out.WriteRune(layoutFloor)
			case cellType == VisitedFloor:
				out.WriteRune(layoutVisited)
			default:
				out.WriteRune(layoutWall)
			}
		}
		out.WriteRune('\n')
	}
	return out.String()
}

// ParseMaze reads a layout in the format produced by String. The S and G
// markers must sit at the fixed start and goal cells, the border must be
// walls, and every floor must be reachable from the start.
func ParseMaze(layout string) (*Maze, error) {
	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedLayout)
	}

	maze, err := NewMaze(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != maze.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedLayout, y, len(row), maze.width)
		}

		for x, c := range row {
			coord := Coord{X: x, Y: y}
			if c != layoutWall && maze.onBorder(coord) {
				return nil, fmt.Errorf("%w: open border at %v", ErrMalformedLayout, coord)
			}

			switch c {
			case layoutWall:
			case layoutFloor:
				maze.carve(coord)
			case layoutVisited:
				maze.cells[y][x] = VisitedFloor
			case layoutStart, layoutGoal:
				if (c == layoutStart && coord != maze.start) || (c == layoutGoal && coord != maze.goal) {
					return nil, fmt.Errorf("%w: %c marker at %v", ErrMalformedLayout, c, coord)
				}
				maze.carve(coord)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrMalformedLayout, c, coord)
			}
		}
	}

	if !maze.Connected() {
		return nil, fmt.Errorf("%w: some floors are unreachable from the start", ErrMalformedLayout)
	}

	return maze, nil
}
