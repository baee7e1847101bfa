package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	layout5x5 = "#####\n" +
		"#S  #\n" +
		"# # #\n" +
		"# #G#\n" +
		"#####\n"

	layout7x5 = "#######\n" +
		"#S#   #\n" +
		"# # # #\n" +
		"#   #G#\n" +
		"#######\n"
)

func TestNewMaze(t *testing.T) {
	maze, err := NewMaze(7, 5)
	require.NoError(t, err)

	assert.Equal(t, 7, maze.Width())
	assert.Equal(t, 5, maze.Height())
	assert.Equal(t, C(1, 1), maze.Start())
	assert.Equal(t, C(5, 3), maze.Goal())
	assert.Equal(t, 0, maze.Floors())

	for y := 0; y < maze.Height(); y++ {
		for x := 0; x < maze.Width(); x++ {
			assert.Equal(t, Wall, maze.CellType(C(x, y)))
		}
	}
}

func TestNewMazeInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{4, 5}, {5, 6}, {3, 5}, {5, 3}, {0, 0}, {-5, 5}} {
		_, err := NewMaze(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}
}

func TestFitDimension(t *testing.T) {
	cases := map[int]int{
		1:  1,
		2:  1,
		5:  5,
		6:  5,
		40: 39,
		41: 41,
	}
	for n, expected := range cases {
		assert.Equal(t, expected, FitDimension(n), "FitDimension(%d)", n)
	}
}

func TestCellTypeOutside(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)

	assert.Equal(t, Outside, maze.CellType(C(-1, 0)))
	assert.Equal(t, Outside, maze.CellType(C(0, -1)))
	assert.Equal(t, Outside, maze.CellType(C(5, 0)))
	assert.Equal(t, Outside, maze.CellType(C(0, 5)))
	assert.False(t, maze.InBounds(C(5, 5)))
	assert.True(t, maze.InBounds(C(4, 4)))
}

func TestMarkVisited(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)

	maze.MarkVisited(C(2, 1))
	assert.Equal(t, VisitedFloor, maze.CellType(C(2, 1)))

	maze.MarkVisited(C(2, 1))
	assert.Equal(t, VisitedFloor, maze.CellType(C(2, 1)))

	// Walls and out-of-bounds cells are left alone
	maze.MarkVisited(C(0, 0))
	assert.Equal(t, Wall, maze.CellType(C(0, 0)))
	maze.MarkVisited(C(-1, -1))

	assert.Equal(t, 7, maze.Floors())
}

func TestCellsIsACopy(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)

	cells := maze.Cells()
	require.Len(t, cells, 5)
	require.Len(t, cells[0], 5)
	assert.Equal(t, Floor, cells[1][2])

	cells[1][2] = Wall
	assert.Equal(t, Floor, maze.CellType(C(2, 1)))
}

func TestParseMazeRoundTrip(t *testing.T) {
	for _, layout := range []string{layout5x5, layout7x5} {
		maze, err := ParseMaze(layout)
		require.NoError(t, err)
		assert.Equal(t, layout, maze.String())
	}

	maze, err := ParseMaze(layout7x5)
	require.NoError(t, err)
	assert.Equal(t, 11, maze.Floors())
	assert.Equal(t, Floor, maze.CellType(maze.Start()))
	assert.Equal(t, Floor, maze.CellType(maze.Goal()))
}

func TestParseMazeVisited(t *testing.T) {
	layout := "#####\n" +
		"#S. #\n" +
		"# # #\n" +
		"# #G#\n" +
		"#####\n"

	maze, err := ParseMaze(layout)
	require.NoError(t, err)
	assert.Equal(t, VisitedFloor, maze.CellType(C(2, 1)))
	assert.Equal(t, layout, maze.String())
}

func TestParseMazeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"ragged":       "#####\n#S  #\n# #\n# #G#\n#####\n",
		"unknown cell": "#####\n#S  #\n# x #\n# #G#\n#####\n",
		"misplaced S":  "#####\n#  S#\n# # #\n# #G#\n#####\n",
		"misplaced G":  "#####\n#S  #\n# #G#\n# # #\n#####\n",
		"even width":   "######\n#S   #\n#    #\n#   G#\n######\n",
		"too few rows": "#####\n#S G#\n#####\n",
		"disconnected": "#####\n#S# #\n# # #\n###G#\n#####\n",
		"open border":  "#####\n#S   \n# # #\n# #G#\n#####\n",
		"visited edge": "#####\n#S  #\n# # #\n# #G#\n##.##\n",
	}

	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMaze(layout)
			assert.Error(t, err)
		})
	}

	_, err := ParseMaze("#####\n#S  #\n# x #\n# #G#\n#####\n")
	assert.ErrorIs(t, err, ErrMalformedLayout)

	_, err = ParseMaze("#####\n#S   \n# # #\n# #G#\n#####\n")
	assert.ErrorIs(t, err, ErrMalformedLayout)
}

func TestReachable(t *testing.T) {
	maze, err := ParseMaze(layout7x5)
	require.NoError(t, err)

	assert.Equal(t, 11, maze.Reachable(maze.Start()))
	assert.Equal(t, 11, maze.Reachable(maze.Goal()))
	assert.Equal(t, 0, maze.Reachable(C(0, 0)), "walls reach nothing")
	assert.True(t, maze.Connected())

	maze.cells[1][3] = Wall
	assert.False(t, maze.Connected())
	assert.Equal(t, 6, maze.Reachable(maze.Start()))
}
