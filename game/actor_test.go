package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	actor := NewActor(C(1, 1))

	assert.Equal(t, C(1, 1), actor.Position())
	assert.Equal(t, C(1, 1), actor.Target())
	assert.Equal(t, Right, actor.Facing())
	assert.False(t, actor.Moving())
	assert.Equal(t, 0, actor.Animation())
}

func TestActorSlidesAcrossCell(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)
	actor := NewActor(maze.Start())

	require.True(t, actor.RequestMove(Right, maze))
	assert.True(t, actor.Moving())
	assert.Equal(t, C(1, 1), actor.Position())
	assert.Equal(t, C(2, 1), actor.Target())
	assert.Equal(t, VisitedFloor, maze.CellType(C(1, 1)), "leaving a cell marks it visited")
	assert.Equal(t, Floor, maze.CellType(C(2, 1)))

	assert.False(t, actor.Advance(DefaultAnimationStep, maze))
	dx, dy := actor.Offset()
	assert.Equal(t, 5, dx)
	assert.Equal(t, 0, dy)

	// Requests are dropped mid-slide
	assert.False(t, actor.RequestMove(Down, maze))
	assert.Equal(t, Right, actor.Facing())

	assert.False(t, actor.Advance(DefaultAnimationStep, maze))
	assert.True(t, actor.Advance(DefaultAnimationStep, maze))

	assert.False(t, actor.Moving())
	assert.Equal(t, C(2, 1), actor.Position())
	assert.Equal(t, 0, actor.Animation())
	dx, dy = actor.Offset()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	assert.False(t, actor.Advance(DefaultAnimationStep, maze), "idle actors don't advance")
}

func TestActorOffsetFollowsDirection(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)
	actor := NewActor(C(3, 2))

	require.True(t, actor.RequestMove(Up, maze))
	actor.Advance(10, maze)
	dx, dy := actor.Offset()
	assert.Equal(t, 0, dx)
	assert.Equal(t, -10, dy)
}

func TestActorBlockedTurnsInPlace(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)
	actor := NewActor(maze.Start())

	assert.False(t, actor.RequestMove(Up, maze))
	assert.Equal(t, Up, actor.Facing())
	assert.False(t, actor.Moving())
	assert.Equal(t, Floor, maze.CellType(maze.Start()), "a blocked move leaves no trail")

	assert.False(t, actor.RequestMove(Left, maze))
	assert.Equal(t, Left, actor.Facing())

	assert.False(t, actor.RequestMove(None, maze))
	assert.Equal(t, Left, actor.Facing())
}

func TestActorLargeStepCommitsOnce(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)
	actor := NewActor(maze.Start())

	require.True(t, actor.RequestMove(Down, maze))
	assert.True(t, actor.Advance(TileSize*2, maze))
	assert.Equal(t, C(1, 2), actor.Position())
	assert.Equal(t, 0, actor.Animation())
}

func TestActorCommitIntoWallPanics(t *testing.T) {
	maze, err := ParseMaze(layout5x5)
	require.NoError(t, err)
	actor := NewActor(maze.Start())

	require.True(t, actor.RequestMove(Right, maze))
	maze.cells[1][2] = Wall

	assert.Panics(t, func() {
		actor.Advance(TileSize, maze)
	})
}
