package game

import "fmt"

// Actor is a sprite moving cell by cell, sliding across each cell over
// several ticks. Its discrete position only changes when a slide completes.
type Actor struct {
	position, target Coord
	facing           Direction
	motion           Direction
	animation        int
}

func NewActor(at Coord) *Actor {
	return &Actor{
		position: at,
		target:   at,
		facing:   Right,
		motion:   None,
	}
}

func (actor *Actor) Position() Coord {
	return actor.position
}

func (actor *Actor) Target() Coord {
	return actor.target
}

func (actor *Actor) Facing() Direction {
	return actor.facing
}

func (actor *Actor) Animation() int {
	return actor.animation
}

func (actor *Actor) Moving() bool {
	return actor.target != actor.position
}

// Offset returns how far the sprite has slid from its committed cell
func (actor *Actor) Offset() (dx, dy int) {
	dx, dy = actor.motion.Delta()
	return dx * actor.animation, dy * actor.animation
}

// RequestMove starts a slide towards the neighbouring cell in dir. Requests
// are dropped while a slide is underway. A blocked move still turns the actor
// to face dir.
func (actor *Actor) RequestMove(dir Direction, maze *Maze) bool {
	if actor.Moving() || dir == None {
		return false
	}

	actor.facing = dir
	target := actor.position.Add(dir)
	if !maze.CellType(target).Walkable() {
		actor.motion = None
		actor.animation = 0
		return false
	}

	maze.MarkVisited(actor.position)
	actor.target = target
	actor.motion = dir
	return true
}

// Advance moves the slide forward by step animation units, and reports
// whether the actor committed to its target cell during this call
func (actor *Actor) Advance(step int, maze *Maze) bool {
	if !actor.Moving() {
		return false
	}

	actor.animation += step
	if actor.animation < TileSize {
		return false
	}

	if !maze.CellType(actor.target).Walkable() {
		panic(fmt.Sprintf("actor committing into %v cell at %v", maze.CellType(actor.target), actor.target))
	}

	actor.position = actor.target
	actor.animation = 0
	actor.motion = None
	return true
}
