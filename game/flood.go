package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
)

type Visitor func(Coord)

// flood visits every walkable cell connected to from, breadth-first
func (maze *Maze) flood(from Coord, visit Visitor) {
	if !maze.CellType(from).Walkable() {
		return
	}

	visited := collections.NewSet(from)
	var queue deque.Deque
	queue.PushBack(from)

	for queue.Len() > 0 {
		at := queue.PopFront().(Coord)
		visit(at)

		for _, dir := range Directions {
			next := at.Add(dir)
			if maze.CellType(next).Walkable() && visited.Add(next) {
				queue.PushBack(next)
			}
		}
	}
}

// Reachable counts the walkable cells connected to from, itself included
func (maze *Maze) Reachable(from Coord) int {
	count := 0
	maze.flood(from, func(Coord) {
		count++
	})
	return count
}

// Connected reports whether every walkable cell can be reached from the start
func (maze *Maze) Connected() bool {
	return maze.Reachable(maze.start) == maze.Floors()
}
