package game

// Shuffler produces random permutations; *rand.Rand satisfies it
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type carveFrame struct {
	at         Coord
	directions []Direction
	next       int
}

func newCarveFrame(at Coord, shuffler Shuffler) *carveFrame {
	directions := make([]Direction, len(Directions))
	copy(directions, Directions)
	shuffler.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})
	return &carveFrame{at: at, directions: directions}
}

// Generate carves a perfect maze with a randomized depth-first backtracker,
// rooted at the goal cell. Only odd coordinates are rooms; each step carves
// the wall between two rooms along with the far room.
//
// The backtracker keeps an explicit stack instead of recursing, so large
// mazes don't grow the goroutine stack. Each frame shuffles its directions
// once when pushed, which yields the same carve order as the recursive form.
func Generate(width, height int, shuffler Shuffler) (*Maze, error) {
	maze, err := NewMaze(width, height)
	if err != nil {
		return nil, err
	}

	maze.carve(maze.goal)
	stack := []*carveFrame{newCarveFrame(maze.goal, shuffler)}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		if frame.next >= len(frame.directions) {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := frame.directions[frame.next]
		frame.next++

		step1 := frame.at.Add(dir)
		step2 := frame.at.Step(dir, 2)
		if maze.CellType(step2) == Wall {
			maze.carve(step1)
			maze.carve(step2)
			stack = append(stack, newCarveFrame(step2, shuffler))
		}
	}

	return maze, nil
}
