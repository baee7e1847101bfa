package game

import (
	"time"

	"gopkg.in/yaml.v2"
)

type ActorSnapshot struct {
	Cell, Target     Coord
	Facing           Direction
	OffsetX, OffsetY int
	Frame            SpriteFrame
}

// Snapshot is a read-only copy of everything a renderer draws
type Snapshot struct {
	ID            string
	Width, Height int
	Cells         [][]CellType
	Start, Goal   Coord
	Actor         ActorSnapshot
	State         GameState
	Ticks, Moves  uint64
	Elapsed       time.Duration
}

func (snapshot Snapshot) CellType(coord Coord) CellType {
	if coord.X < 0 || coord.Y < 0 || coord.X >= snapshot.Width || coord.Y >= snapshot.Height {
		return Outside
	}
	return snapshot.Cells[coord.Y][coord.X]
}

func (game *Game) Snapshot() Snapshot {
	offsetX, offsetY := game.actor.Offset()
	return Snapshot{
		ID:     game.id.String(),
		Width:  game.maze.Width(),
		Height: game.maze.Height(),
		Cells:  game.maze.Cells(),
		Start:  game.maze.Start(),
		Goal:   game.maze.Goal(),
		Actor: ActorSnapshot{
			Cell:    game.actor.Position(),
			Target:  game.actor.Target(),
			Facing:  game.actor.Facing(),
			OffsetX: offsetX,
			OffsetY: offsetY,
			Frame:   game.SpriteFrame(),
		},
		State:   game.state,
		Ticks:   game.ticks,
		Moves:   game.moves,
		Elapsed: game.Elapsed(),
	}
}

// Result summarizes a run, for printing once the game ends
type Result struct {
	ID      string `yaml:"game"`
	Seed    int64  `yaml:"seed"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	State   string `yaml:"state"`
	Ticks   uint64 `yaml:"ticks"`
	Moves   uint64 `yaml:"moves"`
	Elapsed string `yaml:"elapsed"`
}

func (game *Game) Result() Result {
	return Result{
		ID:      game.id.String(),
		Seed:    game.seed,
		Width:   game.maze.Width(),
		Height:  game.maze.Height(),
		State:   game.state.String(),
		Ticks:   game.ticks,
		Moves:   game.moves,
		Elapsed: game.Elapsed().String(),
	}
}

func (result Result) Serialize() string {
	out, err := yaml.Marshal(result)
	if err != nil {
		panic(err)
	}

	return string(out)
}
