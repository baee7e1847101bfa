package random

import (
	"math/rand"

	"github.com/they4kman/gomaze/game"
)

// Director wanders the maze at random, holding one direction key at a time.
// At each junction it picks an open direction other than the one it came
// from, and only turns back at dead ends.
type Director struct {
	game *game.Game
	rand *rand.Rand

	held   game.Key
	heldOk bool
	last   game.Direction
	ended  bool
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.rand = rand.New(rand.NewSource(g.Rand().Int63()))
	director.heldOk = false
	director.last = game.None
	director.ended = false
}

func (director *Director) Act() []game.InputEvent {
	if director.ended || director.game == nil {
		return nil
	}

	actor := director.game.Actor()
	if actor.Moving() {
		return nil
	}

	dir := director.choose(actor.Position())
	if dir == game.None {
		return director.release()
	}

	keys := director.game.Config().Bindings.KeysFor(dir)
	if len(keys) == 0 {
		return director.release()
	}
	key := keys[director.rand.Intn(len(keys))]
	if director.heldOk && director.held == key {
		return nil
	}

	events := director.release()
	director.held, director.heldOk = key, true
	director.last = dir
	return append(events, game.Press(key))
}

func (director *Director) choose(at game.Coord) game.Direction {
	maze := director.game.Maze()

	var open []game.Direction
	for _, dir := range game.Directions {
		if maze.CellType(at.Add(dir)).Walkable() {
			open = append(open, dir)
		}
	}
	if len(open) == 0 {
		return game.None
	}

	if len(open) > 1 && director.last != game.None {
		back := director.last.Opposite()
		forward := open[:0:0]
		for _, dir := range open {
			if dir != back {
				forward = append(forward, dir)
			}
		}
		open = forward
	}

	return open[director.rand.Intn(len(open))]
}

func (director *Director) release() []game.InputEvent {
	if !director.heldOk {
		return nil
	}
	director.heldOk = false
	return []game.InputEvent{game.Release(director.held)}
}

func (director *Director) End() {
	director.ended = true
	director.heldOk = false
}
