package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type GameConfig struct {
	// Maze size in cells; 0 lets the frontend fit the maze to its screen
	Width, Height int

	// Seed for maze generation; 0 picks one from the clock
	Seed int64

	// Time between two ticks
	TickPeriod time.Duration
	// Animation units covered per tick; a cell is TileSize units across
	AnimationStep int

	Bindings KeyBindings

	Director Director
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:         31,
		Height:        21,
		TickPeriod:    DefaultTickPeriod,
		AnimationStep: DefaultAnimationStep,
		Bindings:      DefaultKeyBindings(),
		Director:      nil,
	}
}

// Validate checks the configuration, accepting 0 for dimensions still to be
// fitted by a frontend
func (config GameConfig) Validate() error {
	// Each dimension may be left at 0 independently of the other
	width, height := config.Width, config.Height
	if width == 0 {
		width = MinDimension
	}
	if height == 0 {
		height = MinDimension
	}
	if err := ValidateDimensions(width, height); err != nil {
		return fmt.Errorf("%w (configured %dx%d)", err, config.Width, config.Height)
	}
	if config.AnimationStep <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, config.AnimationStep)
	}
	if config.TickPeriod <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTickPeriod, config.TickPeriod)
	}
	return config.Bindings.Validate()
}

// FitTo fills in unset dimensions with the largest odd cell counts fitting
// in maxWidth x maxHeight cells
func (config GameConfig) FitTo(maxWidth, maxHeight int) GameConfig {
	fit := func(n int) int {
		n = FitDimension(n)
		if n < MinDimension {
			return MinDimension
		}
		return n
	}

	if config.Width == 0 {
		config.Width = fit(maxWidth)
	}
	if config.Height == 0 {
		config.Height = fit(maxHeight)
	}
	return config
}

// Game owns all state of a single maze run. It is advanced one tick at a time
// by Update, and input only ever touches the pressed-key history, so every
// state transition happens inside Update.
type Game struct {
	id     uuid.UUID
	config GameConfig
	seed   int64
	rand   *rand.Rand

	maze  *Maze
	actor *Actor
	keys  *PressedKeys

	state       GameState
	spriteFrame int
	ticks       uint64
	moves       uint64

	director Director
	onWin    []func(*Game)

	log *log.Entry
}

func NewGame(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	maze, err := Generate(config.Width, config.Height, rng)
	if err != nil {
		return nil, err
	}

	game := &Game{
		id:       uuid.New(),
		config:   config,
		seed:     seed,
		rand:     rng,
		maze:     maze,
		actor:    NewActor(maze.Start()),
		keys:     NewPressedKeys(),
		state:    Ongoing,
		director: config.Director,
	}
	game.log = log.WithFields(log.Fields{
		"game":   game.id.String(),
		"seed":   seed,
		"width":  maze.Width(),
		"height": maze.Height(),
	})

	if game.director != nil {
		game.director.Init(game)
	}

	game.log.Info("Generated maze")
	return game, nil
}

func (game *Game) ID() uuid.UUID {
	return game.id
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Config() GameConfig {
	return game.config
}

// Rand is the game's seeded RNG; it is only safe to use from the tick
func (game *Game) Rand() *rand.Rand {
	return game.rand
}

func (game *Game) Maze() *Maze {
	return game.maze
}

func (game *Game) Actor() *Actor {
	return game.actor
}

func (game *Game) Keys() *PressedKeys {
	return game.keys
}

func (game *Game) State() GameState {
	return game.state
}

func (game *Game) Ticks() uint64 {
	return game.ticks
}

// Moves counts the cells the actor has entered
func (game *Game) Moves() uint64 {
	return game.moves
}

func (game *Game) Elapsed() time.Duration {
	return time.Duration(game.ticks) * game.config.TickPeriod
}

func (game *Game) SpriteFrame() SpriteFrame {
	return SpriteFrameFor(game.actor.Facing(), game.spriteFrame)
}

func (game *Game) canPlay() bool {
	return game.state == Ongoing
}

// OnWin registers a callback run once, when the actor reaches the goal
func (game *Game) OnWin(callback func(*Game)) {
	game.onWin = append(game.onWin, callback)
}

func (game *Game) TogglePaused() {
	switch game.state {
	case Ongoing:
		game.state = Paused
	case Paused:
		game.state = Ongoing
	}
}

// KeyDown records a key press, reporting whether the key is bound
func (game *Game) KeyDown(key Key) bool {
	return game.HandleInput(Press(key))
}

// KeyUp records a key release, reporting whether the key is bound
func (game *Game) KeyUp(key Key) bool {
	return game.HandleInput(Release(key))
}

func (game *Game) HandleInput(event InputEvent) bool {
	if game.state == Won {
		return false
	}
	if _, bound := game.config.Bindings[event.Key]; !bound {
		return false
	}

	switch event.Kind {
	case KeyPress:
		game.keys.Press(event.Key)
	case KeyRelease:
		game.keys.Release(event.Key)
	default:
		return false
	}
	return true
}

// Update advances the game by one tick. It returns false once the game is
// over, after which the driver should stop ticking.
func (game *Game) Update() bool {
	if game.state == Paused {
		return true
	}
	if !game.canPlay() {
		return false
	}

	game.ticks++

	if game.keys.Len() > 0 {
		game.spriteFrame = (game.spriteFrame + 1) % SpriteFrames
	}

	if game.actor.Advance(game.config.AnimationStep, game.maze) {
		game.moves++
		if game.actor.Position() == game.maze.Goal() {
			game.win()
			return false
		}
	}

	if !game.actor.Moving() {
		// Directors decide at cell boundaries, once the slide has committed
		if game.director != nil {
			for _, event := range game.director.Act() {
				game.HandleInput(event)
			}
		}

		for _, key := range game.keys.MostRecentFirst() {
			if game.actor.RequestMove(game.config.Bindings[key], game.maze) {
				break
			}
		}
	}

	return true
}

func (game *Game) win() {
	game.state = Won
	game.keys.ReleaseAll()

	if game.director != nil {
		game.director.End()
	}

	game.log.WithFields(log.Fields{
		"ticks":   game.ticks,
		"moves":   game.moves,
		"elapsed": game.Elapsed(),
	}).Info("Goal reached")

	for _, callback := range game.onWin {
		callback(game)
	}
}
