// Package terminal plays gomaze full-screen in a terminal, using tcell.
package terminal

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/game"
)

// DefaultKeyHold covers a tap with a single cell of movement while staying
// above typical key auto-repeat intervals
const DefaultKeyHold = 100 * time.Millisecond

type Options struct {
	// Terminals never report key releases: a key counts as held for this long
	// after its last press or auto-repeat
	KeyHold time.Duration
}

type session struct {
	screen  tcell.Screen
	config  game.GameConfig
	options Options

	game *game.Game
	held map[game.Key]time.Time
	now  func() time.Time
}

// Run plays games until the player quits
func Run(config game.GameConfig, options Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	s, err := newSession(screen, config, options)
	if err != nil {
		return err
	}
	s.run()
	return nil
}

func newSession(screen tcell.Screen, config game.GameConfig, options Options) (*session, error) {
	if options.KeyHold <= 0 {
		options.KeyHold = DefaultKeyHold
	}

	s := &session{
		screen:  screen,
		config:  config,
		options: options,
		held:    make(map[game.Key]time.Time),
		now:     time.Now,
	}
	if err := s.newGame(config.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) newGame(seed int64) error {
	cols, rows := s.screen.Size()
	config := s.config.FitTo(cols/CellColumns, rows-1)
	config.Seed = seed

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	s.game = g
	s.held = make(map[game.Key]time.Time)
	return nil
}

func (s *session) run() {
	ticker := time.NewTicker(s.game.Config().TickPeriod)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	s.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !s.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			s.tick()
			s.draw()
		}
	}
}

// handleEvent returns false when the player quits
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if key, ok := keyFor(ev); ok {
			if s.game.KeyDown(key) {
				s.held[key] = s.now()
				return true
			}
		}

		switch {
		case ev.Key() == tcell.KeyEnter && s.game.State() == game.Won:
			if err := s.newGame(s.game.Rand().Int63()); err != nil {
				log.WithError(err).Error("Could not start a new game")
				return false
			}
			s.draw()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			s.game.TogglePaused()
			s.draw()
		}

	case *tcell.EventResize:
		s.screen.Sync()
		s.draw()
	}

	return true
}

func (s *session) tick() {
	now := s.now()
	for key, pressed := range s.held {
		if now.Sub(pressed) > s.options.KeyHold {
			s.game.KeyUp(key)
			delete(s.held, key)
		}
	}

	s.game.Update()
}

func (s *session) draw() {
	Draw(s.screen, s.game.Snapshot())
	s.screen.Show()
}

// keyFor names a terminal key event the way key bindings do
func keyFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp, true
	case tcell.KeyDown:
		return game.KeyArrowDown, true
	case tcell.KeyLeft:
		return game.KeyArrowLeft, true
	case tcell.KeyRight:
		return game.KeyArrowRight, true
	case tcell.KeyRune:
		return game.Key(string(unicode.ToLower(ev.Rune()))), true
	}
	return "", false
}
