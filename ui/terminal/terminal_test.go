package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomaze/director/random"
	"github.com/they4kman/gomaze/game"
)

func newTestSession(t *testing.T, config game.GameConfig) *session {
	t.Helper()
	s, err := newSession(newScreen(t, 80, 24), config, Options{})
	require.NoError(t, err)
	return s
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNewSessionFitsScreen(t *testing.T) {
	config := game.NewGameConfig()
	config.Width, config.Height = 0, 0
	s := newTestSession(t, config)

	assert.Equal(t, 39, s.game.Maze().Width())
	assert.Equal(t, 23, s.game.Maze().Height())
	assert.Equal(t, DefaultKeyHold, s.options.KeyHold)

	config = game.NewGameConfig()
	config.Width, config.Height = 9, 7
	s = newTestSession(t, config)
	assert.Equal(t, 9, s.game.Maze().Width())
	assert.Equal(t, 7, s.game.Maze().Height())
}

func TestQuitKeys(t *testing.T) {
	s := newTestSession(t, game.NewGameConfig())

	assert.False(t, s.handleEvent(keyEvent(tcell.KeyEscape)))
	assert.False(t, s.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, s.handleEvent(runeEvent('x')))
}

func TestHeldKeysExpire(t *testing.T) {
	s := newTestSession(t, game.NewGameConfig())

	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	assert.True(t, s.handleEvent(runeEvent('D')))
	assert.True(t, s.game.Keys().Held("d"))

	now = now.Add(50 * time.Millisecond)
	s.tick()
	assert.True(t, s.game.Keys().Held("d"))

	// Auto-repeat refreshes the hold
	assert.True(t, s.handleEvent(runeEvent('d')))
	now = now.Add(80 * time.Millisecond)
	s.tick()
	assert.True(t, s.game.Keys().Held("d"))

	now = now.Add(DefaultKeyHold)
	s.tick()
	assert.False(t, s.game.Keys().Held("d"))
	assert.Empty(t, s.held)
}

func TestArrowKeys(t *testing.T) {
	s := newTestSession(t, game.NewGameConfig())

	s.handleEvent(keyEvent(tcell.KeyDown))
	s.handleEvent(keyEvent(tcell.KeyLeft))
	assert.Equal(t, []game.Key{game.KeyArrowLeft, game.KeyArrowDown}, s.game.Keys().MostRecentFirst())
}

func TestUppercaseBindingFires(t *testing.T) {
	bindings, err := game.ParseKeyBindings(map[string]string{"W": "up", "S": "down"})
	require.NoError(t, err)

	config := game.NewGameConfig()
	config.Bindings = bindings
	s := newTestSession(t, config)

	assert.True(t, s.handleEvent(runeEvent('W')))
	assert.True(t, s.handleEvent(runeEvent('s')))
	assert.Equal(t, []game.Key{"s", "w"}, s.game.Keys().MostRecentFirst())
}

func TestSpacePauses(t *testing.T) {
	s := newTestSession(t, game.NewGameConfig())

	s.handleEvent(runeEvent(' '))
	assert.Equal(t, game.Paused, s.game.State())
	s.handleEvent(runeEvent(' '))
	assert.Equal(t, game.Ongoing, s.game.State())
}

func TestEnterStartsNewMazeAfterWin(t *testing.T) {
	config := game.NewGameConfig()
	config.Width, config.Height = 5, 5
	config.Seed = 3
	config.AnimationStep = game.TileSize
	config.Director = &random.Director{}
	s := newTestSession(t, config)

	first := s.game.ID()
	s.handleEvent(keyEvent(tcell.KeyEnter))
	assert.Equal(t, first, s.game.ID(), "Enter does nothing mid-game")

	for i := 0; i < 10000 && s.game.State() != game.Won; i++ {
		s.tick()
	}
	require.Equal(t, game.Won, s.game.State())

	assert.True(t, s.handleEvent(keyEvent(tcell.KeyEnter)))
	assert.NotEqual(t, first, s.game.ID())
	assert.Equal(t, game.Ongoing, s.game.State())
	assert.Equal(t, 5, s.game.Maze().Width())
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		event    *tcell.EventKey
		expected game.Key
		ok       bool
	}{
		{keyEvent(tcell.KeyUp), game.KeyArrowUp, true},
		{keyEvent(tcell.KeyDown), game.KeyArrowDown, true},
		{keyEvent(tcell.KeyLeft), game.KeyArrowLeft, true},
		{keyEvent(tcell.KeyRight), game.KeyArrowRight, true},
		{runeEvent('Z'), "z", true},
		{runeEvent('q'), "q", true},
		{keyEvent(tcell.KeyTab), "", false},
	}

	for _, c := range cases {
		key, ok := keyFor(c.event)
		assert.Equal(t, c.ok, ok)
		assert.Equal(t, c.expected, key)
	}
}
