package window

import (
	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/game"
)

var namedButtons = map[game.Key]pixelgl.Button{
	game.KeyArrowUp:    pixelgl.KeyUp,
	game.KeyArrowDown:  pixelgl.KeyDown,
	game.KeyArrowLeft:  pixelgl.KeyLeft,
	game.KeyArrowRight: pixelgl.KeyRight,
	" ":                pixelgl.KeySpace,
}

// buttonFor maps a binding key name onto a keyboard button. Letters and
// digits are named by their lowercase character.
func buttonFor(key game.Key) (pixelgl.Button, bool) {
	if button, ok := namedButtons[key]; ok {
		return button, true
	}

	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'z':
		return pixelgl.KeyA + pixelgl.Button(c-'a'), true
	case c >= '0' && c <= '9':
		return pixelgl.Key0 + pixelgl.Button(c-'0'), true
	}
	return 0, false
}

// buttonsFor resolves every bound key; keys without a button are skipped
func buttonsFor(bindings game.KeyBindings) map[game.Key]pixelgl.Button {
	buttons := make(map[game.Key]pixelgl.Button, len(bindings))
	for _, key := range bindings.Keys() {
		button, ok := buttonFor(key)
		if !ok {
			log.WithField("key", key).Warn("Key binding has no keyboard button; ignoring it")
			continue
		}
		buttons[key] = button
	}
	return buttons
}
