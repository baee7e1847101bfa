package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
)

// Key identifies a physical key, named the way browsers name them
// ("ArrowUp", "z", ...)
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

type KeyBindings map[Key]Direction

// DefaultKeyBindings binds the arrows and ZQSD, two keys per direction
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		KeyArrowUp:    Up,
		"z":           Up,
		KeyArrowDown:  Down,
		"s":           Down,
		KeyArrowLeft:  Left,
		"q":           Left,
		KeyArrowRight: Right,
		"d":           Right,
	}
}

// NormalizeKey names single-character keys by their lowercase character, the
// way frontends report them. Named keys ("ArrowUp") are kept as is.
func NormalizeKey(name string) Key {
	if utf8.RuneCountInString(name) == 1 {
		return Key(strings.ToLower(name))
	}
	return Key(name)
}

// ParseKeyBindings builds bindings from key name to direction name
func ParseKeyBindings(names map[string]string) (KeyBindings, error) {
	bindings := make(KeyBindings, len(names))
	for name, dirName := range names {
		dir, err := ParseDirection(dirName)
		if err != nil {
			return nil, fmt.Errorf("binding for key %q: %w", name, err)
		}

		key := NormalizeKey(name)
		if bound, exists := bindings[key]; exists && bound != dir {
			return nil, fmt.Errorf("%w: %q bound to both %v and %v", ErrInvalidKey, key, bound, dir)
		}
		bindings[key] = dir
	}
	return bindings, nil
}

func (bindings KeyBindings) Validate() error {
	if len(bindings) == 0 {
		return ErrNoBindings
	}
	for key, dir := range bindings {
		if key == "" {
			return fmt.Errorf("%w: empty key name", ErrNoBindings)
		}
		if NormalizeKey(string(key)) != key {
			return fmt.Errorf("%w: %q can never be pressed, use %q", ErrInvalidKey, key, NormalizeKey(string(key)))
		}
		if dir == None {
			return fmt.Errorf("%w: key %q bound to no direction", ErrUnknownDirection, key)
		}
	}
	return nil
}

// Keys returns the bound keys in a stable order
func (bindings KeyBindings) Keys() []Key {
	keys := make([]Key, 0, len(bindings))
	for key := range bindings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// KeysFor returns the keys bound to dir, in a stable order
func (bindings KeyBindings) KeysFor(dir Direction) []Key {
	var keys []Key
	for _, key := range bindings.Keys() {
		if bindings[key] == dir {
			keys = append(keys, key)
		}
	}
	return keys
}

type InputKind int

const (
	KeyPress InputKind = iota
	KeyRelease
)

type InputEvent struct {
	Kind InputKind
	Key  Key
}

func Press(key Key) InputEvent {
	return InputEvent{Kind: KeyPress, Key: key}
}

func Release(key Key) InputEvent {
	return InputEvent{Kind: KeyRelease, Key: key}
}

// PressedKeys is the history of currently held keys, in the order they were
// first pressed. Repeated presses of a held key keep its place.
type PressedKeys struct {
	order deque.Deque
	held  collections.Set[Key]
}

func NewPressedKeys() *PressedKeys {
	return &PressedKeys{held: collections.NewSet[Key]()}
}

func (keys *PressedKeys) Press(key Key) {
	if keys.held.Add(key) {
		keys.order.PushBack(key)
	}
}

func (keys *PressedKeys) Release(key Key) {
	if !keys.held.Remove(key) {
		return
	}

	for i, n := 0, keys.order.Len(); i < n; i++ {
		el := keys.order.PopFront().(Key)
		if el != key {
			keys.order.PushBack(el)
		}
	}
}

func (keys *PressedKeys) ReleaseAll() {
	for keys.order.Len() > 0 {
		keys.held.Remove(keys.order.PopFront().(Key))
	}
}

func (keys *PressedKeys) Held(key Key) bool {
	return keys.held.Contains(key)
}

func (keys *PressedKeys) Len() int {
	return keys.order.Len()
}

// MostRecentFirst returns the held keys, latest press first
func (keys *PressedKeys) MostRecentFirst() []Key {
	out := make([]Key, 0, keys.order.Len())
	for i := keys.order.Len() - 1; i >= 0; i-- {
		out = append(out, keys.order.At(i).(Key))
	}
	return out
}
