package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
)

const (
	// InitialHold covers the pause before the terminal starts repeating a
	// held key. X11 defaults to 660ms.
	InitialHold = 700 * time.Millisecond
	// RepeatHold covers the gap between two auto-repeat events.
	RepeatHold = 120 * time.Millisecond
)

// Key identifies a terminal key. Printable keys use Code tcell.KeyRune and a
// lower-cased Rune.
type Key struct {
	Code tcell.Key
	Rune rune
}

func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

func CodeKey(code tcell.Key) Key {
	return Key{Code: code}
}

func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return CodeKey(ev.Key())
}

var DefaultBindings = game.Bindings[Key]{
	game.ActionLeftUp:    {RuneKey('w'), RuneKey('d')},
	game.ActionLeftDown:  {RuneKey('s'), RuneKey('a')},
	game.ActionRightUp:   {CodeKey(tcell.KeyUp), CodeKey(tcell.KeyRight)},
	game.ActionRightDown: {CodeKey(tcell.KeyDown), CodeKey(tcell.KeyLeft)},
}

type keyState struct {
	last    time.Time
	repeats int
}

// KeyTracker turns key press events into held state. Terminals report
// presses and auto-repeats but never releases, so a key counts as held for a
// short while after its latest event.
type KeyTracker struct {
	keys map[Key]*keyState
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{keys: make(map[Key]*keyState)}
}

// Press records an event for key at the given time.
func (k *KeyTracker) Press(key Key, at time.Time) {
	state, exists := k.keys[key]
	if exists && at.Sub(state.last) < k.window(state) {
		state.repeats++
		state.last = at
		return
	}
	k.keys[key] = &keyState{last: at}
}

func (k *KeyTracker) Held(key Key, now time.Time) bool {
	state, exists := k.keys[key]
	if !exists {
		return false
	}
	if now.Sub(state.last) >= k.window(state) {
		delete(k.keys, key)
		return false
	}
	return true
}

func (k *KeyTracker) window(state *keyState) time.Duration {
	if state.repeats == 0 {
		return InitialHold
	}
	return RepeatHold
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}
