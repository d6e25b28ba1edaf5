package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is a semantic control bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota
	ActionSteerLeft
	ActionSteerRight
	ActionAccelerate
	ActionBrake
	ActionRestart
	ActionPause
	ActionQuit

	actionCount
)

var actionNames = map[string]Action{
	"left":       ActionSteerLeft,
	"right":      ActionSteerRight,
	"accelerate": ActionAccelerate,
	"brake":      ActionBrake,
	"restart":    ActionRestart,
	"pause":      ActionPause,
	"quit":       ActionQuit,
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// KeyMap binds terminal keys to actions
// Rune bindings are case-insensitive
type KeyMap struct {
	Special map[tcell.Key]Action
	Runes   map[rune]Action
}

// DefaultKeyMap mirrors the desktop layout: arrows steer, X throttles, Z brakes
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Special: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionSteerLeft,
			tcell.KeyRight:  ActionSteerRight,
			tcell.KeyUp:     ActionAccelerate,
			tcell.KeyDown:   ActionBrake,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'x': ActionAccelerate,
			'z': ActionBrake,
			'r': ActionRestart,
			'p': ActionPause,
			'q': ActionQuit,
		},
	}
}

// Bind assigns a rune to an action by name, overriding any previous binding
func (m *KeyMap) Bind(key rune, action string) error {
	a, err := ParseAction(action)
	if err != nil {
		return err
	}
	m.Runes[toLower(key)] = a
	return nil
}

// Resolve maps a key event to its action
func (m *KeyMap) Resolve(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	return m.ResolveKey(ev.Key(), ev.Rune())
}

// ResolveKey maps a key code (and rune, for tcell.KeyRune) to its action
func (m *KeyMap) ResolveKey(k tcell.Key, r rune) Action {
	if k == tcell.KeyRune {
		return m.Runes[toLower(r)]
	}
	return m.Special[k]
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
