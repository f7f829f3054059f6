package game

import (
	"fmt"
	"strings"
)

// EventKind identifies a semantic input event from the presentation layer.
// The core is agnostic to windowing details; pointer events are accepted but
// carry no game logic (buttons live in the presentation layer and arrive as
// Actions).
type EventKind int

const (
	EventKeyPress EventKind = iota
	EventKeyBackspace
	EventKeySubmit
	EventKeyEscape
	EventPointerMove
	EventPointerClick
	EventQuit
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyPress:
		return "key"
	case EventKeyBackspace:
		return "backspace"
	case EventKeySubmit:
		return "submit"
	case EventKeyEscape:
		return "escape"
	case EventPointerMove:
		return "pointermove"
	case EventPointerClick:
		return "pointerclick"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseEventKind resolves a wire name to an event kind.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "key":
		return EventKeyPress, nil
	case "backspace":
		return EventKeyBackspace, nil
	case "submit":
		return EventKeySubmit, nil
	case "escape":
		return EventKeyEscape, nil
	case "pointermove":
		return EventPointerMove, nil
	case "pointerclick":
		return EventPointerClick, nil
	case "quit":
		return EventQuit, nil
	default:
		return EventKeyPress, fmt.Errorf("unknown event kind %q", s)
	}
}

// Event is one input event. Char is set for key presses; X and Y carry
// normalized [0,1] pointer coordinates for pointer events.
type Event struct {
	Kind EventKind
	Char rune
	X, Y float64
}

// KeyPress builds a character key event.
func KeyPress(ch rune) Event {
	return Event{Kind: EventKeyPress, Char: ch}
}

// ActionKind identifies a menu/button action exposed to the presentation
// layer. Buttons are rendered and hit-tested outside the core; a click
// arrives here already resolved to an action.
type ActionKind int

const (
	ActionStartGame ActionKind = iota
	ActionOpenSettings
	ActionChooseDifficulty
	ActionBack
	ActionQuit
	ActionPlayAgain
)

// String returns the wire name of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionStartGame:
		return "start"
	case ActionOpenSettings:
		return "settings"
	case ActionChooseDifficulty:
		return "difficulty"
	case ActionBack:
		return "back"
	case ActionQuit:
		return "quit"
	case ActionPlayAgain:
		return "playagain"
	default:
		return "unknown"
	}
}

// ParseActionKind resolves a wire name to an action kind.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return ActionStartGame, nil
	case "settings":
		return ActionOpenSettings, nil
	case "difficulty":
		return ActionChooseDifficulty, nil
	case "back":
		return ActionBack, nil
	case "quit":
		return ActionQuit, nil
	case "playagain":
		return ActionPlayAgain, nil
	default:
		return ActionStartGame, fmt.Errorf("unknown action %q", s)
	}
}

// Action is one resolved button action. Tier is meaningful only for
// ActionChooseDifficulty.
type Action struct {
	Kind ActionKind
	Tier Difficulty
}
