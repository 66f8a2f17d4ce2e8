package modal

import "fmt"

// State is the visibility state of the dialog.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Action is a user interaction the dialog reacts to.
type Action int

const (
	ActionTrigger Action = iota + 1
	ActionCloseControl
	ActionOutsideClick
	ActionCancelKey
)

var actionNames = map[Action]string{
	ActionTrigger:      "open",
	ActionCloseControl: "close",
	ActionOutsideClick: "dismiss",
	ActionCancelKey:    "cancel",
}

// String returns the name used in the ?assistant= query parameter.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction parses an action name as produced by Action.String.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Next returns the state that follows s on action a. The boolean is false
// when the pair is not a transition and s is returned unchanged.
func Next(s State, a Action) (State, bool) {
	switch {
	case s == Closed && a == ActionTrigger:
		return Open, true
	case s == Open && (a == ActionCloseControl || a == ActionOutsideClick || a == ActionCancelKey):
		return Closed, true
	default:
		return s, false
	}
}
