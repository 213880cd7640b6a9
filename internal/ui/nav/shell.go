// Package nav holds the sidebar navigation: the open/closed shell, the
// item descriptors and active-route derivation.
package nav

import "fmt"

// Signal is the datastar signal holding the sidebar state in the browser.
const Signal = "sidebarOpen"

// State is whether the sidebar is shown.
type State int

// Sidebar states. Closed is the initial state.
const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is something that changes the sidebar state.
type Event int

// Sidebar events.
const (
	Toggle Event = iota
	SelectItem
	OverlayClick
)

func (e Event) String() string {
	switch e {
	case Toggle:
		return "toggle"
	case SelectItem:
		return "select-item"
	case OverlayClick:
		return "overlay-click"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Next returns the state after e.
func (s State) Next(e Event) State {
	if e == Toggle && s == Closed {
		return Open
	}
	return Closed
}

// Expr is the datastar expression that applies e to the Signal.
func (e Event) Expr() string {
	if e == Toggle {
		return "$" + Signal + " = !$" + Signal
	}
	return "$" + Signal + " = false"
}

// Shell tracks one sidebar instance.
type Shell struct {
	state State
}

// NewShell returns a closed shell.
func NewShell() *Shell {
	return &Shell{state: Closed}
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Dispatch applies e and returns the new state.
func (s *Shell) Dispatch(e Event) State {
	s.state = s.state.Next(e)
	return s.state
}

// IsOpen reports whether the sidebar is shown.
func (s *Shell) IsOpen() bool {
	return s.state == Open
}
