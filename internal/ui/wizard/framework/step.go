package framework

import tea "charm.land/bubbletea/v2"

// Action is what an after hook asks the sequencer to do next.
type Action int

const (
	// Advance freezes the current widget and activates the next one.
	Advance Action = iota
	// Retry keeps the current widget active.
	Retry
	// Cancel stops the wizard; no later widget runs.
	Cancel
)

func (a Action) String() string {
	switch a {
	case Advance:
		return "advance"
	case Retry:
		return "retry"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// RenderGate is the answer of a before hook.
type RenderGate int

const (
	// Show renders the widget.
	Show RenderGate = iota
	// Skip passes over the widget without rendering it or running its after hook.
	Skip
)

func (g RenderGate) String() string {
	if g == Skip {
		return "skip"
	}
	return "show"
}

// Widget is a renderable, stateful unit of a wizard.
type Widget interface {
	// Init returns an initial command when the widget becomes active.
	Init() tea.Cmd

	// Update consumes exactly one key event.
	Update(msg tea.KeyPressMsg) tea.Cmd

	// View renders the active frame.
	View() string

	// Final renders the frozen form kept on screen once the widget is left.
	Final() string

	// Help returns the key hints shown under the active widget.
	Help() string

	// Interactive is false for widgets that need no input; their after
	// hook runs as soon as they are shown.
	Interactive() bool

	// Reset restores the pristine local state.
	Reset()
}

// Step is a widget bound to the lifecycle hooks of a wizard over C.
type Step[C any] interface {
	Widget
	Before(ctx *C) RenderGate
	After(ctx *C) Action
}

// Clearable is implemented by widgets holding text input.
// Used to determine ESC behavior: clear input first, then cancel.
type Clearable interface {
	HasClearableInput() bool
	ClearInput()
}
