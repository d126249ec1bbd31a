package steps

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// DefaultSentinel is the label of the option appended to every list
// unless WithoutSentinel is used. Choosing it means "none of these".
const DefaultSentinel = "None"

// SelectState is the local state of a SingleSelect.
type SelectState struct {
	Offset   int    // cursor position
	Selected bool   // set by enter
	Current  string // option under the cursor when enter was pressed
	Len      int    // number of options, sentinel included

	sentinel bool
}

// IsSentinel reports whether the sentinel option was selected.
func (s *SelectState) IsSentinel() bool {
	return s.Selected && s.sentinel && s.Offset == s.Len-1
}

// SingleSelect picks one option from a list.
type SingleSelect[C any] struct {
	label      string
	options    []string
	sentinel   string
	finalLabel string
	state      SelectState
	hooks      framework.Hooks[SelectState, C]
}

// NewSingleSelect creates a list over options with the "None" sentinel appended.
func NewSingleSelect[C any](label string, options []string) *SingleSelect[C] {
	s := &SingleSelect[C]{
		label:    label,
		options:  options,
		sentinel: DefaultSentinel,
	}
	s.Reset()
	return s
}

// WithSentinel changes the sentinel label.
func (s *SingleSelect[C]) WithSentinel(label string) *SingleSelect[C] {
	s.sentinel = label
	s.Reset()
	return s
}

// WithoutSentinel removes the sentinel option, e.g. for Yes/No questions.
func (s *SingleSelect[C]) WithoutSentinel() *SingleSelect[C] {
	s.sentinel = ""
	s.Reset()
	return s
}

// WithFinalLabel sets the label of the frozen view; defaults to the prompt.
func (s *SingleSelect[C]) WithFinalLabel(label string) *SingleSelect[C] {
	s.finalLabel = label
	return s
}

// OnBefore sets the before hook.
func (s *SingleSelect[C]) OnBefore(fn func(ctx *C) framework.RenderGate) *SingleSelect[C] {
	s.hooks.SetBefore(fn)
	return s
}

// OnAfter sets the after hook.
func (s *SingleSelect[C]) OnAfter(fn func(state *SelectState, ctx *C) framework.Action) *SingleSelect[C] {
	s.hooks.SetAfter(fn)
	return s
}

func (s *SingleSelect[C]) Before(ctx *C) framework.RenderGate { return s.hooks.RunBefore(ctx) }
func (s *SingleSelect[C]) After(ctx *C) framework.Action      { return s.hooks.RunAfter(&s.state, ctx) }

func (s *SingleSelect[C]) Init() tea.Cmd { return nil }

// items returns the options as displayed, sentinel included.
func (s *SingleSelect[C]) items() []string {
	if s.sentinel == "" {
		return s.options
	}
	return append(s.options[:len(s.options):len(s.options)], s.sentinel)
}

func (s *SingleSelect[C]) Update(msg tea.KeyPressMsg) tea.Cmd {
	n := s.state.Len
	if n == 0 {
		return nil
	}

	switch msg.String() {
	case "up", "k":
		s.state.Offset = (s.state.Offset - 1 + n) % n
		s.state.Selected = false
	case "down", "j":
		s.state.Offset = (s.state.Offset + 1) % n
		s.state.Selected = false
	case "enter":
		s.state.Selected = true
		s.state.Current = s.items()[s.state.Offset]
	}
	return nil
}

func (s *SingleSelect[C]) View() string {
	var b strings.Builder
	b.WriteString(renderPrompt(s.label))

	items := s.items()
	for i, item := range items {
		style := framework.OptionNormalStyle()
		if s.sentinel != "" && i == len(items)-1 {
			style = framework.OptionMutedStyle()
		}
		b.WriteString("\n")
		b.WriteString(cursorLine(item, i == s.state.Offset, style))
	}
	return b.String()
}

func (s *SingleSelect[C]) Final() string {
	label := s.label
	if s.finalLabel != "" {
		label = s.finalLabel
	}
	if s.state.IsSentinel() {
		return renderCancelled(label, s.state.Current)
	}
	return renderFinal(label, s.state.Current)
}

func (s *SingleSelect[C]) Help() string {
	return "↑/↓ navigate • enter select • esc cancel"
}

func (s *SingleSelect[C]) Interactive() bool { return true }

func (s *SingleSelect[C]) Reset() {
	s.state = SelectState{
		Len:      len(s.items()),
		sentinel: s.sentinel != "",
	}
}

// State returns the local state.
func (s *SingleSelect[C]) State() SelectState {
	return s.state
}
