package steps

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// TextState is the local state of a StaticText.
type TextState struct {
	Text string
}

// Appendf adds a line to the text, e.g. progress or error messages.
func (s *TextState) Appendf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if s.Text == "" {
		s.Text = line
		return
	}
	s.Text += "\n" + line
}

// StaticText shows a block of text and needs no input.
// Its after hook runs as soon as it is shown.
type StaticText[C any] struct {
	initial string
	state   TextState
	hooks   framework.Hooks[TextState, C]
}

// NewStaticText creates a text block starting with text.
func NewStaticText[C any](text string) *StaticText[C] {
	s := &StaticText[C]{initial: text}
	s.Reset()
	return s
}

// OnBefore sets the before hook.
func (s *StaticText[C]) OnBefore(fn func(ctx *C) framework.RenderGate) *StaticText[C] {
	s.hooks.SetBefore(fn)
	return s
}

// OnAfter sets the after hook.
func (s *StaticText[C]) OnAfter(fn func(state *TextState, ctx *C) framework.Action) *StaticText[C] {
	s.hooks.SetAfter(fn)
	return s
}

func (s *StaticText[C]) Before(ctx *C) framework.RenderGate { return s.hooks.RunBefore(ctx) }
func (s *StaticText[C]) After(ctx *C) framework.Action      { return s.hooks.RunAfter(&s.state, ctx) }

func (s *StaticText[C]) Init() tea.Cmd { return nil }

func (s *StaticText[C]) Update(tea.KeyPressMsg) tea.Cmd { return nil }

func (s *StaticText[C]) View() string {
	lines := s.Lines()
	for i, line := range lines {
		lines[i] = framework.TextStyle().Render(line)
	}
	return strings.Join(lines, "\n")
}

func (s *StaticText[C]) Final() string {
	return s.View()
}

func (s *StaticText[C]) Help() string { return "" }

func (s *StaticText[C]) Interactive() bool { return false }

func (s *StaticText[C]) Reset() {
	s.state = TextState{Text: s.initial}
}

// State returns the local state.
func (s *StaticText[C]) State() TextState {
	return s.state
}

// Lines returns the text split into lines.
func (s *StaticText[C]) Lines() []string {
	return strings.Split(s.state.Text, "\n")
}
