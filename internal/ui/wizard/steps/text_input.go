package steps

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// TextInputState is the local state of a TextInput.
type TextInputState struct {
	Value    string
	Complete bool   // set by enter, cleared by any other key
	Error    string // shown under the input; cleared by any other key
}

// TextInput reads a single line of text.
type TextInput[C any] struct {
	label       string
	placeholder string
	filter      framework.RuneFilter
	input       textinput.Model
	state       TextInputState
	hooks       framework.Hooks[TextInputState, C]
}

// NewTextInput creates a text input with a bar cursor.
func NewTextInput[C any](label, placeholder string) *TextInput[C] {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.SetWidth(50)

	styles := ti.Styles()
	styles.Cursor.Shape = tea.CursorBar
	styles.Cursor.Blink = true
	ti.SetStyles(styles)

	return &TextInput[C]{
		label:       label,
		placeholder: placeholder,
		input:       ti,
	}
}

// OnBefore sets the before hook.
func (s *TextInput[C]) OnBefore(fn func(ctx *C) framework.RenderGate) *TextInput[C] {
	s.hooks.SetBefore(fn)
	return s
}

// OnAfter sets the after hook.
func (s *TextInput[C]) OnAfter(fn func(state *TextInputState, ctx *C) framework.Action) *TextInput[C] {
	s.hooks.SetAfter(fn)
	return s
}

// WithFilter restricts which runes can be typed.
func (s *TextInput[C]) WithFilter(filter framework.RuneFilter) *TextInput[C] {
	s.filter = filter
	return s
}

func (s *TextInput[C]) Before(ctx *C) framework.RenderGate { return s.hooks.RunBefore(ctx) }
func (s *TextInput[C]) After(ctx *C) framework.Action      { return s.hooks.RunAfter(&s.state, ctx) }

func (s *TextInput[C]) Init() tea.Cmd {
	s.input.Focus()
	return textinput.Blink
}

func (s *TextInput[C]) Update(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "enter" {
		s.state.Complete = true
		return nil
	}

	s.state.Complete = false
	s.state.Error = ""

	if msg.Text != "" {
		text := framework.FilterRunes(msg.Text, s.filter)
		if text == "" {
			return nil
		}
		msg.Text = text
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.state.Value = s.input.Value()
	return cmd
}

func (s *TextInput[C]) View() string {
	var b strings.Builder
	b.WriteString(renderPrompt(s.label))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	if s.state.Error != "" {
		b.WriteString("\n" + framework.ErrorStyle().Render(s.state.Error))
	}
	return b.String()
}

func (s *TextInput[C]) Final() string {
	return renderFinal(s.label, strings.TrimSpace(s.state.Value))
}

func (s *TextInput[C]) Help() string {
	return "type text • enter confirm • esc clear/cancel"
}

func (s *TextInput[C]) Interactive() bool { return true }

func (s *TextInput[C]) Reset() {
	s.input.SetValue("")
	s.input.Placeholder = s.placeholder
	s.state = TextInputState{}
}

func (s *TextInput[C]) HasClearableInput() bool {
	return s.input.Value() != ""
}

func (s *TextInput[C]) ClearInput() {
	s.input.SetValue("")
	s.state = TextInputState{}
}

// State returns the local state.
func (s *TextInput[C]) State() TextInputState {
	return s.state
}
