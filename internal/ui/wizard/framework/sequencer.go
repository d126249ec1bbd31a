// Package framework provides the core wizard orchestration system.
//
// A wizard is a chain of widgets run one at a time. Each widget has a
// before hook deciding whether it is shown and an after hook deciding,
// after every key event, whether the wizard advances, stays on the widget
// or is cancelled. All widgets share a single context value that only
// after hooks mutate.
package framework

import (
	"context"
	"errors"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Outcome is the state of a wizard run.
type Outcome int

const (
	// Running means a widget is still waiting for input.
	Running Outcome = iota
	// Completed means every widget advanced or was skipped.
	Completed
	// Cancelled means a hook or the user stopped the wizard.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// ErrNoSteps is returned by Run for an empty wizard.
var ErrNoSteps = errors.New("wizard has no steps")

// Sequencer runs a chain of steps sharing a context of type C.
// It is a bubbletea model.
type Sequencer[C any] struct {
	title      string
	steps      []Step[C]
	ctx        *C
	index      int
	activated  int // index of the widget last reset, -1 before the first
	outcome    Outcome
	transcript []string
	width      int
}

// NewSequencer creates a wizard over ctx.
func NewSequencer[C any](title string, ctx *C) *Sequencer[C] {
	return &Sequencer[C]{
		title:     title,
		ctx:       ctx,
		activated: -1,
		width:     80,
	}
}

// Add appends a step.
func (s *Sequencer[C]) Add(step Step[C]) *Sequencer[C] {
	s.steps = append(s.steps, step)
	return s
}

// Outcome returns how the run ended, or Running while in progress.
func (s *Sequencer[C]) Outcome() Outcome {
	return s.outcome
}

// IsCancelled returns true if the wizard was cancelled.
func (s *Sequencer[C]) IsCancelled() bool {
	return s.outcome == Cancelled
}

// Context returns the shared context.
func (s *Sequencer[C]) Context() *C {
	return s.ctx
}

// CurrentIndex returns the index of the active step.
// It equals the number of steps once the run completed.
func (s *Sequencer[C]) CurrentIndex() int {
	return s.index
}

// Transcript returns the frozen views of the widgets left so far.
func (s *Sequencer[C]) Transcript() []string {
	return s.transcript
}

// PlainTranscript returns the transcript without styling.
func (s *Sequencer[C]) PlainTranscript() []string {
	plain := make([]string, len(s.transcript))
	for i, line := range s.transcript {
		plain[i] = ansi.Strip(line)
	}
	return plain
}

// Run executes the wizard and returns when complete or cancelled.
// The TUI renders to stderr so stdout remains available for piping.
// Cancelling ctx kills the program and its error is returned.
func (s *Sequencer[C]) Run(ctx context.Context) error {
	if len(s.steps) == 0 {
		return ErrNoSteps
	}

	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(s,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// BubbleTea Model interface

func (s *Sequencer[C]) Init() tea.Cmd {
	return s.settle()
}

func (s *Sequencer[C]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyPressMsg:
		if s.outcome != Running {
			return s, tea.Quit
		}
		step := s.steps[s.index]

		switch msg.String() {
		case "ctrl+c":
			s.outcome = Cancelled
			return s, tea.Quit
		case "esc":
			if c, ok := step.(Clearable); ok && c.HasClearableInput() {
				c.ClearInput()
				return s, nil
			}
			s.outcome = Cancelled
			return s, tea.Quit
		}

		cmd := step.Update(msg)
		s.apply(step.After(s.ctx))
		return s, tea.Batch(cmd, s.settle())
	}

	return s, nil
}

func (s *Sequencer[C]) View() tea.View {
	var b strings.Builder

	b.WriteString(TitleStyle().Render(s.title))
	b.WriteString("\n")

	for _, line := range s.transcript {
		b.WriteString("\n")
		b.WriteString(line)
	}

	if s.outcome == Running && s.index < len(s.steps) && s.activated == s.index {
		step := s.steps[s.index]
		b.WriteString("\n")
		b.WriteString(step.View())
		if help := step.Help(); help != "" {
			b.WriteString("\n")
			b.WriteString(HelpStyle().Render(help))
		}
	}

	return tea.NewView(BorderStyle().Render(b.String()) + "\n")
}

// settle moves forward until an interactive widget waits for input or the
// run ends. Skipped widgets are never activated.
func (s *Sequencer[C]) settle() tea.Cmd {
	var cmds []tea.Cmd

	for s.outcome == Running {
		if s.index >= len(s.steps) {
			s.outcome = Completed
			break
		}

		step := s.steps[s.index]
		if step.Before(s.ctx) == Skip {
			s.index++
			continue
		}

		if s.activated != s.index {
			s.activated = s.index
			step.Reset()
			cmds = append(cmds, step.Init())
		}

		if step.Interactive() {
			return tea.Batch(cmds...)
		}

		// A non-interactive widget would never see another event.
		action := step.After(s.ctx)
		if action == Retry {
			action = Advance
		}
		s.apply(action)
	}

	return tea.Batch(append(cmds, tea.Quit)...)
}

func (s *Sequencer[C]) apply(action Action) {
	switch action {
	case Advance:
		s.transcript = append(s.transcript, s.steps[s.index].Final())
		s.index++
	case Cancel:
		s.transcript = append(s.transcript, s.steps[s.index].Final())
		s.outcome = Cancelled
	case Retry:
	}
}
