package steps

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsallow/flow/internal/ui/styles"
	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// CheckItem is one toggleable entry of a CheckList.
type CheckItem struct {
	Label   string
	Checked bool
}

// CheckListState is the local state of a CheckList.
type CheckListState struct {
	Items     []CheckItem
	Offset    int
	Confirmed bool // set by enter; afterwards all keys are ignored
}

// Checked returns how many items are checked.
func (s *CheckListState) Checked() int {
	n := 0
	for _, it := range s.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// CheckList toggles a list of items and confirms them with enter.
type CheckList[C any] struct {
	label   string
	initial []CheckItem
	state   CheckListState
	hooks   framework.Hooks[CheckListState, C]
}

// NewCheckList creates a checklist starting from items.
func NewCheckList[C any](label string, items []CheckItem) *CheckList[C] {
	s := &CheckList[C]{label: label, initial: items}
	s.Reset()
	return s
}

// OnBefore sets the before hook.
func (s *CheckList[C]) OnBefore(fn func(ctx *C) framework.RenderGate) *CheckList[C] {
	s.hooks.SetBefore(fn)
	return s
}

// OnAfter sets the after hook.
func (s *CheckList[C]) OnAfter(fn func(state *CheckListState, ctx *C) framework.Action) *CheckList[C] {
	s.hooks.SetAfter(fn)
	return s
}

func (s *CheckList[C]) Before(ctx *C) framework.RenderGate { return s.hooks.RunBefore(ctx) }
func (s *CheckList[C]) After(ctx *C) framework.Action      { return s.hooks.RunAfter(&s.state, ctx) }

func (s *CheckList[C]) Init() tea.Cmd { return nil }

func (s *CheckList[C]) Update(msg tea.KeyPressMsg) tea.Cmd {
	n := len(s.state.Items)
	if s.state.Confirmed {
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if n > 0 {
			s.state.Offset = (s.state.Offset - 1 + n) % n
		}
	case "down", "j":
		if n > 0 {
			s.state.Offset = (s.state.Offset + 1) % n
		}
	case "left", "right", "space", " ":
		if n > 0 {
			item := &s.state.Items[s.state.Offset]
			item.Checked = !item.Checked
		}
	case "enter":
		s.state.Confirmed = true
	}
	return nil
}

func (s *CheckList[C]) View() string {
	var b strings.Builder
	b.WriteString(renderPrompt(s.label))
	for i, item := range s.state.Items {
		b.WriteString("\n")
		b.WriteString(cursorLine(checkRow(item), i == s.state.Offset && !s.state.Confirmed, itemStyle(item)))
	}
	return b.String()
}

func (s *CheckList[C]) Final() string {
	var b strings.Builder
	b.WriteString(renderFinal(s.label, ""))
	for _, item := range s.state.Items {
		b.WriteString("\n  ")
		b.WriteString(itemStyle(item).Render(checkRow(item)))
	}
	return b.String()
}

func (s *CheckList[C]) Help() string {
	return "↑/↓ navigate • ←/→/space toggle • enter confirm • esc cancel"
}

func (s *CheckList[C]) Interactive() bool { return true }

func (s *CheckList[C]) Reset() {
	s.state = CheckListState{Items: append([]CheckItem(nil), s.initial...)}
}

// State returns the local state.
func (s *CheckList[C]) State() CheckListState {
	return s.state
}

func checkRow(item CheckItem) string {
	return styles.CheckboxSymbol(item.Checked) + " " + item.Label
}

func itemStyle(item CheckItem) lipgloss.Style {
	if item.Checked {
		return framework.OptionMutedStyle()
	}
	return framework.OptionNormalStyle()
}
