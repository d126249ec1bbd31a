package steps

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// testCtx is the shared context used by widget tests.
type testCtx struct {
	hits int
}

var (
	_ framework.Step[testCtx] = (*TextInput[testCtx])(nil)
	_ framework.Step[testCtx] = (*SingleSelect[testCtx])(nil)
	_ framework.Step[testCtx] = (*CheckList[testCtx])(nil)
	_ framework.Step[testCtx] = (*StaticText[testCtx])(nil)
	_ framework.Clearable     = (*TextInput[testCtx])(nil)
)

// keyMsg creates a tea.KeyPressMsg from a string key.
// Supports: "enter", "up", "down", "left", "right", "esc", "space",
// "backspace" and single character keys like "a", "k", "j".
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

// typeText sends each rune of s as a key press.
func typeText(w framework.Widget, s string) {
	for _, r := range s {
		w.Update(keyMsg(string(r)))
	}
}
