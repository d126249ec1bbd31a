// Package steps provides the widgets a wizard is built from:
// TextInput, SingleSelect, CheckList and StaticText.
//
// Every widget owns its local state and a framework.Hooks. The before hook
// decides whether the widget is shown; the after hook sees the local state
// after every key event and answers with an Action.
package steps

import (
	"charm.land/lipgloss/v2"

	"github.com/dsallow/flow/internal/ui/styles"
	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

// renderPrompt renders the question line of an active widget.
func renderPrompt(label string) string {
	return framework.QuestionMarkStyle().Render(styles.QuestionSymbol()) + " " +
		framework.PromptStyle().Render(label)
}

// renderFinal renders the frozen "✓ label value" line.
func renderFinal(label, value string) string {
	line := framework.CheckStyle().Render(styles.CheckSymbol()) + " " + label
	if value != "" {
		line += " " + framework.AnswerStyle().Render(value)
	}
	return line
}

// renderCancelled renders the frozen line of a widget that ended the wizard.
func renderCancelled(label, value string) string {
	line := framework.CrossStyle().Render(styles.CrossSymbol()) + " " + label
	if value != "" {
		line += " " + framework.OptionMutedStyle().Render(value)
	}
	return line
}

// cursorLine renders one list row with or without the cursor.
func cursorLine(text string, active bool, style lipgloss.Style) string {
	if active {
		return framework.OptionSelectedStyle().Render(styles.CursorSymbol()+" ") + framework.OptionSelectedStyle().Render(text)
	}
	return "  " + style.Render(text)
}
