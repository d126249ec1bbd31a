package framework

import (
	"charm.land/lipgloss/v2"

	"github.com/dsallow/flow/internal/ui/styles"
)

// Style functions return styles based on the current theme.
// They are functions instead of variables to pick up theme changes.

// BorderStyle wraps the entire wizard (left border only)
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Primary).
		PaddingLeft(2).
		PaddingRight(2)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// PromptStyle for the question of the active widget
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Normal)
}

// QuestionMarkStyle for the marker in front of an active prompt
func QuestionMarkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

// CheckStyle for the checkmark on frozen widgets
func CheckStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Success)
}

// CrossStyle for the marker of a cancelled widget
func CrossStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Error)
}

// AnswerStyle for the value shown next to a frozen prompt
func AnswerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Accent)
}

// OptionSelectedStyle for the cursor-highlighted option
func OptionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

func OptionNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}

// OptionMutedStyle for sentinel options and completed items
func OptionMutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// HelpStyle for help text at the bottom
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginTop(1)
}

// TextStyle for static text blocks
func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Info)
}

// ErrorStyle for validation error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Error)
}
