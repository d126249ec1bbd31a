// Package static provides non-interactive terminal output components.
//
// This package renders formatted output that needs no user interaction,
// such as the todo listing.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/dsallow/flow/internal/todo"
	"github.com/dsallow/flow/internal/ui/styles"
)

// TodoHeaders are the columns of the todo listing.
var TodoHeaders = []string{"Icon", "Todo", "Status"}

// RenderTable creates a formatted table with proper column alignment.
// No borders are rendered. muted marks body rows rendered with
// styles.CompletedStyle; it may be nil.
func RenderTable(headers []string, rows [][]string, muted func(row int) bool) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return base.Bold(true)
			case muted != nil && muted(row):
				return styles.CompletedStyle.PaddingRight(2)
			}
			return base
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// RenderTodos renders the todo listing with icon, description and status.
// Completed todos are muted.
func RenderTodos(todos []todo.Todo) string {
	rows := make([][]string, len(todos))
	for i, td := range todos {
		rows[i] = []string{td.Status.Icon(), td.Description, td.Status.String()}
	}
	return RenderTable(TodoHeaders, rows, func(row int) bool {
		return row >= 0 && row < len(todos) && todos[row].IsCompleted()
	})
}
