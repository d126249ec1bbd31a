package main

import (
	"github.com/spf13/cobra"

	"github.com/dsallow/flow/internal/output"
	"github.com/dsallow/flow/internal/ui/static"
	"github.com/dsallow/flow/internal/ui/wizard/flows"
)

const noTodosMessage = "You don't have any todos yet."

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Short:   "Manage your todos",
		GroupID: GroupTools,
		Long: `Manage a plain-text todo list.

Todos are stored one per line as description:status, where status is
0 (not started) or 1 (completed).`,
		Example: `  flow todo list      # Show all todos
  flow todo create    # Add a todo
  flow todo check     # Toggle todos and clean up completed ones`,
	}

	cmd.AddCommand(newTodoListCmd())
	cmd.AddCommand(newTodoCreateCmd())
	cmd.AddCommand(newTodoCheckCmd())

	return cmd
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Show all todos",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := todoStore().List()
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			if len(todos) == 0 {
				out.Println(noTodosMessage)
				return nil
			}
			out.Print(static.RenderTodos(todos))
			return nil
		},
	}
}

func newTodoCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   "Add a todo",
		Aliases: []string{"add"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}

			res, err := flows.CreateTodoInteractive(cmd.Context(), flows.CreateTodoParams{Store: todoStore()})
			if err != nil {
				return err
			}
			return res.Err
		},
	}
}

func newTodoCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Toggle todos and delete completed ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := todoStore()
			todos, err := store.List()
			if err != nil {
				return err
			}
			if len(todos) == 0 {
				output.FromContext(cmd.Context()).Println(noTodosMessage)
				return nil
			}

			if err := requireTerminal(); err != nil {
				return err
			}

			res, err := flows.CheckTodosInteractive(cmd.Context(), flows.CheckTodosParams{
				Store: store,
				Todos: todos,
			})
			if err != nil {
				return err
			}
			return res.Err
		},
	}
}
