package flows

import (
	"context"
	"strings"

	"github.com/dsallow/flow/internal/todo"
	"github.com/dsallow/flow/internal/ui/wizard/framework"
	"github.com/dsallow/flow/internal/ui/wizard/steps"
)

// TodoStore is the part of the todo repository the todo flows use.
type TodoStore interface {
	Append(description string, status todo.Status) error
	Rewrite(todos []todo.Todo) error
}

// CreateTodoParams contains parameters for the create todo wizard.
type CreateTodoParams struct {
	Store TodoStore
}

// CreateTodoResult holds the outcome of the create todo wizard.
type CreateTodoResult struct {
	Result
	Todo todo.Todo
}

type createTodoContext struct {
	CreateTodoParams
	Description string
	Err         error
}

func createTodoWizard(params CreateTodoParams) *framework.Sequencer[createTodoContext] {
	ctx := &createTodoContext{CreateTodoParams: params}

	inputStep := steps.NewTextInput[createTodoContext]("Type the todo:", "Buy milk").
		OnAfter(func(state *steps.TextInputState, c *createTodoContext) framework.Action {
			if !state.Complete {
				return framework.Retry
			}
			desc := strings.TrimSpace(state.Value)
			if err := todo.ValidateDescription(desc); err != nil {
				state.Error = err.Error()
				return framework.Retry
			}
			c.Description = desc
			return framework.Advance
		})

	addStep := steps.NewStaticText[createTodoContext]("Adding todo...").
		OnAfter(func(state *steps.TextState, c *createTodoContext) framework.Action {
			if err := c.Store.Append(c.Description, todo.NotStarted); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			state.Appendf("Todo added correctly!")
			return framework.Advance
		})

	return framework.NewSequencer("New todo", ctx).
		Add(inputStep).
		Add(addStep)
}

// CreateTodoInteractive runs the create todo wizard.
func CreateTodoInteractive(ctx context.Context, params CreateTodoParams) (CreateTodoResult, error) {
	seq := createTodoWizard(params)
	if err := seq.Run(ctx); err != nil {
		return CreateTodoResult{}, err
	}
	return createTodoResult(seq), nil
}

func createTodoResult(seq *framework.Sequencer[createTodoContext]) CreateTodoResult {
	c := seq.Context()
	res := CreateTodoResult{Result: resultOf(seq, c.Err)}
	if !res.Cancelled {
		res.Todo = todo.New(c.Description)
	}
	return res
}

// CheckTodosParams contains parameters for the check todos wizard.
type CheckTodosParams struct {
	Store TodoStore
	Todos []todo.Todo
}

// CheckTodosResult holds the outcome of the check todos wizard.
type CheckTodosResult struct {
	Result
	Todos   []todo.Todo // the list as saved
	Deleted int         // completed todos removed
}

type checkTodosContext struct {
	CheckTodosParams
	DeleteCompleted bool
	Deleted         int
	Err             error
}

func checkTodosWizard(params CheckTodosParams) *framework.Sequencer[checkTodosContext] {
	ctx := &checkTodosContext{CheckTodosParams: params}
	ctx.Todos = append([]todo.Todo(nil), params.Todos...)

	items := make([]steps.CheckItem, len(params.Todos))
	for i, td := range params.Todos {
		items[i] = steps.CheckItem{Label: td.Description, Checked: td.IsCompleted()}
	}

	checkStep := steps.NewCheckList[checkTodosContext]("Change the todos:", items).
		OnAfter(func(state *steps.CheckListState, c *checkTodosContext) framework.Action {
			if !state.Confirmed {
				return framework.Retry
			}
			for i, item := range state.Items {
				if item.Checked != c.Todos[i].IsCompleted() {
					c.Todos[i].Status = c.Todos[i].Status.Toggle()
				}
			}
			return framework.Advance
		})

	saveStep := steps.NewStaticText[checkTodosContext]("Saving...").
		OnAfter(func(state *steps.TextState, c *checkTodosContext) framework.Action {
			if err := c.Store.Rewrite(c.Todos); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			state.Appendf("Todos saved!")
			return framework.Advance
		})

	deleteStep := steps.NewSingleSelect[checkTodosContext]("Delete completed todos?", yesNo).
		WithoutSentinel().
		OnBefore(func(c *checkTodosContext) framework.RenderGate {
			if todo.CountCompleted(c.Todos) == 0 {
				return framework.Skip
			}
			return framework.Show
		}).
		OnAfter(func(state *steps.SelectState, c *checkTodosContext) framework.Action {
			if !state.Selected {
				return framework.Retry
			}
			c.DeleteCompleted = state.Offset == 0
			return framework.Advance
		})

	cleanStep := steps.NewStaticText[checkTodosContext]("Cleaning...").
		OnBefore(func(c *checkTodosContext) framework.RenderGate {
			if !c.DeleteCompleted {
				return framework.Skip
			}
			return framework.Show
		}).
		OnAfter(func(state *steps.TextState, c *checkTodosContext) framework.Action {
			kept := todo.WithoutCompleted(c.Todos)
			if err := c.Store.Rewrite(kept); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			c.Deleted = len(c.Todos) - len(kept)
			c.Todos = kept
			state.Appendf("Removed %d completed todos.", c.Deleted)
			return framework.Advance
		})

	return framework.NewSequencer("Check todos", ctx).
		Add(checkStep).
		Add(saveStep).
		Add(deleteStep).
		Add(cleanStep)
}

// CheckTodosInteractive runs the check todos wizard.
func CheckTodosInteractive(ctx context.Context, params CheckTodosParams) (CheckTodosResult, error) {
	if len(params.Todos) == 0 {
		return CheckTodosResult{Result: Result{Cancelled: true}}, nil
	}

	seq := checkTodosWizard(params)
	if err := seq.Run(ctx); err != nil {
		return CheckTodosResult{}, err
	}
	return checkTodosResult(seq), nil
}

func checkTodosResult(seq *framework.Sequencer[checkTodosContext]) CheckTodosResult {
	c := seq.Context()
	return CheckTodosResult{Result: resultOf(seq, c.Err), Todos: c.Todos, Deleted: c.Deleted}
}
