// Package flows provides command-specific wizard implementations.
//
// Each flow is a complete interactive wizard for a specific flow command.
// Flows use the framework and steps packages to build multi-step
// interactive experiences. Every flow has an unexported builder returning
// the sequencer, so tests can drive it with key events, and an exported
// Interactive function running it on the terminal.
//
// Available flows:
//   - [NewProjectInteractive]: create a folder and save it as a project
//   - [OpenProjectInteractive]: open a saved project in the editor
//   - [RemoveProjectInteractive]: forget a project, optionally deleting it
//   - [CreateTodoInteractive]: add a todo
//   - [CheckTodosInteractive]: toggle todos and clean up completed ones
//
// Hooks never recover from I/O errors: they report the error in the
// active static text and cancel the wizard. The error is returned in the
// flow result.
package flows

import "github.com/dsallow/flow/internal/ui/wizard/framework"

// Result reports how a flow ended.
type Result struct {
	Cancelled bool  // the user or a hook stopped the wizard
	Err       error // failure reported by a hook; implies Cancelled
}

// Failed returns true if a hook reported an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// yesNo are the options of confirmation lists.
var yesNo = []string{"Yes", "No"}

func resultOf[C any](seq *framework.Sequencer[C], hookErr error) Result {
	return Result{Cancelled: seq.IsCancelled(), Err: hookErr}
}
