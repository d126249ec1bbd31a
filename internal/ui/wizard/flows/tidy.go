package flows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsallow/flow/internal/editor"
	"github.com/dsallow/flow/internal/projects"
	"github.com/dsallow/flow/internal/ui/wizard/framework"
	"github.com/dsallow/flow/internal/ui/wizard/steps"
)

// ProjectStore is the part of the project repository the tidy flows use.
type ProjectStore interface {
	List() ([]string, error)
	UpsertFront(path string) error
	Remove(path string) error
}

var (
	errEmptyName     = errors.New("name cannot be empty")
	errNameSeparator = errors.New("name cannot contain path separators")
	errReservedName  = errors.New("name cannot be . or ..")
)

// ValidateFolderName checks a single folder name typed by the user.
func ValidateFolderName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errEmptyName
	case strings.ContainsAny(name, `/\`):
		return errNameSeparator
	case name == "." || name == "..":
		return errReservedName
	}
	return nil
}

// NewProjectParams contains parameters for the new project wizard.
type NewProjectParams struct {
	Store ProjectStore
	Dir   string // parent folder, usually the working directory
}

// NewProjectResult holds the outcome of the new project wizard.
type NewProjectResult struct {
	Result
	Path    string // saved project path
	Existed bool   // the folder was already there
}

type newProjectContext struct {
	NewProjectParams
	Name    string
	Path    string
	Existed bool
	Err     error
}

func newProjectWizard(params NewProjectParams) *framework.Sequencer[newProjectContext] {
	ctx := &newProjectContext{NewProjectParams: params}

	nameStep := steps.NewTextInput[newProjectContext]("Name of the new project:", "my-project").
		OnAfter(func(state *steps.TextInputState, c *newProjectContext) framework.Action {
			if !state.Complete {
				return framework.Retry
			}
			name := strings.TrimSpace(state.Value)
			if err := ValidateFolderName(name); err != nil {
				state.Error = err.Error()
				return framework.Retry
			}
			c.Name = name
			return framework.Advance
		})

	createStep := steps.NewStaticText[newProjectContext]("Creating...").
		OnAfter(func(state *steps.TextState, c *newProjectContext) framework.Action {
			path := filepath.Join(c.Dir, c.Name)

			err := os.Mkdir(path, 0o755)
			switch {
			case errors.Is(err, fs.ErrExist):
				if !projects.IsDir(path) {
					c.Err = fmt.Errorf("%s exists and is not a folder", path)
					state.Appendf("Failed: %v", c.Err)
					return framework.Cancel
				}
				c.Existed = true
				state.Appendf("The folder already exists, saving it anyway.")
			case err != nil:
				c.Err = fmt.Errorf("create folder: %w", err)
				state.Appendf("Failed: %v", c.Err)
				return framework.Cancel
			}

			canonical, err := projects.Canonicalize(path)
			if err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			if err := c.Store.UpsertFront(canonical); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}

			c.Path = canonical
			state.Appendf("Project %s created!", canonical)
			return framework.Advance
		})

	return framework.NewSequencer("New project", ctx).
		Add(nameStep).
		Add(createStep)
}

// NewProjectInteractive runs the new project wizard.
func NewProjectInteractive(ctx context.Context, params NewProjectParams) (NewProjectResult, error) {
	seq := newProjectWizard(params)
	if err := seq.Run(ctx); err != nil {
		return NewProjectResult{}, err
	}
	return newProjectResult(seq), nil
}

func newProjectResult(seq *framework.Sequencer[newProjectContext]) NewProjectResult {
	c := seq.Context()
	return NewProjectResult{Result: resultOf(seq, c.Err), Path: c.Path, Existed: c.Existed}
}

// OpenProjectParams contains parameters for the open project wizard.
type OpenProjectParams struct {
	Store    ProjectStore
	Opener   editor.Opener
	Projects []string // candidates, best match first
}

// OpenProjectResult holds the outcome of the open project wizard.
type OpenProjectResult struct {
	Result
	Path string
}

type openProjectContext struct {
	OpenProjectParams
	Selected string
	Err      error
}

func openProjectWizard(params OpenProjectParams) *framework.Sequencer[openProjectContext] {
	ctx := &openProjectContext{OpenProjectParams: params}

	selectStep := steps.NewSingleSelect[openProjectContext]("Select the project to open:", params.Projects).
		OnAfter(func(state *steps.SelectState, c *openProjectContext) framework.Action {
			if !state.Selected {
				return framework.Retry
			}
			if state.IsSentinel() {
				return framework.Cancel
			}
			c.Selected = state.Current
			return framework.Advance
		})

	openStep := steps.NewStaticText[openProjectContext]("Opening...").
		OnAfter(func(state *steps.TextState, c *openProjectContext) framework.Action {
			if err := c.Opener.Open(c.Selected); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			if err := c.Store.UpsertFront(c.Selected); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			state.Appendf("Opened!")
			return framework.Advance
		})

	return framework.NewSequencer("Open project", ctx).
		Add(selectStep).
		Add(openStep)
}

// OpenProjectInteractive runs the open project wizard.
func OpenProjectInteractive(ctx context.Context, params OpenProjectParams) (OpenProjectResult, error) {
	if len(params.Projects) == 0 {
		return OpenProjectResult{Result: Result{Cancelled: true}}, nil
	}

	seq := openProjectWizard(params)
	if err := seq.Run(ctx); err != nil {
		return OpenProjectResult{}, err
	}
	return openProjectResult(seq), nil
}

func openProjectResult(seq *framework.Sequencer[openProjectContext]) OpenProjectResult {
	c := seq.Context()
	return OpenProjectResult{Result: resultOf(seq, c.Err), Path: c.Selected}
}

// RemoveProjectParams contains parameters for the remove project wizard.
type RemoveProjectParams struct {
	Store    ProjectStore
	Projects []string
}

// RemoveProjectResult holds the outcome of the remove project wizard.
type RemoveProjectResult struct {
	Result
	Path          string
	FolderDeleted bool
}

type removeProjectContext struct {
	RemoveProjectParams
	Selected      string
	DeleteFolder  bool
	FolderDeleted bool
	Err           error
}

func removeProjectWizard(params RemoveProjectParams) *framework.Sequencer[removeProjectContext] {
	ctx := &removeProjectContext{RemoveProjectParams: params}

	selectStep := steps.NewSingleSelect[removeProjectContext]("Select the project to delete:", params.Projects).
		OnAfter(func(state *steps.SelectState, c *removeProjectContext) framework.Action {
			if !state.Selected {
				return framework.Retry
			}
			if state.IsSentinel() {
				return framework.Cancel
			}
			c.Selected = state.Current
			return framework.Advance
		})

	folderStep := steps.NewSingleSelect[removeProjectContext]("Also delete the folder?", yesNo).
		WithoutSentinel().
		OnBefore(func(c *removeProjectContext) framework.RenderGate {
			if c.Selected == "" {
				return framework.Skip
			}
			return framework.Show
		}).
		OnAfter(func(state *steps.SelectState, c *removeProjectContext) framework.Action {
			if !state.Selected {
				return framework.Retry
			}
			c.DeleteFolder = state.Offset == 0
			return framework.Advance
		})

	removeStep := steps.NewStaticText[removeProjectContext]("Removing...").
		OnAfter(func(state *steps.TextState, c *removeProjectContext) framework.Action {
			if err := c.Store.Remove(c.Selected); err != nil {
				c.Err = err
				state.Appendf("Failed: %v", err)
				return framework.Cancel
			}
			state.Appendf("Project removed!")

			if !c.DeleteFolder {
				return framework.Advance
			}
			if !projects.IsDir(c.Selected) {
				state.Appendf("The path is not a folder, nothing deleted.")
				return framework.Advance
			}
			if err := os.RemoveAll(c.Selected); err != nil {
				c.Err = fmt.Errorf("delete folder: %w", err)
				state.Appendf("Failed: %v", c.Err)
				return framework.Cancel
			}
			c.FolderDeleted = true
			state.Appendf("Folder removed!")
			return framework.Advance
		})

	return framework.NewSequencer("Remove project", ctx).
		Add(selectStep).
		Add(folderStep).
		Add(removeStep)
}

// RemoveProjectInteractive runs the remove project wizard.
func RemoveProjectInteractive(ctx context.Context, params RemoveProjectParams) (RemoveProjectResult, error) {
	if len(params.Projects) == 0 {
		return RemoveProjectResult{Result: Result{Cancelled: true}}, nil
	}

	seq := removeProjectWizard(params)
	if err := seq.Run(ctx); err != nil {
		return RemoveProjectResult{}, err
	}
	return removeProjectResult(seq), nil
}

func removeProjectResult(seq *framework.Sequencer[removeProjectContext]) RemoveProjectResult {
	c := seq.Context()
	return RemoveProjectResult{Result: resultOf(seq, c.Err), Path: c.Selected, FolderDeleted: c.FolderDeleted}
}
