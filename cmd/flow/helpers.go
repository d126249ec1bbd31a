package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dsallow/flow/internal/projects"
	"github.com/dsallow/flow/internal/todo"
)

var errNoTerminal = errors.New("interactive mode requires a terminal")

// isInteractive reports whether stdin is a terminal. Tests replace it.
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// requireTerminal fails wizard commands that have no terminal to draw on.
func requireTerminal() error {
	if !isInteractive() {
		return errNoTerminal
	}
	return nil
}

func projectStore() *projects.Store {
	return projects.NewStore(cfg.ProjectsPath())
}

func todoStore() *todo.Store {
	return todo.NewStore(cfg.TodosPath())
}
