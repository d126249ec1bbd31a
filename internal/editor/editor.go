// Package editor opens project folders in the configured editor or
// copies their path to the clipboard.
package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/atotto/clipboard"

	"github.com/dsallow/flow/internal/log"
)

// PathPlaceholder is replaced by the project path in a command template.
const PathPlaceholder = "{path}"

// Opener opens a project path.
type Opener interface {
	Open(path string) error
}

// Editor spawns a command template for a path.
type Editor struct {
	command string
	log     *log.Logger
}

// New returns an editor for the command template.
func New(command string, l *log.Logger) *Editor {
	return &Editor{command: command, log: l}
}

// Command builds the process for path without starting it.
// The template is split like a POSIX shell would, but no shell runs it.
// {path} is substituted in every argument; without a placeholder the path
// is appended as the last argument.
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	args, err := shlex.Split(e.command, true)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", e.command, err)
	}
	if len(args) == 0 {
		return nil, errors.New("editor command is empty")
	}

	substituted := false
	for i, arg := range args {
		if strings.Contains(arg, PathPlaceholder) {
			args[i] = strings.ReplaceAll(arg, PathPlaceholder, path)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, path)
	}

	if _, err := exec.LookPath(args[0]); err != nil {
		return nil, fmt.Errorf("editor %q not found", args[0])
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = path
	return cmd, nil
}

// Open starts the editor and returns without waiting for it to exit.
func (e *Editor) Open(path string) error {
	cmd, err := e.Command(path)
	if err != nil {
		return err
	}

	if e.log != nil {
		e.log.Command(cmd.Args[0], cmd.Args[1:]...)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start editor: %w", err)
	}
	return cmd.Process.Release()
}

// Clipboard copies the path instead of opening it.
type Clipboard struct{}

// Open writes path to the system clipboard.
func (Clipboard) Open(path string) error {
	if err := clipboard.WriteAll(path); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
