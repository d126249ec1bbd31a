package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/dsallow/flow/internal/log"
)

func TestCommand(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX binaries")
	}

	dir := t.TempDir()
	spaced := filepath.Join(dir, "my project")
	if err := os.Mkdir(spaced, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		template string
		path     string
		wantArgs []string
	}{
		{name: "placeholder", template: "echo {path}", path: dir, wantArgs: []string{"echo", dir}},
		{name: "appended", template: "echo --new-window", path: dir, wantArgs: []string{"echo", "--new-window", dir}},
		{name: "quoted template", template: `echo "--title=open me" {path}`, path: dir, wantArgs: []string{"echo", "--title=open me", dir}},
		{name: "embedded placeholder", template: "echo --folder={path}", path: dir, wantArgs: []string{"echo", "--folder=" + dir}},
		{name: "path with spaces stays one arg", template: "echo {path}", path: spaced, wantArgs: []string{"echo", spaced}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := New(tt.template, nil).Command(tt.path)
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			if cmd.Dir != tt.path {
				t.Errorf("Dir = %q, want %q", cmd.Dir, tt.path)
			}
		})
	}
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		errPart  string
	}{
		{name: "empty", template: "   ", errPart: "empty"},
		{name: "missing binary", template: "flow-no-such-editor {path}", errPart: `editor "flow-no-such-editor" not found`},
		{name: "unterminated quote", template: `code "{path}`, errPart: "parse editor command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.template, nil).Command(t.TempDir())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %v, want it to contain %q", err, tt.errPart)
			}
		})
	}
}

func TestOpen_LogsCommand(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX binaries")
	}

	var buf bytes.Buffer
	dir := t.TempDir()

	if err := New("true {path}", log.New(&buf, true, false)).Open(dir); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !strings.Contains(buf.String(), dir) {
		t.Errorf("expected the spawned command to be logged, got %q", buf.String())
	}
}

func TestOpeners(t *testing.T) {
	t.Parallel()

	var _ Opener = (*Editor)(nil)
	var _ Opener = Clipboard{}
}
