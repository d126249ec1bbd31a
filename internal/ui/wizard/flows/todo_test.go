package flows

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsallow/flow/internal/todo"
	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

func newTodoStore(t *testing.T, content string) *todo.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return todo.NewStore(path)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// failingTodoStore rejects every write.
type failingTodoStore struct{}

func (failingTodoStore) Append(string, todo.Status) error { return errDiskFull }
func (failingTodoStore) Rewrite([]todo.Todo) error        { return errDiskFull }

func TestCreateTodoWizard(t *testing.T) {
	t.Parallel()

	store := newTodoStore(t, "")
	seq := createTodoWizard(CreateTodoParams{Store: store})
	drive(t, seq, "Buy milk", "enter")

	res := createTodoResult(seq)
	if res.Cancelled || res.Todo != todo.New("Buy milk") {
		t.Fatalf("result = %+v", res)
	}
	if got := readFile(t, store.Path()); got != "Buy milk:0\n" {
		t.Errorf("file = %q", got)
	}
	transcript := strings.Join(seq.PlainTranscript(), "\n")
	if !strings.Contains(transcript, "Todo added correctly!") {
		t.Errorf("transcript:\n%s", transcript)
	}
}

func TestCreateTodoWizard_RejectsInvalid(t *testing.T) {
	t.Parallel()

	store := newTodoStore(t, "")
	seq := createTodoWizard(CreateTodoParams{Store: store})
	drive(t, seq, "enter", "time: 10", "enter")

	if seq.Outcome() != framework.Running || seq.CurrentIndex() != 0 {
		t.Fatalf("invalid todo must keep the input active: outcome=%v index=%d", seq.Outcome(), seq.CurrentIndex())
	}
	if view := fmt.Sprint(seq.View().Content); !strings.Contains(view, "cannot contain") {
		t.Errorf("View() should show the validation error:\n%s", view)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("nothing should be written")
	}
}

func TestCreateTodoWizard_StoreFails(t *testing.T) {
	t.Parallel()

	seq := createTodoWizard(CreateTodoParams{Store: failingTodoStore{}})
	drive(t, seq, "Buy milk", "enter")

	res := createTodoResult(seq)
	if !res.Cancelled || !errors.Is(res.Err, errDiskFull) {
		t.Fatalf("result = %+v, want disk full failure", res)
	}
}

func TestCheckTodosWizard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		keys        []string
		wantFile    string
		wantDeleted int
	}{
		{
			name:     "toggle and decline delete",
			content:  "Buy milk:0\n",
			keys:     []string{"space", "enter", "down", "enter"},
			wantFile: "Buy milk:1\n",
		},
		{
			name:        "toggle and accept delete",
			content:     "Buy milk:0\n",
			keys:        []string{"space", "enter", "enter"},
			wantFile:    "",
			wantDeleted: 1,
		},
		{
			name:        "confirm unchanged and accept delete",
			content:     "Buy milk:1\n",
			keys:        []string{"enter", "enter"},
			wantFile:    "",
			wantDeleted: 1,
		},
		{
			name:     "nothing completed skips the question",
			content:  "Buy milk:1\nCall mom:0\n",
			keys:     []string{"space", "enter"},
			wantFile: "Buy milk:0\nCall mom:0\n",
		},
		{
			name:        "keeps open todos in order",
			content:     "a:0\nb:0\nc:1\n",
			keys:        []string{"down", "space", "enter", "enter"},
			wantFile:    "a:0\n",
			wantDeleted: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTodoStore(t, tt.content)
			todos, err := store.List()
			if err != nil {
				t.Fatal(err)
			}

			seq := checkTodosWizard(CheckTodosParams{Store: store, Todos: todos})
			drive(t, seq, tt.keys...)

			if seq.Outcome() != framework.Completed {
				t.Fatalf("Outcome() = %v, want completed", seq.Outcome())
			}
			if got := readFile(t, store.Path()); got != tt.wantFile {
				t.Errorf("file = %q, want %q", got, tt.wantFile)
			}
			if res := checkTodosResult(seq); res.Deleted != tt.wantDeleted {
				t.Errorf("Deleted = %d, want %d", res.Deleted, tt.wantDeleted)
			}
		})
	}
}

func TestCheckTodosWizard_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	store := newTodoStore(t, "Buy milk:0\n")
	todos := []todo.Todo{todo.New("Buy milk")}

	seq := checkTodosWizard(CheckTodosParams{Store: store, Todos: todos})
	drive(t, seq, "space", "enter", "down", "enter")

	if todos[0].Status != todo.NotStarted {
		t.Error("caller's slice was modified")
	}
}

func TestCheckTodosWizard_CancelKeepsFile(t *testing.T) {
	t.Parallel()

	store := newTodoStore(t, "Buy milk:0\n")
	todos, _ := store.List()

	seq := checkTodosWizard(CheckTodosParams{Store: store, Todos: todos})
	drive(t, seq, "space", "esc")

	if !seq.IsCancelled() {
		t.Fatal("esc should cancel")
	}
	if got := readFile(t, store.Path()); got != "Buy milk:0\n" {
		t.Errorf("file changed on cancel: %q", got)
	}
}

func TestCheckTodosWizard_SaveFails(t *testing.T) {
	t.Parallel()

	seq := checkTodosWizard(CheckTodosParams{Store: failingTodoStore{}, Todos: []todo.Todo{todo.New("a")}})
	drive(t, seq, "space", "enter")

	res := checkTodosResult(seq)
	if !res.Failed() {
		t.Fatalf("result = %+v, want failure", res)
	}
	if seq.CurrentIndex() != 1 {
		t.Errorf("wizard should stop at the save step, index=%d", seq.CurrentIndex())
	}
}
