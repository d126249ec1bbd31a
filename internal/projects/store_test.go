package projects

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "projects.txt"))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestStore_ListMissingFile(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	paths, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no projects, got %q", paths)
	}
}

func TestStore_AddAddRemoveScenario(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if err := s.UpsertFront("/tmp/proj"); err != nil {
		t.Fatalf("UpsertFront failed: %v", err)
	}
	if got := readFile(t, s.Path()); got != "/tmp/proj\n" {
		t.Fatalf("after first add file = %q, want %q", got, "/tmp/proj\n")
	}

	if err := s.UpsertFront("/tmp/other"); err != nil {
		t.Fatalf("UpsertFront failed: %v", err)
	}
	if got := readFile(t, s.Path()); got != "/tmp/other\n/tmp/proj\n" {
		t.Fatalf("after second add file = %q, want front-insert order", got)
	}

	if err := s.Remove("/tmp/proj"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := readFile(t, s.Path()); got != "/tmp/other\n" {
		t.Errorf("after remove file = %q, want %q", got, "/tmp/other\n")
	}
}

func TestStore_UpsertFront(t *testing.T) {
	t.Parallel()

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		once := newTestStore(t)
		twice := newTestStore(t)
		for _, s := range []*Store{once, twice} {
			if err := s.UpsertFront("/a"); err != nil {
				t.Fatalf("UpsertFront failed: %v", err)
			}
		}
		if err := twice.UpsertFront("/a"); err != nil {
			t.Fatalf("UpsertFront failed: %v", err)
		}

		if readFile(t, once.Path()) != readFile(t, twice.Path()) {
			t.Errorf("upserting twice changed content: %q vs %q",
				readFile(t, once.Path()), readFile(t, twice.Path()))
		}
	})

	t.Run("moves existing to front", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		for _, p := range []string{"/c", "/b", "/a"} {
			if err := s.UpsertFront(p); err != nil {
				t.Fatalf("UpsertFront(%q) failed: %v", p, err)
			}
		}
		if err := s.UpsertFront("/c"); err != nil {
			t.Fatalf("UpsertFront failed: %v", err)
		}

		got, err := s.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"/c", "/a", "/b"}
		if !slices.Equal(got, want) {
			t.Errorf("List = %q, want %q", got, want)
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		if err := s.UpsertFront(""); err == nil {
			t.Error("expected error for empty path")
		}
	})
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	t.Run("absent path is a no-op", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		if err := s.UpsertFront("/a"); err != nil {
			t.Fatalf("UpsertFront failed: %v", err)
		}
		if err := s.Remove("/missing"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		got, _ := s.List()
		if !slices.Equal(got, []string{"/a"}) {
			t.Errorf("List = %q, want [/a]", got)
		}
	})

	t.Run("exact match only", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		for _, p := range []string{"/a/b", "/a"} {
			if err := s.UpsertFront(p); err != nil {
				t.Fatalf("UpsertFront failed: %v", err)
			}
		}
		if err := s.Remove("/a"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		got, _ := s.List()
		if !slices.Equal(got, []string{"/a/b"}) {
			t.Errorf("List = %q, want [/a/b]", got)
		}
	})

	t.Run("path with surrounding spaces", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		for _, p := range []string{"/p", "/p "} {
			if err := s.UpsertFront(p); err != nil {
				t.Fatalf("UpsertFront failed: %v", err)
			}
		}

		got, _ := s.List()
		if !slices.Equal(got, []string{"/p ", "/p"}) {
			t.Fatalf("List = %q, want the saved paths unchanged", got)
		}

		if err := s.Remove("/p "); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		got, _ = s.List()
		if !slices.Equal(got, []string{"/p"}) {
			t.Errorf("List = %q, want [/p]", got)
		}
	})
}

func TestStore_Contains(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.UpsertFront("/a"); err != nil {
		t.Fatalf("UpsertFront failed: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/a", true},
		{"/a/", false},
		{"/b", false},
	}

	for _, tt := range tests {
		got, err := s.Contains(tt.path)
		if err != nil {
			t.Fatalf("Contains failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
