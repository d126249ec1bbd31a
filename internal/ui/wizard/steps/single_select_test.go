package steps

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/dsallow/flow/internal/ui/wizard/framework"
)

func TestSingleSelect_SentinelAppended(t *testing.T) {
	t.Parallel()

	s := NewSingleSelect[testCtx]("Select the project:", []string{"/a", "/b"})
	if got := s.State().Len; got != 3 {
		t.Fatalf("Len = %d, want 3 (options + sentinel)", got)
	}

	view := ansi.Strip(s.View())
	if !strings.Contains(view, DefaultSentinel) {
		t.Errorf("View() missing sentinel:\n%s", view)
	}

	s.Update(keyMsg("up"))
	s.Update(keyMsg("enter"))
	st := s.State()
	if !st.IsSentinel() || st.Current != DefaultSentinel {
		t.Errorf("expected sentinel selection, got %+v", st)
	}
}

func TestSingleSelect_Wraparound(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5} {
		options := make([]string, n)
		for i := range options {
			options[i] = strings.Repeat("x", i+1)
		}

		for _, key := range []string{"down", "up", "j", "k"} {
			s := NewSingleSelect[testCtx]("pick", options)
			total := s.State().Len
			for range total {
				s.Update(keyMsg(key))
			}
			if got := s.State().Offset; got != 0 {
				t.Errorf("n=%d: %d x %s should return to 0, got %d", n, total, key, got)
			}
		}
	}
}

func TestSingleSelect_Navigation(t *testing.T) {
	t.Parallel()

	s := NewSingleSelect[testCtx]("pick", []string{"a", "b", "c"})

	tests := []struct {
		key  string
		want int
	}{
		{"up", 3}, // wraps to sentinel
		{"down", 0},
		{"down", 1},
		{"j", 2},
		{"k", 1},
		{"x", 1}, // unknown keys are ignored
	}
	for _, tt := range tests {
		s.Update(keyMsg(tt.key))
		if got := s.State().Offset; got != tt.want {
			t.Fatalf("after %q Offset = %d, want %d", tt.key, got, tt.want)
		}
	}

	s.Update(keyMsg("enter"))
	st := s.State()
	if !st.Selected || st.Current != "b" || st.IsSentinel() {
		t.Errorf("unexpected state after enter: %+v", st)
	}
	if got := ansi.Strip(s.Final()); got != "✓ pick b" {
		t.Errorf("Final() = %q", got)
	}
}

func TestSingleSelect_WithoutSentinel(t *testing.T) {
	t.Parallel()

	s := NewSingleSelect[testCtx]("Also delete the folder?", []string{"Yes", "No"}).WithoutSentinel()
	if got := s.State().Len; got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}

	s.Update(keyMsg("down"))
	s.Update(keyMsg("enter"))
	st := s.State()
	if st.IsSentinel() {
		t.Error("last option must not count as sentinel without one")
	}
	if st.Current != "No" {
		t.Errorf("Current = %q, want No", st.Current)
	}
}

func TestSingleSelect_CustomSentinelAndReset(t *testing.T) {
	t.Parallel()

	s := NewSingleSelect[testCtx]("pick", []string{"a"}).WithSentinel("Cancel").WithFinalLabel("Picked")
	s.Update(keyMsg("down"))
	s.Update(keyMsg("enter"))
	if st := s.State(); !st.IsSentinel() || st.Current != "Cancel" {
		t.Fatalf("unexpected state %+v", st)
	}
	if got := ansi.Strip(s.Final()); !strings.HasPrefix(got, "✗ Picked") {
		t.Errorf("Final() = %q, want a cancelled line", got)
	}

	s.Reset()
	if st := s.State(); st.Offset != 0 || st.Selected || st.Current != "" || st.Len != 2 {
		t.Errorf("Reset left %+v", st)
	}
}

func TestSingleSelect_Hooks(t *testing.T) {
	t.Parallel()

	s := NewSingleSelect[testCtx]("pick", []string{"a"}).
		OnBefore(func(ctx *testCtx) framework.RenderGate {
			if ctx.hits > 0 {
				return framework.Skip
			}
			return framework.Show
		}).
		OnAfter(func(state *SelectState, ctx *testCtx) framework.Action {
			if !state.Selected {
				return framework.Retry
			}
			if state.IsSentinel() {
				return framework.Cancel
			}
			ctx.hits++
			return framework.Advance
		})

	ctx := &testCtx{}
	if s.Before(ctx) != framework.Show {
		t.Fatal("expected Show")
	}
	s.Update(keyMsg("down"))
	if s.After(ctx) != framework.Retry {
		t.Fatal("expected Retry before enter")
	}
	s.Update(keyMsg("enter"))
	if s.After(ctx) != framework.Cancel {
		t.Fatal("expected Cancel on sentinel")
	}
	s.Update(keyMsg("up"))
	s.Update(keyMsg("enter"))
	if s.After(ctx) != framework.Advance || ctx.hits != 1 {
		t.Fatal("expected Advance with context mutation")
	}
	if s.Before(ctx) != framework.Skip {
		t.Error("expected Skip once the context changed")
	}
}
