package todo

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    Todo
		wantErr error
	}{
		{name: "not started", line: "Buy milk:0", want: Todo{Description: "Buy milk", Status: NotStarted}},
		{name: "completed", line: "Write report:1", want: Todo{Description: "Write report", Status: Completed}},
		{name: "splits at last separator", line: "a:b:1", want: Todo{Description: "a:b", Status: Completed}},
		{name: "keeps description whitespace", line: "  Call mom :0  ", want: Todo{Description: "  Call mom ", Status: NotStarted}},
		{name: "carriage return", line: "Buy milk:1\r", want: Todo{Description: "Buy milk", Status: Completed}},
		{name: "missing separator", line: "Buy milk", wantErr: ErrMissingData},
		{name: "non numeric status", line: "Buy milk:x", wantErr: ErrBadStatus},
		{name: "unknown status", line: "Buy milk:-1", wantErr: ErrBadStatus},
		{name: "out of range status", line: "Buy milk:2", wantErr: ErrBadStatus},
		{name: "empty status", line: "Buy milk:", wantErr: ErrBadStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTodo_StringRoundtrip(t *testing.T) {
	t.Parallel()

	for _, td := range []Todo{
		{Description: "Buy milk", Status: NotStarted},
		{Description: "Ship release 1.2", Status: Completed},
		{Description: "  indented", Status: NotStarted},
		{Description: "trailing  ", Status: Completed},
	} {
		got, err := Parse(td.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", td.String(), err)
		}
		if got != td {
			t.Errorf("roundtrip of %+v gave %+v", td, got)
		}
	}

	if s := New("Buy milk").String(); s != "Buy milk:0" {
		t.Errorf("New().String() = %q, want %q", s, "Buy milk:0")
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	if NotStarted.Toggle() != Completed || Completed.Toggle() != NotStarted {
		t.Error("Toggle should flip between NotStarted and Completed")
	}
	if NotStarted.String() != "Not started" || Completed.String() != "Completed" {
		t.Errorf("unexpected names %q / %q", NotStarted, Completed)
	}
	if NotStarted.Icon() != "[ ]" || Completed.Icon() != "[x]" {
		t.Errorf("unexpected icons %q / %q", NotStarted.Icon(), Completed.Icon())
	}
	if NotStarted.Code() != 0 || Completed.Code() != 1 {
		t.Errorf("unexpected codes %d / %d", NotStarted.Code(), Completed.Code())
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		wantErr error
	}{
		{desc: "Buy milk"},
		{desc: "", wantErr: ErrEmptyDescription},
		{desc: "   ", wantErr: ErrEmptyDescription},
		{desc: "time: 10am", wantErr: ErrSeparator},
	}

	for _, tt := range tests {
		err := ValidateDescription(tt.desc)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("ValidateDescription(%q) = %v, want nil", tt.desc, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateDescription(%q) = %v, want %v", tt.desc, err, tt.wantErr)
		}
	}

	if err := ValidateDescription("two\nlines"); err == nil {
		t.Error("expected multi-line description to be rejected")
	}
}

func TestWithoutCompleted(t *testing.T) {
	t.Parallel()

	todos := []Todo{
		{Description: "a", Status: Completed},
		{Description: "b", Status: NotStarted},
		{Description: "c", Status: Completed},
		{Description: "d", Status: NotStarted},
	}

	if n := CountCompleted(todos); n != 2 {
		t.Errorf("CountCompleted = %d, want 2", n)
	}

	kept := WithoutCompleted(todos)
	if len(kept) != 2 || kept[0].Description != "b" || kept[1].Description != "d" {
		t.Errorf("WithoutCompleted = %+v, want [b d]", kept)
	}
}
