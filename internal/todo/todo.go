// Package todo defines the todo record and its flat-file store.
//
// Each todo is stored on its own line as "description:statusCode", where the
// status code is 0 (not started) or 1 (completed).
package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the description from the status code in a record.
const Separator = ":"

var (
	// ErrMissingData is returned for a record without a separator.
	ErrMissingData = errors.New("missing data of todo")
	// ErrBadStatus is returned for a non-numeric or unknown status code.
	ErrBadStatus = errors.New("cannot convert todo status")
	// ErrEmptyDescription is returned when a description is blank.
	ErrEmptyDescription = errors.New("todo description cannot be empty")
	// ErrSeparator is returned when a description contains Separator.
	ErrSeparator = fmt.Errorf("todo description cannot contain %q", Separator)
)

// Status is the progress of a todo.
type Status int

const (
	NotStarted Status = 0
	Completed  Status = 1
)

// ParseStatus converts a stored status code.
func ParseStatus(code string) (Status, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return NotStarted, fmt.Errorf("%w: %q", ErrBadStatus, code)
	}
	switch Status(n) {
	case NotStarted, Completed:
		return Status(n), nil
	}
	return NotStarted, fmt.Errorf("%w: %q", ErrBadStatus, code)
}

// Code returns the stored status code.
func (s Status) Code() int {
	return int(s)
}

// Toggle flips between NotStarted and Completed.
func (s Status) Toggle() Status {
	if s == Completed {
		return NotStarted
	}
	return Completed
}

// Icon returns the checkbox shown next to a todo.
func (s Status) Icon() string {
	if s == Completed {
		return "[x]"
	}
	return "[ ]"
}

func (s Status) String() string {
	if s == Completed {
		return "Completed"
	}
	return "Not started"
}

// Todo is a single todo record.
type Todo struct {
	Description string
	Status      Status
}

// New returns a not-started todo.
func New(description string) Todo {
	return Todo{Description: description, Status: NotStarted}
}

// Parse reads a "description:statusCode" record.
// The status code is taken after the last separator. The description is
// kept verbatim.
func Parse(line string) (Todo, error) {
	line = strings.TrimRight(line, "\r\n")
	idx := strings.LastIndex(line, Separator)
	if idx < 0 {
		return Todo{}, fmt.Errorf("%w: %q", ErrMissingData, line)
	}

	status, err := ParseStatus(line[idx+len(Separator):])
	if err != nil {
		return Todo{}, err
	}

	return Todo{Description: line[:idx], Status: status}, nil
}

// String serializes the todo as a store record.
func (t Todo) String() string {
	return t.Description + Separator + strconv.Itoa(t.Status.Code())
}

// IsCompleted reports whether the todo is done.
func (t Todo) IsCompleted() bool {
	return t.Status == Completed
}

// ValidateDescription rejects descriptions that cannot be stored unambiguously.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if strings.Contains(description, Separator) {
		return ErrSeparator
	}
	if strings.ContainsAny(description, "\r\n") {
		return fmt.Errorf("todo description cannot span lines")
	}
	return nil
}

// CountCompleted returns how many todos are completed.
func CountCompleted(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

// WithoutCompleted returns the todos that are not completed, in order.
func WithoutCompleted(todos []Todo) []Todo {
	kept := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if !t.IsCompleted() {
			kept = append(kept, t)
		}
	}
	return kept
}
