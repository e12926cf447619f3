package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedArguments is returned when the arguments of an add, mark or
// unmark command do not have the expected shape.
var ErrMalformedArguments = errors.New("malformed arguments")

// Argument markers, as typed by the user and as stored on disk.
const (
	byMarker   = "/by "
	fromMarker = "/from "
	toMarker   = "/to "
)

// Kind identifies the variant of a task.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// String returns the command keyword that creates tasks of this kind.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Code returns the single-letter tag used for both display and storage.
func (k Kind) Code() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// Task is a tracked unit of work. The kind is fixed at creation; only the
// done state changes afterwards.
type Task struct {
	kind        Kind
	description string
	done        bool
	by          string
	from        string
	to          string
}

// NewTodo creates a todo whose description is the whole argument string.
func NewTodo(args string) (*Task, error) {
	description := strings.TrimSpace(args)
	if description == "" {
		return nil, fmt.Errorf("%w: the description of a todo cannot be empty", ErrMalformedArguments)
	}
	return &Task{kind: KindTodo, description: description}, nil
}

// NewDeadline creates a deadline from "<description> /by <when>".
func NewDeadline(args string) (*Task, error) {
	before, after, found := strings.Cut(args, byMarker)
	if !found {
		return nil, fmt.Errorf("%w: a deadline needs \"/by <when>\"", ErrMalformedArguments)
	}
	description := strings.TrimSpace(before)
	by := strings.TrimSpace(after)
	if description == "" {
		return nil, fmt.Errorf("%w: the description of a deadline cannot be empty", ErrMalformedArguments)
	}
	if by == "" {
		return nil, fmt.Errorf("%w: the /by time of a deadline cannot be empty", ErrMalformedArguments)
	}
	return &Task{kind: KindDeadline, description: description, by: by}, nil
}

// NewEvent creates an event from "<description> /from <start> /to <end>".
func NewEvent(args string) (*Task, error) {
	before, rest, found := strings.Cut(args, fromMarker)
	if !found {
		return nil, fmt.Errorf("%w: an event needs \"/from <start> /to <end>\"", ErrMalformedArguments)
	}
	from, to, found := strings.Cut(rest, toMarker)
	if !found {
		return nil, fmt.Errorf("%w: an event needs \"/to <end>\" after \"/from <start>\"", ErrMalformedArguments)
	}

	t := &Task{
		kind:        KindEvent,
		description: strings.TrimSpace(before),
		from:        strings.TrimSpace(from),
		to:          strings.TrimSpace(to),
	}
	switch {
	case t.description == "":
		return nil, fmt.Errorf("%w: the description of an event cannot be empty", ErrMalformedArguments)
	case t.from == "":
		return nil, fmt.Errorf("%w: the /from time of an event cannot be empty", ErrMalformedArguments)
	case t.to == "":
		return nil, fmt.Errorf("%w: the /to time of an event cannot be empty", ErrMalformedArguments)
	}
	return t, nil
}

// Parse builds a task of the given kind from an add-command argument string.
func Parse(kind Kind, args string) (*Task, error) {
	switch kind {
	case KindTodo:
		return NewTodo(args)
	case KindDeadline:
		return NewDeadline(args)
	case KindEvent:
		return NewEvent(args)
	default:
		return nil, fmt.Errorf("unknown task kind %d", kind)
	}
}

// Kind returns the variant of the task.
func (t *Task) Kind() Kind { return t.kind }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// By returns the deadline of a Deadline task.
func (t *Task) By() string { return t.by }

// From returns the start of an Event task.
func (t *Task) From() string { return t.from }

// To returns the end of an Event task.
func (t *Task) To() string { return t.to }

// IsDone reports whether the task is marked as done.
func (t *Task) IsDone() bool { return t.done }

// ToggleDone flips the done state. Both mark and unmark go through here.
func (t *Task) ToggleDone() {
	t.done = !t.done
}

// StatusIcon returns "X" for a done task and a single space otherwise.
func (t *Task) StatusIcon() string {
	if t.done {
		return "X"
	}
	return " "
}

// Payload returns the argument string that recreates the task when passed
// to Parse with the same kind.
func (t *Task) Payload() string {
	switch t.kind {
	case KindDeadline:
		return t.description + " " + byMarker + t.by
	case KindEvent:
		return t.description + " " + fromMarker + t.from + " " + toMarker + t.to
	default:
		return t.description
	}
}

// Suffix returns the kind-specific part of the rendered task.
func (t *Task) Suffix() string {
	switch t.kind {
	case KindDeadline:
		return " (by: " + t.by + ")"
	case KindEvent:
		return " (from: " + t.from + " to: " + t.to + ")"
	default:
		return ""
	}
}

// String renders the task as "[T][X] description" plus its suffix.
func (t *Task) String() string {
	return "[" + t.kind.Code() + "][" + t.StatusIcon() + "] " + t.description + t.Suffix()
}

// Equal reports whether both tasks have the same kind, fields and done state.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t == *other
}
