package task

import (
	"errors"
	"testing"
)

func TestNewTodo(t *testing.T) {
	got, err := NewTodo("read book")
	if err != nil {
		t.Fatalf("NewTodo: %v", err)
	}
	if got.Kind() != KindTodo {
		t.Errorf("Kind = %v, want %v", got.Kind(), KindTodo)
	}
	if got.Description() != "read book" {
		t.Errorf("Description = %q, want %q", got.Description(), "read book")
	}
	if got.IsDone() {
		t.Error("new todo should not be done")
	}
}

func TestNewDeadline(t *testing.T) {
	got, err := NewDeadline("  submit report   /by  Friday 5pm ")
	if err != nil {
		t.Fatalf("NewDeadline: %v", err)
	}
	if got.Description() != "submit report" {
		t.Errorf("Description = %q, want %q", got.Description(), "submit report")
	}
	if got.By() != "Friday 5pm" {
		t.Errorf("By = %q, want %q", got.By(), "Friday 5pm")
	}
	if got.IsDone() {
		t.Error("new deadline should not be done")
	}
}

func TestNewEvent(t *testing.T) {
	got, err := NewEvent("project meeting /from Mon 2pm /to 4pm")
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	if got.Description() != "project meeting" || got.From() != "Mon 2pm" || got.To() != "4pm" {
		t.Errorf("got (%q, %q, %q), want (%q, %q, %q)",
			got.Description(), got.From(), got.To(), "project meeting", "Mon 2pm", "4pm")
	}
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		args string
	}{
		{"empty todo", KindTodo, ""},
		{"blank todo", KindTodo, "   "},
		{"deadline without marker", KindDeadline, "submit report"},
		{"deadline marker without space", KindDeadline, "submit report /byFriday"},
		{"deadline empty description", KindDeadline, "/by Friday"},
		{"deadline empty by", KindDeadline, "submit report /by   "},
		{"event without markers", KindEvent, "meeting"},
		{"event without to", KindEvent, "meeting /from 2pm"},
		{"event without from", KindEvent, "meeting /to 4pm"},
		{"event markers out of order", KindEvent, "meeting /to 4pm /from 2pm"},
		{"event empty description", KindEvent, "/from 2pm /to 4pm"},
		{"event empty from", KindEvent, "meeting /from /to 4pm"},
		{"event empty to", KindEvent, "meeting /from 2pm /to  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.args)
			if err == nil {
				t.Fatalf("Parse(%v, %q) = %v, want error", tt.kind, tt.args, got)
			}
			if !errors.Is(err, ErrMalformedArguments) {
				t.Errorf("error = %v, want ErrMalformedArguments", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	todo, _ := NewTodo("read book")
	deadline, _ := NewDeadline("submit report /by Friday")
	event, _ := NewEvent("party /from 7pm /to late")
	event.ToggleDone()

	tests := []struct {
		task *Task
		want string
	}{
		{todo, "[T][ ] read book"},
		{deadline, "[D][ ] submit report (by: Friday)"},
		{event, "[E][X] party (from: 7pm to: late)"},
	}
	for _, tt := range tests {
		if got := tt.task.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestToggleDoneNoDrift(t *testing.T) {
	task, _ := NewTodo("read book")
	for i := 0; i < 10; i++ {
		before := task.IsDone()
		task.ToggleDone()
		task.ToggleDone()
		if task.IsDone() != before {
			t.Fatalf("round %d: done = %v after two toggles, want %v", i, task.IsDone(), before)
		}
	}
}

func TestPayloadReparses(t *testing.T) {
	for _, args := range []struct {
		kind Kind
		args string
	}{
		{KindTodo, "read /by chapter 3"},
		{KindDeadline, "return book /by next /by week"},
		{KindEvent, "trip /to Paris /from Mon /to Fri"},
	} {
		orig, err := Parse(args.kind, args.args)
		if err != nil {
			t.Fatalf("Parse(%q): %v", args.args, err)
		}
		again, err := Parse(orig.Kind(), orig.Payload())
		if err != nil {
			t.Fatalf("Parse(Payload %q): %v", orig.Payload(), err)
		}
		if !again.Equal(orig) {
			t.Errorf("reparsed %v, want %v", again, orig)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if KindDeadline.String() != "deadline" || KindDeadline.Code() != "D" {
		t.Errorf("KindDeadline = (%s, %s)", KindDeadline.String(), KindDeadline.Code())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
