package task

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, kind Kind, args string, done bool) *Task {
	t.Helper()
	task, err := Parse(kind, args)
	if err != nil {
		t.Fatalf("Parse(%v, %q): %v", kind, args, err)
	}
	if done {
		task.ToggleDone()
	}
	return task
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		task *Task
		want string
	}{
		{"todo", mustParse(t, KindTodo, "read book", true), "T|1|read book"},
		{"deadline", mustParse(t, KindDeadline, "submit report /by Friday", false), "D|0|submit report /by Friday"},
		{"event", mustParse(t, KindEvent, "meeting /from 2pm /to 4pm", true), "E|1|meeting /from 2pm /to 4pm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Marshal(tt.task); got != tt.want {
				t.Errorf("Marshal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, done := range []bool{false, true} {
		for _, tc := range []struct {
			kind Kind
			args string
		}{
			{KindTodo, "read book"},
			{KindTodo, "pay the a|b bill"},
			{KindDeadline, "submit report /by Friday"},
			{KindEvent, "meeting /from Mon 2pm /to 4pm"},
		} {
			orig := mustParse(t, tc.kind, tc.args, done)

			line := Marshal(orig)
			got, err := Unmarshal(line)
			if err != nil {
				t.Fatalf("Unmarshal(%q): %v", line, err)
			}
			if diff := cmp.Diff(orig, got, cmp.AllowUnexported(Task{})); diff != "" {
				t.Errorf("round trip of %q mismatch (-want +got):\n%s", line, diff)
			}
			if again := Marshal(got); again != line {
				t.Errorf("Marshal(Unmarshal(%q)) = %q", line, again)
			}
		}
	}
}

func TestUnmarshalCorrupt(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown type", "X|0|read book"},
		{"lowercase type", "t|0|read book"},
		{"bad done flag", "T|yes|read book"},
		{"done flag out of range", "T|2|read book"},
		{"missing payload", "T|0"},
		{"type only", "T"},
		{"empty todo payload", "T|0|"},
		{"deadline without marker", "D|0|submit report"},
		{"event without to", "E|1|meeting /from 2pm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.line)
			if err == nil {
				t.Fatalf("Unmarshal(%q) succeeded, want error", tt.line)
			}
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestUnmarshalAppliesDoneFlag(t *testing.T) {
	got, err := Unmarshal("D|1|submit report /by Friday\r")
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.IsDone() {
		t.Error("expected task to be done")
	}
	if got.By() != "Friday" {
		t.Errorf("By = %q, want %q", got.By(), "Friday")
	}
}

func TestLineError(t *testing.T) {
	err := &LineError{Line: 3, Err: ErrCorruptData}
	if err.Error() != "line 3: corrupt task data" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrCorruptData) {
		t.Error("LineError should unwrap to ErrCorruptData")
	}
}
