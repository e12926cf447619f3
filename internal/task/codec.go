package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCorruptData is returned when a stored line cannot be decoded.
var ErrCorruptData = errors.New("corrupt task data")

const (
	fieldSeparator = "|"
	flagDone       = "1"
	flagNotDone    = "0"
)

// LineError reports a stored line that failed to decode.
type LineError struct {
	Line int   // 1-based line number in the stored file
	Err  error // Underlying error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Marshal encodes a task as "<code>|<done>|<payload>".
func Marshal(t *Task) string {
	flag := flagNotDone
	if t.done {
		flag = flagDone
	}
	return t.kind.Code() + fieldSeparator + flag + fieldSeparator + t.Payload()
}

// Unmarshal decodes a line produced by Marshal. The payload is re-parsed the
// same way an add command argument would be.
func Unmarshal(line string) (*Task, error) {
	parts := strings.SplitN(strings.TrimSpace(line), fieldSeparator, 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", ErrCorruptData, len(parts))
	}

	kind, err := parseCode(parts[0])
	if err != nil {
		return nil, err
	}

	var done bool
	switch parts[1] {
	case flagDone:
		done = true
	case flagNotDone:
	default:
		return nil, fmt.Errorf("%w: invalid done flag %q", ErrCorruptData, parts[1])
	}

	t, err := Parse(kind, parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if done {
		t.ToggleDone()
	}
	return t, nil
}

func parseCode(code string) (Kind, error) {
	switch code {
	case "T":
		return KindTodo, nil
	case "D":
		return KindDeadline, nil
	case "E":
		return KindEvent, nil
	default:
		return 0, fmt.Errorf("%w: unknown task type %q", ErrCorruptData, code)
	}
}
