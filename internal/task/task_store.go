package task

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TaskStore holds the task list in display order.
type TaskStore struct {
	tasks []*Task
}

// NewTaskStore initializes an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Len returns the number of tasks.
func (ts *TaskStore) Len() int {
	return len(ts.tasks)
}

// Tasks returns the tasks in display order. The slice must not be modified.
func (ts *TaskStore) Tasks() []*Task {
	return ts.tasks
}

// AddTask appends a task to the end of the list.
func (ts *TaskStore) AddTask(t *Task) {
	ts.tasks = append(ts.tasks, t)
}

// Get returns the task at a 1-based index.
func (ts *TaskStore) Get(index int) (*Task, error) {
	if index < 1 || index > len(ts.tasks) {
		if len(ts.tasks) == 0 {
			return nil, fmt.Errorf("%w: task %d does not exist, the list is empty", ErrMalformedArguments, index)
		}
		return nil, fmt.Errorf("%w: task %d does not exist, pick a number from 1 to %d",
			ErrMalformedArguments, index, len(ts.tasks))
	}
	return ts.tasks[index-1], nil
}

// ToggleTask flips the done state of the task at a 1-based index.
func (ts *TaskStore) ToggleTask(index int) (*Task, error) {
	t, err := ts.Get(index)
	if err != nil {
		return nil, err
	}
	t.ToggleDone()
	return t, nil
}

// Encode writes every task as one line, in list order.
func (ts *TaskStore) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, t := range ts.tasks {
		if _, err := bw.WriteString(Marshal(t) + "\n"); err != nil {
			return fmt.Errorf("write task: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush tasks: %w", err)
	}
	return nil
}

// Decode replaces the list with the tasks read from r. The first line that
// fails to decode aborts the load and leaves the store unchanged. Blank lines
// are skipped.
func (ts *TaskStore) Decode(r io.Reader) error {
	var tasks []*Task
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := Unmarshal(line)
		if err != nil {
			return &LineError{Line: lineNo, Err: err}
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}

	ts.tasks = tasks
	return nil
}
