package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// ErrInvalidCommand is returned for an unrecognized command keyword.
var ErrInvalidCommand = errors.New("invalid command")

// Command keywords.
const (
	CommandList     = "list"
	CommandMark     = "mark"
	CommandUnmark   = "unmark"
	CommandTodo     = "todo"
	CommandDeadline = "deadline"
	CommandEvent    = "event"
	CommandBye      = "bye"
)

// CLI interprets one input line at a time against a task list.
type CLI struct {
	Store *task.TaskStore
	ui    *UI
}

// NewCLI initializes a new CLI.
func NewCLI(store *task.TaskStore, ui *UI) *CLI {
	return &CLI{Store: store, ui: ui}
}

// SplitCommand splits a raw line at the first run of whitespace into the
// command keyword and the trimmed argument string.
func SplitCommand(line string) (keyword, args string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// IsUserError reports whether err came from bad user input and should be
// shown to the user rather than end the session.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidCommand) || errors.Is(err, task.ErrMalformedArguments)
}

// Execute runs a single command line. It returns quit == true after bye.
// The opening separator is always printed; the closing one only on success,
// so the caller must report a returned error with UI.ShowError.
func (c *CLI) Execute(line string) (quit bool, err error) {
	c.ui.ShowSeparator()

	keyword, args := SplitCommand(line)
	switch keyword {
	case CommandList:
		c.listTasks()
	case CommandMark:
		err = c.markAsDone(args)
	case CommandUnmark:
		err = c.markAsNotDone(args)
	case CommandTodo:
		err = c.addTask(task.KindTodo, args)
	case CommandDeadline:
		err = c.addTask(task.KindDeadline, args)
	case CommandEvent:
		err = c.addTask(task.KindEvent, args)
	case CommandBye:
		c.ui.Show("Bye. Hope to see you again soon!")
		quit = true
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidCommand, keyword)
	}
	if err != nil {
		return false, err
	}

	c.ui.ShowSeparator()
	return quit, nil
}

func (c *CLI) listTasks() {
	c.ui.Show("Here are the tasks in your list:")
	for i, t := range c.Store.Tasks() {
		c.ui.Show(fmt.Sprintf("%d. %s", i+1, c.ui.Render(t)))
	}
}

func (c *CLI) addTask(kind task.Kind, args string) error {
	t, err := task.Parse(kind, args)
	if err != nil {
		return err
	}
	c.Store.AddTask(t)

	noun := "tasks"
	if c.Store.Len() == 1 {
		noun = "task"
	}
	c.ui.Show("Got it. I've added this task:",
		"  "+c.ui.Render(t),
		fmt.Sprintf("Now you have %d %s in the list.", c.Store.Len(), noun))
	return nil
}

// markAsDone and markAsNotDone both toggle. Marking a done task again
// flips it back to not done.
func (c *CLI) markAsDone(args string) error {
	t, err := c.toggle(CommandMark, args)
	if err != nil {
		return err
	}
	c.ui.Show("Nice! I've marked this task as done:", "  "+c.ui.Render(t))
	return nil
}

func (c *CLI) markAsNotDone(args string) error {
	t, err := c.toggle(CommandUnmark, args)
	if err != nil {
		return err
	}
	c.ui.Show("OK, I've marked this task as not done yet:", "  "+c.ui.Render(t))
	return nil
}

func (c *CLI) toggle(keyword, args string) (*task.Task, error) {
	if args == "" {
		return nil, fmt.Errorf("%w: %s needs a task number", task.ErrMalformedArguments, keyword)
	}
	index, err := strconv.Atoi(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a task number", task.ErrMalformedArguments, args)
	}
	return c.Store.ToggleTask(index)
}
