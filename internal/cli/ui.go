package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tiwariParth/go-todo-cli/internal/task"
)

const linePrefix = "    "

// Separator frames the output of every command.
var Separator = strings.Repeat("_", 60)

const logo = ` ____        _
|  _ \ _   _| | _____
| | | | | | | |/ / _ \
| |_| | |_| |   <  __/
|____/ \__,_|_|\_\___|`

// UI writes indented, separator-framed output.
type UI struct {
	out  io.Writer
	red  *color.Color
	done *color.Color
}

// NewUI creates a UI writing to out. Colors follow fatih/color's terminal
// detection unless noColor is set.
func NewUI(out io.Writer, noColor bool) *UI {
	u := &UI{
		out:  out,
		red:  color.New(color.FgRed),
		done: color.New(color.FgGreen, color.Bold),
	}
	if noColor {
		u.red.DisableColor()
		u.done.DisableColor()
	}
	return u
}

// Show prints each message on its own line, indented. Embedded newlines are
// indented too.
func (u *UI) Show(messages ...string) {
	for _, m := range messages {
		for _, line := range strings.Split(m, "\n") {
			fmt.Fprintln(u.out, linePrefix+line)
		}
	}
}

// ShowSeparator prints the separator line.
func (u *UI) ShowSeparator() {
	u.Show(Separator)
}

// ShowGreeting prints the startup banner.
func (u *UI) ShowGreeting() {
	u.Show("Hello from", logo)
	u.ShowSeparator()
	u.Show("Hello! I'm Duke", "What can I do for you?")
	u.ShowSeparator()
}

// ShowError reports a failed command followed by a separator.
func (u *UI) ShowError(err error) {
	msg := err.Error()
	if errors.Is(err, ErrInvalidCommand) {
		msg = "I'm sorry, but I don't know what that means :-("
	}
	u.Show(u.red.Sprint("OOPS!!! " + msg))
	u.ShowSeparator()
}

// Render formats a task for display, coloring the done icon.
func (u *UI) Render(t *task.Task) string {
	icon := t.StatusIcon()
	if t.IsDone() {
		icon = u.done.Sprint(icon)
	}
	return "[" + t.Kind().Code() + "][" + icon + "] " + t.Description() + t.Suffix()
}
