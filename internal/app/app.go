package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-todo-cli/internal/cli"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// TodoApp is one interactive session. It owns the task list and writes it
// back to storage after every command.
type TodoApp struct {
	store  storage.Storage
	tasks  *task.TaskStore
	ui     *cli.UI
	cli    *cli.CLI
	logger *log.Logger
}

// NewTodoApp wires a session around store. Output goes through ui.
func NewTodoApp(store storage.Storage, ui *cli.UI, logger *log.Logger) *TodoApp {
	tasks := task.NewTaskStore()
	return &TodoApp{
		store:  store,
		tasks:  tasks,
		ui:     ui,
		cli:    cli.NewCLI(tasks, ui),
		logger: logger,
	}
}

// Tasks returns the session's task list.
func (app *TodoApp) Tasks() *task.TaskStore {
	return app.tasks
}

// Start connects the storage and loads the saved task list. A corrupt
// task file is fatal.
func (app *TodoApp) Start(ctx context.Context) error {
	if err := app.store.Connect(); err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}
	if err := app.store.Load(ctx, app.tasks); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	app.logger.Debug("tasks loaded", "count", app.tasks.Len())
	return nil
}

// Stop closes the storage.
func (app *TodoApp) Stop() error {
	return app.store.Close()
}

// Run greets the user and executes one command per input line until bye or
// the end of input. User errors are reported and the loop goes on; storage
// errors end the session.
func (app *TodoApp) Run(ctx context.Context, in io.Reader) error {
	app.ui.ShowGreeting()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := app.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			app.logger.Debug("session ended by user")
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	app.logger.Debug("input closed")
	return nil
}

// Execute runs a single command line and saves the full list afterwards,
// whether or not the command succeeded. Only non-user errors are returned.
func (app *TodoApp) Execute(ctx context.Context, line string) (bool, error) {
	quit, err := app.cli.Execute(line)
	if err != nil {
		if !cli.IsUserError(err) {
			return false, err
		}
		app.logger.Debug("command rejected", "line", line, "error", err)
		app.ui.ShowError(err)
	} else {
		keyword, _ := cli.SplitCommand(line)
		app.logger.Debug("command executed", "command", keyword, "tasks", app.tasks.Len())
	}

	if err := app.store.Save(ctx, app.tasks); err != nil {
		return false, fmt.Errorf("save tasks: %w", err)
	}
	return quit, nil
}
