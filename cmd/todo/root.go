package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/tiwariParth/go-todo-cli/internal/app"
	taskcli "github.com/tiwariParth/go-todo-cli/internal/cli"
	"github.com/tiwariParth/go-todo-cli/internal/storage/file"
)

// newRootCommand returns the top-level command. The session reads commands
// from in and writes the transcript to out.
func newRootCommand(logger *log.Logger, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Track todos, deadlines and events from an interactive prompt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the task file",
				Value:   file.DefaultPath,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				logger.SetLevel(log.DebugLevel)
			}
			return runSession(ctx, cmd, logger, in, out)
		},
	}
}

func runSession(ctx context.Context, cmd *cli.Command, logger *log.Logger, in io.Reader, out io.Writer) error {
	store := file.NewFileStore(cmd.String("file"))
	ui := taskcli.NewUI(out, cmd.Bool("no-color"))

	session := app.NewTodoApp(store, ui, logger)
	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Stop()

	logger.Debug("session started", "file", store.Path())
	return session.Run(ctx, in)
}
