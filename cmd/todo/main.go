package main

import (
	"context"
	"os"

	"github.com/tiwariParth/go-todo-cli/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, logging.DefaultOptions())

	cmd := newRootCommand(logger, os.Stdin, os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}
