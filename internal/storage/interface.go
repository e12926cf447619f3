package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// Common errors that can be returned by any storage implementation
var (
	ErrStorageConnection = errors.New("storage connection error")
)

// Storage persists the whole task list. Save always rewrites the full list;
// there is no incremental update.
type Storage interface {
	// Connect prepares the backing medium, creating it empty if needed.
	Connect() error

	// Load replaces the contents of ts with the persisted list.
	Load(ctx context.Context, ts *task.TaskStore) error

	// Save overwrites the persisted list with the contents of ts.
	Save(ctx context.Context, ts *task.TaskStore) error

	Close() error
}
