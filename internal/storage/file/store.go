package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// DefaultPath is the task file location, relative to the working directory.
var DefaultPath = filepath.Join("data", "taskList.txt")

// FileStore implements the storage.Storage interface using a flat file with
// one pipe-delimited task per line.
type FileStore struct {
	filePath string
	isActive bool
}

// NewFileStore creates a new instance of FileStore
func NewFileStore(filePath string) *FileStore {
	if filePath == "" {
		filePath = DefaultPath
	}
	return &FileStore{filePath: filePath}
}

// Path returns the location of the task file.
func (f *FileStore) Path() string {
	return f.filePath
}

// Connect creates the parent directory and an empty task file if they do
// not exist yet.
func (f *FileStore) Connect() error {
	if f.isActive {
		return fmt.Errorf("store is already connected")
	}

	if err := os.MkdirAll(filepath.Dir(f.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if _, err := os.Stat(f.filePath); os.IsNotExist(err) {
		if err := os.WriteFile(f.filePath, nil, 0644); err != nil {
			return fmt.Errorf("failed to initialize file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	f.isActive = true
	return nil
}

// Close marks the store as closed. Every save is already on disk.
func (f *FileStore) Close() error {
	if !f.isActive {
		return fmt.Errorf("store is already closed")
	}
	f.isActive = false
	return nil
}

// Load reads the task file into ts.
func (f *FileStore) Load(ctx context.Context, ts *task.TaskStore) error {
	if err := f.checkActive(ctx); err != nil {
		return err
	}

	file, err := os.Open(f.filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := ts.Decode(file); err != nil {
		return fmt.Errorf("failed to load %s: %w", f.filePath, err)
	}
	return nil
}

// Save rewrites the whole task file from ts. The content goes to a temp
// file first and is renamed over the old one.
func (f *FileStore) Save(ctx context.Context, ts *task.TaskStore) error {
	if err := f.checkActive(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ts.Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	tmp := f.filePath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, f.filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

func (f *FileStore) checkActive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !f.isActive {
		return storage.ErrStorageConnection
	}
	return nil
}
