package memory

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// MemoryStore implements the storage.Storage interface in memory. It keeps
// the encoded file content, so it goes through the same line format as the
// file store.
type MemoryStore struct {
	data     []byte
	saves    int
	isActive bool
}

// NewMemoryStore creates a new instance of MemoryStore holding the given
// file content.
func NewMemoryStore(content string) *MemoryStore {
	return &MemoryStore{data: []byte(content)}
}

// Connect initializes the memory store
func (m *MemoryStore) Connect() error {
	if m.isActive {
		return fmt.Errorf("store is already connected")
	}
	m.isActive = true
	return nil
}

// Close cleans up resources
func (m *MemoryStore) Close() error {
	if !m.isActive {
		return fmt.Errorf("store is already closed")
	}
	m.isActive = false
	return nil
}

// Load decodes the stored content into ts.
func (m *MemoryStore) Load(ctx context.Context, ts *task.TaskStore) error {
	if err := m.checkActive(ctx); err != nil {
		return err
	}
	return ts.Decode(bytes.NewReader(m.data))
}

// Save replaces the stored content with the encoding of ts.
func (m *MemoryStore) Save(ctx context.Context, ts *task.TaskStore) error {
	if err := m.checkActive(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ts.Encode(&buf); err != nil {
		return err
	}
	m.data = buf.Bytes()
	m.saves++
	return nil
}

// Content returns the stored content as it would appear on disk.
func (m *MemoryStore) Content() string {
	return string(m.data)
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	return m.saves
}

func (m *MemoryStore) checkActive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.isActive {
		return storage.ErrStorageConnection
	}
	return nil
}
