package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore keeps the record as indented JSON in a single file. Writes are
// not atomic and there is no locking.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(_ context.Context, record TokenRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return LoadResult{Err: err}
	}
	var record TokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return LoadResult{Err: fmt.Errorf("decode %s: %w", s.path, err)}
	}
	return LoadResult{Record: record}
}
