package credstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// FileStore keeps records in a text file, one "email,name,hash" line each.
// The file is read in full on every Load. Appends are not locked.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path, creating it empty if missing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensure creates the backing file and its directory if they do not exist.
func (s *FileStore) ensure() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create users directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, fileMode)
	if err != nil {
		return fmt.Errorf("create users file %s: %w", s.path, err)
	}
	return f.Close()
}

// Load reads and parses the whole file.
func (s *FileStore) Load(ctx context.Context) (map[string]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ensure(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read users file %s: %w", s.path, err)
	}

	users, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parse users file %s: %w", s.path, err)
	}
	return users, nil
}

// Append writes rec as a single line at the end of the file.
func (s *FileStore) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return fmt.Errorf("open users file %s: %w", s.path, err)
	}

	if _, err := f.WriteString(FormatRecord(rec)); err != nil {
		_ = f.Close()
		return fmt.Errorf("append to users file %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close users file %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is opened per call.
func (s *FileStore) Close() error {
	return nil
}
