package credstore

import (
	"context"
	"errors"
	"fmt"

	"medauth/internal/app/storage"
)

const objectContentType = "text/plain; charset=utf-8"

// ObjectStore keeps the users file as a single object in object storage.
// Append rewrites the whole object, so concurrent appends may lose records.
type ObjectStore struct {
	svc storage.StorageService
	key string
}

// NewObjectStore returns a store backed by the object key, creating it empty
// if it does not exist.
func NewObjectStore(ctx context.Context, svc storage.StorageService, key string) (*ObjectStore, error) {
	s := &ObjectStore{svc: svc, key: key}
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ObjectStore) ensure(ctx context.Context) error {
	_, err := s.svc.GetObject(ctx, s.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("read users object %s: %w", s.key, err)
	}

	if err := s.svc.PutObject(ctx, s.key, nil, objectContentType); err != nil {
		return fmt.Errorf("create users object %s: %w", s.key, err)
	}
	return nil
}

// read returns the object content, empty if it has disappeared.
func (s *ObjectStore) read(ctx context.Context) ([]byte, error) {
	data, err := s.svc.GetObject(ctx, s.key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users object %s: %w", s.key, err)
	}
	return data, nil
}

func (s *ObjectStore) Load(ctx context.Context) (map[string]Record, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	users, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parse users object %s: %w", s.key, err)
	}
	return users, nil
}

func (s *ObjectStore) Append(ctx context.Context, rec Record) error {
	data, err := s.read(ctx)
	if err != nil {
		return err
	}

	if n := len(data); n > 0 && data[n-1] != '\n' {
		data = append(data, '\n')
	}
	data = append(data, FormatRecord(rec)...)

	if err := s.svc.PutObject(ctx, s.key, data, objectContentType); err != nil {
		return fmt.Errorf("write users object %s: %w", s.key, err)
	}
	return nil
}

func (s *ObjectStore) Close() error {
	return nil
}
