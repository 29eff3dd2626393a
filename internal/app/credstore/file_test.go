package credstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, err)

	testStoreContract(t, s)
}

func TestFileStoreCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "users.txt")

	_, err := NewFileStore(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileStoreKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("ada@example.com,Ada,h1\n"), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	users, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", users["ada@example.com"].Name)
}

func TestFileStoreAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Append(ctx, Record{Email: "B@x.y", Name: "Bee, B", PasswordHash: "h1"}))
	require.NoError(t, s.Append(ctx, Record{Email: "b@x.y", Name: "Bee", PasswordHash: "h2"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b@x.y,Bee  B,h1\nb@x.y,Bee,h2\n", string(data))
}

func TestFileStoreRecreatesDeletedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	users, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewFileStoreFailsOnDirectory(t *testing.T) {
	_, err := NewFileStore(t.TempDir())
	assert.Error(t, err)
}

func TestFileStoreLoadsAfterLongRecord(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, err)

	ctx := context.Background()
	longName := strings.Repeat("x", 1<<20)
	require.NoError(t, s.Append(ctx, Record{Email: "ada@example.com", Name: "Ada", PasswordHash: "h1"}))
	require.NoError(t, s.Append(ctx, Record{Email: "long@example.com", Name: longName, PasswordHash: "h2"}))

	users, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", users["ada@example.com"].Name)
	assert.Len(t, users["long@example.com"].Name, len(longName))
}
