package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreContract exercises the behavior every backend shares.
func testStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	users, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, s.Append(ctx, Record{Email: "Ada@Example.com", Name: "Ada, Countess", PasswordHash: "h1"}))
	require.NoError(t, s.Append(ctx, Record{Email: "grace@example.com", Name: "Grace", PasswordHash: "h2"}))

	users, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, Record{Email: "ada@example.com", Name: "Ada  Countess", PasswordHash: "h1"}, users["ada@example.com"])
	assert.Equal(t, "Grace", users["grace@example.com"].Name)

	require.NoError(t, s.Append(ctx, Record{Email: "ADA@example.com", Name: "Ada Again", PasswordHash: "h3"}))

	users, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada Again", users["ada@example.com"].Name, "last occurrence wins")
	assert.Equal(t, "h3", users["ada@example.com"].PasswordHash)
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreKeepsDuplicates(t *testing.T) {
	s := NewMemoryStore(Record{Email: "A@b.c", Name: "One", PasswordHash: "h"})
	require.NoError(t, s.Append(context.Background(), Record{Email: "a@b.c", Name: "Two", PasswordHash: "h"}))

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a@b.c", records[0].Email)
}

func TestMemoryStoreHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Append(ctx, Record{Email: "a@b.c", PasswordHash: "h"}), context.Canceled)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("ADA@Example.Com"))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a b c d", SanitizeName("a,b\rc\nd"))
}
