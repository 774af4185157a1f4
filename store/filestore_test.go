package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentride/car-rental-api/store"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	assert.NoError(t, err)

	ctx := context.Background()
	in := []string{"a", "b", "c"}
	assert.NoError(t, s.Put(ctx, "things", in))

	var out []string
	assert.NoError(t, s.Get(ctx, "things", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreGetMissingKey(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	var out []string
	err = s.Get(context.Background(), "nothing", &out)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := store.NewFileStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, s1.Put(ctx, store.KeyDarkMode, "true"))

	s2, err := store.NewFileStore(dir)
	assert.NoError(t, err)
	var v string
	assert.NoError(t, s2.Get(ctx, store.KeyDarkMode, &v))
	assert.Equal(t, "true", v)
}

func TestFileStoreLastWriterWins(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, s.Put(ctx, "k", []int{1}))
	assert.NoError(t, s.Put(ctx, "k", []int{2, 3}))

	var out []int
	assert.NoError(t, s.Get(ctx, "k", &out))
	assert.Equal(t, []int{2, 3}, out)
}

func TestFileStoreDelete(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, s.Put(ctx, "k", "v"))
	assert.NoError(t, s.Delete(ctx, "k"))

	var v string
	assert.ErrorIs(t, s.Get(ctx, "k", &v), store.ErrNotFound)

	// deleting an absent key is fine
	assert.NoError(t, s.Delete(ctx, "k"))
}
