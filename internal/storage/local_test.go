package storage

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "radiographs/7/a.png", []byte("png-bytes"), "image/png"))
	assert.True(t, store.Exists("radiographs/7/a.png"))

	rc, err := store.Open(ctx, "radiographs/7/a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, "radiographs/7/a.png"))
	assert.False(t, store.Exists("radiographs/7/a.png"))

	// Deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "radiographs/7/a.png"))

	_, err = store.Open(ctx, "radiographs/7/a.png")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside.png", "/etc/passwd", "", "."} {
		err := store.Save(context.Background(), key, []byte("x"), "")
		assert.Error(t, err, key)
	}
}

func TestLocalStorage_SaveHonoursCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, "a.png", []byte("x"), ""), context.Canceled)
}

func TestIsValidContentType(t *testing.T) {
	assert.True(t, IsValidContentType("image/png"))
	assert.True(t, IsValidContentType("image/jpeg"))
	assert.False(t, IsValidContentType("application/pdf"))
}
