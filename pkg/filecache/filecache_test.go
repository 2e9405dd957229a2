package filecache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReloadsOnModification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	loads := 0
	load := func(path string) (string, error) {
		loads++
		contents, err := os.ReadFile(path)
		return string(contents), err
	}

	cache := New[string]()

	value, err := cache.Get(path, load)
	require.NoError(t, err)
	assert.Equal(t, "one", value)

	value, err = cache.Get(path, load)
	require.NoError(t, err)
	assert.Equal(t, "one", value)
	assert.Equal(t, 1, loads)

	require.NoError(t, os.WriteFile(path, []byte("two!"), 0644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	value, err = cache.Get(path, load)
	require.NoError(t, err)
	assert.Equal(t, "two!", value)
	assert.Equal(t, 2, loads)
}

func TestCacheDoesNotKeepErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	failure := errors.New("nope")

	cache := New[int]()

	_, err := cache.Get(path, func(string) (int, error) { return 0, failure })
	assert.ErrorIs(t, err, failure)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	value, err := cache.Get(path, func(string) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}
