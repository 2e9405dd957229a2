package filecache

import (
	"os"
	"sync"
	"time"
)

type entry[T any] struct {
	value   T
	modTime time.Time
	size    int64
}

// Cache keeps one decoded value per file path and reloads it when the
// file's modification time or size changes. Values handed out are shared
// and must be treated as read-only.
type Cache[T any] struct {
	mutex   sync.RWMutex
	entries map[string]entry[T]
}

func New[T any]() *Cache[T] {
	return &Cache[T]{
		entries: map[string]entry[T]{},
	}
}

// Get returns the cached value for path, calling load when there is no
// entry or the file has changed. Load errors are never cached.
func (c *Cache[T]) Get(path string, load func(path string) (T, error)) (T, error) {
	fileInfo, statErr := os.Stat(path)
	if statErr != nil {
		c.Invalidate(path)

		return load(path)
	}

	c.mutex.RLock()
	cached, exists := c.entries[path]
	c.mutex.RUnlock()

	if exists && cached.modTime.Equal(fileInfo.ModTime()) && cached.size == fileInfo.Size() {
		return cached.value, nil
	}

	value, err := load(path)
	if err != nil {
		c.Invalidate(path)

		return value, err
	}

	c.mutex.Lock()
	c.entries[path] = entry[T]{
		value:   value,
		modTime: fileInfo.ModTime(),
		size:    fileInfo.Size(),
	}
	c.mutex.Unlock()

	return value, nil
}

func (c *Cache[T]) Invalidate(path string) {
	c.mutex.Lock()
	delete(c.entries, path)
	c.mutex.Unlock()
}
