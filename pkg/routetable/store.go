package routetable

import (
	"fmt"
	"strings"

	"github.com/travigo/eventcoach/pkg/filecache"
)

type Store struct {
	Files Files

	cache *filecache.Cache[*Route]
}

func NewStore(files Files) *Store {
	return &Store{
		Files: files,
		cache: filecache.New[*Route](),
	}
}

// Get returns the cached timetable for a route id. The returned route is
// shared with other callers and must not be modified.
func (s *Store) Get(id string) (*Route, error) {
	id = strings.TrimSpace(id)
	if !ValidID(id) {
		return nil, fmt.Errorf("%w: invalid route id %q", ErrRouteNotFound, id)
	}

	return s.cache.Get(s.Files.Path(id), func(path string) (*Route, error) {
		return loadFile(path, id)
	})
}
