package booking

import "github.com/travigo/eventcoach/pkg/filecache"

// Store serves the bookings table for the life of the process,
// re-reading it only when the file changes on disk
type Store struct {
	Path string

	cache *filecache.Cache[[]*Record]
}

func NewStore(path string) *Store {
	return &Store{
		Path:  path,
		cache: filecache.New[[]*Record](),
	}
}

func (s *Store) Records() ([]*Record, error) {
	return s.cache.Get(s.Path, LoadRecords)
}

func (s *Store) Resolve(userCode string) ([]*Record, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}

	return Resolve(records, userCode), nil
}
