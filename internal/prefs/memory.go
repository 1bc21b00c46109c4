package prefs

import gocache "github.com/patrickmn/go-cache"

// MemoryStore keeps preferences for the lifetime of the process only.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, found := s.cache.Get(key)
	if !found {
		return "", false, nil
	}
	str, ok := value.(string)
	return str, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	s.cache.Set(key, value, gocache.NoExpiration)
	return nil
}
