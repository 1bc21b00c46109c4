package prefs

import "github.com/csheth/wiki/internal/log"

type loggedStore struct {
	next Store
}

// Logged wraps a store so failures are recorded in the debug log. Errors
// still reach the caller unchanged.
func Logged(next Store) Store {
	if next == nil {
		return nil
	}
	return loggedStore{next: next}
}

func (s loggedStore) Get(key string) (string, bool, error) {
	value, ok, err := s.next.Get(key)
	if err != nil {
		log.ErrorErr(log.CatPrefs, "read failed", err, "key", key)
		return value, ok, err
	}
	log.Debug(log.CatPrefs, "read", "key", key, "found", ok)
	return value, ok, nil
}

func (s loggedStore) Set(key, value string) error {
	if err := s.next.Set(key, value); err != nil {
		log.ErrorErr(log.CatPrefs, "write failed", err, "key", key)
		return err
	}
	log.Debug(log.CatPrefs, "write", "key", key, "value", value)
	return nil
}
