// Package prefs persists small user preferences, such as the colour theme,
// across sessions.
package prefs

import "errors"

// KeyTheme holds the persisted colour theme ("light" or "dark").
const KeyTheme = "theme"

// ErrUnavailable reports that the backing medium cannot be used at all.
var ErrUnavailable = errors.New("preference store unavailable")

// Store is a string key-value preference medium. Get reports false when
// the key has never been written.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
