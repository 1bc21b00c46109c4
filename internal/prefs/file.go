package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	stateEnvVar    = "WIKI_STATE_FILE"
	stateSubdir    = "wiki"
	stateFileName  = "state.yaml"
	stateTempGlob  = ".state.yaml.tmp.*"
	stateFileMode  = 0o644
	stateDirectory = 0o755
)

// FileStore keeps preferences in a flat YAML mapping on disk. Every Set
// rewrites the whole file through a temp file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created lazily
// on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the state file location: $WIKI_STATE_FILE, then the
// user config dir, then the temp dir.
func DefaultPath() string {
	if path := os.Getenv(stateEnvVar); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, stateSubdir, stateFileName)
}

// Path is the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set implements Store.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if values == nil {
		values = map[string]string{}
	}
	values[key] = value
	return s.write(values)
}

func (s *FileStore) load() (map[string]string, error) {
	if s.path == "" {
		return nil, ErrUnavailable
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	if s.path == "" {
		return ErrUnavailable
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, stateDirectory); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	temp, err := os.CreateTemp(dir, stateTempGlob)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()
	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, stateFileMode); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("setting state file mode: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
