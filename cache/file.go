package cache

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// CacheFileName is the name of the translations file inside the cache directory.
const CacheFileName = "translations.json"

// DefaultCacheDir is the conventional cache directory name.
const DefaultCacheDir = ".ai-translator-cache"

// FileStore is a persistent translation cache backed by a single JSON file
// mapping composite keys to formatted translations. The file is
// human-readable and recreated when absent.
//
// Writes accumulate in memory and reach disk on Flush as a whole-file
// overwrite. Two processes racing on the same file lose unflushed entries
// of one writer, never corrupt the file.
type FileStore struct {
	path   string
	data   map[string]string
	dirty  bool
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewFileStore opens (or creates) the cache directory and loads the
// translations file. An unreadable or corrupt file degrades to an empty
// cache with a warning instead of failing the run.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		dir = DefaultCacheDir
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	s := &FileStore{
		path:   filepath.Join(dir, CacheFileName),
		data:   make(map[string]string),
		logger: logger,
	}
	s.load()
	return s, nil
}

// load reads the backing file into memory. Missing file = empty cache.
func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("cache file unreadable, starting with empty cache", "path", s.path, "error", err)
		}
		return
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("cache file corrupt, starting with empty cache", "path", s.path, "error", err)
		return
	}
	s.data = data
}

// Get retrieves a cached translation.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a translation in memory. It becomes durable on the next Flush.
func (s *FileStore) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.dirty = true
	return nil
}

// Flush rewrites the backing file with the current entries. A no-op when
// nothing changed since the last flush.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Entries returns a snapshot of all entries.
func (s *FileStore) Entries() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Len returns the number of entries.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Verify FileStore implements Store and Enumerable
var (
	_ Store      = (*FileStore)(nil)
	_ Enumerable = (*FileStore)(nil)
)
