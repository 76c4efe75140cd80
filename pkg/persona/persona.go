// Package persona loads the opaque prompt bundles keyed by role. The
// core never interprets a bundle; the only structured part is the
// role's output schema, which lives in pkg/contract.
package persona

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/maestroworks/maestro/pkg/models"
)

// cacheTTL bounds how long a loaded bundle is served before the file
// is re-read, so prompt edits land without a restart.
const cacheTTL = 5 * time.Minute

type cacheEntry struct {
	content  string
	loadedAt time.Time
}

// Store serves persona bundles from <dir>/<role>.md with a TTL cache.
// Missing files fall back to a minimal built-in persona.
type Store struct {
	dir string

	mu      sync.RWMutex
	entries map[models.Role]*cacheEntry
}

// NewStore creates a Store rooted at dir. The directory does not have
// to exist; every role then serves its fallback persona.
func NewStore(dir string) *Store {
	return &Store{
		dir:     dir,
		entries: make(map[models.Role]*cacheEntry),
	}
}

// Get returns the persona bundle for a role.
func (s *Store) Get(role models.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	s.mu.RLock()
	entry, ok := s.entries[role]
	s.mu.RUnlock()
	if ok && time.Since(entry.loadedAt) <= cacheTTL {
		return entry.content, nil
	}

	content, err := s.load(role)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[role] = &cacheEntry{content: content, loadedAt: time.Now()}
	s.mu.Unlock()
	return content, nil
}

func (s *Store) load(role models.Role) (string, error) {
	path := filepath.Join(s.dir, string(role)+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fallback(role), nil
		}
		return "", fmt.Errorf("reading persona %s: %w", path, err)
	}
	return string(data), nil
}

// fallback is the minimal persona used when no bundle file exists.
func fallback(role models.Role) string {
	return fmt.Sprintf(
		"You are the %s agent in a software delivery pipeline. "+
			"Respond with a single JSON object matching your role's output schema.", role)
}
