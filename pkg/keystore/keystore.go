package keystore

import (
	"os"
	"strings"
	"sync"
)

// envKeyName is the fallback when no key file has been saved.
const envKeyName = "ANTHROPIC_API_KEY"

// Store holds the AI credential on disk so analysts can configure it from
// the dashboard without restarting the service.
type Store struct {
	path string
	mu   sync.RWMutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Read returns the saved key, falling back to the environment. An empty
// string means no key is configured.
func (s *Store) Read() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data, err := os.ReadFile(s.path); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key
		}
	}
	return strings.TrimSpace(os.Getenv(envKeyName))
}

func (s *Store) Save(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(strings.TrimSpace(key)), 0600)
}

func (s *Store) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) Configured() bool {
	return s.Read() != ""
}
