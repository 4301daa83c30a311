package storage

import (
	"context"
	"sync"
	"time"

	"github.com/saberalex11/education/internal/models"
)

// MemoryTokenStore keeps token bindings in process memory. Bindings are
// dropped lazily on lookup and swept by a background cleanup routine.
type MemoryTokenStore struct {
	bindings map[string]*TokenBinding
	mu       sync.RWMutex
}

func NewMemoryTokenStore() *MemoryTokenStore {
	store := &MemoryTokenStore{
		bindings: make(map[string]*TokenBinding),
	}

	go store.cleanupRoutine()

	return store
}

func (m *MemoryTokenStore) Store(_ context.Context, token *models.AccessToken, auth *models.OAuthAuthentication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bindings[token.Value] = &TokenBinding{Token: token, Auth: auth}
	return nil
}

func (m *MemoryTokenStore) Lookup(_ context.Context, tokenValue string) (*models.OAuthAuthentication, error) {
	m.mu.RLock()
	binding, exists := m.bindings[tokenValue]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	if binding.Token.Expired() {
		m.mu.Lock()
		delete(m.bindings, tokenValue)
		m.mu.Unlock()
		return nil, nil
	}

	return binding.Auth, nil
}

func (m *MemoryTokenStore) Remove(_ context.Context, tokenValue string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.bindings, tokenValue)
	return nil
}

// Len reports the number of live bindings.
func (m *MemoryTokenStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bindings)
}

// cleanupRoutine runs every 5 minutes to drop expired bindings.
func (m *MemoryTokenStore) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}

func (m *MemoryTokenStore) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for value, binding := range m.bindings {
		if binding.Token.Expired() {
			delete(m.bindings, value)
		}
	}
}
