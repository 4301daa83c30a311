package clients

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/saberalex11/education/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no client exists for a client id.
var ErrNotFound = errors.New("client not found")

// Registry looks up client records by client id. The registry is the sole
// source of truth for client credentials.
type Registry interface {
	Find(ctx context.Context, clientID string) (*models.Client, error)
}

// MemoryRegistry serves client records from an in-memory map. The map is
// built once at startup and never mutated, so lookups need no locking.
type MemoryRegistry struct {
	clients map[string]*models.Client
}

func NewMemoryRegistry(clients []models.Client) *MemoryRegistry {
	byID := make(map[string]*models.Client, len(clients))
	for i := range clients {
		byID[clients[i].ID] = &clients[i]
	}
	return &MemoryRegistry{clients: byID}
}

func (r *MemoryRegistry) Find(_ context.Context, clientID string) (*models.Client, error) {
	client, exists := r.clients[clientID]
	if !exists {
		return nil, ErrNotFound
	}
	return client, nil
}

type clientsFile struct {
	Clients []models.Client `yaml:"clients"`
}

// LoadFromFile reads client records from a YAML file.
func LoadFromFile(path string) ([]models.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file %s: %w", path, err)
	}

	var file clientsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse clients file %s: %w", path, err)
	}

	for _, c := range file.Clients {
		if c.ID == "" || c.Secret == "" {
			return nil, fmt.Errorf("clients file %s: every client needs an id and a secret", path)
		}
	}

	return file.Clients, nil
}
