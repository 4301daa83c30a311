package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saberalex11/education/internal/models"
)

// FilesystemUserStore keeps one JSON file per user under basePath/users.
type FilesystemUserStore struct {
	basePath string
}

func NewFilesystemUserStore(basePath string) (*FilesystemUserStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base path %s: %w", basePath, err)
	}

	usersPath := filepath.Join(basePath, "users")
	if err := os.MkdirAll(usersPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create users path: %w", err)
	}

	return &FilesystemUserStore{
		basePath: basePath,
	}, nil
}

func (f *FilesystemUserStore) userPath(phoneNum string) string {
	return filepath.Join(f.basePath, "users", phoneNum+".json")
}

func (f *FilesystemUserStore) GetUser(_ context.Context, phoneNum string) (*models.User, error) {
	data, err := os.ReadFile(f.userPath(phoneNum))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (f *FilesystemUserStore) SaveUser(_ context.Context, user *models.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := os.WriteFile(f.userPath(user.PhoneNum), data, 0644); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}

	return nil
}

func (f *FilesystemUserStore) UserExists(_ context.Context, phoneNum string) (bool, error) {
	_, err := os.Stat(f.userPath(phoneNum))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user file: %w", err)
	}

	return true, nil
}
