package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saberalex11/education/internal/models"
)

// RedisTokenStore persists token bindings in Redis with a TTL matching the
// token expiry, so expired tokens vanish without a cleanup pass.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
	}
}

func tokenKey(tokenValue string) string {
	return fmt.Sprintf("access_token:%s", tokenValue)
}

func (r *RedisTokenStore) Store(ctx context.Context, token *models.AccessToken, auth *models.OAuthAuthentication) error {
	binding := TokenBinding{Token: token, Auth: auth}

	data, err := json.Marshal(binding)
	if err != nil {
		return fmt.Errorf("failed to marshal token binding: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token already expired")
	}

	if err := r.client.Set(ctx, tokenKey(token.Value), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save token binding: %w", err)
	}

	return nil
}

func (r *RedisTokenStore) Lookup(ctx context.Context, tokenValue string) (*models.OAuthAuthentication, error) {
	data, err := r.client.Get(ctx, tokenKey(tokenValue)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token binding: %w", err)
	}

	var binding TokenBinding
	if err := json.Unmarshal([]byte(data), &binding); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token binding: %w", err)
	}

	if binding.Token.Expired() {
		r.client.Del(ctx, tokenKey(tokenValue))
		return nil, nil
	}

	return binding.Auth, nil
}

func (r *RedisTokenStore) Remove(ctx context.Context, tokenValue string) error {
	return r.client.Del(ctx, tokenKey(tokenValue)).Err()
}
