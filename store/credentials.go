package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	keyCredentials = "soundx:credentials"
	keyDevice      = "soundx:device-id"
)

// Credentials is the persisted backend binding. Password is kept only for
// Subsonic bindings, where every request re-derives a token from it; native
// bindings persist the session token instead.
type Credentials struct {
	Source   string `json:"source"` // "native" or "subsonic"
	BaseURL  string `json:"baseUrl"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
}

// SaveCredentials persists the active binding.
func SaveCredentials(ctx context.Context, creds Credentials) error {
	if Client == nil {
		return fmt.Errorf("store not connected")
	}
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return Client.Set(ctx, keyCredentials, raw, 0).Err()
}

// LoadCredentials returns the persisted binding, or (nil, nil) when none
// exists.
func LoadCredentials(ctx context.Context) (*Credentials, error) {
	if Client == nil {
		return nil, nil
	}
	raw, err := Client.Get(ctx, keyCredentials).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return &creds, nil
}

// ClearCredentials removes the persisted binding (forced logout).
func ClearCredentials(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Del(ctx, keyCredentials).Err()
}
