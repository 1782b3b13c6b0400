package store

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DeviceID returns this install's stable device identifier, creating and
// persisting one on first use. Without a store connection a fresh id is
// returned each call.
func DeviceID(ctx context.Context) string {
	if Client == nil {
		return uuid.NewString()
	}
	id, err := Client.Get(ctx, keyDevice).Result()
	if err == nil && id != "" {
		return id
	}
	if err != nil && err != redis.Nil {
		return uuid.NewString()
	}
	id = uuid.NewString()
	_ = Client.Set(ctx, keyDevice, id, 0).Err()
	return id
}

// DeviceName builds a human-readable device name from the hostname and
// platform, e.g. "studio (Linux)".
func DeviceName() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "SoundX Device"
	}
	hostname = strings.TrimSuffix(hostname, ".local")

	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("%s (Mac)", hostname)
	case "windows":
		return fmt.Sprintf("%s (Windows)", hostname)
	case "linux":
		return fmt.Sprintf("%s (Linux)", hostname)
	}
	return hostname
}
