package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the shell configuration. The backend a user is actually bound
// to at runtime comes from the credential store; the values here are defaults
// and infrastructure settings.
type Config struct {
	ListenAddr string // local IPC/server address
	APIBaseURL string // native backend base URL
	ClientName string // client name sent to Subsonic servers (the "c" param)
	CacheDir   string // audio cache directory
	LogLevel   string
	LogPath    string
	// Redis, used as the credential/history key-value store.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load will not override variables already set in the environment.
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	cacheDir := getEnv("CACHE_DIR", "")
	if cacheDir == "" {
		if userCache, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(userCache, "soundx", "audio_cache")
		} else {
			cacheDir = filepath.Join("data", "audio_cache")
		}
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", "127.0.0.1:8090"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://127.0.0.1:3000"),
		ClientName:    getEnv("CLIENT_NAME", "SoundX"),
		CacheDir:      cacheDir,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPath:       getEnv("LOG_PATH", ""),
		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}
