package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend BackendConfig
	Session SessionConfig
	CheckIn CheckInConfig
	Return  ReturnConfig
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TokenPath string
}

type CheckInConfig struct {
	Gate         string
	DeviceID     string
	ScanInterval time.Duration
	FrameDir     string
}

type ReturnConfig struct {
	ListenAddr string
	Path       string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Backend: BackendConfig{
			BaseURL: getEnv("EVENTHUB_API_URL", "http://localhost:8080"),
			Timeout: time.Duration(getEnvAsInt("EVENTHUB_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Session: SessionConfig{
			TokenPath: getEnv("EVENTHUB_TOKEN_FILE", defaultTokenPath()),
		},
		CheckIn: CheckInConfig{
			Gate:         getEnv("EVENTHUB_GATE", ""),
			DeviceID:     getEnv("EVENTHUB_DEVICE_ID", ""),
			ScanInterval: time.Duration(getEnvAsInt("EVENTHUB_SCAN_INTERVAL_MS", 100)) * time.Millisecond,
			FrameDir:     getEnv("EVENTHUB_FRAME_DIR", ""),
		},
		Return: ReturnConfig{
			ListenAddr: getEnv("EVENTHUB_RETURN_ADDR", "localhost:4280"),
			Path:       getEnv("EVENTHUB_RETURN_PATH", "/payment/return"),
		},
	}

	return config, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "eventhub-tokens.json"
	}
	return filepath.Join(dir, "eventhub", "tokens.json")
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
