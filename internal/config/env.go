package config

import (
	"os"
	"strconv"
)

// FromEnv loads configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Config {
	cfg := Default()

	if val := os.Getenv("BALLQUEST_DATA"); val != "" {
		cfg.DataDir = val
	}
	if val := os.Getenv("BALLQUEST_IMAGES"); val != "" {
		cfg.ImagesDir = val
	}
	if val := os.Getenv("BALLQUEST_OUT"); val != "" {
		cfg.OutDir = val
	}
	if val := os.Getenv("BALLQUEST_FONTS"); val != "" {
		cfg.FontDir = val
	}
	if val := getEnvInt("BALLQUEST_WORKERS"); val > 0 {
		cfg.Workers = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.Port = val
	}
	if val, err := strconv.ParseBool(os.Getenv("BALLQUEST_REMOTE_ARTWORK")); err == nil {
		cfg.RemoteArtwork = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return i
}
