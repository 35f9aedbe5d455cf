package utils

import (
	"os"
	"strconv"
	"time"
)

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func GetEnvBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// GetEnvSeconds reads an integer number of seconds.
func GetEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(GetEnvInt(key, fallback)) * time.Second
}
