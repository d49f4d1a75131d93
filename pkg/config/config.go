package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	FirestoreProject  string
	Environment       string
	KnockAPIKey       string
	KnockLikeWorkflow string
	NotifyTimeout     time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		FirestoreProject:  getEnv("FIRESTORE_PROJECT_ID", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
		KnockAPIKey:       getEnv("KNOCK_API_KEY", ""),
		KnockLikeWorkflow: getEnv("KNOCK_LIKE_WORKFLOW", "like-unlike"),
		NotifyTimeout:     time.Duration(getEnvAsInt64("NOTIFY_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
