package config

import (
	"fmt"
	"os"
	"time"
)

// Default endpoint of the managed session-exchange service. Overridable
// with AUTH_URL for tests and staging.
const DefaultAuthURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"

type Config struct {
	MongoURL   string
	DBName     string
	Port       string
	AuthURL    string
	RedisAddr  string // empty disables the cart cache
	SessionTTL time.Duration
}

// Load reads configuration from the environment. MONGO_URL and DB_NAME
// are required; everything else has a sensible default.
func Load() (*Config, error) {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, fmt.Errorf("missing env: MONGO_URL")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("missing env: DB_NAME")
	}

	return &Config{
		MongoURL:   mongoURL,
		DBName:     dbName,
		Port:       getEnv("PORT", "8080"),
		AuthURL:    getEnv("AUTH_URL", DefaultAuthURL),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		SessionTTL: 7 * 24 * time.Hour,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
