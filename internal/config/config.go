package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env      string
	HTTPPort string
	MongoURI string
	MongoDB  string
	// JWTSecret signs the bearer tokens; TokenTTL is their lifetime.
	JWTSecret string
	TokenTTL  time.Duration
	RateRPS   int
}

func Load() Config {
	return Config{
		Env:       get("APP_ENV", "dev"),
		HTTPPort:  get("HTTP_PORT", "3003"),
		MongoURI:  get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   get("MONGO_DB", "bloglist"),
		JWTSecret: get("JWT_SECRET", "changeme-secret"),
		TokenTTL:  time.Duration(getInt("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		RateRPS:   getInt("RATE_RPS", 100),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
