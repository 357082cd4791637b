package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	SessionKeyPrefix       string
	SessionTTLSeconds      int
	RateLimit              int
	RestrictReferencedDel  bool
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := getEnv("REDIS_PORT", "6379")

	// No REDIS_HOST means sessions are kept in process memory.
	redisAddr := ""
	if redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "repairdesk.db"),
		RedisAddr:              redisAddr,
		SessionKeyPrefix:       getEnv("SESSION_KEY_PREFIX", "session:"),
		SessionTTLSeconds:      getEnvAsInt("SESSION_TTL_SECONDS", 86400),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RestrictReferencedDel:  getEnvAsBool("RESTRICT_REFERENCED_DELETES", false),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.SessionTTLSeconds <= 0 {
		log.Fatal("SESSION_TTL_SECONDS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
