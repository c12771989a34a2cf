package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

type Config struct {
	Port          string
	StoreBackend  string
	DBDSN         string
	RedisAddr     string
	RedisDB       int
	RedisPrefix   string
	DefaultLocale string
	SaveTimeout   time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          envOrDefault("APP_PORT", "8082"),
		StoreBackend:  envOrDefault("STORE_BACKEND", BackendPostgres),
		DBDSN:         envOrDefault("DB_DSN", ""),
		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisDB:       envInt("REDIS_DB", 0),
		RedisPrefix:   envOrDefault("REDIS_PREFIX", "scoreboard:"),
		DefaultLocale: envOrDefault("DEFAULT_LOCALE", "pt-BR"),
		SaveTimeout:   envDuration("SAVE_TIMEOUT", 2*time.Second),
	}

	switch cfg.StoreBackend {
	case BackendPostgres:
		if cfg.DBDSN == "" {
			log.Fatal("DB_DSN must be set for the postgres backend")
		}
	case BackendRedis, BackendMemory:
	default:
		log.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := envOrDefault(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := envOrDefault(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
