package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string
	Env        string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	SQLitePath string

	RedisURL string
	RedisTTL time.Duration

	DefaultPageSize int
	MaxPageSize     int
}

func LoadConfig() Config {
	ttlStr := getEnv("REDIS_TTL", "30s")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 30 * time.Second
	}

	return Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Env:             getEnv("ENV", "dev"),
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DBHost:          getEnv("DB_HOST", "postgres"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPass:          getEnv("DB_PASSWORD", "password"),
		DBName:          getEnv("DB_NAME", "db_motioncooking"),
		SQLitePath:      getEnv("SQLITE_PATH", "motioncooking.db"),
		RedisURL:        getEnv("REDIS_URL", "redis:6379"),
		RedisTTL:        ttl,
		DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
