package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Storage      string
	HTTPAddr     string
	LogLevel     string
	PostsPerPage int

	DB         DBConfig
	SQLitePath string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN is the lib/pq connection string for the configured database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// LoadEnv loads .env from the working directory. A missing file is not an
// error, the process environment is used as is.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads the configuration from .env and the environment.
func Load() (Config, error) {
	if err := LoadEnv(); err != nil {
		return Config{}, err
	}

	perPage, err := strconv.Atoi(GetEnv("POSTS_PER_PAGE", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("POSTS_PER_PAGE: %w", err)
	}
	if perPage <= 0 {
		return Config{}, fmt.Errorf("POSTS_PER_PAGE must be positive, got %d", perPage)
	}

	cfg := Config{
		Storage:      GetEnv("STORAGE", StorageMemory),
		HTTPAddr:     GetEnv("HTTP_ADDR", ":8080"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		PostsPerPage: perPage,
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     GetEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		SQLitePath: GetEnv("SQLITE_PATH", "board.db"),
	}

	return cfg, nil
}

// Validate checks the settings the selected storage backend depends on.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite:
		return nil
	case StoragePostgres:
		for key, value := range map[string]string{
			"DB_HOST": c.DB.Host,
			"DB_USER": c.DB.User,
			"DB_NAME": c.DB.Name,
		} {
			if value == "" {
				return fmt.Errorf("environment variable %s is not set", key)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage)
	}
}

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
