package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Backend identifies which persistence engine the API runs against.
type Backend string

const (
	// BackendPostgres selects the relational adapter (GORM over a pgx pool).
	BackendPostgres Backend = "postgres"
	// BackendMongo selects the document adapter.
	BackendMongo Backend = "mongo"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds persistence configuration for both backends.
// Only the fields belonging to the selected backend are required.
type DatabaseConfig struct {
	Backend Backend

	// PostgreSQL
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int

	// MongoDB
	MongoURL    string
	MongoDBName string
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_BACKEND", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "realty")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB_NAME", "realty")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind environment variables
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Backend:     Backend(strings.ToLower(v.GetString("DB_BACKEND"))),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			PoolMin:     v.GetInt("DB_POOL_MIN"),
			PoolMax:     v.GetInt("DB_POOL_MAX"),
			MongoURL:    v.GetString("MONGO_URL"),
			MongoDBName: v.GetString("MONGO_DB_NAME"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Backend {
	case BackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Port == "" {
			return fmt.Errorf("DB_PORT is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
		if c.Database.PoolMin < 0 {
			return fmt.Errorf("DB_POOL_MIN must be non-negative")
		}
		if c.Database.PoolMax < 1 {
			return fmt.Errorf("DB_POOL_MAX must be at least 1")
		}
		if c.Database.PoolMin > c.Database.PoolMax {
			return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
		}
	case BackendMongo:
		if c.Database.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required")
		}
		if c.Database.MongoDBName == "" {
			return fmt.Errorf("MONGO_DB_NAME is required")
		}
	default:
		return fmt.Errorf("DB_BACKEND must be one of: postgres, mongo (got %q)", c.Database.Backend)
	}

	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
