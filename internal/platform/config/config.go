// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Deployment modes decide how posts reach the users service.
const (
	DeploymentModeServerless    = "serverless"
	DeploymentModeMicroservices = "microservices"
)

// Transports for the users lookup in microservices mode.
const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

// Storage backends.
const (
	DatabaseTypeMemory   = "memory"
	DatabaseTypePostgres = "postgresql"
)

// Config is the configuration shared by every service binary.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Deployment DeploymentConfig `json:"deployment"`
	Database   DatabaseConfig   `json:"database"`
	Cache      CacheConfig      `json:"cache"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	GRPCPort int    `json:"grpcPort"`
	Debug    bool   `json:"debug"`
}

// DeploymentConfig describes how the services find each other.
type DeploymentConfig struct {
	Mode                  string        `json:"mode"`
	UsersServiceGRPCAddr  string        `json:"usersServiceGrpcAddr"`
	UsersServiceHTTPAddr  string        `json:"usersServiceHttpAddr"`
	UsersServiceTransport string        `json:"usersServiceTransport"`
	UsersServiceTimeout   time.Duration `json:"usersServiceTimeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Type     string           `json:"type"`
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	TTL             time.Duration `json:"ttl"`
	Prefix          string        `json:"prefix"`
	MaxMemory       int64         `json:"maxMemory"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	Redis           RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv never overrides variables that are already set.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return load(os.LookupEnv)
}

// LoadFromMap loads configuration from an in-memory map.
// Used by tests to exercise configuration logic without touching the process environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

func load(lookup func(string) (string, bool)) (*Config, error) {
	e := envReader{lookup: lookup}

	config := &Config{
		Server: ServerConfig{
			Host:     e.get("HOST", "0.0.0.0"),
			Port:     e.getInt("SERVER_PORT", 8080),
			GRPCPort: e.getInt("GRPC_PORT", 50051),
			Debug:    e.getBool("DEBUG", false),
		},
		Deployment: DeploymentConfig{
			Mode:                  e.get("DEPLOYMENT_MODE", DeploymentModeServerless),
			UsersServiceGRPCAddr:  e.get("USERS_SERVICE_GRPC_ADDR", "localhost:50051"),
			UsersServiceHTTPAddr:  e.get("USERS_SERVICE_HTTP_ADDR", "http://localhost:8081"),
			UsersServiceTransport: e.get("USERS_SERVICE_TRANSPORT", TransportGRPC),
			UsersServiceTimeout:   e.getDuration("USERS_SERVICE_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Type: e.get("DB_TYPE", DatabaseTypeMemory),
			Postgres: PostgreSQLConfig{
				Host:            e.get("POSTGRES_HOST", "localhost"),
				Port:            e.getInt("POSTGRES_PORT", 5432),
				Username:        e.get("POSTGRES_USERNAME", ""),
				Password:        e.get("POSTGRES_PASSWORD", ""),
				Database:        e.get("POSTGRES_DATABASE", "defisocial"),
				SSLMode:         e.get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    e.getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    e.getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(e.getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		Cache: CacheConfig{
			Enabled:         e.getBool("CACHE_ENABLED", true),
			Backend:         e.get("CACHE_BACKEND", "memory"),
			TTL:             e.getDuration("CACHE_TTL", 1*time.Hour),
			Prefix:          e.get("CACHE_PREFIX", "defisocial:"),
			MaxMemory:       e.getInt64("CACHE_MAX_MEMORY", 100*1024*1024), // 100MB default
			CleanupInterval: e.getDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
			Redis: RedisConfig{
				Address:      e.get("REDIS_ADDRESS", "localhost:6379"),
				Password:     e.get("REDIS_PASSWORD", ""),
				Database:     e.getInt("REDIS_DATABASE", 0),
				PoolSize:     e.getInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: e.getInt("REDIS_MIN_IDLE_CONNS", 5),
				MaxConnAge:   time.Duration(e.getInt("REDIS_MAX_CONN_AGE", 300)) * time.Second,
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the enumerated configuration values
func (c *Config) Validate() error {
	var errors []string

	if !contains([]string{DeploymentModeServerless, DeploymentModeMicroservices}, c.Deployment.Mode) {
		errors = append(errors, fmt.Sprintf("DEPLOYMENT_MODE must be one of: %s, %s", DeploymentModeServerless, DeploymentModeMicroservices))
	}
	if !contains([]string{TransportGRPC, TransportHTTP}, c.Deployment.UsersServiceTransport) {
		errors = append(errors, fmt.Sprintf("USERS_SERVICE_TRANSPORT must be one of: %s, %s", TransportGRPC, TransportHTTP))
	}
	if c.Deployment.UsersServiceTimeout <= 0 {
		errors = append(errors, "USERS_SERVICE_TIMEOUT must be positive")
	}

	validDbTypes := []string{DatabaseTypeMemory, DatabaseTypePostgres}
	if !contains(validDbTypes, c.Database.Type) {
		errors = append(errors, fmt.Sprintf("DB_TYPE must be one of: %s", strings.Join(validDbTypes, ", ")))
	}

	if !contains([]string{"memory", "redis"}, c.Cache.Backend) {
		errors = append(errors, "CACHE_BACKEND must be one of: memory, redis")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
type envReader struct {
	lookup func(string) (string, bool)
}

func (e envReader) get(key, defaultValue string) string {
	if value, ok := e.lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) getInt(key string, defaultValue int) int {
	if value, ok := e.lookup(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) getInt64(key string, defaultValue int64) int64 {
	if value, ok := e.lookup(key); ok {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) getBool(key string, defaultValue bool) bool {
	if value, ok := e.lookup(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (e envReader) getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := e.lookup(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
