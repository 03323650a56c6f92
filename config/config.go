package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the scaler service
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Shopping list exports
	S3BucketName string
	AWSRegion    string

	RateLimitPerMinute int
	LogLevel           string
	MetricsEnabled     bool
}

// LoadConfig builds a Config from the environment, an optional .env file and Docker secrets
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = gotenv.Load()

	env := GetEnvironment()
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v, env)

	cfg := &Config{
		Env:                env,
		ServerPort:         v.GetString("SERVER_PORT"),
		ServerHost:         v.GetString("SERVER_HOST"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		RedisHost:          v.GetString("REDIS_HOST"),
		RedisPort:          v.GetString("REDIS_PORT"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisURL:           v.GetString("REDIS_URL"),
		S3BucketName:       v.GetString("S3_BUCKET_NAME"),
		AWSRegion:          v.GetString("AWS_REGION"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
	}

	cfg.DBPassword = sensitive(v, env, "db_password", "DB_PASSWORD")
	cfg.JWTSecret = sensitive(v, env, "jwt_secret", "JWT_SECRET")
	cfg.RedisPassword = sensitive(v, env, "redis_password", "REDIS_PASSWORD")

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "alchemorsel")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("S3_BUCKET_NAME", "alchemorsel-shopping-lists")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ENABLED", true)

	// Production must be given real credentials.
	if !env.IsProduction() {
		v.SetDefault("DB_PASSWORD", "postgres")
		v.SetDefault("JWT_SECRET", "your-secret-key")
	}
}

// sensitive reads a secret file first (outside CI) and falls back to the environment.
func sensitive(v *viper.Viper, env Environment, secret, key string) string {
	if env.UsesSecretFiles() {
		if value := readSecret(secret); value != "" {
			return value
		}
	}
	return v.GetString(key)
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DatabaseURL returns the PostgreSQL connection string in URL form
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// RedisAddr returns host:port for the Redis server
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
