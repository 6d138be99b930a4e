package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the keyword/value connection string used by the gorm driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the postgres:// URL used by the migration runner.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds event broker settings.
type KafkaConfig struct {
	Brokers []string
}

// AuthConfig holds admin session settings.
type AuthConfig struct {
	AdminPassword string
	JWTSecret     string
	SessionTTL    time.Duration
	RememberTTL   time.Duration
}

// ServiceConfig holds all configuration for the site API.
type ServiceConfig struct {
	Port             string
	AppEnv           string
	CORSAllowOrigins []string
	DBConfig         DatabaseConfig
	KafkaConfig      KafkaConfig
	AuthConfig       AuthConfig
}

// Load reads configuration from SITE_-prefixed environment variables,
// falling back to development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "walker_site")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("REMEMBER_TTL", "720h")

	cfg := &ServiceConfig{
		Port:             ":" + v.GetString("PORT"),
		AppEnv:           v.GetString("APP_ENV"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
		},
		AuthConfig: AuthConfig{
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			JWTSecret:     v.GetString("JWT_SECRET"),
			SessionTTL:    v.GetDuration("SESSION_TTL"),
			RememberTTL:   v.GetDuration("REMEMBER_TTL"),
		},
	}

	if cfg.AppEnv != "development" {
		if cfg.AuthConfig.AdminPassword == "" {
			return nil, fmt.Errorf("SITE_ADMIN_PASSWORD is required outside development")
		}
		if cfg.AuthConfig.JWTSecret == "" {
			return nil, fmt.Errorf("SITE_JWT_SECRET is required outside development")
		}
	}
	if cfg.AuthConfig.AdminPassword == "" {
		cfg.AuthConfig.AdminPassword = "walker2024"
	}
	if cfg.AuthConfig.JWTSecret == "" {
		cfg.AuthConfig.JWTSecret = "dev-only-secret"
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
