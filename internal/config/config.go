package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Application ApplicationConfig `yaml:"application"`
	Database    DatabaseConfig    `yaml:"database"`
	Storage     StorageConfig     `yaml:"storage"`
	EmailClient EmailClientConfig `yaml:"email_client"`
	Log         LogConfig         `yaml:"log"`
}

// ApplicationConfig holds HTTP server configuration
type ApplicationConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	ConfirmationLink string   `yaml:"confirmation_link"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
}

// Address returns host:port for the listener.
func (c ApplicationConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds PostgreSQL connection parameters
type DatabaseConfig struct {
	URL                    string `yaml:"url"` // overrides the discrete fields when set
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	Username               string `yaml:"username"`
	Password               string `yaml:"password"`
	DatabaseName           string `yaml:"database_name"`
	RequireSSL             bool   `yaml:"require_ssl"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSeconds int    `yaml:"conn_max_lifetime_seconds"`
	ConnectTimeoutSeconds  int    `yaml:"connect_timeout_seconds"`
	StatementTimeoutMs     int    `yaml:"statement_timeout_ms"`
}

// DSN returns a lib/pq connection URL for the configured database.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return c.dsn(c.DatabaseName)
}

// DSNWithoutDB returns a connection URL to the server's default database,
// used to create the application database before migrating.
func (c DatabaseConfig) DSNWithoutDB() string {
	return c.dsn("postgres")
}

func (c DatabaseConfig) dsn(dbName string) string {
	sslMode := "prefer"
	if c.RequireSSL {
		sslMode = "require"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	if c.ConnectTimeoutSeconds > 0 {
		q.Set("connect_timeout", strconv.Itoa(c.ConnectTimeoutSeconds))
	}
	if c.StatementTimeoutMs > 0 {
		q.Set("options", fmt.Sprintf("-c statement_timeout=%d", c.StatementTimeoutMs))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + dbName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// ConnMaxLifetime returns the pool connection lifetime as a duration
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeSeconds) * time.Second
}

// StorageConfig selects the subscription store
type StorageConfig struct {
	Type string `yaml:"type"` // "postgres" or "memory"
}

// EmailClientConfig holds the outbound email transport configuration
type EmailClientConfig struct {
	Transport           string    `yaml:"transport"` // "http" or "ses"
	BaseURL             string    `yaml:"base_url"`
	SenderEmail         string    `yaml:"sender_email"`
	AuthorizationToken  string    `yaml:"authorization_token"`
	TimeoutMilliseconds int       `yaml:"timeout_milliseconds"`
	SES                 SESConfig `yaml:"ses"`
}

// Sender parses the configured sender address.
func (c EmailClientConfig) Sender() (domain.SubscriberEmail, error) {
	return domain.ParseSubscriberEmail(c.SenderEmail)
}

// Timeout returns the configured timeout as a duration
func (c EmailClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMilliseconds) * time.Millisecond
}

// SESConfig holds AWS SES credentials for the ses transport
type SESConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level     string `yaml:"level"`
	RedactPII *bool  `yaml:"redact_pii"`
}

// Redact reports whether PII redaction is on. Defaults to true.
func (c LogConfig) Redact() bool {
	return c.RedactPII == nil || *c.RedactPII
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Application.Port == 0 {
		cfg.Application.Port = 8000
	}
	if cfg.Application.Host == "" {
		cfg.Application.Host = "127.0.0.1"
	}
	if len(cfg.Application.AllowedOrigins) == 0 {
		cfg.Application.AllowedOrigins = []string{"*"}
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeSeconds == 0 {
		cfg.Database.ConnMaxLifetimeSeconds = 300
	}
	if cfg.Database.ConnectTimeoutSeconds == 0 {
		cfg.Database.ConnectTimeoutSeconds = 5
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "postgres"
	}
	if cfg.EmailClient.Transport == "" {
		cfg.EmailClient.Transport = string(domain.TransportHTTP)
	}
	if cfg.EmailClient.TimeoutMilliseconds == 0 {
		cfg.EmailClient.TimeoutMilliseconds = 10000
	}
	if cfg.EmailClient.SES.Region == "" {
		cfg.EmailClient.SES.Region = "us-east-1"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("APP_HOST"); v != "" {
		cfg.Application.Host = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("APP_PORT: %w", err)
		}
		cfg.Application.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("EMAIL_BASE_URL"); v != "" {
		cfg.EmailClient.BaseURL = v
	}
	if v := os.Getenv("EMAIL_SENDER"); v != "" {
		cfg.EmailClient.SenderEmail = v
	}
	if v := os.Getenv("EMAIL_AUTHORIZATION_TOKEN"); v != "" {
		cfg.EmailClient.AuthorizationToken = v
	}
	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.EmailClient.SES.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.EmailClient.SES.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.EmailClient.SES.Region = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
