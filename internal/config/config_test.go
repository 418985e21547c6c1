package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
application:
  host: "0.0.0.0"
  port: 9090
  confirmation_link: "https://news.example.com/confirm"

database:
  host: "db.internal"
  port: 6543
  username: "app"
  password: "secret"
  database_name: "newsletter"
  require_ssl: true
  statement_timeout_ms: 15000

email_client:
  base_url: "https://api.postmarkapp.com"
  sender_email: "test@gmail.com"
  authorization_token: "my-secret-token"
  timeout_milliseconds: 2500

log:
  level: debug
  redact_pii: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Application.Address())
	assert.Equal(t, "https://news.example.com/confirm", cfg.Application.ConfirmationLink)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "newsletter", cfg.Database.DatabaseName)

	assert.Equal(t, "https://api.postmarkapp.com", cfg.EmailClient.BaseURL)
	assert.Equal(t, "my-secret-token", cfg.EmailClient.AuthorizationToken)
	assert.Equal(t, 2500*time.Millisecond, cfg.EmailClient.Timeout())
	sender, err := cfg.EmailClient.Sender()
	require.NoError(t, err)
	assert.Equal(t, "test@gmail.com", sender.String())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Redact())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Application.Host)
	assert.Equal(t, 8000, cfg.Application.Port)
	assert.Equal(t, []string{"*"}, cfg.Application.AllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 300*time.Second, cfg.Database.ConnMaxLifetime())
	assert.Equal(t, "postgres", cfg.Storage.Type)
	assert.Equal(t, "http", cfg.EmailClient.Transport)
	assert.Equal(t, 10*time.Second, cfg.EmailClient.Timeout())
	assert.Equal(t, "us-east-1", cfg.EmailClient.SES.Region)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Redact())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "application: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	path := writeConfig(t, `
application:
  port: 8000
email_client:
  sender_email: "file@gmail.com"
`)
	t.Setenv("APP_PORT", "8181")
	t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/db?sslmode=disable")
	t.Setenv("EMAIL_SENDER", "env@gmail.com")
	t.Setenv("EMAIL_AUTHORIZATION_TOKEN", "env-token")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Application.Port)
	assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "env@gmail.com", cfg.EmailClient.SenderEmail)
	assert.Equal(t, "env-token", cfg.EmailClient.AuthorizationToken)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromEnv_BadPort(t *testing.T) {
	t.Setenv("APP_PORT", "eighty")
	_, err := LoadFromEnv(writeConfig(t, "{}\n"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, Username: "postgres", Password: "p@ss",
		DatabaseName: "newsletter", ConnectTimeoutSeconds: 5, StatementTimeoutMs: 15000,
	}

	u, err := url.Parse(c.DSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/newsletter", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss", pw)
	assert.Equal(t, "prefer", u.Query().Get("sslmode"))
	assert.Equal(t, "5", u.Query().Get("connect_timeout"))
	assert.Equal(t, "-c statement_timeout=15000", u.Query().Get("options"))

	c.RequireSSL = true
	u, err = url.Parse(c.DSNWithoutDB())
	require.NoError(t, err)
	assert.Equal(t, "/postgres", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}

func TestEmailClientConfig_InvalidSender(t *testing.T) {
	_, err := EmailClientConfig{SenderEmail: "not-an-email"}.Sender()
	assert.Error(t, err)
}
