package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Auth.APIKeys)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  readTimeout: 3s
  corsOrigins: ["https://example.org"]
storage:
  driver: mysql
database:
  host: db
  port: 3306
  user: scam
  password: secret
  name: scamwatch
auth:
  apiKeys:
    moderator: k1
`)
	t.Setenv("PORT", "9100")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DriverMySQL, cfg.Storage.Driver)
	assert.Equal(t, map[string]string{"moderator": "k1"}, cfg.Auth.APIKeys)
	assert.Equal(t,
		"scam:secret@tcp(db.internal:3306)/scamwatch?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.MySQLDSN())
	assert.Equal(t, ":9100", cfg.Addr())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: cassandra\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Default()
	cfg.Database = DatabaseConfig{Host: "pg", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=n sslmode=disable", cfg.PostgresDSN())
}
