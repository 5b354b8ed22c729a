package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 1<<20, cfg.Server.BodyLimit)
	assert.Equal(t, SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, "customers", cfg.Dataset.Table)
	assert.True(t, cfg.Dataset.Strict())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  addr: ":9090"
  shutdown_timeout: 10s
dataset:
  path: /data/customers.csv
  strict_columns: false
logging:
  level: debug
`)
	t.Setenv("INSIGHTS_SERVER_ADDR", ":7070")
	t.Setenv("INSIGHTS_LOGGING_FORMAT", "text")

	cfg, err := load(path, "")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr, "env wins over file")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/data/customers.csv", cfg.Dataset.Path)
	assert.False(t, cfg.Dataset.Strict())
	assert.Equal(t, "debug", cfg.Logging.Level, "file value survives when env is unset")
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dotenv := writeFile(t, ".env", "INSIGHTS_DATASET_TABLE=analytics.customers\n")
	t.Cleanup(func() { os.Unsetenv("INSIGHTS_DATASET_TABLE") })

	cfg, err := load("", dotenv)
	require.NoError(t, err)
	assert.Equal(t, "analytics.customers", cfg.Dataset.Table)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	_, err := load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

func TestLoad_StrictColumnsFromEnv(t *testing.T) {
	t.Setenv("INSIGHTS_DATASET_STRICT_COLUMNS", "false")

	cfg, err := load("", "")
	require.NoError(t, err)
	assert.False(t, cfg.Dataset.Strict())
}

func TestLoad_Validation(t *testing.T) {
	t.Run("postgres needs dsn", func(t *testing.T) {
		t.Setenv("INSIGHTS_DATASET_SOURCE", "postgres")
		_, err := load("", "")
		assert.ErrorContains(t, err, "postgres_dsn")
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("INSIGHTS_DATASET_SOURCE", "parquet")
		_, err := load("", "")
		assert.ErrorContains(t, err, "dataset.source")
	})

	t.Run("postgres with dsn", func(t *testing.T) {
		t.Setenv("INSIGHTS_DATASET_SOURCE", "Postgres")
		t.Setenv("INSIGHTS_DATASET_POSTGRES_DSN", "postgres://localhost/insights?sslmode=disable")
		cfg, err := load("", "")
		require.NoError(t, err)
		assert.Equal(t, SourcePostgres, cfg.Dataset.Source)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}
