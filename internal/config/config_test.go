package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.InDelta(t, 20.0, cfg.Server.RateRPS, 0.001)
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrentDocs)
	assert.Equal(t, "utf-8", cfg.Input.Charset)
	assert.Equal(t, "pdftotext", cfg.PDF.PdfToTextPath)
	assert.Equal(t, 60, cfg.PDF.TimeoutSecs)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
batch:
  max_concurrent_docs: 8
input:
  charset: windows-1252
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Batch.MaxConcurrentDocs)
	assert.Equal(t, "windows-1252", cfg.Input.Charset)
	// Defaults still apply for unset values
	assert.Equal(t, "pdftotext", cfg.PDF.PdfToTextPath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("CLAIMS_LOG_LEVEL", "warn")
	t.Setenv("CLAIMS_PDF_PDFTOTEXT_PATH", "/opt/poppler/bin/pdftotext")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", cfg.PDF.PdfToTextPath)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("CLAIMS_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with the defaults commands rely on.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.RateRPS = 20
	cfg.Server.RateBurst = 40
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Batch.MaxConcurrentDocs = 4
	cfg.Input.Charset = "utf-8"
	cfg.PDF.PdfToTextPath = "pdftotext"
	cfg.PDF.TimeoutSecs = 60
	return cfg
}

func TestValidateProcess_Valid(t *testing.T) {
	assert.NoError(t, validDefaults().Validate("process"))
}

func TestValidateProcess_MissingCharset(t *testing.T) {
	cfg := validDefaults()
	cfg.Input.Charset = ""

	err := cfg.Validate("process")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input.charset is required")
}

func TestValidateBatch_ConcurrencyBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Batch.MaxConcurrentDocs = 0
	err := cfg.Validate("batch")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch.max_concurrent_docs must be between 1 and 64")

	cfg.Batch.MaxConcurrentDocs = 65
	err = cfg.Validate("batch")
	assert.Error(t, err)

	cfg.Batch.MaxConcurrentDocs = 64
	assert.NoError(t, cfg.Validate("batch"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateServe_RateLimits(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.RateRPS = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.rate_rps must be > 0")

	cfg.Server.RateRPS = 20
	cfg.Server.RateBurst = 0
	err = cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.rate_burst must be >= 1")
}

func TestValidateUnknownMode(t *testing.T) {
	err := validDefaults().Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
