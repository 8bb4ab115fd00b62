package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteparse/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(25<<20), cfg.Upload.MaxBytes())
	assert.Equal(t, []string{"tabula", "plain"}, cfg.Document.Backends())
	assert.Equal(t, 3, cfg.Legacy.SplitPage)
	assert.Contains(t, cfg.Legacy.IgnorePhrases, "1300 101 666")
	assert.Contains(t, cfg.Legacy.IgnorePhrases, "Page")
	assert.False(t, cfg.S3.ArchiveEnabled())
	assert.Equal(t, "quotes", cfg.S3.Prefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QUOTEPARSE_SERVER_PORT", ":9090")
	t.Setenv("PORT", "7000")
	t.Setenv("QUOTEPARSE_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("QUOTEPARSE_DOCUMENT_BACKEND", "plain")
	t.Setenv("QUOTEPARSE_DOCUMENT_FALLBACK", "plain")
	t.Setenv("QUOTEPARSE_NOISE_PHRASES", " Acme Pty Ltd , ,Head Office")
	t.Setenv("QUOTEPARSE_S3_BUCKET", "quote-archive")
	t.Setenv("QUOTEPARSE_S3_PREFIX", "/raw/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, []string{"plain"}, cfg.Document.Backends())
	assert.Equal(t, []string{"Acme Pty Ltd", "Head Office"}, cfg.Noise.Phrases)
	assert.True(t, cfg.S3.ArchiveEnabled())
	assert.Equal(t, "raw", cfg.S3.Prefix)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("QUOTEPARSE_SERVER_PORT", "")
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestDocumentConfig_Backends(t *testing.T) {
	assert.Empty(t, config.DocumentConfig{}.Backends())
	assert.Equal(t, []string{"plain"}, config.DocumentConfig{Fallback: "plain"}.Backends())
	assert.Equal(t, []string{"tabula", "plain"}, config.DocumentConfig{Backend: " tabula ", Fallback: "plain"}.Backends())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("QUOTEPARSE_DOTENV_NEW=from-file\nQUOTEPARSE_DOTENV_SET=from-file\n"), 0o600))
	t.Setenv("QUOTEPARSE_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("QUOTEPARSE_DOTENV_NEW") })

	require.NoError(t, config.LoadDotEnv(path, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("QUOTEPARSE_DOTENV_NEW"))
	assert.Equal(t, "from-env", os.Getenv("QUOTEPARSE_DOTENV_SET"))
}
