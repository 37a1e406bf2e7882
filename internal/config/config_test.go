package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "ENV", "LOG_LEVEL", "PORT", "CORS_ALLOWED_ORIGINS", "PROVIDER",
		"REQUEST_TIMEOUT_MS", "STOCK_API_BASE", "STOCK_API_KEY", "NEWS_API_BASE",
		"NEWS_API_KEY", "NEWS_DEFAULT_QUERY", "GOLD_API_BASE", "GOLD_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "India Startup Funding", cfg.News.DefaultQuery)
	require.Zero(t, cfg.RequestTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STOCK_API_KEY", "sk")
	t.Setenv("NEWS_API_KEY", "nk")
	t.Setenv("GOLD_API_KEY", "gk")
	t.Setenv("REQUEST_TIMEOUT_MS", "1500")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "sk", cfg.Stock.APIKey)
	require.Equal(t, "nk", cfg.News.APIKey)
	require.Equal(t, "gk", cfg.Gold.AccessToken)
	require.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
port: "7000"
provider: fake
request_timeout: 2s
stock:
  api_key: ${TEST_STOCK_SECRET}
news:
  default_query: Sensex
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TEST_STOCK_SECRET", "from-env")
	t.Setenv("PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7100", cfg.Port)
	require.Equal(t, "fake", cfg.Provider)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	require.Equal(t, "from-env", cfg.Stock.APIKey)
	require.Equal(t, "Sensex", cfg.News.DefaultQuery)
	require.Equal(t, "https://newsapi.org", cfg.News.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := Load()
	require.Error(t, err)
	require.Equal(t, "5000", cfg.Port)
}
