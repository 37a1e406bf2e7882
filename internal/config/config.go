package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Common
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	// API
	Port               string   `yaml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	// Upstreams
	Provider       string        `yaml:"provider"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Stock          StockConfig   `yaml:"stock"`
	News           NewsConfig    `yaml:"news"`
	Gold           GoldConfig    `yaml:"gold"`
}

type StockConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type NewsConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	DefaultQuery string `yaml:"default_query"`
	Language     string `yaml:"language"`
	SortBy       string `yaml:"sort_by"`
}

type GoldConfig struct {
	BaseURL     string `yaml:"base_url"`
	AccessToken string `yaml:"access_token"`
}

func Default() Config {
	return Config{
		Env:                "local",
		LogLevel:           "info",
		Port:               "5000",
		CORSAllowedOrigins: []string{"*"},
		Provider:           "live",
		Stock: StockConfig{
			BaseURL: "https://stock.indianapi.in",
		},
		News: NewsConfig{
			BaseURL:      "https://newsapi.org",
			DefaultQuery: "India Startup Funding",
			Language:     "en",
			SortBy:       "publishedAt",
		},
		Gold: GoldConfig{
			BaseURL: "https://www.goldapi.io",
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func splitList(s string, def []string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Load applies defaults, then the YAML file named by CONFIG_FILE (if any),
// then environment variables. On a file error the returned Config still
// carries defaults and environment overrides.
func Load() (Config, error) {
	cfg := Default()
	var fileErr error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileErr = loadFile(path, &cfg)
	}
	applyEnv(&cfg)
	return cfg, fileErr
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	cfg.Stock.APIKey = os.ExpandEnv(cfg.Stock.APIKey)
	cfg.News.APIKey = os.ExpandEnv(cfg.News.APIKey)
	cfg.Gold.AccessToken = os.ExpandEnv(cfg.Gold.AccessToken)
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), cfg.CORSAllowedOrigins)
	cfg.Provider = getEnv("PROVIDER", cfg.Provider)
	if v := os.Getenv("REQUEST_TIMEOUT_MS"); v != "" {
		cfg.RequestTimeout = time.Duration(atoiDef(v, 0)) * time.Millisecond
	}
	cfg.Stock.BaseURL = getEnv("STOCK_API_BASE", cfg.Stock.BaseURL)
	cfg.Stock.APIKey = getEnv("STOCK_API_KEY", cfg.Stock.APIKey)
	cfg.News.BaseURL = getEnv("NEWS_API_BASE", cfg.News.BaseURL)
	cfg.News.APIKey = getEnv("NEWS_API_KEY", cfg.News.APIKey)
	cfg.News.DefaultQuery = getEnv("NEWS_DEFAULT_QUERY", cfg.News.DefaultQuery)
	cfg.Gold.BaseURL = getEnv("GOLD_API_BASE", cfg.Gold.BaseURL)
	cfg.Gold.AccessToken = getEnv("GOLD_API_KEY", cfg.Gold.AccessToken)
}
