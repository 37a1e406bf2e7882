package bootstrap

import (
	"fmt"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/config"
	httpserver "auspex-gateway/internal/infrastructure/http"
	"auspex-gateway/internal/infrastructure/httpx"
	"auspex-gateway/internal/infrastructure/logx"
	"auspex-gateway/internal/infrastructure/provider"

	"go.uber.org/zap"
)

const (
	ProviderLive = "live"
	ProviderFake = "fake"
)

// Canned figures served when PROVIDER=fake.
const (
	fakeQuotePrice   = 2500.0
	fakeGoldPerOunce = 186621.5
)

// Providers groups the upstream ports so one provider function can pick the mode.
type Providers struct {
	Quotes application.QuoteProvider
	News   application.NewsProvider
	Gold   application.GoldProvider
}

func ProvideLogger() *zap.Logger { return logx.L() }

// ProvideConfig loads config; a broken CONFIG_FILE still yields env-based values.
func ProvideConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func ProvideHTTPClient(cfg config.Config) *httpx.Client {
	return httpx.New(cfg.RequestTimeout)
}

func ProvideProviders(cfg config.Config, client *httpx.Client) (Providers, error) {
	switch cfg.Provider {
	case ProviderFake:
		f := provider.NewFake(fakeQuotePrice, fakeGoldPerOunce)
		return Providers{Quotes: f, News: f, Gold: f}, nil
	case ProviderLive, "":
		return Providers{
			Quotes: &provider.IndianAPIProvider{
				BaseURL: cfg.Stock.BaseURL,
				APIKey:  cfg.Stock.APIKey,
				Client:  client,
			},
			News: &provider.NewsAPIProvider{
				BaseURL:  cfg.News.BaseURL,
				APIKey:   cfg.News.APIKey,
				Language: cfg.News.Language,
				SortBy:   cfg.News.SortBy,
				Client:   client,
			},
			Gold: &provider.GoldAPIProvider{
				BaseURL:     cfg.Gold.BaseURL,
				AccessToken: cfg.Gold.AccessToken,
				Client:      client,
			},
		}, nil
	default:
		return Providers{}, fmt.Errorf("unknown PROVIDER %q", cfg.Provider)
	}
}

func ProvideGatewayService(cfg config.Config, p Providers, log *zap.Logger) *application.GatewayService {
	return application.NewGatewayService(p.Quotes, p.News, p.Gold,
		application.WithDefaultNewsQuery(cfg.News.DefaultQuery),
		application.WithLogger(log),
	)
}

func ProvideServer(cfg config.Config, svc *application.GatewayService) *httpserver.Server {
	return httpserver.NewServer(svc, httpserver.WithAllowedOrigins(cfg.CORSAllowedOrigins))
}
