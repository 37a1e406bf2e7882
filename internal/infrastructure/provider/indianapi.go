package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/domain"
	"auspex-gateway/internal/infrastructure/httpx"
)

const (
	indianAPIStockPath = "/stock"
)

// IndianAPIProvider fetches equity quotes from stock.indianapi.in.
type IndianAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.QuoteProvider = (*IndianAPIProvider)(nil)

func (p *IndianAPIProvider) FetchQuote(ctx context.Context, ticker domain.Ticker) (domain.RawQuote, error) {
	u, err := endpoint(p.BaseURL, indianAPIStockPath, url.Values{"name": {string(ticker)}})
	if err != nil {
		return domain.RawQuote{}, fmt.Errorf("indianapi: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.RawQuote{}, fmt.Errorf("indianapi: create request: %w", err)
	}
	if p.APIKey != "" {
		req.Header.Set("X-Api-Key", p.APIKey)
	}

	var raw domain.RawQuote
	if err := clientOrDefault(p.Client).DoJSON(ctx, req, &raw); err != nil {
		return domain.RawQuote{}, fmt.Errorf("indianapi: %w", err)
	}
	return raw, nil
}
