package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/infrastructure/httpx"
)

const (
	newsAPIEverythingPath = "/v2/everything"
)

// NewsAPIProvider searches newsapi.org and hands back the body as-is.
type NewsAPIProvider struct {
	BaseURL  string
	APIKey   string
	Language string
	SortBy   string
	Client   *httpx.Client
}

var _ application.NewsProvider = (*NewsAPIProvider)(nil)

func (p *NewsAPIProvider) Search(ctx context.Context, query string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("q", query)
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.Language != "" {
		q.Set("language", p.Language)
	}
	q.Set("apiKey", p.APIKey)

	u, err := endpoint(p.BaseURL, newsAPIEverythingPath, q)
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: create request: %w", err)
	}

	var body json.RawMessage
	if err := clientOrDefault(p.Client).DoJSON(ctx, req, &body); err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	return body, nil
}
