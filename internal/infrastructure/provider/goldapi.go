package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/domain"
	"auspex-gateway/internal/infrastructure/httpx"
)

const (
	goldAPISpotPath = "/api/XAU/INR"
)

// GoldAPIProvider reads the XAU/INR spot price (per troy ounce) from goldapi.io.
type GoldAPIProvider struct {
	BaseURL     string
	AccessToken string
	Client      *httpx.Client
}

var _ application.GoldProvider = (*GoldAPIProvider)(nil)

type goldSpotResp struct {
	Price *float64 `json:"price"`
}

func (p *GoldAPIProvider) FetchSpot(ctx context.Context) (domain.GoldSpot, error) {
	u, err := endpoint(p.BaseURL, goldAPISpotPath, nil)
	if err != nil {
		return domain.GoldSpot{}, fmt.Errorf("goldapi: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.GoldSpot{}, fmt.Errorf("goldapi: create request: %w", err)
	}
	req.Header.Set("x-access-token", p.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	var raw json.RawMessage
	if err := clientOrDefault(p.Client).DoJSON(ctx, req, &raw); err != nil {
		return domain.GoldSpot{}, fmt.Errorf("goldapi: %w", err)
	}
	var body goldSpotResp
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.GoldSpot{}, fmt.Errorf("goldapi: decode response: %w", err)
	}
	spot := domain.GoldSpot{Raw: raw}
	if body.Price != nil {
		spot.PricePerOunce = *body.Price
	}
	return spot, nil
}
