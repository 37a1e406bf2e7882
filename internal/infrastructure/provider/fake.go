package provider

import (
	"context"
	"encoding/json"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/domain"
)

// Ensure Fake implements the application ports.
var (
	_ application.QuoteProvider = (*Fake)(nil)
	_ application.NewsProvider  = (*Fake)(nil)
	_ application.GoldProvider  = (*Fake)(nil)
)

// Fake serves canned upstream payloads for local runs without API keys.
type Fake struct {
	price     float64
	goldOunce float64
}

func NewFake(price, goldOunce float64) *Fake { return &Fake{price: price, goldOunce: goldOunce} }

func (f *Fake) FetchQuote(_ context.Context, ticker domain.Ticker) (domain.RawQuote, error) {
	b, err := json.Marshal(map[string]any{
		"companyName":   string(ticker),
		"currentPrice":  map[string]float64{domain.ExchangeNSE: f.price, domain.ExchangeBSE: f.price - 0.5},
		"percentChange": 0.42,
	})
	if err != nil {
		return domain.RawQuote{}, err
	}
	return domain.DecodeRawQuote(b)
}

func (f *Fake) Search(_ context.Context, query string) (json.RawMessage, error) {
	return json.Marshal(map[string]any{
		"status":       "ok",
		"totalResults": 1,
		"articles": []map[string]any{
			{"title": "Sample headline for " + query, "source": map[string]any{"id": nil, "name": "fake"}},
		},
	})
}

func (f *Fake) FetchSpot(_ context.Context) (domain.GoldSpot, error) {
	raw, err := json.Marshal(map[string]any{"metal": "XAU", "currency": domain.CurrencyINR, "price": f.goldOunce})
	if err != nil {
		return domain.GoldSpot{}, err
	}
	return domain.GoldSpot{PricePerOunce: f.goldOunce, Raw: raw}, nil
}
