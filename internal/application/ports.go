package application

import (
	"context"
	"encoding/json"

	"auspex-gateway/internal/domain"
)

type QuoteProvider interface {
	FetchQuote(ctx context.Context, ticker domain.Ticker) (domain.RawQuote, error)
}

type NewsProvider interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

type GoldProvider interface {
	FetchSpot(ctx context.Context) (domain.GoldSpot, error)
}
