package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"auspex-gateway/internal/domain"

	"go.uber.org/zap"
)

const DefaultNewsQuery = "India Startup Funding"

type GatewayService struct {
	quotes    QuoteProvider
	news      NewsProvider
	gold      GoldProvider
	newsQuery string
	log       *zap.Logger
}

type Option func(*GatewayService)

func WithDefaultNewsQuery(q string) Option {
	return func(s *GatewayService) {
		if q = strings.TrimSpace(q); q != "" {
			s.newsQuery = q
		}
	}
}

func WithLogger(l *zap.Logger) Option { return func(s *GatewayService) { s.log = l } }

func NewGatewayService(quotes QuoteProvider, news NewsProvider, gold GoldProvider, opts ...Option) *GatewayService {
	s := &GatewayService{
		quotes:    quotes,
		news:      news,
		gold:      gold,
		newsQuery: DefaultNewsQuery,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GetQuote fetches the upstream quote for the cleaned ticker and normalizes it.
func (s *GatewayService) GetQuote(ctx context.Context, name string) (domain.NormalizedQuote, error) {
	ticker := domain.CleanTicker(name)
	if ticker.Empty() {
		return domain.NormalizedQuote{}, ErrTickerRequired
	}
	raw, err := s.quotes.FetchQuote(ctx, ticker)
	if err != nil {
		return domain.NormalizedQuote{}, fmt.Errorf("fetch quote %s: %w", ticker, err)
	}
	q := domain.Normalize(string(ticker), raw)
	if q.Price == 0 {
		s.log.Debug("quote price unresolved", zap.String("symbol", string(ticker)))
	}
	return q, nil
}

// SearchNews returns the provider payload untouched. An empty query uses the default term.
func (s *GatewayService) SearchNews(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		query = s.newsQuery
	}
	body, err := s.news.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search news %q: %w", query, err)
	}
	return body, nil
}

func (s *GatewayService) GetGoldPrice(ctx context.Context) (domain.GoldPrice, error) {
	spot, err := s.gold.FetchSpot(ctx)
	if err != nil {
		return domain.GoldPrice{}, fmt.Errorf("fetch gold spot: %w", err)
	}
	return domain.GoldPriceFromSpot(spot)
}
