package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"auspex-gateway/internal/application"
	"auspex-gateway/internal/infrastructure/http/openapi"
	"auspex-gateway/internal/infrastructure/httpx"
	"auspex-gateway/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	msgTickerRequired = "Stock ticker required"
	msgStockFailed    = "Failed to fetch stock data"
	msgNewsFailed     = "Failed to fetch news"
	msgGoldFailed     = "Gold fetch failed"
	msgBadRequest     = "Bad request"
)

var _ openapi.ServerInterface = (*Server)(nil)

type Server struct {
	svc            *application.GatewayService
	allowedOrigins []string
}

type ServerOption func(*Server)

// WithAllowedOrigins sets the CORS origins; empty means any origin.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) { s.allowedOrigins = origins }
}

func NewServer(svc *application.GatewayService, opts ...ServerOption) *Server {
	s := &Server{svc: svc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) GetStock(w http.ResponseWriter, r *http.Request, params openapi.GetStockParams) {
	var name string
	if params.Name != nil {
		name = *params.Name
	}
	q, err := s.svc.GetQuote(r.Context(), name)
	if err != nil {
		if errors.Is(err, application.ErrTickerRequired) {
			writeError(w, http.StatusBadRequest, msgTickerRequired, "")
			return
		}
		logx.WithFields(r.Context()).Warn("stock_fetch_failed", zap.String("name", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgStockFailed, upstreamDetail(err))
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) GetNews(w http.ResponseWriter, r *http.Request, params openapi.GetNewsParams) {
	var query string
	if params.Query != nil {
		query = *params.Query
	}
	body, err := s.svc.SearchNews(r.Context(), query)
	if err != nil {
		logx.WithFields(r.Context()).Warn("news_fetch_failed", zap.String("query", query), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgNewsFailed, upstreamDetail(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) GetGold(w http.ResponseWriter, r *http.Request) {
	g, err := s.svc.GetGoldPrice(r.Context())
	if err != nil {
		logx.WithFields(r.Context()).Warn("gold_fetch_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgGoldFailed, upstreamDetail(err))
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// upstreamDetail prefers the provider's own message over the wrapped error chain.
func upstreamDetail(err error) string {
	var se *httpx.StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	resp := openapi.ErrorResponse{Error: msg}
	if details != "" {
		resp.Details = &details
	}
	writeJSON(w, status, resp)
}
