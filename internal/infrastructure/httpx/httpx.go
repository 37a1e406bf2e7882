package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	infraconfig "auspex-gateway/internal/infrastructure/config"
)

// Client is a small wrapper around http.Client that issues one attempt per
// call and decodes JSON bodies.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Headers   map[string]string
}

// New builds a Client. A zero timeout leaves the transport default in place.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: infraconfig.DefaultDialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          infraconfig.DefaultMaxIdleConns,
		MaxIdleConnsPerHost:   infraconfig.DefaultMaxIdleConnsHost,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       infraconfig.DefaultIdleConnTimeout,
		TLSHandshakeTimeout:   infraconfig.DefaultDialTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: infraconfig.DefaultUserAgent,
	}
}

// StatusError is returned for non-2xx upstream responses. Detail carries the
// provider's own error message when the body has one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Detail)
}

func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	return hc.Do(req.WithContext(ctx))
}

func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, infraconfig.DefaultMaxErrorBodyBytes))
		return &StatusError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

var detailKeys = []string{"message", "error", "info", "detail"}

const maxDetailLen = 512

func errorDetail(body []byte) string {
	if d := detailFrom(body, 2); d != "" {
		return d
	}
	s := strings.TrimSpace(string(body))
	if len(s) > maxDetailLen {
		s = s[:maxDetailLen]
	}
	return s
}

// detailFrom reads a JSON string, or the first detail key of a JSON object,
// descending at most depth levels ({"error":{"info":"..."}}).
func detailFrom(raw []byte, depth int) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	if depth == 0 {
		return ""
	}
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) != nil {
		return ""
	}
	for _, k := range detailKeys {
		if v, ok := obj[k]; ok {
			if d := detailFrom(v, depth-1); d != "" {
				return d
			}
		}
	}
	return ""
}
