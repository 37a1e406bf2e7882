package domain

import (
	"bytes"
	"encoding/json"
)

const (
	CurrencyINR  = "INR"
	NotAvailable = "N/A"
)

// Metric is a figure the upstream may not report. It marshals as a JSON
// number when valid and as "N/A" otherwise, so a real zero stays a zero.
type Metric struct {
	Value float64
	Valid bool
}

func MetricOf(f float64) Metric { return Metric{Value: f, Valid: true} }

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(m.Value)
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == '"' || bytes.Equal(b, jsonNull) {
		*m = Metric{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = MetricOf(f)
	return nil
}

type NormalizedQuote struct {
	Symbol        Ticker  `json:"symbol"`
	CompanyName   string  `json:"companyName"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percentChange"`
	MarketCap     Metric  `json:"marketCap"`
	PERatio       Metric  `json:"peRatio"`
	Exchange      string  `json:"exchange"`
}
