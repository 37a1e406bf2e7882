package domain

import "strings"

// Normalize reshapes an upstream quote into NormalizedQuote. It is total:
// anything missing or malformed degrades to a default.
func Normalize(ticker string, raw RawQuote) NormalizedQuote {
	symbol := CleanTicker(ticker)
	price, exchange := resolvePrice(raw)
	return NormalizedQuote{
		Symbol:        symbol,
		CompanyName:   textOr(raw.CompanyName, string(symbol)),
		Price:         price,
		Currency:      CurrencyINR,
		Change:        floatOr(raw.Change, 0),
		PercentChange: floatOr(raw.PercentChange, 0),
		MarketCap:     metricOf(raw.MarketCap),
		PERatio:       metricOf(raw.PERatio),
		Exchange:      exchange,
	}
}

// resolvePrice picks currentPrice (NSE before BSE when it is a per-exchange
// mapping), then the first present fallback key. Zero means unresolved.
func resolvePrice(raw RawQuote) (float64, string) {
	exchange := ExchangeNSE
	var candidate Value
	switch raw.CurrentPrice.Kind {
	case PriceScalar:
		candidate = raw.CurrentPrice.Scalar
	case PriceByExchange:
		exchange = ExchangeNSEAndBSE
		if v, ok := raw.CurrentPrice.ForExchange(ExchangeNSE); ok {
			candidate = v
		} else if v, ok := raw.CurrentPrice.ForExchange(ExchangeBSE); ok {
			candidate = v
		}
	}
	if !candidate.Present() {
		for _, v := range raw.fallbackPrices() {
			if v.Present() {
				candidate = v
				break
			}
		}
	}
	return floatOr(candidate, 0), exchange
}

func floatOr(v Value, def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

func textOr(v Value, def string) string {
	if s, ok := v.Text(); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func metricOf(v Value) Metric {
	if f, ok := v.Float(); ok {
		return MetricOf(f)
	}
	return Metric{}
}
