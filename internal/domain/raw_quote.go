package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Value is an optional scalar lifted from an upstream payload.
// A JSON null is treated the same as a missing key.
type Value struct {
	raw json.RawMessage
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		v.raw = nil
		return nil
	}
	v.raw = append(v.raw[:0], b...)
	return nil
}

// Present reports whether the key carried a non-null value.
func (v Value) Present() bool { return len(v.raw) > 0 }

// Float coerces JSON numbers and numeric strings ("2,500.50" included).
// NaN and infinities are rejected.
func (v Value) Float() (float64, bool) {
	if !v.Present() {
		return 0, false
	}
	s := string(v.raw)
	if v.raw[0] == '"' {
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return 0, false
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Text returns the value when it is a JSON string.
func (v Value) Text() (string, bool) {
	if !v.Present() || v.raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

type PriceKind int

const (
	PriceAbsent PriceKind = iota
	PriceScalar
	PriceByExchange
)

// PriceField is the upstream currentPrice: either a single scalar or a
// mapping of exchange name to price.
type PriceField struct {
	Kind       PriceKind
	Scalar     Value
	ByExchange map[string]Value
}

func (p *PriceField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, jsonNull):
		*p = PriceField{}
	case b[0] == '{':
		m := map[string]Value{}
		if err := json.Unmarshal(b, &m); err != nil {
			return err
		}
		*p = PriceField{Kind: PriceByExchange, ByExchange: m}
	default:
		var v Value
		if err := v.UnmarshalJSON(b); err != nil {
			return err
		}
		*p = PriceField{Kind: PriceScalar, Scalar: v}
	}
	return nil
}

// ForExchange looks up a per-exchange price. An exact key wins over a
// case-insensitive match; null entries count as missing.
func (p PriceField) ForExchange(name string) (Value, bool) {
	if v, ok := p.ByExchange[name]; ok && v.Present() {
		return v, true
	}
	for k, v := range p.ByExchange {
		if strings.EqualFold(k, name) && v.Present() {
			return v, true
		}
	}
	return Value{}, false
}

// RawQuote is the quote provider's response body. Only the keys the
// normalizer reads are modelled; everything else is ignored.
type RawQuote struct {
	CurrentPrice    PriceField `json:"currentPrice"`
	LastPrice       Value      `json:"lastPrice"`
	LastTradedPrice Value      `json:"lastTradedPrice"`
	Price           Value      `json:"price"`
	Close           Value      `json:"close"`
	CompanyName     Value      `json:"companyName"`
	Change          Value      `json:"change"`
	PercentChange   Value      `json:"percentChange"`
	MarketCap       Value      `json:"marketCap"`
	PERatio         Value      `json:"peRatio"`
}

// UnmarshalJSON accepts any well-formed JSON. Bodies that are not objects
// decode to an empty RawQuote.
func (r *RawQuote) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*r = RawQuote{}
		return nil
	}
	type plain RawQuote
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = RawQuote(p)
	return nil
}

// fallbackPrices lists the alternate price keys in precedence order.
func (r RawQuote) fallbackPrices() []Value {
	return []Value{r.LastPrice, r.LastTradedPrice, r.Price, r.Close}
}

// DecodeRawQuote parses an upstream body. Only malformed JSON is an error.
func DecodeRawQuote(b []byte) (RawQuote, error) {
	var r RawQuote
	if err := json.Unmarshal(b, &r); err != nil {
		return RawQuote{}, err
	}
	return r, nil
}
