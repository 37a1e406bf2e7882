package domain

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

const (
	GoldSymbol        = "Gold (24K)"
	GramsPerTroyOunce = 31.1035
)

var gramsPerTroyOunce = decimal.NewFromFloat(GramsPerTroyOunce)

// GoldSpot is the provider's XAU quote, priced per troy ounce.
type GoldSpot struct {
	PricePerOunce float64
	Raw           json.RawMessage
}

type GoldPrice struct {
	Symbol      string          `json:"symbol"`
	Price       string          `json:"price"`
	Currency    string          `json:"currency"`
	RawResponse json.RawMessage `json:"raw_response,omitempty"`
}

// PricePerGram converts a per-ounce price to a per-gram string with two decimals.
func PricePerGram(perOunce float64) string {
	return decimal.NewFromFloat(perOunce).Div(gramsPerTroyOunce).StringFixed(2)
}

func GoldPriceFromSpot(spot GoldSpot) (GoldPrice, error) {
	p := spot.PricePerOunce
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return GoldPrice{}, ErrMissingGoldPrice
	}
	return GoldPrice{
		Symbol:      GoldSymbol,
		Price:       PricePerGram(p),
		Currency:    CurrencyINR,
		RawResponse: spot.Raw,
	}, nil
}
