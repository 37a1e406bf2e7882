package domain

import "errors"

var (
	ErrMissingGoldPrice = errors.New("gold price missing from upstream response")
)
