package domain

import (
	"regexp"
	"strings"
)

type Ticker string

// Exchange markers.
const (
	ExchangeNSE       = "NSE"
	ExchangeBSE       = "BSE"
	ExchangeNSEAndBSE = "NSE/BSE"
)

var exchangeSuffixRe = regexp.MustCompile(`(?i)\.(NS|BO)`)

// CleanTicker strips .NS / .BO suffixes (any case), trims and uppercases.
// Removal repeats until nothing matches so "A.N.NSS" does not leave ".NS" behind.
func CleanTicker(s string) Ticker {
	for {
		next := exchangeSuffixRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	return Ticker(strings.ToUpper(strings.TrimSpace(s)))
}

func (t Ticker) Empty() bool { return t == "" }

func (t Ticker) String() string { return string(t) }
