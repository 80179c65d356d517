package fxmonitor

import (
	"errors"
	"fmt"
	"strings"
)

// BaseCurrency is the currency every reference rate is quoted against.
const BaseCurrency = "EUR"

var ErrMissingQuote = errors.New("pair has no quote currency")

type PairConfig struct {
	Pair     string
	Quote    string
	FileName string
}

// NewPairConfig normalizes the quote to upper case and fills in the label and file name when empty.
func NewPairConfig(pair, quote, fileName string) (PairConfig, error) {
	quote = strings.ToUpper(strings.TrimSpace(quote))

	if quote == "" {
		return PairConfig{}, fmt.Errorf("%q: %w", pair, ErrMissingQuote)
	}

	if pair == "" {
		pair = BaseCurrency + "/" + quote
	}

	if fileName == "" {
		fileName = fmt.Sprintf("fx_%s%s.json", BaseCurrency, quote)
	}

	return PairConfig{
		Pair:     pair,
		Quote:    quote,
		FileName: fileName,
	}, nil
}

// SeriesKey is the daily reference rate series of the EXR dataset, D.<QUOTE>.EUR.SP00.A.
func (p PairConfig) SeriesKey() string {
	return fmt.Sprintf("D.%s.%s.SP00.A", p.Quote, BaseCurrency)
}

func (p PairConfig) String() string {
	return p.Pair
}

// DefaultPairs returns a new copy of the pairs published when nothing else is configured.
func DefaultPairs() []PairConfig {
	return []PairConfig{
		{Pair: "EUR/SEK", Quote: "SEK", FileName: "fx_EURSEK.json"},
		{Pair: "EUR/USD", Quote: "USD", FileName: "fx_EURUSD.json"},
		{Pair: "EUR/GBP", Quote: "GBP", FileName: "fx_EURGBP.json"},
		{Pair: "EUR/JPY", Quote: "JPY", FileName: "fx_EURJPY.json"},
		{Pair: "EUR/NOK", Quote: "NOK", FileName: "fx_EURNOK.json"},
		{Pair: "EUR/CHF", Quote: "CHF", FileName: "fx_EURCHF.json"},
	}
}
