// Package series turns raw upstream rows into a clean, validated rate series.
package series

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	fxMonitor "github.com/malusev998/fx-monitor"
)

// RatePrecision is the number of decimal places kept for every rate.
const RatePrecision = 6

// Parse keeps rows with a date and a positive numeric value, rounds them to RatePrecision
// places and sorts them by date. Rejected rows are only logged; an empty result is not an error.
func Parse(rows []fxMonitor.Row, pair string) fxMonitor.Series {
	series := make(fxMonitor.Series, 0, len(rows))

	for _, row := range rows {
		date := row[fxMonitor.TimePeriodField]
		value := row[fxMonitor.ObsValueField]

		if date == "" || value == "" {
			continue
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			log.Debug().Str("pair", pair).Str("value", value).Msg("Skipping invalid rate")
			continue
		}

		if !rate.IsPositive() {
			log.Debug().Str("pair", pair).Str("value", value).Msg("Skipping non-positive rate")
			continue
		}

		rounded, _ := rate.Round(RatePrecision).Float64()

		series = append(series, fxMonitor.Observation{
			Date: date,
			Rate: rounded,
		})
	}

	// YYYY-MM-DD sorts chronologically as a plain string.
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}
