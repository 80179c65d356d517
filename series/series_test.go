package series_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	fxMonitor "github.com/malusev998/fx-monitor"
	"github.com/malusev998/fx-monitor/series"
)

func row(date, value string) fxMonitor.Row {
	return fxMonitor.Row{fxMonitor.TimePeriodField: date, fxMonitor.ObsValueField: value}
}

func TestParseAndValidate(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rows := []fxMonitor.Row{
		row("2026-02-18", "11.1234"),
		row("2026-02-19", "11.2234"),
		row("2026-02-20", "11.3234"),
	}

	s := series.Parse(rows, "EUR/SEK")

	asserts.Len(s, 3)
	for _, o := range s {
		asserts.Greater(o.Rate, 0.0)
	}
	asserts.Equal("2026-02-18", s[0].Date)
	asserts.NoError(series.Validate(s, "EUR/SEK"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rows []fxMonitor.Row

		want fxMonitor.Series
	}{
		"Rounds to six places": {
			rows: []fxMonitor.Row{row("2026-02-18", "1.23456789"), row("2026-02-19", "160.5")},
			want: fxMonitor.Series{{Date: "2026-02-18", Rate: 1.234568}, {Date: "2026-02-19", Rate: 160.5}},
		},
		"Missing fields": {
			rows: []fxMonitor.Row{
				{fxMonitor.TimePeriodField: "2026-02-18"},
				{fxMonitor.ObsValueField: "1.1"},
				row("", "1.1"),
				row("2026-02-19", ""),
				row("2026-02-20", "1.2"),
			},
			want: fxMonitor.Series{{Date: "2026-02-20", Rate: 1.2}},
		},
		"Non numeric values": {
			rows: []fxMonitor.Row{
				row("2026-02-18", "NaN"),
				row("2026-02-19", "n/a"),
				row("2026-02-20", "Infinity"),
				row("2026-02-21", " 1.5 "),
			},
			want: fxMonitor.Series{{Date: "2026-02-21", Rate: 1.5}},
		},
		"Non positive values": {
			rows: []fxMonitor.Row{row("2026-02-18", "0"), row("2026-02-19", "-1.2"), row("2026-02-20", "0.9")},
			want: fxMonitor.Series{{Date: "2026-02-20", Rate: 0.9}},
		},
		"Sorted by date": {
			rows: []fxMonitor.Row{row("2026-02-20", "3"), row("2025-12-31", "1"), row("2026-01-02", "2")},
			want: fxMonitor.Series{
				{Date: "2025-12-31", Rate: 1},
				{Date: "2026-01-02", Rate: 2},
				{Date: "2026-02-20", Rate: 3},
			},
		},
		"Duplicates kept in source order": {
			rows: []fxMonitor.Row{row("2026-02-19", "2"), row("2026-02-18", "1"), row("2026-02-19", "3")},
			want: fxMonitor.Series{
				{Date: "2026-02-18", Rate: 1},
				{Date: "2026-02-19", Rate: 2},
				{Date: "2026-02-19", Rate: 3},
			},
		},
		"All invalid": {
			rows: []fxMonitor.Row{row("2026-02-18", "x"), row("2026-02-19", "0")},
			want: fxMonitor.Series{},
		},
		"No rows": {
			rows: nil,
			want: fxMonitor.Series{},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := series.Parse(tc.rows, "EUR/SEK")
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_SortsRandomDates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rows := make([]fxMonitor.Row, 0, 200)
	for i := 0; i < 200; i++ {
		rows = append(rows, row(faker.Date(), "1.0"))
	}

	s := series.Parse(rows, "EUR/USD")

	asserts.Len(s, len(rows))
	asserts.True(sort.SliceIsSorted(s, func(i, j int) bool { return s[i].Date < s[j].Date }))
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rows := []fxMonitor.Row{row("2026-02-20", "11.3234"), row("2026-02-18", "11.1234"), row("2026-02-19", "bad")}

	asserts.Equal(series.Parse(rows, "EUR/SEK"), series.Parse(rows, "EUR/SEK"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		series fxMonitor.Series

		wantErr bool
	}{
		"Valid":          {series: fxMonitor.Series{{Date: "2026-02-18", Rate: 11.1234}}},
		"Empty":          {series: fxMonitor.Series{}, wantErr: true},
		"Nil":            {series: nil, wantErr: true},
		"Zero rate":      {series: fxMonitor.Series{{Date: "2026-02-18", Rate: 1}, {Date: "2026-02-19", Rate: 0}}, wantErr: true},
		"Negative rate":  {series: fxMonitor.Series{{Date: "2026-02-18", Rate: -0.5}}, wantErr: true},
		"NaN rate":       {series: fxMonitor.Series{{Date: "2026-02-18", Rate: math.NaN()}}, wantErr: true},
		"Infinite rate":  {series: fxMonitor.Series{{Date: "2026-02-18", Rate: math.Inf(1)}}, wantErr: true},
		"Tiny but valid": {series: fxMonitor.Series{{Date: "2026-02-18", Rate: 0.000001}}},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := series.Validate(tc.series, "EUR/GBP")
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.Is(err, series.ErrValidationFailed))
			require.Contains(t, err.Error(), "EUR/GBP")

			var validationErr *series.ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Equal(t, "EUR/GBP", validationErr.Pair)
		})
	}
}

func TestValidate_AllRowsInvalid(t *testing.T) {
	t.Parallel()

	s := series.Parse([]fxMonitor.Row{row("2026-02-18", "abc"), row("2026-02-19", "-3")}, "EUR/NOK")

	err := series.Validate(s, "EUR/NOK")
	require.True(t, errors.Is(err, series.ErrValidationFailed))
}
