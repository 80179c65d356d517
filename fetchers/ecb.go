package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	fxMonitor "github.com/malusev998/fx-monitor"
)

// ECBFetcher downloads daily reference rate series from the ECB data API in CSV form.
// A failed attempt is retried after Backoff*attempt, up to MaxRetries attempts in total.
type ECBFetcher struct {
	URL        string
	MaxRetries int
	Backoff    time.Duration
	client     *http.Client
}

func NewECBFetcher(config ECBConfig) *ECBFetcher {
	client := config.Client

	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	fetcher := &ECBFetcher{
		URL:        config.URL,
		MaxRetries: config.MaxRetries,
		Backoff:    config.Backoff,
		client:     client,
	}

	if fetcher.URL == "" {
		fetcher.URL = ECBURL
	}

	if fetcher.MaxRetries <= 0 {
		fetcher.MaxRetries = DefaultMaxRetries
	}

	if fetcher.Backoff < 0 {
		fetcher.Backoff = DefaultBackoff
	}

	return fetcher
}

func (e *ECBFetcher) Provider() fxMonitor.Provider {
	return fxMonitor.ECBProvider
}

func (e *ECBFetcher) Fetch(ctx context.Context, pair fxMonitor.PairConfig, startPeriod string) ([]fxMonitor.Row, error) {
	endpoint := strings.TrimRight(e.URL, "/") + "/" + pair.SeriesKey()
	params := url.Values{
		"startPeriod": {startPeriod},
		"format":      {csvDataFormat},
	}

	for attempt := 1; attempt <= e.MaxRetries; attempt++ {
		log.Info().
			Str("pair", pair.Pair).
			Int("attempt", attempt).
			Int("max_attempts", e.MaxRetries).
			Msg("Fetching series")

		rows, err := e.fetchRows(ctx, endpoint, params)
		if err == nil {
			return rows, nil
		}

		if ctx.Err() != nil {
			return nil, &FetchError{Pair: pair.Pair, Attempts: attempt, Err: ctx.Err()}
		}

		if attempt == e.MaxRetries {
			log.Error().Err(err).Str("pair", pair.Pair).Int("attempt", attempt).Msg("Fetch failed, giving up")
			return nil, &FetchError{Pair: pair.Pair, Attempts: attempt, Err: err}
		}

		delay := e.Backoff * time.Duration(attempt)
		log.Warn().
			Err(err).
			Str("pair", pair.Pair).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("Fetch failed, retrying")

		if err := sleep(ctx, delay); err != nil {
			return nil, &FetchError{Pair: pair.Pair, Attempts: attempt, Err: err}
		}
	}

	panic(fmt.Sprintf("fetch loop for %s ended without a result", pair.Pair))
}

func (e *ECBFetcher) fetchRows(ctx context.Context, endpoint string, params url.Values) ([]fxMonitor.Row, error) {
	req, err := getData(ctx, endpoint, params)

	if err != nil {
		return nil, err
	}

	res, err := e.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	return decodeRows(res.Body)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
