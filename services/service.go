package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	fxMonitor "github.com/malusev998/fx-monitor"
	"github.com/malusev998/fx-monitor/series"
)

var (
	ErrNoPairs           = errors.New("no pairs configured")
	ErrNoStorageProvided = errors.New("no storage provided")
	ErrNoFetcherProvided = errors.New("no fetcher provided")
)

// Service publishes every configured pair, then the manifest. The first failing pair aborts
// the run; files already written for earlier pairs stay, but the manifest is not written.
type Service struct {
	Fetcher     fxMonitor.Fetcher
	Storage     fxMonitor.Storage
	Pairs       []fxMonitor.PairConfig
	StartPeriod string
	Now         func() time.Time
}

func (s Service) Run(ctx context.Context) (fxMonitor.Manifest, error) {
	if len(s.Pairs) == 0 {
		return fxMonitor.Manifest{}, ErrNoPairs
	}

	if s.Fetcher == nil {
		return fxMonitor.Manifest{}, ErrNoFetcherProvided
	}

	if s.Storage == nil {
		return fxMonitor.Manifest{}, ErrNoStorageProvided
	}

	now := s.Now
	if now == nil {
		now = time.Now
	}

	source := s.Fetcher.Provider()
	generatedUTC := now().UTC().Truncate(time.Second).Format(fxMonitor.GeneratedLayout)
	logger := log.With().Str("run_id", uuid.New().String()).Logger()

	logger.Info().
		Int("pairs", len(s.Pairs)).
		Str("start_period", s.StartPeriod).
		Str("generated_utc", generatedUTC).
		Msg("Starting run")

	for _, pair := range s.Pairs {
		rows, err := s.Fetcher.Fetch(ctx, pair, s.StartPeriod)
		if err != nil {
			return fxMonitor.Manifest{}, err
		}

		parsed := series.Parse(rows, pair.Pair)
		if err := series.Validate(parsed, pair.Pair); err != nil {
			return fxMonitor.Manifest{}, err
		}

		payload := fxMonitor.Payload{
			Pair:         pair.Pair,
			Source:       source,
			GeneratedUTC: generatedUTC,
			Series:       parsed,
		}

		if _, err := s.Storage.Store(pair.FileName, payload); err != nil {
			return fxMonitor.Manifest{}, fmt.Errorf("%s: %w", pair.Pair, err)
		}

		logger.Info().
			Str("pair", pair.Pair).
			Int("points", len(parsed)).
			Msgf("Wrote %s (%d points)", pair.FileName, len(parsed))
	}

	manifest := fxMonitor.Manifest{
		Source:       source,
		GeneratedUTC: generatedUTC,
		Pairs:        make([]fxMonitor.ManifestEntry, 0, len(s.Pairs)),
	}

	for _, pair := range s.Pairs {
		manifest.Pairs = append(manifest.Pairs, fxMonitor.ManifestEntry{
			Pair:      pair.Pair,
			File:      pair.FileName,
			SeriesKey: pair.SeriesKey(),
		})
	}

	if _, err := s.Storage.Store(fxMonitor.ManifestFileName, manifest); err != nil {
		return fxMonitor.Manifest{}, err
	}

	logger.Info().Msgf("Wrote %s", fxMonitor.ManifestFileName)

	return manifest, nil
}
