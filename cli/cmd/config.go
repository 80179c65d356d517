package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	fxMonitor "github.com/malusev998/fx-monitor"
	"github.com/malusev998/fx-monitor/fetchers"
	"github.com/malusev998/fx-monitor/storage"
)

type (
	pairEntry struct {
		Pair  string `mapstructure:"pair"`
		Quote string `mapstructure:"quote"`
		File  string `mapstructure:"file"`
	}

	Config struct {
		Source      fxMonitor.Provider
		Storage     storage.Provider
		OutputDir   string
		StartPeriod string
		ECB         fetchers.ECBConfig
		Pairs       []fxMonitor.PairConfig
	}
)

func getConfig(v *viper.Viper) (*Config, error) {
	startPeriod := v.GetString("start-period")
	if _, err := time.Parse(fxMonitor.DateLayout, startPeriod); err != nil {
		return nil, usageError{err: fmt.Errorf("start period %q is not a YYYY-MM-DD date", startPeriod)}
	}

	source, err := fxMonitor.ConvertToProviderFromString(v.GetString("source"))
	if err != nil {
		return nil, usageError{err: err}
	}

	storageProvider, err := storage.ConvertToProviderFromString(v.GetString("storage"))
	if err != nil {
		return nil, usageError{err: err}
	}

	pairs, err := getPairs(v)
	if err != nil {
		return nil, usageError{err: err}
	}

	return &Config{
		Source:      source,
		Storage:     storageProvider,
		OutputDir:   v.GetString("output-dir"),
		StartPeriod: startPeriod,
		ECB: fetchers.ECBConfig{
			BaseConfig: fetchers.BaseConfig{
				URL: v.GetString("ecb.url"),
			},
			Timeout:    v.GetDuration("ecb.timeout"),
			MaxRetries: v.GetInt("ecb.max-retries"),
			Backoff:    v.GetDuration("ecb.backoff"),
		},
		Pairs: pairs,
	}, nil
}

func getPairs(v *viper.Viper) ([]fxMonitor.PairConfig, error) {
	if !v.IsSet("pairs") {
		return fxMonitor.DefaultPairs(), nil
	}

	var entries []pairEntry
	if err := v.UnmarshalKey("pairs", &entries); err != nil {
		return nil, fmt.Errorf("error while parsing pairs: %w", err)
	}

	if len(entries) == 0 {
		return nil, errors.New("pairs is set but lists no pair")
	}

	pairs := make([]fxMonitor.PairConfig, 0, len(entries))
	for _, entry := range entries {
		pair, err := fxMonitor.NewPairConfig(entry.Pair, entry.Quote, entry.File)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)
	}

	return pairs, nil
}
