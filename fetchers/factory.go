package fetchers

import (
	"fmt"
	"net/http"
	"time"

	fxMonitor "github.com/malusev998/fx-monitor"
)

type (
	BaseConfig struct {
		URL string
	}
	ECBConfig struct {
		BaseConfig
		Timeout    time.Duration
		MaxRetries int
		Backoff    time.Duration
		Client     *http.Client
	}
)

func NewSeriesFetcher(provider fxMonitor.Provider, config interface{}) (fxMonitor.Fetcher, error) {
	switch provider {
	case fxMonitor.ECBProvider:
		c, ok := config.(ECBConfig)
		if !ok {
			return nil, fmt.Errorf("invalid %T config for %s fetcher", config, provider)
		}

		return NewECBFetcher(c), nil
	}

	return nil, ErrFetcherNotFound
}
