package fxmonitor

import "context"

type (
	// Fetcher downloads the raw rows of one pair's series starting at startPeriod (YYYY-MM-DD).
	Fetcher interface {
		Fetch(ctx context.Context, pair PairConfig, startPeriod string) ([]Row, error)
		Provider() Provider
	}
)
