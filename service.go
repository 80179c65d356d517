package fxmonitor

import "context"

type (
	Service interface {
		Run(ctx context.Context) (Manifest, error)
	}
)
