package series

import (
	"errors"
	"fmt"
	"math"

	fxMonitor "github.com/malusev998/fx-monitor"
)

var ErrValidationFailed = errors.New("series validation failed")

type ValidationError struct {
	Pair   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid series for %s: %s", e.Pair, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Validate fails when the series is empty or holds a rate that is not a positive finite number.
func Validate(s fxMonitor.Series, pair string) error {
	if len(s) == 0 {
		return &ValidationError{Pair: pair, Reason: "series is empty"}
	}

	for _, observation := range s {
		if !(observation.Rate > 0) || math.IsInf(observation.Rate, 1) {
			return &ValidationError{
				Pair:   pair,
				Reason: fmt.Sprintf("rate %v on %s is not positive", observation.Rate, observation.Date),
			}
		}
	}

	return nil
}
