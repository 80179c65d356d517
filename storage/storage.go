package storage

import (
	"errors"
	"fmt"
	"strings"

	fxMonitor "github.com/malusev998/fx-monitor"
)

type (
	Provider   string
	BaseConfig struct {
		Dir string
	}
	JSONConfig struct {
		BaseConfig
	}
)

const (
	JSON Provider = "json"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "json":
		return JSON, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (fxMonitor.Storage, error) {
	switch provider {
	case JSON:
		c, ok := config.(JSONConfig)
		if !ok {
			return nil, fmt.Errorf("invalid %T config for %s storage", config, provider)
		}

		return NewJSONStorage(c), nil
	}

	return nil, ErrStorageNotFound
}
