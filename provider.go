package fxmonitor

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ECBProvider   Provider = "ECB"
	EmptyProvider Provider = ""
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "ecb":
		return ECBProvider, nil
	}

	return EmptyProvider, fmt.Errorf("value %s is not valid Provider", str)
}

func (p Provider) String() string {
	return string(p)
}
