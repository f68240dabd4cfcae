package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinFieldWidth = 1
	MaxFieldWidth = 8

	MaxNumFields = 1 << 16
)

const (
	DefaultLayout = "4,4"
)

// Config holds the CLI settings, merged from the config file and flags.
type Config struct {
	In      string `mapstructure:"in"`
	Out     string `mapstructure:"out"`
	Hex     string `mapstructure:"hex"`
	Layout  string `mapstructure:"layout"`
	Verbose bool   `mapstructure:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Layout: DefaultLayout,
	}
}

func (cfg *Config) Validate() error {
	if cfg.In != "" && cfg.Hex != "" {
		return fmt.Errorf("invalid input; expected: either `In` or `Hex`, given: both")
	}

	if _, err := ParseLayout(cfg.Layout); err != nil {
		return err
	}

	return nil
}

// ParseLayout parses a comma-separated list of field widths, in bits.
func ParseLayout(layout string) ([]uint, error) {
	if layout == "" {
		return nil, fmt.Errorf("invalid `Layout`; expected: comma-separated field widths, given: empty")
	}

	parts := strings.Split(layout, ",")
	if len(parts) > MaxNumFields {
		return nil, fmt.Errorf("invalid `Layout`; expected: <= %d fields, given: %d", MaxNumFields, len(parts))
	}

	widths := make([]uint, 0, len(parts))
	for _, part := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid `Layout`; expected: comma-separated field widths, given: %q", layout)
		}
		if w < MinFieldWidth || w > MaxFieldWidth {
			return nil, fmt.Errorf("invalid `Layout`; expected: widths of %d-%d bits, given: %d", MinFieldWidth, MaxFieldWidth, w)
		}
		widths = append(widths, uint(w))
	}

	return widths, nil
}
