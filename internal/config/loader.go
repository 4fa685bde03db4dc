package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if TIMEGUESS_CONFIG is set
//  3. env (prefix TIMEGUESS_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TIMEGUESS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TIMEGUESS_ADDR, TIMEGUESS_DATA_FILE, ...
	// Keys map like TIMEGUESS_DATA_FILE -> data_file (flat, underscores
	// preserved to match koanf tags). Comma-separated values become lists
	// so TIMEGUESS_PARTICIPANTS="A,B,C" sets the roster.
	envProvider := env.ProviderWithValue("TIMEGUESS_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "TIMEGUESS_"))
		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("%w: data_file must not be empty", ErrInvalidConfig)
	}
	if len(cfg.Participants) != 3 {
		return nil, fmt.Errorf("%w: participants must list exactly three names", ErrInvalidConfig)
	}
	return &cfg, nil
}
