package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in insertion order. A field set by an
// earlier source is never overwritten by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// configLoader produces one configuration source. A nil config with a nil
// error means the source is absent.
type configLoader func() (*StructuredConfig, error)

func (b *configBuilder) with(load configLoader) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.with(parseEnv)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.with(func() (*StructuredConfig, error) {
		return parseFlags(args)
	})
}

// withJSON reads the file named by the first source that set one, so the
// JSON file itself can never point at another file.
func (b *configBuilder) withJSON() *configBuilder {
	return b.with(func() (*StructuredConfig, error) {
		for _, cfg := range b.configs {
			if cfg.JSONFilePath != "" {
				return parseJSON(cfg.JSONFilePath)
			}
		}
		return nil, nil
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.with(func() (*StructuredConfig, error) {
		return defaultConfig(), nil
	})
}

// parseEnv reads the environment into a fresh config. Variable names come
// from the env and envPrefix tags on [StructuredConfig].
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
