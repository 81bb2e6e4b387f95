package memoize

import (
	"errors"
	"fmt"
	"io"

	"github.com/on-the-ground/memoize/internal/log"
	"gopkg.in/yaml.v3"
)

// Config holds Debug memoizer settings, typically read from a YAML document:
//
//	name: fib
//	threshold: 1000
//	warn_level: error
type Config struct {
	Name      string `yaml:"name"`
	Threshold uint64 `yaml:"threshold"`
	WarnLevel string `yaml:"warn_level"`
}

// LoadConfig decodes and validates a Config. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := cfg.Options(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into DebugOptions.
func (c Config) Options() ([]DebugOption, error) {
	level, err := log.ParseLevel(c.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := []DebugOption{
		WithThreshold(c.Threshold),
		WithWarnLevel(level),
	}
	if c.Name != "" {
		opts = append(opts, WithName(c.Name))
	}
	return opts, nil
}
