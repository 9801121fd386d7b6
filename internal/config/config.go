// Package config holds the tool's recognized options and their YAML
// file loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults, matching the original tool's constants.
const (
	DefaultDictionary    = "passwords.txt"
	DefaultTopCandidates = 20
	DefaultTopLetters    = 3
	DefaultMaxLength     = 50
)

// Config is the full set of recognized options. Unknown keys in a
// config file are an error.
type Config struct {
	// Dictionary is the path to the password list, one entry per line.
	Dictionary string `yaml:"dictionary"`
	// TopCandidates caps the ranked table shown to the user.
	TopCandidates int `yaml:"top_candidates"`
	// TopLetters caps the per-position letter summary.
	TopLetters int `yaml:"top_letters"`
	// MaxLength bounds the length selector.
	MaxLength int `yaml:"max_length"`
}

func Default() Config {
	return Config{
		Dictionary:    DefaultDictionary,
		TopCandidates: DefaultTopCandidates,
		TopLetters:    DefaultTopLetters,
		MaxLength:     DefaultMaxLength,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An
// empty path skips the file entirely. Omitted keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Dictionary == "" {
		return errors.New("dictionary path must not be empty")
	}
	if c.TopCandidates < 1 {
		return fmt.Errorf("top_candidates must be positive, got %d", c.TopCandidates)
	}
	if c.TopLetters < 1 {
		return fmt.Errorf("top_letters must be positive, got %d", c.TopLetters)
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be positive, got %d", c.MaxLength)
	}
	return nil
}
