package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numberwall/number"
)

var errConfig = errors.New("invalid batch config")

// batchConfig is the YAML document read by the batch command.
type batchConfig struct {
	Walls []wallConfig `yaml:"walls"`
}

// wallConfig describes one wall of a batch.
type wallConfig struct {
	Name     string   `yaml:"name"`
	Sequence []string `yaml:"sequence"`
	// Characteristic builds the wall of a_{k+1} - a_k·x instead and reports
	// the characteristic polynomial.
	Characteristic bool `yaml:"characteristic"`
	// MaxRows overrides --max-rows for this wall when positive.
	MaxRows int `yaml:"max_rows"`
}

// loadConfig reads and validates a batch file.
func loadConfig(path string) (*batchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(data)
}

// parseConfig decodes YAML and checks names and sequences.
func parseConfig(data []byte) (*batchConfig, error) {
	var cfg batchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Walls) == 0 {
		return nil, fmt.Errorf("%w: no walls", errConfig)
	}
	seen := make(map[string]bool, len(cfg.Walls))
	for i, w := range cfg.Walls {
		switch {
		case w.Name == "":
			return nil, fmt.Errorf("%w: wall %d has no name", errConfig, i)
		case seen[w.Name]:
			return nil, fmt.Errorf("%w: duplicate wall name %q", errConfig, w.Name)
		case len(w.Sequence) == 0:
			return nil, fmt.Errorf("%w: wall %q has no sequence", errConfig, w.Name)
		case w.MaxRows < 0:
			return nil, fmt.Errorf("%w: wall %q has negative max_rows", errConfig, w.Name)
		}
		seen[w.Name] = true
	}

	return &cfg, nil
}

// terms parses the wall's sequence literals.
func (w wallConfig) terms() ([]number.Fraction, error) {
	out := make([]number.Fraction, len(w.Sequence))
	for i, s := range w.Sequence {
		f, err := number.ParseFraction(s)
		if err != nil {
			return nil, fmt.Errorf("wall %q term %d: %w", w.Name, i, err)
		}
		out[i] = f
	}

	return out, nil
}
