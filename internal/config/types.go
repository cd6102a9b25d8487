// Package config loads Timber configuration from file, environment
// variables, and CLI flags. It is decoupled from CLI concerns so other
// tools can load project configuration.
package config

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/inference"
)

// InferenceConfig tunes the type-inference heuristics.
type InferenceConfig struct {
	// CategoricalThreshold is the distinct/total ratio below which a
	// column is inferred as Categorical.
	CategoricalThreshold float64 `koanf:"categorical_threshold"`
	// SampleSize caps the values inspected per column for storage
	// families that sample during inference.
	SampleSize int `koanf:"sample_size"`
}

// ToInference converts to the inference package's config.
func (c InferenceConfig) ToInference() inference.Config {
	return inference.Config{
		CategoricalThreshold: c.CategoricalThreshold,
		SampleSize:           c.SampleSize,
	}
}

// Config holds all Timber configuration options.
type Config struct {
	// Family is the storage family tag applied to loaded tables.
	Family string `koanf:"family"`
	// OutputFormat selects CLI rendering: table, json, or yaml.
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Inference tunes the heuristic chain.
	Inference InferenceConfig `koanf:"inference"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := dtype.ParseFamily(c.Family); !ok {
		return fmt.Errorf("unknown storage family %q: must be one of native, distributed, columnar", c.Family)
	}
	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q: must be one of table, json, yaml", c.OutputFormat)
	}
	if c.Inference.CategoricalThreshold < 0 || c.Inference.CategoricalThreshold > 1 {
		return fmt.Errorf("categorical threshold must be between 0 and 1, got %v", c.Inference.CategoricalThreshold)
	}
	return nil
}

// StorageFamily returns the parsed storage family tag.
func (c *Config) StorageFamily() dtype.Family {
	f, _ := dtype.ParseFamily(c.Family)
	return f
}
