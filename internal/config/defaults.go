package config

import "github.com/timberline-data/timber/pkg/inference"

// Default configuration values.
const (
	DefaultFamily               = "native"
	DefaultOutput               = "table"
	DefaultCategoricalThreshold = inference.DefaultCategoricalThreshold
	DefaultSampleSize           = inference.DefaultSampleSize
)
