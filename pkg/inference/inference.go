// Package inference assigns a logical type to an untyped column using an
// ordered chain of deterministic heuristics.
package inference

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/frame"
	"github.com/timberline-data/timber/pkg/logical"
)

// Default heuristic parameters.
const (
	// DefaultCategoricalThreshold is the distinct/total ratio below which
	// a column is considered categorical.
	DefaultCategoricalThreshold = 0.2
	// DefaultSampleSize caps the number of values inspected for columns
	// backed by sampling storage families.
	DefaultSampleSize = 10000
)

// Config tunes the inference heuristics.
type Config struct {
	// CategoricalThreshold is the cardinality ratio cutoff for Categorical.
	CategoricalThreshold float64
	// SampleSize is the maximum number of values inspected for storage
	// families that defer or distribute execution. Zero means the default.
	SampleSize int
}

// Inferrer runs the heuristic chain. The zero value is not usable; call New.
type Inferrer struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Inferrer. A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Inferrer {
	if cfg.CategoricalThreshold <= 0 {
		cfg.CategoricalThreshold = DefaultCategoricalThreshold
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Inferrer{cfg: cfg, logger: logger}
}

// Infer determines the logical type that best describes the column's
// contents. The heuristics are evaluated top to bottom and the first match
// wins: boolean, datetime, lat-long, numeric, categorical cardinality,
// natural language fallback.
//
// The source column is never mutated. For distributed and columnar
// families inference operates on a sampled prefix of the column, trading
// exactness for tractability.
func (inf *Inferrer) Infer(col *frame.Column, family dtype.Family) *logical.Type {
	values := col.Values()
	if family.SamplesForInference() && len(values) > inf.cfg.SampleSize {
		inf.logger.Debug("sampling column for inference",
			"column", col.Name(), "rows", len(values), "sample", inf.cfg.SampleSize)
		values = values[:inf.cfg.SampleSize]
	}

	nonNull := make([]any, 0, len(values))
	hasNull := false
	for _, v := range values {
		if frame.IsNull(v) {
			hasNull = true
			continue
		}
		nonNull = append(nonNull, v)
	}

	t := inf.inferFromValues(nonNull, hasNull)
	inf.logger.Debug("inferred logical type", "column", col.Name(), "type", t.Name())
	return t
}

func (inf *Inferrer) inferFromValues(nonNull []any, hasNull bool) *logical.Type {
	// A column with no observable values carries no type signal; treat it
	// as categorical, the lowest-commitment discrete type.
	if len(nonNull) == 0 {
		return logical.Categorical
	}

	if allBoolean(nonNull) {
		if hasNull {
			return logical.BooleanNullable
		}
		return logical.Boolean
	}

	if allDatetime(nonNull) {
		return logical.Datetime
	}

	if allLatLong(nonNull) {
		return logical.LatLongType
	}

	if integral, fractional := numericShape(nonNull); integral || fractional {
		if fractional {
			return logical.Double
		}
		if hasNull {
			return logical.IntegerNullable
		}
		return logical.Integer
	}

	if inf.categoricalRatio(nonNull) < inf.cfg.CategoricalThreshold {
		return logical.Categorical
	}

	return logical.NaturalLanguage
}

// categoricalRatio is the number of distinct non-null values over the
// total non-null count.
func (inf *Inferrer) categoricalRatio(nonNull []any) float64 {
	distinct := make(map[string]struct{}, len(nonNull))
	for _, v := range nonNull {
		distinct[frame.ValueKey(v)] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(nonNull))
}

func allBoolean(values []any) bool {
	for _, v := range values {
		switch val := v.(type) {
		case bool:
		case string:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "true", "false":
			default:
				return false
			}
		default:
			return false
		}
	}
	return true
}

var inferenceLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func allDatetime(values []any) bool {
	for _, v := range values {
		switch val := v.(type) {
		case time.Time:
		case string:
			if !parsesAsDatetime(strings.TrimSpace(val)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func parsesAsDatetime(s string) bool {
	for _, layout := range inferenceLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// allLatLong requires pair-shaped values: slices or arrays of two numeric
// components, or bracketed string serializations of such pairs. Bare
// numbers never match, so numeric columns are not misread as coordinates.
func allLatLong(values []any) bool {
	for _, v := range values {
		if !latLongShaped(v) {
			return false
		}
		if _, err := logical.NormalizeLatLong(v); err != nil {
			return false
		}
	}
	return true
}

func latLongShaped(v any) bool {
	switch val := v.(type) {
	case *logical.LatLong, logical.LatLong, [2]float64:
		return true
	case []float64:
		return len(val) == 2
	case []any:
		return len(val) == 2
	case string:
		s := strings.TrimSpace(val)
		return len(s) >= 2 && (s[0] == '(' || s[0] == '[')
	}
	return false
}

// numericShape reports whether every value is numeric, and whether any
// value carries a fractional part.
func numericShape(values []any) (integral, fractional bool) {
	sawFraction := false
	for _, v := range values {
		switch val := v.(type) {
		case int, int8, int16, int32, int64, uint, uint32, uint64:
		case float32:
			if float64(val) != math.Trunc(float64(val)) {
				sawFraction = true
			}
		case float64:
			if val != math.Trunc(val) {
				sawFraction = true
			}
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return false, false
			}
			if f != math.Trunc(f) {
				sawFraction = true
			}
		default:
			return false, false
		}
	}
	if sawFraction {
		return false, true
	}
	return true, false
}
