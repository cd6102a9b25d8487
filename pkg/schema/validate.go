package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/timberline-data/timber/pkg/frame"
)

// InvalidMessage compares a live DataFrame against previously captured
// typing information and returns a human-readable description of the first
// mismatch, or "" when the schema is valid.
//
// Checks run in a fixed priority order so messages are deterministic:
// column-set differences (both directions), per-column dtype consistency,
// then index integrity. Index integrity is only checked for storage
// families that expose the underlying index eagerly.
//
// Validation never fails with an error; the caller decides whether a
// non-empty message warrants a warning or a hard failure.
func InvalidMessage(df *frame.DataFrame, s *TableSchema) string {
	if s == nil {
		return ""
	}

	dfNames := df.ColumnNames()
	dfSet := make(map[string]bool, len(dfNames))
	for _, name := range dfNames {
		dfSet[name] = true
	}

	var missingFromDF []string
	for _, cs := range s.Columns {
		if !dfSet[cs.Name] {
			missingFromDF = append(missingFromDF, cs.Name)
		}
	}
	if len(missingFromDF) > 0 {
		return fmt.Sprintf("The following columns in the typing information were missing from the DataFrame: %s",
			formatNameSet(missingFromDF))
	}

	var missingFromSchema []string
	for _, name := range dfNames {
		if _, ok := s.Column(name); !ok {
			missingFromSchema = append(missingFromSchema, name)
		}
	}
	if len(missingFromSchema) > 0 {
		return fmt.Sprintf("The following columns in the DataFrame were missing from the typing information: %s",
			formatNameSet(missingFromSchema))
	}

	for _, cs := range s.Columns {
		col, _ := df.Column(cs.Name)
		expected := cs.LogicalType.Physical(df.Family())
		if col.Dtype() != expected {
			return fmt.Sprintf("dtype mismatch for column %s between DataFrame dtype, %s, and %s dtype, %s",
				cs.Name, col.Dtype(), cs.LogicalType.Name(), expected)
		}
	}

	if s.Index != "" && df.Family().SupportsIndexInspection() {
		if msg := invalidIndexMessage(df, s.Index); msg != "" {
			return msg
		}
	}

	return ""
}

// IsValid reports whether the DataFrame is consistent with the typing
// information. A nil schema is trivially valid: it represents a table whose
// typing has not been initialized.
func IsValid(df *frame.DataFrame, s *TableSchema) bool {
	return InvalidMessage(df, s) == ""
}

func invalidIndexMessage(df *frame.DataFrame, index string) string {
	col, ok := df.Column(index)
	if !ok {
		return "Index mismatch between DataFrame and typing information"
	}

	underlying := df.UnderlyingIndex()
	values := col.Values()
	if len(underlying) != len(values) {
		return "Index mismatch between DataFrame and typing information"
	}
	for i := range values {
		if !valuesEqual(underlying[i], values[i]) {
			return "Index mismatch between DataFrame and typing information"
		}
	}

	if !indexValuesUnique(values) {
		return "Index column is not unique"
	}
	return ""
}

// valuesEqual compares two values, treating nulls as equal to each other.
func valuesEqual(a, b any) bool {
	aNull, bNull := frame.IsNull(a), frame.IsNull(b)
	if aNull || bNull {
		return aNull && bNull
	}
	return frame.ValueKey(a) == frame.ValueKey(b)
}

// formatNameSet renders column names as a set literal, e.g. {'id', 'age'}.
// The format matches descriptions produced by the system this typing layer
// interoperates with, so messages stay byte-compatible.
func formatNameSet(names []string) string {
	sorted := append([]string{}, names...)
	sort.Strings(sorted)
	quoted := make([]string, len(sorted))
	for i, name := range sorted {
		quoted[i] = "'" + name + "'"
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}
