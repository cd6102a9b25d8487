// Package schema captures, validates and serializes the typing information
// of a tabular dataset: one logical type and a set of semantic tags per
// column, plus index designations and metadata.
package schema

import (
	"reflect"
	"sort"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/logical"
)

// ColumnSchema is the typing information of a single column: an immutable
// snapshot used later purely for comparison.
type ColumnSchema struct {
	Name            string
	Ordinal         int
	LogicalType     *logical.Type
	PhysicalType    dtype.Dtype
	SemanticTags    map[string]struct{}
	UseStandardTags bool
	Description     string
	Metadata        map[string]any
}

// Tags returns the semantic tags as a sorted slice.
func (cs *ColumnSchema) Tags() []string {
	tags := make([]string, 0, len(cs.SemanticTags))
	for tag := range cs.SemanticTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// HasTag reports whether the column carries the given semantic tag.
func (cs *ColumnSchema) HasTag(tag string) bool {
	_, ok := cs.SemanticTags[tag]
	return ok
}

// Equal compares two column schemas attribute for attribute.
func (cs *ColumnSchema) Equal(other *ColumnSchema) bool {
	if other == nil {
		return false
	}
	if cs.Name != other.Name ||
		cs.Ordinal != other.Ordinal ||
		cs.PhysicalType != other.PhysicalType ||
		cs.UseStandardTags != other.UseStandardTags ||
		cs.Description != other.Description {
		return false
	}
	if !cs.LogicalType.Equal(other.LogicalType) {
		return false
	}
	if len(cs.SemanticTags) != len(other.SemanticTags) {
		return false
	}
	for tag := range cs.SemanticTags {
		if _, ok := other.SemanticTags[tag]; !ok {
			return false
		}
	}
	return equalMetadata(cs.Metadata, other.Metadata)
}

func equalMetadata(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// deriveTags computes the stored tag set for a column. Standard tags are
// applied when enabled; designating a column as the index replaces its
// standard tags with "index"; the time index additionally carries
// "time_index".
func deriveTags(lt *logical.Type, custom map[string]struct{}, useStandard, isIndex, isTimeIndex bool) map[string]struct{} {
	tags := make(map[string]struct{}, len(custom)+2)
	for tag := range custom {
		tags[tag] = struct{}{}
	}
	if useStandard && !isIndex {
		for _, tag := range lt.StandardTags() {
			tags[tag] = struct{}{}
		}
	}
	if isIndex {
		tags["index"] = struct{}{}
	}
	if isTimeIndex {
		tags["time_index"] = struct{}{}
	}
	return tags
}
