package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeOverrides(t *testing.T) {
	overrides, err := parseTypeOverrides([]string{"id=Integer", "name=natural_language"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "Integer", "name": "natural_language"}, overrides)

	overrides, err = parseTypeOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestParseTypeOverrides_Invalid(t *testing.T) {
	for _, pair := range []string{"id", "=Integer", "id=", "="} {
		t.Run(pair, func(t *testing.T) {
			_, err := parseTypeOverrides([]string{pair})
			assert.ErrorContains(t, err, "expected column=Type")
		})
	}
}

func TestDescriptionFormat(t *testing.T) {
	assert.Equal(t, "yaml", descriptionFormat("schema.yaml"))
	assert.Equal(t, "yaml", descriptionFormat("schema.yml"))
	assert.Equal(t, "json", descriptionFormat("schema.json"))
	assert.Equal(t, "json", descriptionFormat("schema"))
}
