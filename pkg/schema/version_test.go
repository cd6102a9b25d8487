package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		saved string
		want  WarningKind
	}{
		{"9.0.0", ""},
		{"9.0.1", ""},
		{"9.0.99", ""},
		{"10.0.0", WarnUpgrade},
		{"9.1.0", WarnUpgrade},
		{"8.9.0", WarnOutdated},
		{"8.9.1", WarnOutdated},
		{"8.99.99", WarnOutdated},
		{"0.1.0", WarnOutdated},
	}
	for _, tt := range tests {
		t.Run(tt.saved, func(t *testing.T) {
			warning, err := CheckVersion(tt.saved)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, warning, "patch-only differences never warn")
				return
			}
			require.NotNil(t, warning)
			assert.Equal(t, tt.want, warning.Kind)
			assert.Equal(t, tt.saved, warning.Saved)
			assert.Equal(t, Version, warning.Supported)
		})
	}
}

func TestCheckVersion_Unparsable(t *testing.T) {
	for _, saved := range []string{"", "9.0", "9.0.0.0", "a.b.c", "9.x.0"} {
		t.Run(saved, func(t *testing.T) {
			_, err := CheckVersion(saved)
			assert.Error(t, err)
		})
	}
}

func TestVersionWarning_Message(t *testing.T) {
	up := &VersionWarning{Kind: WarnUpgrade, Saved: "10.0.0", Supported: Version}
	assert.Contains(t, up.Message(), "10.0.0")
	assert.Contains(t, up.Message(), "greater than the latest supported")

	out := &VersionWarning{Kind: WarnOutdated, Saved: "8.9.0", Supported: Version}
	assert.Contains(t, out.Message(), "8.9.0")
	assert.Contains(t, out.Message(), "no longer supported")
}
