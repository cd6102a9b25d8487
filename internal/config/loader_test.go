package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timberline-data/timber/pkg/dtype"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timber.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFamily, cfg.Family)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultCategoricalThreshold, cfg.Inference.CategoricalThreshold)
	assert.Equal(t, DefaultSampleSize, cfg.Inference.SampleSize)
	assert.Equal(t, dtype.FamilyNative, cfg.StorageFamily())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
family: distributed
output: json
inference:
  categorical_threshold: 0.5
  sample_size: 100
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "distributed", cfg.Family)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 0.5, cfg.Inference.CategoricalThreshold)
	assert.Equal(t, 100, cfg.Inference.SampleSize)
}

func TestLoad_FindsConfigFileUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "timber.yml"), []byte("family: columnar\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "columnar", cfg.Family)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "family: distributed\n")
	t.Setenv("TIMBER_FAMILY", "columnar")
	t.Setenv("TIMBER_INFERENCE_SAMPLE_SIZE", "500")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "columnar", cfg.Family)
	assert.Equal(t, 500, cfg.Inference.SampleSize)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	path := writeConfig(t, "family: distributed\n")
	t.Setenv("TIMBER_FAMILY", "columnar")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("family", DefaultFamily, "")
	flags.String("output", DefaultOutput, "")
	require.NoError(t, flags.Set("family", "native"))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "native", cfg.Family)
	// Unchanged flags do not override lower layers.
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad family", "family: sqlite\n", "unknown storage family"},
		{"bad output", "output: xml\n", "unknown output format"},
		{"bad threshold", "inference:\n  categorical_threshold: 1.5\n", "categorical threshold must be between 0 and 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), nil)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}
