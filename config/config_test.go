package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genpolicy/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, core.DefaultBoundaries(), cfg.Defaults)
}

func TestParseOverridesOnlyNamedFields(t *testing.T) {
	cfg, err := Parse([]byte(`
log:
  level: debug
defaults:
  password:
    length:
      max: 64
  passphrase:
    num_words:
      min: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, core.Between(5, 64), cfg.Defaults.Password.Length)
	assert.Equal(t, core.Between(0, 9), cfg.Defaults.Password.MinDigits)
	assert.Equal(t, core.Between(4, 20), cfg.Defaults.Passphrase.NumWords)
}

func TestParseRestoresNullLimits(t *testing.T) {
	cfg, err := Parse([]byte("defaults:\n  password:\n    min_digits: null\n"))
	require.NoError(t, err)
	assert.Equal(t, core.Between(0, 9), cfg.Defaults.Password.MinDigits)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"level", "log:\n  level: loud\n", "invalid log.level"},
		{"format", "log:\n  format: xml\n", "invalid log.format"},
		{"empty range", "defaults:\n  password:\n    length: {min: 30, max: 10}\n", "password.length"},
		{"negative bound", "defaults:\n  passphrase:\n    num_words: {min: -1, max: 10}\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEmptyRangeWrapsSentinel(t *testing.T) {
	_, err := Parse([]byte("defaults:\n  password:\n    length: {min: 30, max: 10}\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyRange)
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genpolicy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o600))

	t.Setenv(EnvVar, path)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadWithoutEnvironmentUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
