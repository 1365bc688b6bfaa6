package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `logLevel: debug
logFormat: json
indexURL: http://localhost:8080/index
versions:
  dimension-types: 1.5.0
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:8080/index", cfg.IndexURLOrDefault())
	assert.Equal(t, map[string]string{"dimension-types": "1.5.0"}, cfg.Versions)
}

func TestLoad_MissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
	assert.Equal(t, DefaultIndexURL, cfg.IndexURLOrDefault())
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown field", "logLevl: debug\n", "logLevl"},
		{"bad level", "logLevel: loud\n", "invalid logLevel"},
		{"bad format", "logFormat: xml\n", "invalid logFormat"},
		{"bad yaml", "versions: [\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, filepath.Join("/home/u", ".config", "cargo-dimension", "config.yml"), DefaultPath(getenv, "/home/u"))

	env["XDG_CONFIG_HOME"] = "/xdg"
	assert.Equal(t, filepath.Join("/xdg", "cargo-dimension", "config.yml"), DefaultPath(getenv, "/home/u"))
}
