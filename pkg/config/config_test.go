package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "/graphql", cfg.Path)
	assert.True(t, cfg.Introspection)
	assert.True(t, cfg.Playground)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.SeedFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
addr: ":9000"
path: /api/graphql
playground: false
logLevel: debug
seedFile: /data/seed.yaml
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/api/graphql", cfg.Path)
	assert.False(t, cfg.Playground)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/seed.yaml", cfg.SeedFile)

	// Fields absent from the file keep their defaults.
	assert.True(t, cfg.Introspection)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"addr": ":8080", "introspection": false}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Introspection)
	assert.Equal(t, "/graphql", cfg.Path)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "not found",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
			wantErr: ErrFileNotFound,
		},
		{
			name:    "empty file",
			path:    func(t *testing.T) string { return writeConfigFile(t, "empty.yaml", "") },
			wantErr: ErrEmptyFile,
		},
		{
			name:    "bad yaml",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.yaml", "addr: [unclosed") },
			wantErr: ErrInvalidYAML,
		},
		{
			name:    "bad json",
			path:    func(t *testing.T) string { return writeConfigFile(t, "bad.json", "{not json") },
			wantErr: ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(tt.path(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Path = "graphql"
	assert.Error(t, cfg.Validate())
}
