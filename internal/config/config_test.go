package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Output.Comments)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, []string{".tp"}, cfg.Watch.Extensions)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "tipo.toml", `
[output]
comments = true
indent = 4

[watch]
extensions = [".tp", ".tipo"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Output.Comments)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, []string{".tp", ".tipo"}, cfg.Watch.Extensions)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "tipo.yaml", `
output:
  comments: true
  indent: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Output.Comments)
	assert.Equal(t, 8, cfg.Output.Indent)
	// Sections absent from the file keep their defaults
	assert.Equal(t, []string{".tp"}, cfg.Watch.Extensions)
}

func TestLoadYML(t *testing.T) {
	path := writeConfig(t, "tipo.yml", "output:\n  indent: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Output.Indent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeConfig(t, "tipo.ini", "[output]\ncomments = true\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "tipo.toml", "output = {{{\n")

	_, err := Load(path)
	assert.Error(t, err)
}
