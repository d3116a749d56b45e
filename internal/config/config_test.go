package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"keywords": "kw.json", "verbose": true}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "kw.json", cfg.Keywords)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"keywords": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	kw := writeFile(t, dir, "kw.json", `[]`)
	sk := writeFile(t, dir, "skills.json", `[]`)

	cfg := &Config{Keywords: kw, Skills: sk}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingKeywordsFile(t *testing.T) {
	cfg := &Config{Keywords: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}
