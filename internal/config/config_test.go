package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, MarkersEmoji, cfg.Markers)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
data_file = "lists/home.yaml"
markers = "ASCII"
no_color = true
quiet = true
debug = true
log_file = "/tmp/todo-debug.log"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lists", "home.yaml"), cfg.DataFile)
	assert.Equal(t, MarkersASCII, cfg.Markers)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/todo-debug.log", cfg.LogFile)
}

func TestLoad_ExplicitFalse(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "quiet = false\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "data_file = \"x.json\"\ncolour = true\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: colour")
}

func TestLoad_BadSyntax(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "data_file = \n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestLoad_InvalidMarkers(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "markers = \"stars\"\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid markers "stars"`)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", AppName), DefaultConfigDir())
}

func TestNew_EmptyDirUsesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	cfg := New("")
	assert.Equal(t, filepath.Join("/xdg", AppName), cfg.Dir)
	assert.Equal(t, filepath.Join("/xdg", AppName, ConfigFile), cfg.Path())
}

func TestValidate_EmptyDataFile(t *testing.T) {
	cfg := New(t.TempDir())
	cfg.DataFile = " "
	assert.Error(t, cfg.Validate())
}
