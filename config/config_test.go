package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ll1tab.toml")
	err := os.WriteFile(path, []byte("color = false\ntable_wrap = 60\ntrace_log = \"trace.log\"\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.Equal(t, 60, cfg.TableWrap)
	assert.Equal(t, "trace.log", cfg.TraceLog)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Color)
	assert.Equal(t, 100, cfg.TableWrap)
}
