package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "scramble_length: 25\nseed: 42\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.ScrambleLength)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Color, "unset keys keep defaults")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"negative.yaml": "scramble_length: -1\n",
		"level.yaml":    "log_level: chatty\n",
		"syntax.yaml":   "scramble_length: [\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	seed := uint64(7)
	cfg := Default()
	cfg.Seed = &seed
	cfg.DBPath = "/tmp/cube.db"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
