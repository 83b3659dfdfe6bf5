package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/g-m-twostay/go-trees/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Strategy:  "color",
		IndexBits: 16,
		Format:    config.FormatPlain,
		Log:       config.LogConfig{Level: "debug"},
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "treectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	s, err := cfg.TreeStrategy()
	require.NoError(t, err)
	assert.Equal(t, Trees.Color, s)
}

func TestValidate_Invalid_ReturnsSentinel(t *testing.T) {
	t.Parallel()

	for name, c := range map[string]struct {
		edit func(*config.Config)
		want error
	}{
		"strategy":   {func(c *config.Config) { c.Strategy = "splay" }, config.ErrInvalidStrategy},
		"index bits": {func(c *config.Config) { c.IndexBits = 8 }, config.ErrInvalidIndexBits},
		"format":     {func(c *config.Config) { c.Format = "json" }, config.ErrInvalidFormat},
		"log level":  {func(c *config.Config) { c.Log.Level = "trace" }, config.ErrInvalidLogLevel},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			c.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), c.want)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultStrategy, cfg.Strategy)
	assert.Equal(t, config.DefaultIndexBits, cfg.IndexBits)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.True(t, cfg.Check)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Workload.Insert)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
strategy: rb
index_bits: 64
format: plain
color: false
log:
  level: debug
  json: true
workload:
  insert: [7, 4, 9, 2]
  delete: [4]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	s, err := cfg.TreeStrategy()
	require.NoError(t, err)
	assert.Equal(t, Trees.Color, s)
	assert.Equal(t, 64, cfg.IndexBits)
	assert.Equal(t, config.FormatPlain, cfg.Format)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, []int{7, 4, 9, 2}, cfg.Workload.Insert)
	assert.Equal(t, []int{4}, cfg.Workload.Delete)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "strategy: height\nindex_bits: 16\n")
	t.Setenv("TREECTL_STRATEGY", "color")
	t.Setenv("TREECTL_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "color", cfg.Strategy)
	assert.Equal(t, 16, cfg.IndexBits)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidValue_ReturnsError(t *testing.T) {
	_, err := config.Load(writeConfig(t, "index_bits: 12\n"))
	require.ErrorIs(t, err, config.ErrInvalidIndexBits)
}
