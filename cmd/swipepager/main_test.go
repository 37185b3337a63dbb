package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipepager/internal/config"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-c", "/tmp/pager.toml", "-cutoff", "0.6", "-page", "0"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pager.toml", f.configPath)
	assert.True(t, f.set["cutoff"])
	assert.True(t, f.set["page"])
	assert.False(t, f.set["log"])

	cfg := config.DefaultConfig()
	require.NoError(t, f.apply(cfg))
	assert.Equal(t, 0.6, cfg.Pager.DeltaCutoff)
	assert.Equal(t, 0, cfg.Pager.StartPage)
	assert.Equal(t, config.DefaultConfig().LogFile, cfg.LogFile)
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Pager.StartPage = 2
	require.NoError(t, f.apply(cfg))
	assert.Equal(t, 2, cfg.Pager.StartPage, "a zero-valued flag that was never passed must not override")
	assert.Equal(t, config.DefaultConfig().Pager.DeltaCutoff, cfg.Pager.DeltaCutoff)
}

func TestInvalidFlagValues(t *testing.T) {
	tests := [][]string{
		{"-page", "3"},
		{"-cutoff", "0"},
		{"-cutoff", "1.5"},
	}
	for _, args := range tests {
		f, err := parseFlags(args)
		require.NoError(t, err)
		assert.ErrorIs(t, f.apply(config.DefaultConfig()), config.ErrInvalidConfig, "%v", args)
	}
}

func TestUnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-dir", "."})
	assert.Error(t, err)
}
