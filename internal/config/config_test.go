package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(""))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 0.0, GetFloat("world.gravityX"))
	assert.Equal(t, -10.0, GetFloat("world.gravityY"))
	assert.Equal(t, 16, GetInt("circleSegments"))
	assert.Equal(t, 100*time.Millisecond, GetDuration("watch.debounce"))
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	file := filepath.Join(t.TempDir(), "b2builder.yaml")
	cfg := "logLevel: debug\nworld:\n  gravityY: -9.81\ncircleSegments: 32\nwatch:\n  debounce: 250ms\n"
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0644))

	require.NoError(t, Load(file))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 0.0, GetFloat("world.gravityX"))
	assert.Equal(t, -9.81, GetFloat("world.gravityY"))
	assert.Equal(t, 32, GetInt("circleSegments"))
	assert.Equal(t, 250*time.Millisecond, GetDuration("watch.debounce"))
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("B2BUILDER_LOGLEVEL", "warn")
	t.Setenv("B2BUILDER_WORLD_GRAVITYY", "-3")

	require.NoError(t, Load(""))

	assert.Equal(t, "warn", GetString("logLevel"))
	assert.Equal(t, -3.0, GetFloat("world.gravityY"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/b2builder.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
