package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByteArena/box2d-builder/b2yaml"
	"github.com/ByteArena/box2d-builder/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crate = `name: crate
type: dynamic
fixtures:
  - box: {width: 2, height: 2}
    density: 1
  - loop: [0,0, 4,0]
`

func setup(t *testing.T) (string, *b2yaml.Loader) {
	t.Helper()
	t.Cleanup(viper.Reset)
	require.NoError(t, config.Load(""))

	path := filepath.Join(t.TempDir(), "crate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(crate), 0644))
	return path, b2yaml.NewLoader(zerolog.Nop())
}

func TestInspect(t *testing.T) {
	path, loader := setup(t)

	var out bytes.Buffer
	require.NoError(t, inspect(&out, zerolog.Nop(), loader, path))

	assert.Contains(t, out.String(), "# crate ("+path+")")
	assert.Contains(t, out.String(), "bd.Loop(")
	assert.Contains(t, out.String(), "mass: 4 ")
	assert.Contains(t, out.String(), "fixture 0: polygon")
	assert.Contains(t, out.String(), "fixture 1: chain")
}

func TestPrintWKT(t *testing.T) {
	path, loader := setup(t)

	var out bytes.Buffer
	require.NoError(t, printWKT(&out, loader, path))

	assert.Equal(t,
		"crate\t0\tPOLYGON((-1 -1,1 -1,1 1,-1 1,-1 -1))\n"+
			"crate\t1\tLINESTRING(0 0,4 0,0 0)\n",
		out.String())
}

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, newLogger("DEBUG").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, newLogger("bogus").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, newLogger("").GetLevel())
}
