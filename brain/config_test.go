package brain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.5, cfg.Brain.InputValue)
	assert.Equal(t, "carry", cfg.Brain.Accumulator)
	assert.Equal(t, 60, cfg.Grid.Width)
	assert.Equal(t, 40, cfg.Grid.Height)
	assert.Equal(t, 500.0, cfg.Visual.X)
	assert.Equal(t, -200.0, cfg.Visual.Y)
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
[Brain]
seed        = 1234
input_value = 0.25
accumulator = Reset   ; per-layer sums

[Window]
title = test window

[Grid]
width      = 12
fill_color = #112233
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), cfg.Brain.Seed)
	assert.Equal(t, 0.25, cfg.Brain.InputValue)
	assert.Equal(t, "reset", cfg.Brain.Accumulator)
	assert.Equal(t, "bound", cfg.Brain.Activation)
	assert.Equal(t, "test window", cfg.Window.Title)
	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, 40, cfg.Grid.Height) // untouched default
	assert.Equal(t, "#112233", cfg.Grid.FillColor)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"accumulator": "[Brain]\naccumulator = sometimes\n",
		"activation":  "[Brain]\nactivation = sigmoid\n",
		"unbounded":   "[Brain]\nactivation = identity\n",
		"saturating":  "[Brain]\nactivation = clamped\n",
		"window":      "[Window]\nwidth = 0\n",
		"cell size":   "[Grid]\ncell_size = -4\n",
		"fade step":   "[Cell]\nfade_step = 2\n",
		"spacing":     "[BrainVisual]\nneuron_spacing = 0\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestParseConfigBadNumber(t *testing.T) {
	_, err := ParseConfig([]byte("[Window]\nwidth = wide\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellbrain.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Cell]\nradius = 16\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.Cell.Radius)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestCleanIniString(t *testing.T) {
	assert.Equal(t, "carry", cleanIniString("  carry # keep sums "))
	assert.Equal(t, "reset", cleanIniString("reset;"))
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "configs", "cellbrain.ini"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
