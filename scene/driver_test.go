package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/cellbrain/brain"
	"github.com/baldhumanity/cellbrain/brain/nn"
)

func TestDriverStep(t *testing.T) {
	cfg := brain.DefaultConfig()
	d, err := NewDriver(cfg, brain.NewSeeded(11))
	require.NoError(t, err)

	assert.Nil(t, d.Layers())
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5}, d.Input())

	require.NoError(t, d.Step())
	layers := d.Layers()
	require.Len(t, layers, brain.LayerCount)
	assert.Equal(t, d.Input(), layers[0])
	assert.Equal(t, 1, d.Cell.Frames)

	want, err := nn.Evaluate(d.Net.Network, d.Input())
	require.NoError(t, err)
	assert.Equal(t, want, layers)

	marks := d.Marks()
	require.Len(t, marks, brain.LayerSize*brain.LayerCount)
	assert.Equal(t, Grayscale(layers[2][4]), marks[len(marks)-1].Fill)
}

func TestDriverPaused(t *testing.T) {
	d, err := NewDriver(brain.DefaultConfig(), brain.NewSeeded(12))
	require.NoError(t, err)

	d.Paused = true
	require.NoError(t, d.Step())
	assert.Equal(t, 0, d.Cell.Frames)
	assert.Nil(t, d.Layers())
}

func TestDriverUsesConfiguredBrain(t *testing.T) {
	cfg := brain.DefaultConfig()
	cfg.Brain.InputValue = -0.25
	cfg.Brain.Accumulator = "reset"

	d, err := NewDriver(cfg, brain.NewSeeded(13))
	require.NoError(t, err)
	assert.Equal(t, nn.ResetAccumulator, d.Net.Mode)
	assert.Equal(t, -0.25, d.Input()[3])
}

func TestDriverRebrain(t *testing.T) {
	d, err := NewDriver(brain.DefaultConfig(), brain.NewSeeded(14))
	require.NoError(t, err)
	require.NoError(t, d.Step())

	old := d.Net.Network
	require.NoError(t, d.Rebrain())
	assert.NotSame(t, old, d.Net.Network)
	assert.Equal(t, old.Topology(), d.Net.Network.Topology())
	assert.Nil(t, d.Layers())
}

func TestDriverSetNetworkTopologyMismatch(t *testing.T) {
	d, err := NewDriver(brain.DefaultConfig(), brain.NewSeeded(15))
	require.NoError(t, err)

	other, err := brain.NewNetwork(brain.Topology{LayerSize: 3, LayerCount: 2}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, d.SetNetwork(other), brain.ErrTopologyMismatch)
}

func TestDriverSetNilNetwork(t *testing.T) {
	d, err := NewDriver(brain.DefaultConfig(), brain.NewSeeded(16))
	require.NoError(t, err)

	old := d.Net
	require.Error(t, d.SetNetwork(nil))
	assert.Same(t, old, d.Net)
}

func TestNewDriverErrors(t *testing.T) {
	_, err := NewDriver(brain.DefaultConfig(), nil)
	require.Error(t, err)

	cfg := brain.DefaultConfig()
	cfg.Cell.FillColor = "black"
	_, err = NewDriver(cfg, brain.NewSeeded(1))
	require.Error(t, err)
}
