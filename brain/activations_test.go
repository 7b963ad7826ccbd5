package brain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundZero(t *testing.T) {
	assert.Equal(t, 0.0, Bound(0))
}

func TestBoundKnownValues(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt2, Bound(1), 1e-12)
	assert.InDelta(t, -1/math.Sqrt2, Bound(-1), 1e-12)
	assert.InDelta(t, 3/math.Sqrt(10), Bound(3), 1e-12)
}

func TestBoundOdd(t *testing.T) {
	for _, x := range []float64{1e-9, 0.1, 0.5, 1, 2.5, 10, 1e6, 1e200} {
		assert.Equal(t, -Bound(x), Bound(-x), "x=%v", x)
	}
}

func TestBoundMonotonic(t *testing.T) {
	prev := Bound(-50)
	for x := -50.0 + 0.01; x <= 50; x += 0.01 {
		cur := Bound(x)
		require.Greater(t, cur, prev, "Bound not increasing at x=%v", x)
		prev = cur
	}
}

func TestBoundStaysInsideOpenInterval(t *testing.T) {
	for _, x := range []float64{0, 0.3, 1, 100, 1e8, 1e16, 1e154, 1e200, math.MaxFloat64} {
		for _, v := range []float64{Bound(x), Bound(-x)} {
			assert.Greater(t, v, -1.0, "x=%v", x)
			assert.Less(t, v, 1.0, "x=%v", x)
		}
	}
}

func TestBoundNonFinite(t *testing.T) {
	assert.Equal(t, 1.0, Bound(math.Inf(1)))
	assert.Equal(t, -1.0, Bound(math.Inf(-1)))
	assert.True(t, math.IsNaN(Bound(math.NaN())))
}

func TestGetActivation(t *testing.T) {
	fn, err := GetActivation("bound")
	require.NoError(t, err)
	assert.Equal(t, Bound(0.7), fn(0.7))

	_, err = GetActivation("sigmoid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown activation function")
}

func TestOtherActivations(t *testing.T) {
	assert.Equal(t, 0.5, Softsign(1))
	assert.Equal(t, -1.0, Softsign(math.Inf(-1)))
	assert.Equal(t, 1.0, Clamped(4))
	assert.Equal(t, -1.0, Clamped(-4))
	assert.Equal(t, 0.25, Clamped(0.25))
	assert.Equal(t, 7.0, Identity(7))
	assert.Equal(t, math.Tanh(0.3), Tanh(0.3))
}

func TestRegisteredActivationsStayInsideOpenInterval(t *testing.T) {
	for name, fn := range ActivationFunctions {
		for _, x := range []float64{0.3, 1, 20, 1e8, 1e17, 1e200, math.MaxFloat64} {
			for _, v := range []float64{fn(x), fn(-x)} {
				assert.Greater(t, v, -1.0, "%s(±%v)", name, x)
				assert.Less(t, v, 1.0, "%s(±%v)", name, x)
			}
		}
	}
}

func TestUnboundedActivationsNotRegistered(t *testing.T) {
	for _, name := range []string{"identity", "clamped"} {
		_, err := GetActivation(name)
		require.Error(t, err, name)
	}
}
