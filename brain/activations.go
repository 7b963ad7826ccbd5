package brain

import (
	"fmt"
	"math"
)

// ActivationType defines the type for bounding/activation functions.
type ActivationType func(input float64) float64

// ActivationFunctions maps function names to the bounding functions that
// configuration may select. Every entry maps finite inputs strictly inside
// (-1, 1). Clamped and Identity are not registered; pass them to the
// evaluator directly when raw or saturated values are wanted.
var ActivationFunctions = map[string]ActivationType{
	"bound":    Bound,
	"softsign": Softsign,
	"tanh":     Tanh,
}

// DefaultActivation is the bounding function used when none is configured.
const DefaultActivation = "bound"

// GetActivation retrieves an activation function by name.
func GetActivation(name string) (ActivationType, error) {
	if fn, ok := ActivationFunctions[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown activation function: %s", name)
}

// belowOne is the largest float64 strictly less than 1.
var belowOne = math.Nextafter(1, 0)

// --- Bounding Function Implementations ---

// Bound maps any real to the open interval (-1, 1) with x / sqrt(1 + x^2).
// It is odd, monotonically increasing and smooth. For very large |x| the
// float64 quotient rounds to ±1, so the result is pinned to the nearest
// representable value inside the interval. Infinite inputs map to ±1 and NaN
// propagates.
func Bound(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	// Hypot avoids the overflow of 1+x*x for |x| > ~1e154.
	return pinOpen(x / math.Hypot(1, x))
}

// Softsign maps finite inputs inside (-1, 1) with x / (1 + |x|), pinned like Bound.
func Softsign(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	return pinOpen(x / (1 + math.Abs(x)))
}

// Tanh activation function, pinned like Bound where float64 tanh saturates.
func Tanh(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	return pinOpen(math.Tanh(x))
}

// pinOpen moves ±1 to the nearest representable value inside (-1, 1).
func pinOpen(y float64) float64 {
	if y >= 1 {
		return belowOne
	}
	if y <= -1 {
		return -belowOne
	}
	return y
}

// Clamped activation function (hard clamp to [-1, 1]). Reaches ±1, so it is
// not selectable from configuration.
func Clamped(x float64) float64 {
	return clamp(x, -1.0, 1.0)
}

// Identity activation function. Unbounded; useful for inspecting raw sums.
func Identity(x float64) float64 {
	return x
}
