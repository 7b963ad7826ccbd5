package brain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// clamp restricts a value to a given range [minVal, maxVal].
func clamp(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}

// LayerSummary holds simple statistics over one activation vector.
type LayerSummary struct {
	Index int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64
}

// String returns a string representation of the LayerSummary.
func (s LayerSummary) String() string {
	return fmt.Sprintf("layer %d: min=%.4f max=%.4f mean=%.4f std=%.4f", s.Index, s.Min, s.Max, s.Mean, s.Std)
}

// SummarizeLayers computes min/max/mean/std for every layer in order.
// Empty layers produce NaN statistics.
func SummarizeLayers(layers [][]float64) []LayerSummary {
	out := make([]LayerSummary, len(layers))
	for i, layer := range layers {
		out[i].Index = i
		if len(layer) == 0 {
			out[i].Min, out[i].Max, out[i].Mean, out[i].Std = math.NaN(), math.NaN(), math.NaN(), math.NaN()
			continue
		}
		out[i].Min = floats.Min(layer)
		out[i].Max = floats.Max(layer)
		out[i].Mean, out[i].Std = stat.PopMeanStdDev(layer, nil)
	}
	return out
}
