package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" string.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color '%s': %w", hex, err)
	}
	return c, nil
}

// Grayscale maps an activation to a gray of the same intensity.
// Values outside [0, 1] saturate to black or white.
func Grayscale(v float64) colorful.Color {
	return colorful.Color{R: v, G: v, B: v}.Clamped()
}

// Brighten adds step to every channel, saturating at white.
func Brighten(c colorful.Color, step float64) colorful.Color {
	return colorful.Color{R: c.R + step, G: c.G + step, B: c.B + step}.Clamped()
}

// colorField names a configured color string and where its parsed value goes.
type colorField struct {
	name string
	hex  string
	dst  *colorful.Color
}

// parseColors parses every field in order, stopping at the first error.
func parseColors(fields ...colorField) error {
	for _, f := range fields {
		c, err := ParseColor(f.hex)
		if err != nil {
			return fmt.Errorf("config error: %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return nil
}
