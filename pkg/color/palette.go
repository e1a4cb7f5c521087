package color

import (
	"fmt"
	"slices"
)

const (
	MinCategoricalColors = 2
	MaxCategoricalColors = 12

	// sequentialDarken is how far past the base color a sequential scale ends.
	sequentialDarken = -0.4
)

// Order is part of the contract: index i always maps to the same color.
var categoricalPool = [MaxCategoricalColors]string{
	"#2563EB", // Blue
	"#DC2626", // Red
	"#059669", // Emerald
	"#D97706", // Amber
	"#7C3AED", // Violet
	"#DB2777", // Pink
	"#0891B2", // Cyan
	"#65A30D", // Lime
	"#EA580C", // Orange
	"#4F46E5", // Indigo
	"#0D9488", // Teal
	"#9333EA", // Purple
}

// CategoricalPool returns a copy of the fixed pool categorical palettes are
// cut from.
func CategoricalPool() []string {
	return slices.Clone(categoricalPool[:])
}

// GenerateCategoricalPalette returns the first count colors of the pool.
func GenerateCategoricalPalette(count int) ([]string, error) {
	if count < MinCategoricalColors || count > MaxCategoricalColors {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPaletteSize, count, MinCategoricalColors, MaxCategoricalColors)
	}
	out := make([]string, count)
	copy(out, categoricalPool[:count])
	return out, nil
}

// SeriesColor maps any series index onto the pool, cycling past the end.
func SeriesColor(index int) string {
	n := len(categoricalPool)
	return categoricalPool[((index%n)+n)%n]
}

func interpolate(a, b RGB, t float64) RGB {
	return fromColorful(a.toColorful().BlendRgb(b.toColorful(), t))
}

// GenerateSequentialScale builds a light-to-dark scale around base.
// The lighter half blends from white towards base, the darker half from base
// towards base darkened by 40%, so luminance never increases along the scale.
func GenerateSequentialScale(base string, steps int) ([]string, error) {
	c, err := HexToRGB(base)
	if err != nil {
		return nil, err
	}
	if steps <= 0 {
		return []string{}, nil
	}
	if steps == 1 {
		return []string{RGBToHex(c)}, nil
	}

	dark := adjust(c, sequentialDarken)
	white := RGB{255, 255, 255}

	light := steps / 2
	rest := steps - light

	out := make([]string, 0, steps)
	for i := 0; i < light; i++ {
		t := float64(i+1) / float64(light+1)
		out = append(out, RGBToHex(interpolate(white, c, t)))
	}
	for j := 0; j < rest; j++ {
		t := 0.0
		if rest > 1 {
			t = float64(j) / float64(rest-1)
		}
		out = append(out, RGBToHex(interpolate(c, dark, t)))
	}
	return out, nil
}

// GenerateDivergingScale builds neg -> NeutralGray -> pos with the neutral
// exactly in the middle. steps must be odd.
func GenerateDivergingScale(neg, pos string, steps int) ([]string, error) {
	if steps < 1 || steps%2 == 0 {
		return nil, fmt.Errorf("%w: %d (diverging scales need an odd count)", ErrInvalidStepCount, steps)
	}
	cn, err := HexToRGB(neg)
	if err != nil {
		return nil, err
	}
	cp, err := HexToRGB(pos)
	if err != nil {
		return nil, err
	}
	neutral, _ := HexToRGB(NeutralGray)

	half := steps / 2
	out := make([]string, 0, steps)
	for i := 0; i < half; i++ {
		out = append(out, RGBToHex(interpolate(cn, neutral, float64(i)/float64(half))))
	}
	out = append(out, NeutralGray)
	for i := 1; i <= half; i++ {
		out = append(out, RGBToHex(interpolate(neutral, cp, float64(i)/float64(half))))
	}
	return out, nil
}
