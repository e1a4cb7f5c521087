package color

import (
	"fmt"
	"math"
	"slices"
)

// Deficiency is a kind of color-vision deficiency.
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

var deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia}

// Deficiencies lists every supported kind in report order.
func Deficiencies() []Deficiency {
	return slices.Clone(deficiencies)
}

// MinDistinguishableDistance is the Euclidean RGB distance below which two
// simulated colors are reported as indistinguishable. It is a heuristic, not a
// perceptual metric.
const MinDistinguishableDistance = 30.0

// Rows sum to 1, so grays map onto themselves.
var deficiencyMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
}

// ParseDeficiency resolves a deficiency name.
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(s)
	if _, ok := deficiencyMatrices[d]; !ok {
		return "", fmt.Errorf("unknown color-vision deficiency %q", s)
	}
	return d, nil
}

func simulate(c RGB, kind Deficiency) RGB {
	m, ok := deficiencyMatrices[kind]
	if !ok {
		return c
	}
	in := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
	var out [3]uint8
	for i, row := range m {
		v := row[0]*in[0] + row[1]*in[1] + row[2]*in[2]
		out[i] = uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

// SimulateColorBlindness approximates how hex appears to someone with kind.
func SimulateColorBlindness(hex string, kind Deficiency) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	if _, ok := deficiencyMatrices[kind]; !ok {
		return "", fmt.Errorf("unknown color-vision deficiency %q", kind)
	}
	return RGBToHex(simulate(c, kind)), nil
}

// ColorBlindReport tells, per deficiency, whether every pair of colors stays
// distinguishable. Issues names each failing pair (1-indexed).
type ColorBlindReport struct {
	Protanopia   bool     `json:"protanopia"`
	Deuteranopia bool     `json:"deuteranopia"`
	Tritanopia   bool     `json:"tritanopia"`
	Issues       []string `json:"issues"`
}

// Passes reports whether every deficiency passed.
func (r ColorBlindReport) Passes() bool {
	return r.Protanopia && r.Deuteranopia && r.Tritanopia
}

func rgbDistance(a, b RGB) float64 {
	return a.toColorful().DistanceRgb(b.toColorful()) * 255
}

// CheckColorBlindAccessibility simulates colors under each deficiency and
// flags pairs closer than MinDistinguishableDistance.
func CheckColorBlindAccessibility(colors []string) (ColorBlindReport, error) {
	parsed, err := parseAll(colors)
	if err != nil {
		return ColorBlindReport{}, err
	}

	report := ColorBlindReport{Issues: []string{}}
	for _, kind := range deficiencies {
		simulated := make([]RGB, len(parsed))
		for i, c := range parsed {
			simulated[i] = simulate(c, kind)
		}

		ok := true
		for i := 0; i < len(simulated); i++ {
			for j := i + 1; j < len(simulated); j++ {
				if rgbDistance(simulated[i], simulated[j]) < MinDistinguishableDistance {
					ok = false
					report.Issues = append(report.Issues,
						fmt.Sprintf("Colors %d and %d may be indistinguishable for %s users", i+1, j+1, kind))
				}
			}
		}

		switch kind {
		case Protanopia:
			report.Protanopia = ok
		case Deuteranopia:
			report.Deuteranopia = ok
		case Tritanopia:
			report.Tritanopia = ok
		}
	}
	return report, nil
}
