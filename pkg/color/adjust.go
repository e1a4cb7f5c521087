package color

import "math"

const (
	// DefaultContrastTarget is the WCAG AA ratio for normal text.
	DefaultContrastTarget = AANormalText

	maxAdjustSteps = 20
	adjustStep     = 0.05

	darkModeLift = 0.3
)

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func adjustChannel(v uint8, factor float64) uint8 {
	c := float64(v)
	if factor >= 0 {
		c += (255 - c) * factor
	} else {
		c += c * factor
	}
	return uint8(math.Round(math.Max(0, math.Min(255, c))))
}

func adjust(c RGB, factor float64) RGB {
	factor = clampUnit(factor)
	return RGB{
		R: adjustChannel(c.R, factor),
		G: adjustChannel(c.G, factor),
		B: adjustChannel(c.B, factor),
	}
}

// AdjustBrightness lightens (factor > 0) or darkens (factor < 0) a color.
// A positive factor closes that fraction of each channel's headroom to 255,
// a negative one removes that fraction of the channel's value. factor is
// clamped to [-1,1].
func AdjustBrightness(hex string, factor float64) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(adjust(c, factor)), nil
}

type adjustState int

const (
	stateDarkening adjustState = iota
	stateLightening
	stateFallback
)

// AutoAdjustContrast returns a foreground color that reaches target contrast
// against bg. A compliant fg comes back unchanged. Otherwise fg is darkened
// in 5% steps, then (starting over from fg) lightened in 5% steps, and if
// neither reaches target the result is black or white depending on the
// background. At most 40 candidates are evaluated. target <= 0 means
// DefaultContrastTarget.
func AutoAdjustContrast(fg, bg string, target float64) (string, error) {
	cf, err := HexToRGB(fg)
	if err != nil {
		return "", err
	}
	cb, err := HexToRGB(bg)
	if err != nil {
		return "", err
	}
	if target <= 0 {
		target = DefaultContrastTarget
	}
	if contrast(cf, cb) >= target {
		return RGBToHex(cf), nil
	}

	state := stateDarkening
	step := 0
	for {
		switch state {
		case stateDarkening, stateLightening:
			step++
			if step > maxAdjustSteps {
				state++
				step = 0
				continue
			}
			factor := -adjustStep * float64(step)
			if state == stateLightening {
				factor = -factor
			}
			if candidate := adjust(cf, factor); contrast(candidate, cb) >= target {
				return RGBToHex(candidate), nil
			}
		case stateFallback:
			if cb.brightness() > 128 {
				return Black, nil
			}
			return White, nil
		}
	}
}

// GenerateDarkModeVariant lifts a color for dark surfaces and then corrects
// it to AA contrast against DarkBackground.
func GenerateDarkModeVariant(hex string) (string, error) {
	lifted, err := AdjustBrightness(hex, darkModeLift)
	if err != nil {
		return "", err
	}
	return AutoAdjustContrast(lifted, DarkBackground, AANormalText)
}

// GenerateDarkModePalette maps GenerateDarkModeVariant over colors.
func GenerateDarkModePalette(colors []string) ([]string, error) {
	out := make([]string, len(colors))
	for i, hex := range colors {
		v, err := GenerateDarkModeVariant(hex)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
