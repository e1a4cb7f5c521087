// Package color implements the color science used by chart tokens: hex
// parsing, WCAG contrast, palette generation, color-blindness simulation and
// contrast correction. Every function is pure and safe for concurrent use.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColorFormat is returned for anything that is not "#RRGGBB".
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrInvalidPaletteSize is returned when a categorical palette size is outside [2,12].
	ErrInvalidPaletteSize = errors.New("invalid palette size")
	// ErrInvalidStepCount is returned when a diverging scale is asked for an even step count.
	ErrInvalidStepCount = errors.New("invalid step count")
)

const (
	// Black and White are the fallback extremes for contrast correction.
	Black = "#000000"
	White = "#FFFFFF"

	// NeutralGray is the exact center of every diverging scale.
	NeutralGray = "#E5E7EB"
	// DarkBackground is the surface dark-mode variants are checked against.
	DarkBackground = "#1F2937"
)

// WCAG 2.1 thresholds.
const (
	AANormalText = 4.5
	AALargeText  = 3.0
	AAANormal    = 7.0
	AAALarge     = 4.5
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RGB holds 8-bit sRGB channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HexToRGB parses a "#RRGGBB" string (case-insensitive).
func HexToRGB(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex encodes channels as canonical uppercase "#RRGGBB".
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Normalize validates hex and returns its canonical form.
func Normalize(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(c), nil
}

// IsValidHex reports whether hex is a 6-digit "#RRGGBB" color.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// brightness is the perceived brightness in [0,255].
func (c RGB) brightness() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func (c RGB) luminance() float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrast(a, b RGB) float64 {
	l1, l2 := a.luminance(), b.luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// RelativeLuminance returns the WCAG 2.1 relative luminance of hex in [0,1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	return c.luminance(), nil
}

// ContrastRatio returns the WCAG contrast ratio between a and b in [1,21].
// The result does not depend on argument order.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := HexToRGB(a)
	if err != nil {
		return 0, err
	}
	cb, err := HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return contrast(ca, cb), nil
}

// MeetsWCAGAA reports whether fg on bg satisfies level AA.
// Large text and graphical objects only need 3:1.
func MeetsWCAGAA(fg, bg string, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if largeText {
		return ratio >= AALargeText, nil
	}
	return ratio >= AANormalText, nil
}

// MeetsWCAGAAA reports whether fg on bg satisfies level AAA.
func MeetsWCAGAAA(fg, bg string, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if largeText {
		return ratio >= AAALarge, nil
	}
	return ratio >= AAANormal, nil
}

// ContrastingTextColor picks black or white text, whichever contrasts more with bg.
func ContrastingTextColor(bg string) (string, error) {
	c, err := HexToRGB(bg)
	if err != nil {
		return "", err
	}
	if contrast(RGB{}, c) >= contrast(RGB{255, 255, 255}, c) {
		return Black, nil
	}
	return White, nil
}

// ContrastAudit is the contrast report of one color against a background.
type ContrastAudit struct {
	Color   string  `json:"color"`
	Ratio   float64 `json:"ratio"`
	AA      bool    `json:"aa"`
	AALarge bool    `json:"aa_large"`
	AAA     bool    `json:"aaa"`
}

// AuditContrast checks every color against bg.
func AuditContrast(colors []string, bg string) ([]ContrastAudit, error) {
	cb, err := HexToRGB(bg)
	if err != nil {
		return nil, err
	}
	out := make([]ContrastAudit, 0, len(colors))
	for _, hex := range colors {
		c, err := HexToRGB(hex)
		if err != nil {
			return nil, err
		}
		ratio := contrast(c, cb)
		out = append(out, ContrastAudit{
			Color:   RGBToHex(c),
			Ratio:   ratio,
			AA:      ratio >= AANormalText,
			AALarge: ratio >= AALargeText,
			AAA:     ratio >= AAANormal,
		})
	}
	return out, nil
}

func parseAll(colors []string) ([]RGB, error) {
	out := make([]RGB, len(colors))
	for i, hex := range colors {
		c, err := HexToRGB(hex)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
