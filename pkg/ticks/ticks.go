// Package ticks computes axis tick values: how many ticks fit on an axis,
// which round numbers to place there, and how much to rotate their labels.
package ticks

import (
	"math"
	"unicode/utf8"
)

// Orientation is the direction an axis runs in.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

const (
	MinTickCount = 3
	MaxTickCount = 10

	horizontalSpacing = 80 // px per tick
	verticalSpacing   = 40 // px per tick

	// MaxDesiredTicks bounds the tick count callers may ask for.
	MaxDesiredTicks = MaxTickCount * 10

	// charWidth is the estimated pixel width of one label character.
	charWidth = 7

	minDecimals      = 10
	spacingTolerance = 1e-6
	maxCoarsening    = 64
)

// CalculateOptimalTickCount returns how many ticks fit on an axis of the
// given pixel length, clamped to [MinTickCount, MaxTickCount].
func CalculateOptimalTickCount(axisLength float64, o Orientation) int {
	spacing := horizontalSpacing
	if o == Vertical {
		spacing = verticalSpacing
	}
	if !(axisLength > 0) {
		return MinTickCount
	}
	count := int(math.Floor(axisLength / float64(spacing)))
	return max(MinTickCount, min(MaxTickCount, count))
}

// niceStep snaps a raw step to 1, 2, 5 or 10 times a power of ten.
func niceStep(rough float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	normalized := rough / magnitude

	var nice float64
	switch {
	case normalized < 1.5:
		nice = 1
	case normalized < 3:
		nice = 2
	case normalized < 7:
		nice = 5
	default:
		nice = 10
	}
	return nice * magnitude
}

// roundTick strips accumulated float drift from v. It keeps at least ten
// decimals and always one more than step needs, so rounding never merges
// neighbouring ticks.
func roundTick(v, step float64) float64 {
	places := max(minDecimals, 1-int(math.Floor(math.Log10(step))))
	scale := math.Pow(10, float64(places))
	// past 2^52 every float at this scale is already integral
	if math.IsInf(scale, 0) || math.Abs(v)*scale >= 1<<52 {
		return v
	}
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// evenlySpaced reports whether ticks are strictly increasing and step apart.
func evenlySpaced(ticks []float64, step float64) bool {
	for i := 1; i < len(ticks); i++ {
		gap := ticks[i] - ticks[i-1]
		if !(gap > 0) || math.Abs(gap-step) > step*spacingTolerance {
			return false
		}
	}
	return true
}

// plan picks the step and the ticks for a non-empty finite range. When
// float64 cannot place ticks step apart at this magnitude the step is
// coarsened to the next nice value. Ranges no nice step fits fall back to
// the bounds themselves.
func plan(minV, maxV float64, desired int) (float64, []float64) {
	if minV > maxV {
		minV, maxV = maxV, minV
	}
	span := maxV - minV
	if !(span > 0) || math.IsInf(span, 0) {
		return 0, nil
	}

	desired = max(2, min(desired, MaxDesiredTicks))
	step := niceStep(span / float64(desired-1))
	for range maxCoarsening {
		if !(step > 0) || math.IsInf(step, 0) {
			break
		}
		niceMin := math.Floor(minV/step) * step
		niceMax := math.Ceil(maxV/step) * step

		n := int(math.Round((niceMax - niceMin) / step))
		if n >= 1 && n <= 4*MaxDesiredTicks {
			ticks := make([]float64, 0, n+1)
			for i := 0; i <= n; i++ {
				ticks = append(ticks, roundTick(niceMin+float64(i)*step, step))
			}
			if evenlySpaced(ticks, step) {
				return step, ticks
			}
		}
		step = niceStep(step * 2)
	}
	return span, []float64{minV, maxV}
}

// NiceStep returns the step GenerateNiceTicks would use, or 0 when the range
// is empty or not finite.
func NiceStep(minV, maxV float64, desired int) float64 {
	step, _ := plan(minV, maxV, desired)
	return step
}

// GenerateNiceTicks returns evenly spaced round values covering [min, max].
// Arguments may be given in either order. A zero-width range yields just
// that value; non-finite input yields nil. desired is capped at
// MaxDesiredTicks.
func GenerateNiceTicks(minV, maxV float64, desired int) []float64 {
	if math.IsNaN(minV) || math.IsNaN(maxV) || math.IsInf(minV, 0) || math.IsInf(maxV, 0) {
		return nil
	}
	if minV == maxV {
		return []float64{minV}
	}
	_, ticks := plan(minV, maxV, desired)
	return ticks
}

// RecommendedTickRotation suggests 0, 45 or 90 degrees of label rotation
// from the average label length and the room each tick gets.
func RecommendedTickRotation(labels []string, availableWidth float64, tickCount int) int {
	if tickCount <= 0 || len(labels) == 0 {
		return 0
	}
	chars := 0
	for _, l := range labels {
		chars += utf8.RuneCountInString(l)
	}
	labelWidth := float64(chars) / float64(len(labels)) * charWidth
	perTick := availableWidth / float64(tickCount)

	switch {
	case labelWidth <= perTick*0.8:
		return 0
	case labelWidth <= perTick*1.5:
		return 45
	default:
		return 90
	}
}
