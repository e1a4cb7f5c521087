// Package layout derives responsive chart geometry: margins, aspect-fitted
// dimensions, breakpoint classes and dashboard grids. Inputs may be transient
// mid-resize values, so every function clamps instead of failing.
package layout

import (
	"maps"
	"math"
	"slices"
)

const (
	marginUnit = 8

	baseMarginTop    = 20
	baseMarginRight  = 20
	baseMarginBottom = 40
	baseMarginLeft   = 48
	// bare axes collapse to this margin
	baseMarginNoAxis = 16

	marginReference = 400.0
	minMarginScale  = 0.75
	maxMarginScale  = 1.5

	DefaultPreferredChartWidth = 400
	chartsPerRowGap            = 24
	maxChartsPerRow            = 4
)

// Margins are the space reserved around a chart's plot area, in pixels.
type Margins struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Dimensions is a width and height in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridLayout describes how charts pack into a dashboard container.
type GridLayout struct {
	Columns     int `json:"columns"`
	Rows        int `json:"rows"`
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`
	Gap         int `json:"gap"`
}

// featureMinWidths is the narrowest chart width that still shows each feature.
var featureMinWidths = map[string]int{
	"legend":      400,
	"tooltip":     200,
	"annotations": 500,
	"title":       300,
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundToUnit(v float64) int {
	return int(math.Round(v/marginUnit)) * marginUnit
}

// CalculateChartMargins scales the base margins with the chart's smaller
// side and snaps each one to the 8px grid.
func CalculateChartMargins(width, height int, hasXAxis, hasYAxis bool) Margins {
	scale := clamp(float64(min(width, height))/marginReference, minMarginScale, maxMarginScale)

	bottom := baseMarginNoAxis
	if hasXAxis {
		bottom = baseMarginBottom
	}
	left := baseMarginNoAxis
	if hasYAxis {
		left = baseMarginLeft
	}

	return Margins{
		Top:    roundToUnit(baseMarginTop * scale),
		Right:  roundToUnit(baseMarginRight * scale),
		Bottom: roundToUnit(float64(bottom) * scale),
		Left:   roundToUnit(float64(left) * scale),
	}
}

// CalculateChartDimensions fits the largest box with the given aspect ratio
// (width/height) into the container. Non-positive inputs give zero size.
func CalculateChartDimensions(containerWidth, containerHeight int, aspectRatio float64) Dimensions {
	if containerWidth <= 0 || containerHeight <= 0 || !(aspectRatio > 0) || math.IsInf(aspectRatio, 0) {
		return Dimensions{}
	}

	cw, ch := float64(containerWidth), float64(containerHeight)
	if cw/ch > aspectRatio {
		w := min(int(math.Round(ch*aspectRatio)), containerWidth)
		return Dimensions{Width: w, Height: containerHeight}
	}
	h := min(int(math.Round(cw/aspectRatio)), containerHeight)
	return Dimensions{Width: containerWidth, Height: h}
}

// CalculateInnerDimensions subtracts margins from the total size, never
// going below zero.
func CalculateInnerDimensions(totalWidth, totalHeight int, m Margins) Dimensions {
	return Dimensions{
		Width:  max(0, totalWidth-m.Left-m.Right),
		Height: max(0, totalHeight-m.Top-m.Bottom),
	}
}

// CalculateChartGrid packs chartCount charts into a container of the given
// width: one column on small screens, up to two on md and up to three above.
func CalculateChartGrid(chartCount, containerWidth int) GridLayout {
	bp := CurrentBreakpoint(containerWidth)
	gap := gridGaps[bp]

	columns := 1
	switch bp {
	case MD:
		columns = min(chartCount, 2)
	case LG, XL, XXL:
		columns = min(chartCount, 3)
	}
	columns = max(columns, 1)

	rows := 0
	if chartCount > 0 {
		rows = (chartCount + columns - 1) / columns
	}

	chartWidth := max(0, (containerWidth-gap*(columns-1))/columns)

	return GridLayout{
		Columns:     columns,
		Rows:        rows,
		ChartWidth:  chartWidth,
		ChartHeight: ResponsiveChartHeight(chartWidth, ""),
		Gap:         gap,
	}
}

// SupportsFeature reports whether a chart of the given width has room for
// feature. Unknown features are never supported.
func SupportsFeature(width int, feature string) bool {
	minWidth, ok := featureMinWidths[feature]
	return ok && width >= minWidth
}

// FeatureMinWidth returns the narrowest chart width that shows feature.
func FeatureMinWidth(feature string) (int, bool) {
	w, ok := featureMinWidths[feature]
	return w, ok
}

// Features lists every known chart feature, sorted by name.
func Features() []string {
	return slices.Sorted(maps.Keys(featureMinWidths))
}

// OptimalChartsPerRow returns how many charts of roughly preferredWidth fit
// side by side, between 1 and 4. preferredWidth <= 0 means
// DefaultPreferredChartWidth.
func OptimalChartsPerRow(containerWidth, preferredWidth int) int {
	if CurrentBreakpoint(containerWidth) == SM {
		return 1
	}
	if preferredWidth <= 0 {
		preferredWidth = DefaultPreferredChartWidth
	}
	n := (containerWidth + chartsPerRowGap) / (preferredWidth + chartsPerRowGap)
	return max(1, min(maxChartsPerRow, n))
}
