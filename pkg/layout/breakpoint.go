package layout

import (
	"fmt"
	"slices"
)

// Breakpoint is a responsive width class, ordered sm < md < lg < xl < 2xl.
type Breakpoint string

const (
	SM  Breakpoint = "sm"
	MD  Breakpoint = "md"
	LG  Breakpoint = "lg"
	XL  Breakpoint = "xl"
	XXL Breakpoint = "2xl"
)

var breakpoints = []Breakpoint{SM, MD, LG, XL, XXL}

// Widths below the sm minimum still classify as sm.
var minWidths = map[Breakpoint]int{
	SM:  640,
	MD:  768,
	LG:  1024,
	XL:  1280,
	XXL: 1536,
}

var chartHeights = map[Breakpoint]int{
	SM:  250,
	MD:  300,
	LG:  350,
	XL:  400,
	XXL: 450,
}

var gridGaps = map[Breakpoint]int{
	SM:  16,
	MD:  24,
	LG:  32,
	XL:  32,
	XXL: 32,
}

// Breakpoints returns every breakpoint in ascending order.
func Breakpoints() []Breakpoint {
	return slices.Clone(breakpoints)
}

// MinWidth is the first container width bp applies to. Unknown
// breakpoints report 0.
func (bp Breakpoint) MinWidth() int {
	return minWidths[bp]
}

// ChartHeight is the default chart height at bp.
func (bp Breakpoint) ChartHeight() int {
	return chartHeights[bp]
}

// GridGap is the gap between charts in a dashboard grid at bp.
func (bp Breakpoint) GridGap() int {
	return gridGaps[bp]
}

// ParseBreakpoint resolves a breakpoint name.
func ParseBreakpoint(s string) (Breakpoint, error) {
	bp := Breakpoint(s)
	if _, ok := minWidths[bp]; !ok {
		return "", fmt.Errorf("unknown breakpoint %q", s)
	}
	return bp, nil
}

// CurrentBreakpoint returns the largest breakpoint whose minimum width is met.
func CurrentBreakpoint(width int) Breakpoint {
	for i := len(breakpoints) - 1; i > 0; i-- {
		if width >= minWidths[breakpoints[i]] {
			return breakpoints[i]
		}
	}
	return SM
}

// MeetsBreakpoint reports whether width reaches the minimum of bp.
func MeetsBreakpoint(width int, bp Breakpoint) bool {
	minWidth, ok := minWidths[bp]
	return ok && width >= minWidth
}

// ResponsiveChartHeight returns the chart height for width, or for override
// when it names a known breakpoint.
func ResponsiveChartHeight(width int, override Breakpoint) int {
	if h, ok := chartHeights[override]; ok {
		return h
	}
	return chartHeights[CurrentBreakpoint(width)]
}
