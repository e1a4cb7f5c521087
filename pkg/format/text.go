package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
)

// DateStyle selects how much of a date FormatDate shows.
type DateStyle string

const (
	DateShort  DateStyle = "short"
	DateMedium DateStyle = "medium"
	DateLong   DateStyle = "long"
	DateTime   DateStyle = "time"
)

const ellipsis = "..."

const (
	DefaultReferenceWidth = 800
	minFontScale          = 0.7
	maxFontScale          = 1.3
)

// month-first with a 12h clock, and day-first with a 24h clock
var (
	usLayouts = map[DateStyle]string{
		DateShort:  "Jan 2",
		DateMedium: "Jan 2, 2006",
		DateLong:   "January 2, 2006",
		DateTime:   "3:04 PM",
	}
	intlLayouts = map[DateStyle]string{
		DateShort:  "2 Jan",
		DateMedium: "2 Jan 2006",
		DateLong:   "2 January 2006",
		DateTime:   "15:04",
	}
)

// ParseDateStyle resolves a date style name.
func ParseDateStyle(s string) (DateStyle, error) {
	ds := DateStyle(s)
	if _, ok := usLayouts[ds]; !ok {
		return "", fmt.Errorf("unknown date style %q", s)
	}
	return ds, nil
}

// FormatDate renders t in the given style. Locales whose region resolves to
// the US get month-first dates and a 12h clock, everything else day-first and
// 24h. Unknown styles fall back to DateMedium.
func FormatDate(t time.Time, style DateStyle, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	layouts := intlLayouts
	if region, _ := language.Make(locale).Region(); region.String() == "US" {
		layouts = usLayouts
	}
	layout, ok := layouts[style]
	if !ok {
		layout = layouts[DateMedium]
	}
	return t.Format(layout)
}

// TruncateText shortens text to at most maxLength runes, ending in "...".
// Limits of 3 or less leave room for nothing but the ellipsis.
func TruncateText(text string, maxLength int) string {
	if maxLength <= len(ellipsis) {
		return ellipsis
	}
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	return string(r[:maxLength-len(ellipsis)]) + ellipsis
}

// ResponsiveFontSize scales baseSize by containerWidth/referenceWidth,
// clamped to 0.7..1.3, and rounds to whole pixels. referenceWidth <= 0
// means DefaultReferenceWidth.
func ResponsiveFontSize(containerWidth int, baseSize float64, referenceWidth int) int {
	if referenceWidth <= 0 {
		referenceWidth = DefaultReferenceWidth
	}
	if !finite(baseSize) {
		return 0
	}
	scale := math.Max(minFontScale, math.Min(maxFontScale, float64(containerWidth)/float64(referenceWidth)))
	return int(math.Round(baseSize * scale))
}
