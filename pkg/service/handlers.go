package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/egandro/chartkit/pkg/color"
	"github.com/egandro/chartkit/pkg/format"
	"github.com/egandro/chartkit/pkg/layout"
	"github.com/egandro/chartkit/pkg/svg"
	"github.com/egandro/chartkit/pkg/ticks"
	"github.com/egandro/chartkit/pkg/tokens"
)

const (
	defaultPaletteCount = 8
	defaultScaleSteps   = 9
	defaultAxisLength   = 400
	maxAuditBody        = 64 << 10
)

var errMissing = errors.New("missing required parameter")

func queryString(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return i, nil
}

func requireInt(r *http.Request, key string) (int, error) {
	if !r.URL.Query().Has(key) {
		return 0, fmt.Errorf("%w %q", errMissing, key)
	}
	return queryInt(r, key, 0)
}

func requireFloat(r *http.Request, key string) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("%w %q", errMissing, key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return f, nil
}

func queryBool(r *http.Request, key string, fallback bool) (bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parameter %q: %w", key, err)
	}
	return b, nil
}

// queryColor reads a color parameter. The leading '#' is optional since it
// has to be escaped in URLs.
func queryColor(r *http.Request, key, fallback string) (string, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		if fallback == "" {
			return "", fmt.Errorf("%w %q", errMissing, key)
		}
		return fallback, nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return v, nil
}

func (s *service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

type contrastResponse struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
	Target     float64 `json:"target"`
	Suggested  string  `json:"suggested,omitempty"`
	TextColor  string  `json:"text_color"`
}

func (s *service) handleContrast(w http.ResponseWriter, r *http.Request) {
	fg, err := queryColor(r, "fg", "")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	bg, err := queryColor(r, "bg", color.White)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	large, err := queryBool(r, "large", false)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	target := s.defaults.ContrastTarget
	if r.URL.Query().Has("target") {
		if target, err = requireFloat(r, "target"); err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
	}

	ratio, err := color.ContrastRatio(fg, bg)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	aa, _ := color.MeetsWCAGAA(fg, bg, large)
	aaa, _ := color.MeetsWCAGAAA(fg, bg, large)
	text, _ := color.ContrastingTextColor(bg)
	resp := contrastResponse{
		Ratio:     ratio,
		AA:        aa,
		AAA:       aaa,
		Target:    target,
		TextColor: text,
	}
	resp.Foreground, _ = color.Normalize(fg)
	resp.Background, _ = color.Normalize(bg)

	if target > 0 && ratio < target {
		suggested, err := color.AutoAdjustContrast(fg, bg, target)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
		resp.Suggested = suggested
		s.metrics.adjustments.Inc()
	}
	s.respond(w, http.StatusOK, resp)
}

type paletteResponse struct {
	Kind   string   `json:"kind"`
	Colors []string `json:"colors"`
	Dark   bool     `json:"dark"`
}

func (s *service) handlePalette(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	dark, err := queryBool(r, "dark", false)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	var colors []string
	switch kind {
	case "categorical":
		var count int
		if count, err = queryInt(r, "count", defaultPaletteCount); err == nil {
			colors, err = color.GenerateCategoricalPalette(count)
		}
	case "sequential":
		var base string
		var steps int
		if base, err = queryColor(r, "base", ""); err == nil {
			if steps, err = queryInt(r, "steps", defaultScaleSteps); err == nil {
				colors, err = color.GenerateSequentialScale(base, steps)
			}
		}
	case "diverging":
		var neg, pos string
		var steps int
		if neg, err = queryColor(r, "negative", ""); err == nil {
			if pos, err = queryColor(r, "positive", ""); err == nil {
				if steps, err = queryInt(r, "steps", defaultScaleSteps); err == nil {
					colors, err = color.GenerateDivergingScale(neg, pos, steps)
				}
			}
		}
	default:
		s.fail(w, http.StatusNotFound, fmt.Errorf("unknown palette kind %q", kind))
		return
	}
	if err == nil && dark {
		colors, err = color.GenerateDarkModePalette(colors)
	}
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	if queryString(r, "format", "json") == "svg" {
		s.writeSheet(w, kind+" palette", colors, !dark)
		return
	}
	s.respond(w, http.StatusOK, paletteResponse{Kind: kind, Colors: colors, Dark: dark})
}

func (s *service) writeSheet(w http.ResponseWriter, title string, colors []string, withDark bool) {
	sheet, err := svg.PaletteSheet(title, colors, true, withDark)
	if err == nil {
		var out string
		if out, err = sheet.Generate(); err == nil {
			w.Header().Set("Content-Type", "image/svg+xml")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(out))
			return
		}
	}
	s.fail(w, http.StatusInternalServerError, err)
}

type auditRequest struct {
	Colors     []string `json:"colors"`
	Background string   `json:"background"`
}

type auditResponse struct {
	Contrast   []color.ContrastAudit  `json:"contrast"`
	ColorBlind color.ColorBlindReport `json:"colorblind"`
	Passes     bool                   `json:"passes"`
}

func (s *service) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuditBody)).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Background == "" {
		req.Background = color.White
	}

	audit, err := color.AuditContrast(req.Colors, req.Background)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	report, err := color.CheckColorBlindAccessibility(req.Colors)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	passes := report.Passes()
	for _, a := range audit {
		passes = passes && a.AA
	}
	s.respond(w, http.StatusOK, auditResponse{Contrast: audit, ColorBlind: report, Passes: passes})
}

type ticksResponse struct {
	Ticks []float64 `json:"ticks"`
	Step  float64   `json:"step"`
	Count int       `json:"count"`
}

func (s *service) handleTicks(w http.ResponseWriter, r *http.Request) {
	minV, err := requireFloat(r, "min")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	maxV, err := requireFloat(r, "max")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	length, err := queryInt(r, "length", defaultAxisLength)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	orientation := ticks.Orientation(queryString(r, "orientation", string(ticks.Horizontal)))
	if orientation != ticks.Horizontal && orientation != ticks.Vertical {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("unknown orientation %q", orientation))
		return
	}
	count, err := queryInt(r, "count", ticks.CalculateOptimalTickCount(float64(length), orientation))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	if count < 2 || count > ticks.MaxDesiredTicks {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("count must be between 2 and %d, got %d", ticks.MaxDesiredTicks, count))
		return
	}

	values := ticks.GenerateNiceTicks(minV, maxV, count)
	if values == nil {
		s.fail(w, http.StatusBadRequest, errors.New("tick range must be finite"))
		return
	}
	s.respond(w, http.StatusOK, ticksResponse{
		Ticks: values,
		Step:  ticks.NiceStep(minV, maxV, count),
		Count: count,
	})
}

type marginsResponse struct {
	Breakpoint layout.Breakpoint `json:"breakpoint"`
	Margins    layout.Margins    `json:"margins"`
	Inner      layout.Dimensions `json:"inner"`
	FontSize   int               `json:"font_size"`
}

func (s *service) handleMargins(w http.ResponseWriter, r *http.Request) {
	width, err := requireInt(r, "width")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	height, err := requireInt(r, "height")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	xAxis, err := queryBool(r, "x_axis", true)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	yAxis, err := queryBool(r, "y_axis", true)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	m := layout.CalculateChartMargins(width, height, xAxis, yAxis)
	s.respond(w, http.StatusOK, marginsResponse{
		Breakpoint: layout.CurrentBreakpoint(width),
		Margins:    m,
		Inner:      layout.CalculateInnerDimensions(width, height, m),
		FontSize:   format.ResponsiveFontSize(width, 14, 0),
	})
}

type gridResponse struct {
	Breakpoint layout.Breakpoint `json:"breakpoint"`
	Grid       layout.GridLayout `json:"grid"`
	PerRow     int               `json:"per_row"`
}

func (s *service) handleGrid(w http.ResponseWriter, r *http.Request) {
	charts, err := requireInt(r, "charts")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	width, err := requireInt(r, "width")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	preferred, err := queryInt(r, "preferred", layout.DefaultPreferredChartWidth)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	s.respond(w, http.StatusOK, gridResponse{
		Breakpoint: layout.CurrentBreakpoint(width),
		Grid:       layout.CalculateChartGrid(charts, width),
		PerRow:     layout.OptimalChartsPerRow(width, preferred),
	})
}

func (s *service) handleFormatNumber(w http.ResponseWriter, r *http.Request) {
	value, err := requireFloat(r, "value")
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	decimals, err := queryInt(r, "decimals", format.DefaultPrecision)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	abbreviate, err := queryBool(r, "abbreviate", true)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	locale := queryString(r, "locale", s.defaults.Locale)

	var out string
	switch style := queryString(r, "style", "smart"); style {
	case "smart":
		out = format.FormatSmartNumber(value, format.SmartOptions{Locale: locale, Decimals: decimals, NoAbbreviate: !abbreviate})
	case "abbreviated":
		out = format.FormatNumberAbbreviated(value, decimals)
	case "percent":
		out = format.FormatPercentage(value, decimals, true)
	case "currency":
		out, err = format.FormatCurrency(value, format.CurrencyOptions{
			Locale:   locale,
			Currency: queryString(r, "currency", s.defaults.Currency),
		})
		if err != nil {
			s.fail(w, http.StatusBadRequest, err)
			return
		}
	default:
		s.fail(w, http.StatusBadRequest, fmt.Errorf("unknown number style %q", style))
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"formatted": out})
}

func (s *service) handleTokens(w http.ResponseWriter, r *http.Request) {
	f, err := tokens.ParseFormat(queryString(r, "format", string(tokens.JSON)))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	if f == tokens.JSON {
		s.respond(w, http.StatusOK, tokens.Take())
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	if err := tokens.Encode(w, tokens.Take(), f); err != nil {
		s.log.Error("Failed to encode tokens", "error", err)
	}
}
