// Package tokens exports the fixed design tables shared by every chart as one
// document, so other toolchains can consume the same values.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/egandro/chartkit/pkg/color"
	"github.com/egandro/chartkit/pkg/layout"
	"github.com/egandro/chartkit/pkg/ticks"
)

// Format is an output encoding for Encode.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat resolves an encoding name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, YAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown token format %q", s)
}

type Colors struct {
	Categorical    []string `json:"categorical" yaml:"categorical"`
	Neutral        string   `json:"neutral" yaml:"neutral"`
	DarkBackground string   `json:"dark_background" yaml:"dark_background"`
	Black          string   `json:"black" yaml:"black"`
	White          string   `json:"white" yaml:"white"`
}

type Contrast struct {
	AANormal  float64 `json:"aa_normal" yaml:"aa_normal"`
	AALarge   float64 `json:"aa_large" yaml:"aa_large"`
	AAANormal float64 `json:"aaa_normal" yaml:"aaa_normal"`
	AAALarge  float64 `json:"aaa_large" yaml:"aaa_large"`
	// MinDistance is the RGB distance below which two colors count as
	// indistinguishable under a simulated deficiency.
	MinDistance float64 `json:"min_distance" yaml:"min_distance"`
}

type Breakpoint struct {
	Name        string `json:"name" yaml:"name"`
	MinWidth    int    `json:"min_width" yaml:"min_width"`
	ChartHeight int    `json:"chart_height" yaml:"chart_height"`
	GridGap     int    `json:"grid_gap" yaml:"grid_gap"`
}

type Ticks struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Snapshot is every shared design table in one value.
type Snapshot struct {
	Colors      Colors         `json:"colors" yaml:"colors"`
	Contrast    Contrast       `json:"contrast" yaml:"contrast"`
	Breakpoints []Breakpoint   `json:"breakpoints" yaml:"breakpoints"`
	Features    map[string]int `json:"features" yaml:"features"`
	Ticks       Ticks          `json:"ticks" yaml:"ticks"`
}

// Take collects the current tables. The result shares no memory with them.
func Take() Snapshot {
	s := Snapshot{
		Colors: Colors{
			Categorical:    color.CategoricalPool(),
			Neutral:        color.NeutralGray,
			DarkBackground: color.DarkBackground,
			Black:          color.Black,
			White:          color.White,
		},
		Contrast: Contrast{
			AANormal:    color.AANormalText,
			AALarge:     color.AALargeText,
			AAANormal:   color.AAANormal,
			AAALarge:    color.AAALarge,
			MinDistance: color.MinDistinguishableDistance,
		},
		Features: make(map[string]int),
		Ticks:    Ticks{Min: ticks.MinTickCount, Max: ticks.MaxTickCount},
	}
	for _, bp := range layout.Breakpoints() {
		s.Breakpoints = append(s.Breakpoints, Breakpoint{
			Name:        string(bp),
			MinWidth:    bp.MinWidth(),
			ChartHeight: bp.ChartHeight(),
			GridGap:     bp.GridGap(),
		})
	}
	for _, f := range layout.Features() {
		s.Features[f], _ = layout.FeatureMinWidth(f)
	}
	return s
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s Snapshot, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown token format %q", f)
}
