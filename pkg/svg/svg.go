// Package svg renders palette preview sheets: one strip of labelled swatches
// per row, each swatch captioned with its hex code in a readable text color.
package svg

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/egandro/chartkit/pkg/color"
)

const (
	cellWidth   = 80
	cellHeight  = 40
	paddingTop  = 70
	paddingSide = 20
	rowGap      = 6
	// ~8px per character at font-size 14
	labelCharWidth = 8
	labelGap       = 12
)

var ErrEmptySheet = errors.New("sheet has no colors")

// New builds a sheet from rows. Colors are validated when the sheet is
// generated.
func New(title string, rows []Row) *Sheet {
	s := &Sheet{title: title, rows: rows}
	s.dims = s.calculateDimensions()
	return s
}

// PaletteSheet builds the standard preview of a palette: the colors as
// given, optionally followed by how they look under each color-vision
// deficiency and by their dark-mode variants.
func PaletteSheet(title string, colors []string, simulate, dark bool) (*Sheet, error) {
	rows := []Row{{Label: "Original", Colors: colors}}
	if simulate {
		for _, kind := range color.Deficiencies() {
			row := Row{Label: titleCase(string(kind))}
			for _, c := range colors {
				s, err := color.SimulateColorBlindness(c, kind)
				if err != nil {
					return nil, err
				}
				row.Colors = append(row.Colors, s)
			}
			rows = append(rows, row)
		}
	}
	if dark {
		variants, err := color.GenerateDarkModePalette(colors)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Label: "Dark mode", Colors: variants})
	}
	return New(title, rows), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *Sheet) maxColumns() int {
	n := 0
	for _, r := range s.rows {
		n = max(n, len(r.Colors))
	}
	return n
}

func (s *Sheet) calculateDimensions() sheetDimensions {
	var dims sheetDimensions

	longest := 0
	for _, r := range s.rows {
		longest = max(longest, len(r.Label))
	}
	dims.paddingLeft = paddingSide + longest*labelCharWidth + labelGap

	swatchesW := s.maxColumns() * cellWidth
	dims.width = dims.paddingLeft + swatchesW + paddingSide

	// Title: font-size 20, bold (~12px/char)
	if titleW := len(s.title)*12 + 2*paddingSide; titleW > dims.width {
		dims.paddingLeft += (titleW - dims.width) / 2
		dims.width = titleW
	}

	dims.height = paddingTop + len(s.rows)*(cellHeight+rowGap) + paddingSide
	return dims
}

// Generate renders the sheet.
func (s *Sheet) Generate() (string, error) {
	if s.maxColumns() == 0 {
		return "", ErrEmptySheet
	}

	data := svgData{
		Width:   s.dims.width,
		Height:  s.dims.height,
		CenterX: s.dims.width / 2,
		Title:   s.title,
	}

	for row, r := range s.rows {
		y := paddingTop + row*(cellHeight+rowGap)
		data.RowLabels = append(data.RowLabels, svgLabel{
			X:    s.dims.paddingLeft - labelGap,
			Y:    y + cellHeight/2,
			Text: r.Label,
		})

		for col, hex := range r.Colors {
			fill, err := color.Normalize(hex)
			if err != nil {
				return "", fmt.Errorf("row %q: %w", r.Label, err)
			}
			text, _ := color.ContrastingTextColor(fill)
			x := s.dims.paddingLeft + col*cellWidth

			data.Cells = append(data.Cells, svgCell{
				X:         x,
				Y:         y,
				Width:     cellWidth,
				Height:    cellHeight,
				Fill:      fill,
				TextColor: text,
				Text:      fill,
				TextX:     x + cellWidth/2,
				TextY:     y + cellHeight/2,
			})
		}
	}

	tmpl, err := template.New("svg").Parse(svgTemplateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse SVG template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute SVG template: %w", err)
	}

	return buf.String(), nil
}

//go:embed templates/sheet.svg.tmpl
var svgTemplateStr string
