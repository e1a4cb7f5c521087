package svg

// Row is one labelled strip of swatches.
type Row struct {
	Label  string   `json:"label"`
	Colors []string `json:"colors"`
}

// Sheet renders rows of color swatches as a standalone SVG document.
type Sheet struct {
	title string
	rows  []Row
	dims  sheetDimensions
}

type svgLabel struct {
	X, Y int
	Text string
}

type svgCell struct {
	X, Y, Width, Height int
	Fill, TextColor     string
	Text                string
	TextX, TextY        int
}

type svgData struct {
	Width, Height, CenterX int
	Title                  string
	RowLabels              []svgLabel
	Cells                  []svgCell
}

type sheetDimensions struct {
	width       int
	height      int
	paddingLeft int
}
