// Package layout describes how bingo sheets are arranged on the page: grid
// dimensions, page geometry, fonts and the output path. Configuration is
// read from an HCL file; a missing file means defaults.
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidLayout indicates an unusable layout configuration.
var ErrInvalidLayout = errors.New("layout: invalid configuration")

// Config is the resolved sheet layout after defaults and file values have
// been merged.
type Config struct {
	Rows int
	Cols int

	PageSize    string // A4, Letter or Legal
	Orientation string // P or L
	MarginMM    float64

	FontFamily string
	TitlePt    float64
	HeaderPt   float64
	CellPt     float64

	Output string
}

// configFile is the HCL shape. All blocks and attributes are optional;
// anything absent keeps its default.
type configFile struct {
	Grid   *gridBlock `hcl:"grid,block"`
	Page   *pageBlock `hcl:"page,block"`
	Font   *fontBlock `hcl:"font,block"`
	Output string     `hcl:"output,optional"`
}

type gridBlock struct {
	Rows int `hcl:"rows,optional"`
	Cols int `hcl:"cols,optional"`
}

type pageBlock struct {
	Size        string  `hcl:"size,optional"`
	Orientation string  `hcl:"orientation,optional"`
	MarginMM    float64 `hcl:"margin_mm,optional"`
}

type fontBlock struct {
	Family   string  `hcl:"family,optional"`
	TitlePt  float64 `hcl:"title_pt,optional"`
	HeaderPt float64 `hcl:"header_pt,optional"`
	CellPt   float64 `hcl:"cell_pt,optional"`
}

// Default returns the built-in layout: a 4x4 grid on portrait A4.
func Default() *Config {
	return &Config{
		Rows:        4,
		Cols:        4,
		PageSize:    "A4",
		Orientation: "P",
		MarginMM:    15,
		FontFamily:  "Helvetica",
		TitlePt:     22,
		HeaderPt:    11,
		CellPt:      9,
		Output:      "bingo.pdf",
	}
}

// Load reads a layout file and merges it over the defaults. A missing file
// is not an error; it yields Default().
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, diags.Error())
	}

	var raw configFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, diags.Error())
	}

	if raw.Grid != nil {
		if raw.Grid.Rows != 0 {
			cfg.Rows = raw.Grid.Rows
		}
		if raw.Grid.Cols != 0 {
			cfg.Cols = raw.Grid.Cols
		}
	}
	if raw.Page != nil {
		if raw.Page.Size != "" {
			cfg.PageSize = raw.Page.Size
		}
		if raw.Page.Orientation != "" {
			cfg.Orientation = raw.Page.Orientation
		}
		if raw.Page.MarginMM != 0 {
			cfg.MarginMM = raw.Page.MarginMM
		}
	}
	if raw.Font != nil {
		if raw.Font.Family != "" {
			cfg.FontFamily = raw.Font.Family
		}
		if raw.Font.TitlePt != 0 {
			cfg.TitlePt = raw.Font.TitlePt
		}
		if raw.Font.HeaderPt != 0 {
			cfg.HeaderPt = raw.Font.HeaderPt
		}
		if raw.Font.CellPt != 0 {
			cfg.CellPt = raw.Font.CellPt
		}
	}
	if raw.Output != "" {
		cfg.Output = raw.Output
	}

	return cfg, nil
}

// Cells returns the number of statements one sheet holds.
func (c *Config) Cells() int {
	return c.Rows * c.Cols
}

// Validate normalises page size and orientation and rejects values the
// renderer cannot work with.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("%w: grid rows must be at least 1, got %d", ErrInvalidLayout, c.Rows)
	}
	if c.Cols < 1 {
		return fmt.Errorf("%w: grid cols must be at least 1, got %d", ErrInvalidLayout, c.Cols)
	}

	switch strings.ToLower(c.PageSize) {
	case "a4":
		c.PageSize = "A4"
	case "letter":
		c.PageSize = "Letter"
	case "legal":
		c.PageSize = "Legal"
	default:
		return fmt.Errorf("%w: unknown page size %q (want A4, Letter or Legal)", ErrInvalidLayout, c.PageSize)
	}

	switch strings.ToLower(c.Orientation) {
	case "p", "portrait":
		c.Orientation = "P"
	case "l", "landscape":
		c.Orientation = "L"
	default:
		return fmt.Errorf("%w: unknown orientation %q (want P or L)", ErrInvalidLayout, c.Orientation)
	}

	if c.MarginMM < 0 {
		return fmt.Errorf("%w: negative page margin %g", ErrInvalidLayout, c.MarginMM)
	}
	if c.TitlePt <= 0 || c.HeaderPt <= 0 || c.CellPt <= 0 {
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidLayout)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidLayout)
	}

	return nil
}
