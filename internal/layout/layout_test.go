package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, 16, cfg.Cells())
	assert.Equal(t, "A4", cfg.PageSize)
	assert.Equal(t, "bingo.pdf", cfg.Output)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	content := `
grid {
  rows = 3
  cols = 5
}

page {
  size        = "letter"
  orientation = "landscape"
  margin_mm   = 10
}

font {
  cell_pt = 8
}

output = "offsite.pdf"
`
	path := filepath.Join(t.TempDir(), "bingo.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 5, cfg.Cols)
	assert.Equal(t, 15, cfg.Cells())
	assert.Equal(t, "Letter", cfg.PageSize)
	assert.Equal(t, "L", cfg.Orientation)
	assert.Equal(t, 10.0, cfg.MarginMM)
	assert.Equal(t, 8.0, cfg.CellPt)
	// Values not set in the file keep their defaults.
	assert.Equal(t, "Helvetica", cfg.FontFamily)
	assert.Equal(t, 22.0, cfg.TitlePt)
	assert.Equal(t, "offsite.pdf", cfg.Output)
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`grid {`), 0644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"unknown page size", func(c *Config) { c.PageSize = "A7" }},
		{"unknown orientation", func(c *Config) { c.Orientation = "diagonal" }},
		{"negative margin", func(c *Config) { c.MarginMM = -1 }},
		{"zero cell font", func(c *Config) { c.CellPt = 0 }},
		{"empty output", func(c *Config) { c.Output = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidLayout)
		})
	}
}

func TestValidateNormalises(t *testing.T) {
	cfg := Default()
	cfg.PageSize = "a4"
	cfg.Orientation = "portrait"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "A4", cfg.PageSize)
	assert.Equal(t, "P", cfg.Orientation)
}
