package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/eventforge/bingo/internal/layout"
	"github.com/eventforge/bingo/internal/pool"
	"github.com/eventforge/bingo/internal/render"
	"github.com/eventforge/bingo/internal/sampler"
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#5A56E0")).
	Padding(0, 1).
	Bold(true)

// defaultCount is offered by the interactive prompt when --count is omitted.
const defaultCount = 10

type GenerateCmd struct {
	Pool    string `short:"p" help:"Statement pool file (JSON)" default:"pool.json"`
	Layout  string `short:"l" help:"Sheet layout file (HCL)" default:"bingo.hcl"`
	Out     string `short:"o" help:"Output PDF path (overrides the layout file)"`
	Count   int    `short:"n" help:"Number of sheets to generate (prompted for when omitted)"`
	Rows    int    `help:"Grid rows (overrides the layout file)"`
	Cols    int    `help:"Grid columns (overrides the layout file)"`
	Seed    int64  `help:"Fixed random seed for reproducible output"`
	Verbose bool   `help:"Enable debug logging"`
}

func (c *GenerateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	fmt.Println(bannerStyle.Render("Icebreaker Bingo"))
	fmt.Println()

	cfg, err := layout.Load(c.Layout)
	if err != nil {
		return err
	}
	if c.Rows > 0 {
		cfg.Rows = c.Rows
	}
	if c.Cols > 0 {
		cfg.Cols = c.Cols
	}
	if c.Out != "" {
		cfg.Output = c.Out
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("Resolved layout", "grid", fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols), "page", cfg.PageSize, "output", cfg.Output)

	p, err := pool.Load(c.Pool)
	if err != nil {
		return err
	}
	logger.Debug("Loaded statement pool", "file", c.Pool, "statements", p.Size())

	count := c.Count
	if count == 0 {
		count, err = promptCount(defaultCount)
		if err != nil {
			return err
		}
	}

	var opts sampler.Options
	if c.Seed != 0 {
		opts.Rng = sampler.NewRand(c.Seed)
		logger.Debug("Using fixed seed", "seed", c.Seed)
	}

	set, err := sampler.Generate(p, cfg.Cells(), count, opts)
	if err != nil {
		return err
	}
	logger.Info("Generated sheets", "sheets", len(set), "cells", cfg.Cells(), "pool", p.Size())

	if err := render.New(cfg).RenderFile(cfg.Output, set, p); err != nil {
		return err
	}
	logger.Info("Wrote bingo sheets", "file", cfg.Output, "pages", len(set))
	return nil
}
