package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ha1tch/genomap/pkg/render"
)

// renderConfig mirrors the [render] table of a genomap config file.
type renderConfig struct {
	Render struct {
		Width      int     `toml:"width"`
		Height     int     `toml:"height"`
		Renderer   string  `toml:"renderer"`
		ShowLabels *bool   `toml:"show_labels"`
		ShowScale  *bool   `toml:"show_scale"`
		ShowLegend *bool   `toml:"show_legend"`
		FontSize   float64 `toml:"font_size"`
		Background string  `toml:"background"`
		Padding    float64 `toml:"padding"`
	} `toml:"render"`
}

// loadConfig reads a TOML config file and applies it over opts.
func loadConfig(path string, opts render.Options) (render.Options, error) {
	var cfg renderConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return opts, fmt.Errorf("load config: %w", err)
	}
	r := cfg.Render
	if r.Width > 0 {
		opts.Width = r.Width
	}
	if r.Height > 0 {
		opts.Height = r.Height
	}
	if r.Renderer != "" {
		opts.Renderer = r.Renderer
	}
	if r.ShowLabels != nil {
		opts.ShowLabels = *r.ShowLabels
	}
	if r.ShowScale != nil {
		opts.ShowScale = *r.ShowScale
	}
	if r.ShowLegend != nil {
		opts.ShowLegend = *r.ShowLegend
	}
	if r.FontSize > 0 {
		opts.FontSize = r.FontSize
	}
	if r.Background != "" {
		opts.Background = r.Background
	}
	if r.Padding > 0 {
		opts.OuterPadding = r.Padding
	}
	return opts, nil
}
