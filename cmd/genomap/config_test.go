package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ha1tch/genomap/pkg/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genomap.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[render]
width = 1200
height = 900
renderer = "svg"
show_labels = false
font_size = 14.0
background = "#f0f0f0"
padding = 80.0
`)

	opts, err := loadConfig(path, render.DefaultOptions())
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if opts.Width != 1200 || opts.Height != 900 {
		t.Errorf("Size = %dx%d", opts.Width, opts.Height)
	}
	if opts.Renderer != render.RendererSVG {
		t.Errorf("Renderer = %q", opts.Renderer)
	}
	if opts.ShowLabels {
		t.Errorf("show_labels = false not applied")
	}
	if opts.FontSize != 14 || opts.Background != "#f0f0f0" || opts.OuterPadding != 80 {
		t.Errorf("Style options not applied: %+v", opts)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
[render]
width = 640
`)

	opts, err := loadConfig(path, render.DefaultOptions())
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	d := render.DefaultOptions()
	if opts.Width != 640 {
		t.Errorf("Width = %d", opts.Width)
	}
	// Unset keys keep their defaults, including the boolean toggles.
	if opts.Height != d.Height || !opts.ShowLabels || !opts.ShowScale {
		t.Errorf("Partial config disturbed defaults: %+v", opts)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"), render.DefaultOptions()); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}
