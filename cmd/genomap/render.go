package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/genomap/pkg/genome"
	"github.com/ha1tch/genomap/pkg/render"
)

func newRenderCmd() *cobra.Command {
	var (
		out        string
		configPath string
		width      int
		height     int
		zoom       float64
		noLabels   bool
		noScale    bool
		noLegend   bool
	)

	cmd := &cobra.Command{
		Use:   "render <genome.json>",
		Short: "Render a genome map to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := genome.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("genome loaded", "length", g.Length, "tracks", len(g.Tracks), "features", g.FeatureCount())

			opts := render.DefaultOptions()
			if configPath != "" {
				if opts, err = loadConfig(configPath, opts); err != nil {
					return err
				}
			}
			if width > 0 {
				opts.Width = width
			}
			if height > 0 {
				opts.Height = height
			}
			if noLabels {
				opts.ShowLabels = false
			}
			if noScale {
				opts.ShowScale = false
			}
			if noLegend {
				opts.ShowLegend = false
			}

			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}

			v := render.NewViewer(opts, logger)
			v.SetGenome(g)
			if zoom != 1 {
				v.ZoomCentered(zoom)
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".svg":
				if err := os.WriteFile(out, []byte(v.SVG()), 0644); err != nil {
					return err
				}
			case ".png":
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := v.WritePNG(f); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format: %s", filepath.Ext(out))
			}

			logger.Info("rendered", "out", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.svg or .png; defaults to input name with .svg)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML render config file")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom level, centered")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "hide feature labels")
	cmd.Flags().BoolVar(&noScale, "no-scale", false, "hide the scale ring")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "hide the legend")
	return cmd
}
