package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ha1tch/genomap/pkg/genome"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <genome.json>",
		Short: "Show genome summary and track statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := genome.Load(args[0])
			if err != nil {
				return err
			}

			if g.Name != "" {
				fmt.Printf("Genome:   %s\n", g.Name)
			}
			fmt.Printf("Length:   %d bp\n", g.Length)
			fmt.Printf("Tracks:   %d\n", len(g.Tracks))
			fmt.Printf("Features: %d\n\n", g.FeatureCount())

			for _, t := range g.Tracks {
				vis := "visible"
				if !t.Visible {
					vis = "hidden"
				}
				fmt.Printf("  %-20s %-14s %5d features  (%s)\n", t.Name, t.Type, len(t.Features), vis)
				if s := genome.StatsFor(t); s.Count > 0 {
					fmt.Printf("  %-20s mean=%.3f stddev=%.3f min=%.3f max=%.3f\n",
						"", s.Mean, s.StdDev, s.Min, s.Max)
				}
			}
			return nil
		},
	}
}
