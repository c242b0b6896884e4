package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ha1tch/genomap/pkg/genome"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <genome.json>",
		Short: "Check a genome file for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := genome.Load(args[0])
			if err != nil {
				return err
			}

			var problems []string
			seen := make(map[string]string)
			for _, t := range g.Tracks {
				for _, f := range t.Features {
					if f.Start < 1 || f.End > g.Length {
						problems = append(problems,
							fmt.Sprintf("feature %s [%d, %d] outside genome [1, %d]", f.ID, f.Start, f.End, g.Length))
					}
					if prev, dup := seen[f.ID]; dup {
						problems = append(problems,
							fmt.Sprintf("feature id %s appears in tracks %s and %s", f.ID, prev, t.ID))
					}
					seen[f.ID] = t.ID
					if t.IsGC() {
						if _, ok := f.NumericAttr("value"); !ok {
							problems = append(problems,
								fmt.Sprintf("GC feature %s in track %s has no numeric value attribute", f.ID, t.ID))
						}
					}
				}
			}

			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Printf("  %s\n", p)
				}
				return fmt.Errorf("%d problem(s) found", len(problems))
			}
			fmt.Println("OK")
			return nil
		},
	}
}
