package main

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type ctxKey struct{}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// Execute runs the genomap CLI.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "genomap",
		Short:        "genomap renders circular genome maps",
		Long:         `genomap reads genome JSON files and renders zoomable circular maps of their tracks and features as SVG or PNG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newValidateCmd())

	return root.ExecuteContext(context.Background())
}
