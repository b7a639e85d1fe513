package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/phanxgames/sketchbook"
	"github.com/spf13/cobra"
)

var verbose int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sketchbook",
	Short: "Run and export creative-coding sketches",
	Long: `sketchbook runs the bundled sketches in a window, or records them
headlessly and writes the frames as PNG or SVG files.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log to stderr (-v info, -vv debug)")
}

// setupLogging installs one stderr logger for sketchbook and gg.
func setupLogging(level int) {
	if level <= 0 {
		return
	}
	lvl := slog.LevelInfo
	if level > 1 {
		lvl = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	sketchbook.SetLogger(l)
	gg.SetLogger(l)
}
