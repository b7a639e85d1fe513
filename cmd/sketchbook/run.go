package main

import (
	"github.com/phanxgames/sketchbook"
	"github.com/phanxgames/sketchbook/sketches"
	"github.com/spf13/cobra"
)

var runFlags struct {
	width, height int
	tps           int
	fps           bool
	debug         bool
	resizable     bool
	script        string
	shots         string
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <sketch>",
	Short: "Open a sketch in a window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := sketches.Lookup(args[0])
		if err != nil {
			return err
		}
		cfg := sketchbook.RunConfig{
			Width:         runFlags.width,
			Height:        runFlags.height,
			TPS:           runFlags.tps,
			ShowFPS:       runFlags.fps,
			Debug:         runFlags.debug,
			Resizable:     runFlags.resizable,
			ScreenshotDir: runFlags.shots,
		}
		if runFlags.script != "" {
			cfg.Script, err = sketchbook.LoadScript(runFlags.script)
			if err != nil {
				return err
			}
		}
		return entry.Run(cfg)
	},
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runFlags.width, "width", 0, "window width (default: sketch size)")
	f.IntVar(&runFlags.height, "height", 0, "window height (default: sketch size)")
	f.IntVar(&runFlags.tps, "tps", sketchbook.DefaultTPS, "ticks per second")
	f.BoolVar(&runFlags.fps, "fps", false, "show the FPS overlay")
	f.BoolVar(&runFlags.debug, "debug", false, "log per-frame draw stats (needs -vv)")
	f.BoolVar(&runFlags.resizable, "resizable", false, "allow resizing the window")
	f.StringVar(&runFlags.script, "script", "", "JSON input script")
	f.StringVar(&runFlags.shots, "screenshots", sketchbook.DefaultScreenshotDir, "screenshot directory")
	rootCmd.AddCommand(runCmd)
}
