package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phanxgames/sketchbook"
	"github.com/phanxgames/sketchbook/export"
	"github.com/phanxgames/sketchbook/sketches"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	format        string
	frames        int
	rate          int
	mouse         string
	out           string
	width, height int
	script        string
	capturedOnly  bool
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <sketch>",
	Short: "Record a sketch headlessly and write its frames",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := sketches.Lookup(args[0])
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(exportFlags.format)
		if err != nil {
			return err
		}
		mouse, err := parsePoint(exportFlags.mouse)
		if err != nil {
			return err
		}
		cfg := sketchbook.RecordConfig{
			Width:  exportFlags.width,
			Height: exportFlags.height,
			Frames: exportFlags.frames,
			Rate:   exportFlags.rate,
			Mouse:  sketchbook.Mouse{X: mouse.X, Y: mouse.Y},
		}
		if exportFlags.script != "" {
			cfg.Script, err = sketchbook.LoadScript(exportFlags.script)
			if err != nil {
				return err
			}
		}
		frames, err := entry.Record(cfg)
		if err != nil {
			return err
		}
		paths, err := export.Frames(exportFlags.out, entry.SketchName(), format, frames, exportFlags.capturedOnly)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(paths), exportFlags.out)
		return err
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.format, "format", string(export.FormatPNG), "output format: png or svg")
	f.IntVar(&exportFlags.frames, "frames", 60, "number of frames to record")
	f.IntVar(&exportFlags.rate, "rate", sketchbook.DefaultTPS, "frames per second of sketch time")
	f.StringVar(&exportFlags.mouse, "mouse", "320,240", "fixed mouse position as x,y")
	f.StringVar(&exportFlags.out, "out", "frames", "output directory")
	f.IntVar(&exportFlags.width, "width", 0, "frame width (default: sketch size)")
	f.IntVar(&exportFlags.height, "height", 0, "frame height (default: sketch size)")
	f.StringVar(&exportFlags.script, "script", "", "JSON input script")
	f.BoolVar(&exportFlags.capturedOnly, "captured-only", false, "only write frames the script captured")
	rootCmd.AddCommand(exportCmd)
}

// parsePoint parses "x,y".
func parsePoint(s string) (sketchbook.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return sketchbook.Vec2{}, fmt.Errorf("parse point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return sketchbook.Vec2{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return sketchbook.Vec2{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return sketchbook.V(x, y), nil
}
