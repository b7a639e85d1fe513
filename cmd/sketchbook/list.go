package main

import (
	"fmt"

	"github.com/phanxgames/sketchbook/sketches"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled sketches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range sketches.All() {
			if _, err := fmt.Fprintf(out, "%-10s %s\n", e.SketchName(), e.SketchTitle()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
