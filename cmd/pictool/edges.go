package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/effects"
	"github.com/ironsheep/pictool/internal/picture"
)

var edgesCmd = &cobra.Command{
	Use:   "edges <input> <output>",
	Short: "Produce a grayscale edge map of an image",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdges,
}

func init() {
	edgesCmd.Flags().Float64("radius", 1.0, "Edge detection radius in pixels")
	rootCmd.AddCommand(edgesCmd)
}

func runEdges(cmd *cobra.Command, args []string) error {
	radius, _ := cmd.Flags().GetFloat64("radius")

	pic, err := picture.Load(args[0])
	if err != nil {
		return err
	}

	edged, err := effects.Edges(pic, radius)
	if err != nil {
		return err
	}
	return edged.Save(args[1])
}
