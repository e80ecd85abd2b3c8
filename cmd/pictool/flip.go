package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var flipCmd = &cobra.Command{
	Use:   "flip <H|V> <input> <output>",
	Short: "Mirror an image horizontally (H) or vertically (V)",
	Args:  cobra.ExactArgs(3),
	RunE:  runFlip,
}

func init() {
	rootCmd.AddCommand(flipCmd)
}

func runFlip(cmd *cobra.Command, args []string) error {
	axis, err := picture.ParseFlipAxis(args[0])
	if err != nil {
		return err
	}

	pic, err := picture.Load(args[1])
	if err != nil {
		return err
	}
	return pic.Flip(axis).Save(args[2])
}
