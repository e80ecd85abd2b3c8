package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/effects"
	"github.com/ironsheep/pictool/internal/picture"
)

var sharpenCmd = &cobra.Command{
	Use:   "sharpen <input> <output>",
	Short: "Sharpen an image with a 3x3 sharpening kernel",
	Args:  cobra.ExactArgs(2),
	RunE:  runSharpen,
}

func init() {
	rootCmd.AddCommand(sharpenCmd)
}

func runSharpen(cmd *cobra.Command, args []string) error {
	pic, err := picture.Load(args[0])
	if err != nil {
		return err
	}
	return effects.Sharpen(pic).Save(args[1])
}
