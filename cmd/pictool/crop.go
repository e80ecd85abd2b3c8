package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/effects"
	"github.com/ironsheep/pictool/internal/picture"
)

var cropCmd = &cobra.Command{
	Use:   "crop <x1> <y1> <x2> <y2> <input> <output>",
	Short: "Extract a rectangular region from an image",
	Args:  cobra.ExactArgs(6),
	RunE:  runCrop,
}

func init() {
	cropCmd.Flags().Float64("scale", 1.0, "Scale factor applied to the cropped region")
	rootCmd.AddCommand(cropCmd)
}

func runCrop(cmd *cobra.Command, args []string) error {
	coords := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%w: crop coordinate %q is not a number", picture.ErrInvalidArgument, args[i])
		}
		coords[i] = v
	}
	scale, _ := cmd.Flags().GetFloat64("scale")

	pic, err := picture.Load(args[4])
	if err != nil {
		return err
	}

	cropped, err := effects.Crop(pic, coords[0], coords[1], coords[2], coords[3], scale)
	if err != nil {
		return err
	}
	return cropped.Save(args[5])
}
