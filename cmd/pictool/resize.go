package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/effects"
	"github.com/ironsheep/pictool/internal/picture"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <width> <height> <input> <output>",
	Short: "Resize an image with Lanczos resampling",
	Args:  cobra.ExactArgs(4),
	RunE:  runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: width %q is not a number", picture.ErrInvalidArgument, args[0])
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: height %q is not a number", picture.ErrInvalidArgument, args[1])
	}

	pic, err := picture.Load(args[2])
	if err != nil {
		return err
	}

	resized, err := effects.Resize(pic, width, height)
	if err != nil {
		return err
	}
	return resized.Save(args[3])
}
