package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <degrees> <input> <output>",
	Short: "Rotate an image clockwise by 90, 180, or 270 degrees",
	Args:  cobra.ExactArgs(3),
	RunE:  runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	degrees, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: rotation angle %q is not a number", picture.ErrInvalidArgument, args[0])
	}
	rot, err := picture.ParseRotation(degrees)
	if err != nil {
		return err
	}

	pic, err := picture.Load(args[1])
	if err != nil {
		return err
	}
	return pic.Rotate(rot).Save(args[2])
}
