package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/analyze"
	"github.com/ironsheep/pictool/internal/picture"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <x> <y> <input>",
	Short: "Print the color at a pixel as hex, RGB, and HSL JSON",
	Args:  cobra.ExactArgs(3),
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: x coordinate %q is not a number", picture.ErrInvalidArgument, args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: y coordinate %q is not a number", picture.ErrInvalidArgument, args[1])
	}

	pic, err := picture.Load(args[2])
	if err != nil {
		return err
	}

	result, err := analyze.SampleColor(pic, x, y)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}
