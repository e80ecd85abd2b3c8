package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/effects"
	"github.com/ironsheep/pictool/internal/picture"
)

var gridCmd = &cobra.Command{
	Use:   "grid <spacing> <input> <output>",
	Short: "Overlay a coordinate grid on an image",
	Args:  cobra.ExactArgs(3),
	RunE:  runGrid,
}

func init() {
	gridCmd.Flags().String("color", "#FF0000", "Grid line color as a hex string")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	spacing, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: grid spacing %q is not a number", picture.ErrInvalidArgument, args[0])
	}
	colorHex, _ := cmd.Flags().GetString("color")

	pic, err := picture.Load(args[1])
	if err != nil {
		return err
	}

	gridded, err := effects.Grid(pic, spacing, colorHex)
	if err != nil {
		return err
	}
	return gridded.Save(args[2])
}
