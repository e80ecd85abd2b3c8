package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/analyze"
	"github.com/ironsheep/pictool/internal/picture"
)

var dominantCmd = &cobra.Command{
	Use:   "dominant <count> <input>",
	Short: "Print the most common colors in an image as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runDominant,
}

func init() {
	rootCmd.AddCommand(dominantCmd)
}

func runDominant(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: color count %q is not a number", picture.ErrInvalidArgument, args[0])
	}

	pic, err := picture.Load(args[1])
	if err != nil {
		return err
	}

	result, err := analyze.DominantColors(pic, count)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}
