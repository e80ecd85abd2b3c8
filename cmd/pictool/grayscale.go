package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var grayscaleCmd = &cobra.Command{
	Use:   "grayscale <input> <output>",
	Short: "Convert an image to grayscale by channel averaging",
	Args:  cobra.ExactArgs(2),
	RunE:  runGrayscale,
}

func init() {
	rootCmd.AddCommand(grayscaleCmd)
}

func runGrayscale(cmd *cobra.Command, args []string) error {
	pic, err := picture.Load(args[0])
	if err != nil {
		return err
	}
	pic.Grayscale()
	return pic.Save(args[1])
}
