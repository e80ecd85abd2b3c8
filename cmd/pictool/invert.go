package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var invertCmd = &cobra.Command{
	Use:   "invert <input> <output>",
	Short: "Invert every color channel of an image",
	Args:  cobra.ExactArgs(2),
	RunE:  runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)
}

func runInvert(cmd *cobra.Command, args []string) error {
	pic, err := picture.Load(args[0])
	if err != nil {
		return err
	}
	pic.Invert()
	return pic.Save(args[1])
}
