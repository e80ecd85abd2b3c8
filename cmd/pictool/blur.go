package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var blurCmd = &cobra.Command{
	Use:   "blur <input> <output>",
	Short: "Apply a 3x3 box blur, leaving border pixels untouched",
	Args:  cobra.ExactArgs(2),
	RunE:  runBlur,
}

func init() {
	rootCmd.AddCommand(blurCmd)
}

func runBlur(cmd *cobra.Command, args []string) error {
	pic, err := picture.Load(args[0])
	if err != nil {
		return err
	}
	return pic.Blur().Save(args[1])
}
