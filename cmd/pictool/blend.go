package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/picture"
)

var blendCmd = &cobra.Command{
	Use:   "blend <input1> [<input2> ...] <output>",
	Short: "Average several images over their overlapping region",
	Long: `Blend averages each color channel across all input images, covering the
top-left region up to the smallest common width and height. At least one
input image is required; the last path is the output.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runBlend,
}

func init() {
	rootCmd.AddCommand(blendCmd)
}

func runBlend(cmd *cobra.Command, args []string) error {
	inputs := args[:len(args)-1]
	output := args[len(args)-1]

	pics := make([]*picture.Picture, 0, len(inputs))
	for _, path := range inputs {
		pic, err := picture.Load(path)
		if err != nil {
			return err
		}
		pics = append(pics, pic)
	}

	blended, err := picture.BlendAll(pics)
	if err != nil {
		return err
	}
	return blended.Save(output)
}
