package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pictool/internal/analyze"
	"github.com/ironsheep/pictool/internal/picture"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Print image metadata as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	img, err := picture.Decode(args[0])
	if err != nil {
		return err
	}

	info, err := analyze.Info(img, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, info)
}

// printJSON writes a result to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
