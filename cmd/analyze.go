package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url-or-text>",
	Short: "Run a one-shot fact-check analysis and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := initChecker()
		if err != nil {
			return err
		}

		result, err := checker.Analyze(cmd.Context(), args[0])
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
