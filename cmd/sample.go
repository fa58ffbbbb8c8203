package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/claims-triage/internal/pipeline"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a synthetic FNOL document",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), pipeline.SampleDocument())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
