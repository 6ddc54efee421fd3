package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stepgen",
	Short: "stepgen — SpecFlow step definition generator",
}

// dbPath is the step registry created by `stepgen init`.
const dbPath = ".stepgen/steps.db"

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
