package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stepgen/internal/db"
	"stepgen/internal/step"
	"stepgen/internal/ui"
)

var featureCmd = &cobra.Command{
	Use:   "feature <path>",
	Short: "Generate stubs for every step line in a feature file",
	Long: `Read a feature file and generate a step definition stub for every line
that is a valid Given/When/Then step. Each line is handled on its own:
And/But lines, keywords like Feature: and Scenario:, tables and doc strings
are skipped, not interpreted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunFeature(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(featureCmd)
}

func RunFeature(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var sqlDB *sql.DB
	if _, err := os.Stat(dbPath); err == nil {
		sqlDB, err = db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer sqlDB.Close()
	}

	generated, skipped := 0, 0
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		def, err := step.Generate(line)
		if err != nil {
			skipped++
			ui.SkippedLine(w, i+1, err.Error())
			continue
		}

		if generated > 0 {
			fmt.Fprint(w, "\r\n")
		}
		fmt.Fprint(w, def.Text)
		generated++

		if sqlDB != nil {
			if err := record(w, sqlDB, def); err != nil {
				return err
			}
		}
	}

	ui.SummaryLine(w, generated, skipped)
	return nil
}
