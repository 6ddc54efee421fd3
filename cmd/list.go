package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stepgen/internal/db"
	"stepgen/internal/ui"
)

var keywordFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered step definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), keywordFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&keywordFlag, "keyword", "", "Filter by keyword (Given, When or Then)")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	id      int64
	keyword string
	method  string
	pattern string
}

func RunList(w io.Writer, keywordFilter string) error {
	if _, err := os.Stat(".stepgen"); os.IsNotExist(err) {
		return fmt.Errorf("run `stepgen init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`SELECT id, keyword, method_name, pattern FROM steps ORDER BY id`)
	if err != nil {
		return fmt.Errorf("querying steps: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		if err := rows.Scan(&r.id, &r.keyword, &r.method, &r.pattern); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}

		if keywordFilter != "" && r.keyword != keywordFilter {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, keywordWidth, methodWidth := 0, 0, 0
	for _, r := range results {
		tag := fmt.Sprintf("#%d", r.id)
		if len(tag) > idWidth {
			idWidth = len(tag)
		}
		if len(r.keyword) > keywordWidth {
			keywordWidth = len(r.keyword)
		}
		if len(r.method) > methodWidth {
			methodWidth = len(r.method)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.id, r.keyword, r.method, r.pattern, idWidth, keywordWidth, methodWidth)
	}

	return nil
}
