package cmd

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"stepgen/internal/db"
	"stepgen/internal/step"
	"stepgen/internal/ui"
)

var copyFlag bool

var genCmd = &cobra.Command{
	Use:   "gen <step line>",
	Short: "Generate a step definition stub from one Gherkin step line",
	Long: `Generate a SpecFlow step definition stub from a single Gherkin step line.
Pass the line as one argument, or pass - to read a line from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGen(cmd.OutOrStdout(), cmd.InOrStdin(), args[0], copyFlag)
	},
}

func init() {
	genCmd.Flags().BoolVar(&copyFlag, "copy", false, "Also place the output on the system clipboard")
	rootCmd.AddCommand(genCmd)
}

func RunGen(w io.Writer, r io.Reader, line string, copyOut bool) error {
	if line == "-" {
		scanner := bufio.NewScanner(r)
		line = ""
		if scanner.Scan() {
			line = scanner.Text()
		}
	}

	def, err := step.Generate(line)
	if err != nil {
		if copyOut {
			// Clipboard writes are fire-and-forget; the error message is
			// copied the same way generated output would be.
			_ = clipboard.WriteAll(err.Error())
		}
		return err
	}

	fmt.Fprint(w, def.Text)
	if copyOut {
		_ = clipboard.WriteAll(def.Text)
	}

	return recordStep(w, def)
}

// recordStep registers the generated binding in the step registry when a
// .stepgen workspace exists. Without one, generation is purely ephemeral.
func recordStep(w io.Writer, def step.Definition) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	return record(w, sqlDB, def)
}

// record inserts a binding, or reports it as a duplicate when another step
// with the same binding pattern is already registered.
func record(w io.Writer, sqlDB *sql.DB, def step.Definition) error {
	var method string
	err := sqlDB.QueryRow(`SELECT method_name FROM steps WHERE pattern = ?`, def.Pattern).Scan(&method)
	if err == sql.ErrNoRows {
		_, err = sqlDB.Exec(`INSERT INTO steps (keyword, pattern, method_name, source_line) VALUES (?, ?, ?, ?)`,
			def.Keyword, def.Pattern, def.Method, def.Source)
		if err != nil {
			return fmt.Errorf("recording step: %w", err)
		}
		ui.RecordedLine(w, def.Method)
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying steps: %w", err)
	}
	ui.DupLine(w, method)
	return nil
}
