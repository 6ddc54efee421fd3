package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dupStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func RecordedLine(w io.Writer, method string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+method)
}

func DupLine(w io.Writer, method string) {
	fmt.Fprintln(w, dupStyle.Render("dup")+"  "+method)
}

func SkippedLine(w io.Writer, lineNumber int, reason string) {
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("skip line %d: %s", lineNumber, reason)))
}

func SummaryLine(w io.Writer, generated, skipped int) {
	fmt.Fprintf(w, "generated %d stubs, skipped %d lines\n", generated, skipped)
}

func ListRow(w io.Writer, id int64, keyword, method, pattern string, idWidth, keywordWidth, methodWidth int) {
	tag := fmt.Sprintf("#%d", id)
	fmt.Fprintf(w, "%-*s  %s  %-*s  %s\n",
		idWidth, tag,
		keywordStyle.Render(fmt.Sprintf("%-*s", keywordWidth, keyword)),
		methodWidth, method,
		pattern)
}
