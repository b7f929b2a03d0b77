package utils

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// RenderTable prints rows as an ASCII table on stdout.
func RenderTable(headers []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headers)
	table.Bulk(data)
	table.Render()
}

// RenderBox draws a titled box around lines. Widths are terminal cell widths,
// so wide runes in conversation content keep the borders aligned.
func RenderBox(title string, lines []string) string {
	maxWidth := runewidth.StringWidth(title) + 4
	for _, line := range lines {
		if w := runewidth.StringWidth(line) + 2; w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder

	b.WriteString("┌─ " + title + " " + strings.Repeat("─", maxWidth-runewidth.StringWidth(title)-3) + "┐\n")
	for _, line := range lines {
		padding := maxWidth - runewidth.StringWidth(line) - 2
		b.WriteString("│ " + line + strings.Repeat(" ", padding) + " │\n")
	}
	b.WriteString("└" + strings.Repeat("─", maxWidth) + "┘\n")

	return b.String()
}
