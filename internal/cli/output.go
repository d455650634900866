package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/unitconv/internal/config"
)

const tabPadding = 2

// OutputFormat selects how a command prints its result.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = config.FormatTable
	OutputJSON   OutputFormat = config.FormatJSON
	OutputNDJSON OutputFormat = config.FormatNDJSON
)

// ParseOutputFormat validates an --output flag value. An empty value falls
// back to the configured default.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		s = config.GetDefaultOutputFormat()
	}
	switch OutputFormat(strings.ToLower(s)) {
	case OutputTable:
		return OutputTable, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputNDJSON:
		return OutputNDJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// isWriterTerminal reports whether w is a terminal file.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// headerColor returns the Lip Gloss color used for table headers.
func headerColor() lipgloss.Color { return lipgloss.Color("39") }

// resultColor returns the Lip Gloss color used for conversion results.
func resultColor() lipgloss.Color { return lipgloss.Color("42") }

// mutedColor returns the Lip Gloss color used for secondary text.
func mutedColor() lipgloss.Color { return lipgloss.Color("240") }

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeNDJSON writes each item on its own line.
func writeNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// renderStyledRows renders a header and rows as an aligned, styled table.
func renderStyledRows(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(headerColor())
	cellStyle := lipgloss.NewStyle()

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i] + tabPadding).Render(cell)
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}

	var b strings.Builder
	b.WriteString(line(header, headerStyle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(line(row, cellStyle))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
