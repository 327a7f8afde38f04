package repl

import (
	"fmt"
	"strings"

	"LFront/internal/lexer"
	"LFront/internal/symbols"
)

// Helper functions for table formatting
func calculateColumnWidths(headers []string, rows [][]string) []int {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
		for _, row := range rows {
			if i < len(row) && len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}
	return colWidths
}

func writeTableRule(sb *strings.Builder, colWidths []int) {
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")
	for i, val := range row {
		if i < len(colWidths) {
			fmt.Fprintf(sb, " %-*s |", colWidths[i], val)
		}
	}
	sb.WriteString("\n")
}

func formatTable(headers []string, rows [][]string, noun string) string {
	if len(rows) == 0 {
		return "Empty set\n"
	}

	var sb strings.Builder
	colWidths := calculateColumnWidths(headers, rows)

	writeTableRule(&sb, colWidths)
	writeRow(&sb, headers, colWidths)
	writeTableRule(&sb, colWidths)
	for _, row := range rows {
		writeRow(&sb, row, colWidths)
	}
	writeTableRule(&sb, colWidths)
	fmt.Fprintf(&sb, "%d %s(s)\n", len(rows), noun)

	return sb.String()
}

// FormatTokens renders tokens as a Line/Kind/Text table.
func FormatTokens(tokens []lexer.Token, table *symbols.Table) string {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		text := tok.Source(table)
		if tok.Kind == lexer.KindEndOfInput {
			text = ""
		}
		rows = append(rows, []string{fmt.Sprint(tok.Line), tok.Kind.String(), text})
	}
	return formatTable([]string{"Line", "Kind", "Text"}, rows, "token")
}

// FormatSymbols renders the interned names with their handles.
func FormatSymbols(table *symbols.Table) string {
	names := table.Names()
	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{fmt.Sprint(i), name})
	}
	return formatTable([]string{"Handle", "Name"}, rows, "symbol")
}
