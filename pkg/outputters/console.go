package outputters

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/finopsforge/azcm/pkg/types"
)

// Table renders the report as an aligned markdown table for the console
// preview. The preview is best-effort output; the CSV file is the artifact.
func Table(rows []types.ReportRow) string {
	cells := lo.Map(rows, func(row types.ReportRow, _ int) []string {
		return Record(row)
	})

	// Dynamically determine column width
	colWidths := make([]int, len(Headers))
	for i, header := range Headers {
		colWidths[i] = len(header)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var result strings.Builder
	result.WriteString("# Azure Cost Management Recommendations\n\n")

	headerRow := "|"
	dividerRow := "|"
	for i, header := range Headers {
		headerRow += fmt.Sprintf(" %-*s |", colWidths[i], header)
		dividerRow += fmt.Sprintf(" %s |", strings.Repeat("-", colWidths[i]))
	}
	result.WriteString(headerRow + "\n")
	result.WriteString(dividerRow + "\n")

	for _, row := range cells {
		rowText := "|"
		for i, cell := range row {
			rowText += fmt.Sprintf(" %-*s |", colWidths[i], cell)
		}
		result.WriteString(rowText + "\n")
	}

	return result.String()
}
