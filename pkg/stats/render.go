package stats

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as aligned plain text. Presentation belongs to
// the caller; this exists for the CLI and the file export.
func FormatReport(title string, r Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("=== %s ===\n", title))

	for _, year := range r {
		sb.WriteString(fmt.Sprintf("%s%s%s  (%d records)\n",
			year.Label, alignGap(year.Label, 28), year.Total.String(), year.Count))

		for _, quarter := range year.Quarters {
			label := "  " + quarter.Label
			sb.WriteString(fmt.Sprintf("%s%s%s  (%d records)\n",
				label, alignGap(label, 28), quarter.Total.String(), quarter.Count))

			for _, month := range quarter.Months {
				label := "    " + month.Label
				sb.WriteString(fmt.Sprintf("%s%s%s  (%d records)\n",
					label, alignGap(label, 28), month.Total.String(), month.Count))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func alignGap(label string, width int) string {
	n := width - len(label)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}
