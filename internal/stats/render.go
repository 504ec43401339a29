package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidanlsb/journal/internal/ui"
)

// BarWidth is the number of cells in a completion bar; one cell per 5%.
const BarWidth = 20

// RenderCompletion formats a completion report for the terminal, one line
// per year:
//
//	2023 | 365/365 |  100.0% ████████████████████ ✓
//	2024 |  70/75  |   93.3% ███████████████████░ 291 days remain
func RenderCompletion(r *CompletionReport) string {
	var sb strings.Builder
	sb.WriteString(ui.Header("Journal Completion"))
	sb.WriteString("\n\n")

	if len(r.Years) == 0 {
		sb.WriteString(ui.Hint("No years to report."))
		sb.WriteString("\n")
		return sb.String()
	}

	doneWidth, expectedWidth := 1, 1
	for _, y := range r.Years {
		doneWidth = max(doneWidth, len(strconv.Itoa(y.Completed)))
		expectedWidth = max(expectedWidth, len(strconv.Itoa(y.Expected)))
	}

	for _, y := range r.Years {
		counts := fmt.Sprintf("%*d/%-*d", doneWidth, y.Completed, expectedWidth, y.Expected)
		rate := fmt.Sprintf("%6.1f%%", y.Ratio*100)
		fmt.Fprintf(&sb, "%s | %s | %s %s", ui.Bold.Render(strconv.Itoa(y.Year)), counts, rate, ui.StyledBar(y.Ratio, BarWidth))

		var notes []string
		switch {
		case y.Current:
			notes = append(notes, fmt.Sprintf("%d days remain", y.Remaining))
			if y.Tier != TierComplete {
				notes = append(notes, y.Tier.Label())
			}
		case y.Tier == TierComplete:
			sb.WriteString(" " + ui.SymbolSuccess)
		case y.Tier != TierNone:
			notes = append(notes, y.Tier.Label())
		}
		if y.Unparsable > 0 {
			notes = append(notes, fmt.Sprintf("%d unparsable", y.Unparsable))
		}
		if len(notes) > 0 {
			sb.WriteString(" " + ui.Hint(strings.Join(notes, " · ")))
		}
		sb.WriteString("\n")
	}

	if len(r.Years) > 1 {
		fmt.Fprintf(&sb, "\n%s %d/%d days (%.1f%%)\n", ui.Bold.Render("Overall:"), r.Completed, r.Expected, r.Ratio*100)
	}
	return sb.String()
}

// RenderLength formats a length report as a table of per-year figures
// followed by charts of average words and lines per entry.
func RenderLength(r *LengthReport) string {
	var sb strings.Builder
	sb.WriteString(ui.Header("Journal Length"))
	sb.WriteString("\n\n")

	tbl := ui.NewReportTable("Year", "Entries", "Avg words", "Avg lines", "Total words", "Total lines")
	for col := 1; col <= 5; col++ {
		tbl.Align(col, ui.AlignRight)
	}

	var words, lines []ui.ChartPoint
	for _, y := range r.Years {
		year := strconv.Itoa(y.Year)
		if !y.HasData {
			tbl.AddRow(year, ui.Hint("no data"))
			continue
		}
		tbl.AddRow(year,
			strconv.Itoa(y.Entries),
			fmt.Sprintf("%.1f", y.AvgWords),
			fmt.Sprintf("%.1f", y.AvgLines),
			strconv.Itoa(y.Words),
			strconv.Itoa(y.Lines),
		)
		words = append(words, ui.ChartPoint{Label: year, Value: y.AvgWords})
		lines = append(lines, ui.ChartPoint{Label: year, Value: y.AvgLines})
	}

	if len(r.Years) == 0 {
		sb.WriteString(ui.Hint("No years to report."))
		sb.WriteString("\n")
		return sb.String()
	}

	if r.Totals.HasData && len(r.Years) > 1 {
		tbl.AddRow(ui.Bold.Render("All"),
			strconv.Itoa(r.Totals.Entries),
			fmt.Sprintf("%.1f", r.Totals.AvgWords),
			fmt.Sprintf("%.1f", r.Totals.AvgLines),
			strconv.Itoa(r.Totals.Words),
			strconv.Itoa(r.Totals.Lines),
		)
	}
	sb.WriteString(tbl.Render())
	sb.WriteString("\n")

	if len(words) == 0 {
		sb.WriteString("\n")
		sb.WriteString(ui.Hint("No entries with content yet."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(ui.Header("Average Words Per Entry"))
	sb.WriteString("\n")
	sb.WriteString(ui.VerticalBarChart(words, 100))

	sb.WriteString("\n")
	sb.WriteString(ui.Header("Average Lines Per Entry"))
	sb.WriteString("\n")
	sb.WriteString(ui.VerticalBarChart(lines, 10))

	return sb.String()
}
