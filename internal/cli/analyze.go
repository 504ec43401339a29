package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/stats"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report on journal completion and entry length",
}

var analyzeCompletionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Show the share of days with a written entry, per year",
	Long: `For every year directory up to today, counts the days that should have an
entry and how many of them have content beyond the header and boilerplate.

The current year only counts days through today. A class with a schedule
only counts the days it meets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := getClass()
		report, err := stats.AnalyzeCompletion(getRoot(), class, today, statsOptions(class))
		if err != nil {
			return handleScanError(err)
		}

		var warnings []Warning
		unparsable := 0
		for _, y := range report.Years {
			unparsable += y.Unparsable
		}
		if unparsable > 0 {
			warnings = append(warnings, Warning{
				Code:    WarnUnparsableEntries,
				Message: fmt.Sprintf("%d entries have unparsable headers and were not counted; run 'jrn validate contents'", unparsable),
			})
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(report, warnings, todayMeta(len(report.Years)))
			return nil
		}

		fmt.Print(stats.RenderCompletion(report))
		return nil
	},
}

var analyzeLengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Show average words and lines per entry, per year",
	Long: `For every year directory, averages the words and lines written per entry.

Blank entries, entries holding only the header or boilerplate, and entries
whose header cannot be parsed are left out of the averages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := getClass()
		report, err := stats.AnalyzeLength(getRoot(), class, statsOptions(class))
		if err != nil {
			return handleScanError(err)
		}

		if isJSONOutput() {
			outputSuccess(report, todayMeta(len(report.Years)))
			return nil
		}

		fmt.Print(stats.RenderLength(report))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeCompletionCmd)
	analyzeCmd.AddCommand(analyzeLengthCmd)
	rootCmd.AddCommand(analyzeCmd)
}
