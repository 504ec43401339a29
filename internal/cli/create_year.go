package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/journal"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/schedule"
	"github.com/aidanlsb/journal/internal/ui"
)

var createYearSchedule string

var createYearCmd = &cobra.Command{
	Use:   "create-year <year> [class]",
	Short: "Scaffold a year of empty entries",
	Long: `Creates the year directory for a class with its journey note, a folder per
month with happenings and goals notes, and one empty entry per day.

A class with a schedule (from --schedule or the schedules list in jrn.yaml)
only gets entries for the days it meets. Existing files are never touched,
so re-running is safe.

Examples:
  jrn create-year 2025
  jrn create-year 2025 cs101
  jrn create-year 2025 --schedule schedules/cs101.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYearArg(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "Years must be between 2000 and 2099")
		}

		class := getClass()
		var filter schedule.Filter
		if strings.TrimSpace(createYearSchedule) != "" {
			s, err := schedule.Load(createYearSchedule)
			if err != nil {
				return handleError(ErrConfigInvalid, err, "")
			}
			if s.Class != "" {
				class = s.Class
			}
			filter = s
		}
		if len(args) == 2 {
			class = args[1]
		}
		if filter == nil {
			filter = scheduleFilter(class)
		}

		var warnings []Warning
		if filter == nil && paths.ClassDir(class) != paths.DefaultClass {
			warnings = append(warnings, Warning{
				Code:    WarnNoSchedule,
				Message: fmt.Sprintf("no schedule for class %q; creating an entry for every day", class),
			})
		}

		result, err := journal.CreateYear(getRoot(), class, year, filter)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if len(result.Created) > 0 {
			recordWrite(audit.OpCreateYear, result.Dir, dates.Date{}, map[string]interface{}{
				"year":    year,
				"created": len(result.Created),
			})
		}

		if isJSONOutput() {
			result.Dir = relToRoot(result.Dir)
			outputSuccessWithWarnings(result, warnings, todayMeta(len(result.Created)))
			return nil
		}

		for _, w := range warnings {
			fmt.Println(ui.Warning(w.Message))
		}
		fmt.Println(ui.Successf("Created %s for %s %s",
			relToRoot(result.Dir), paths.ClassDir(class),
			ui.Hint(ui.Count(len(result.Created), "new file", "new files"))))
		fmt.Printf("  %d day entries, %d files already existed\n", result.Days, result.Skipped)
		return nil
	},
}

func init() {
	createYearCmd.Flags().StringVar(&createYearSchedule, "schedule", "", "Schedule file (YAML or JSON) limiting entries to class days")
	rootCmd.AddCommand(createYearCmd)
}
