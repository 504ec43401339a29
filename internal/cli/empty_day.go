package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/journal"
	"github.com/aidanlsb/journal/internal/ui"
)

var emptyDayNoOpen bool

// newRand seeds the day picker. Tests replace it for a stable choice.
var newRand = func() *rand.Rand {
	return rand.New(rand.NewSource(now().UnixNano()))
}

var emptyDayCmd = &cobra.Command{
	Use:   "empty-day [year]",
	Short: "Pick a random blank day to transcribe",
	Long: `Picks a random day whose entry file is still blank, writes its heading and a
"Transcribed on" note, and opens it in your editor.

Only days up to today are considered. Pass a year (2000-2099) to limit the
search to that year.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := 0
		if len(args) == 1 {
			var err error
			year, err = parseYearArg(args[0])
			if err != nil {
				return handleError(ErrInvalidInput, err, "Years must be between 2000 and 2099")
			}
		}

		day, err := journal.FindEmptyDay(getRoot(), getClass(), year, today, newRand(), scanOptions())
		if err != nil {
			return handleScanError(err)
		}
		recordWrite(audit.OpTranscribe, day.Path, day.Date, nil)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":       relToRoot(day.Path),
				"date":       day.Date.String(),
				"candidates": day.Candidates,
			}, todayMeta(day.Candidates))
			return nil
		}

		fmt.Println(ui.Successf("Transcribing %s %s", day.Date.Friendly(), ui.Hint(ui.Count(day.Candidates, "blank day", "blank days"))))
		fmt.Println(ui.FilePath(relToRoot(day.Path)))
		if !emptyDayNoOpen {
			openFileInEditor(day.Path, true)
		}
		return nil
	},
}

func init() {
	emptyDayCmd.Flags().BoolVar(&emptyDayNoOpen, "no-open", false, "Don't open the entry in an editor")
	rootCmd.AddCommand(emptyDayCmd)
}
