package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/ui"
)

var (
	historySince string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the files jrn has written",
	Long: `Lists entries jrn started, headers it added, days it picked for
transcription, years it scaffolded and files it renamed, newest last.

Recording is off until 'history: true' is set in jrn.yaml.

Examples:
  jrn history
  jrn history --since 2024-03-01 --limit 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := historyLog()

		var since time.Time
		if strings.TrimSpace(historySince) != "" {
			d, err := dates.ParseDateArg(historySince, today)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			since = time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
		}
		entries, err := log.ReadSince(since)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		if isJSONOutput() {
			if entries == nil {
				entries = []audit.Entry{}
			}
			outputSuccess(map[string]interface{}{
				"enabled": log.Enabled(),
				"entries": entries,
			}, todayMeta(len(entries)))
			return nil
		}

		if !log.Enabled() {
			fmt.Println(ui.Hint("History is off. Set 'history: true' in " + config.JournalConfigFile + " to record writes."))
		}
		if len(entries) == 0 {
			fmt.Println(ui.Hint("No history yet."))
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-11s %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Operation, ui.FilePath(e.File))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only show writes on or after this date")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most this many recent writes")
	rootCmd.AddCommand(historyCmd)
}
