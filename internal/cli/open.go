package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/editor"
	"github.com/aidanlsb/journal/internal/journal"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/ui"
)

// launchEditor opens a file for the user. Tests replace it.
var launchEditor = editor.OpenInEditor

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start today's entry",
	Long: `Writes the header into today's entry and opens it in your editor.

The header comes from header_template in jrn.yaml (or the default table of
device, location and weather). An entry that already has content is opened
as-is and never rewritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := getClass()
		path := paths.Resolve(getRoot(), today, class)

		header, err := renderHeader(commandContext(cmd), today, class)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Check header_template in "+config.JournalConfigFile)
		}

		started, err := journal.StartEntry(path, header)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if started {
			recordWrite(audit.OpStart, path, today, nil)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":    relToRoot(path),
				"date":    today.String(),
				"class":   paths.ClassDir(class),
				"started": started,
			}, todayMeta(0))
			return nil
		}

		if started {
			fmt.Println(ui.Successf("Started %s", ui.FilePath(relToRoot(path))))
		} else {
			fmt.Println(ui.Info("Entry already has content: " + relToRoot(path)))
		}
		openFileInEditor(path, true)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open today's entry",
	Long:  `Opens today's entry in your editor. The entry must already exist; use 'jrn start' to create it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return openDay(today)
	},
}

var openDayCmd = &cobra.Command{
	Use:   "open-day <date>",
	Short: "Open the entry for a date",
	Long: `Opens the entry for a date in your editor.

The date is YYYY-MM-DD or one of today, yesterday, tomorrow.

Examples:
  jrn open-day 2024-03-15
  jrn open-day yesterday --class cs101`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dates.ParseDateArg(args[0], today)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		return openDay(d)
	},
}

func openDay(d dates.Date) error {
	path := paths.Resolve(getRoot(), d, getClass())
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return handleErrorWithDetails(ErrFileNotFound,
				fmt.Sprintf("journal file not found: %s", relToRoot(path)),
				fmt.Sprintf("Run 'jrn start' for today, or 'jrn create-year %d' to scaffold the year", d.Year),
				map[string]interface{}{"date": d.String(), "file": relToRoot(path)})
		}
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"file": relToRoot(path),
			"date": d.String(),
		}, todayMeta(0))
		return nil
	}

	openFileInEditor(path, false)
	return nil
}

// openFileInEditor opens a file in the configured editor and prints appropriate output.
// If skipOpenMessage is true, it won't print "Opening..." (useful when a "Created" message was already shown).
func openFileInEditor(filePath string, skipOpenMessage bool) {
	relPath := relToRoot(filePath)
	name, err := launchEditor(getConfig(), filePath)
	if err == nil {
		logger.Debug().Str("editor", name).Str("path", filePath).Msg("opened entry")
		if !skipOpenMessage {
			fmt.Printf("Opening %s\n", relPath)
		}
		return
	}
	logger.Debug().Err(err).Str("path", filePath).Msg("editor not launched")
	fmt.Printf("File: %s\n", relPath)
	fmt.Println(ui.Hint("(Set 'editor' in ~/.config/jrn/config.toml or $EDITOR to open automatically)"))
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(openDayCmd)
}
