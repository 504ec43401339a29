package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/journal"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/ui"
)

var addHeaderNoOpen bool

var addHeaderCmd = &cobra.Command{
	Use:   "add-header <text>",
	Short: "Append a '## ' sub-header to today's entry",
	Long: `Appends "## <text>" to today's entry and opens it in your editor.

A blank entry gets the standard header first.

Examples:
  jrn add-header "Gratitude"
  jrn add-header "Reading notes" --no-open`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return handleErrorMsg(ErrMissingArgument, "header text is required", "Usage: jrn add-header <text>")
		}

		class := getClass()
		path := paths.Resolve(getRoot(), today, class)

		header, err := renderHeader(commandContext(cmd), today, class)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Check header_template in "+config.JournalConfigFile)
		}
		if err := journal.AddCustomHeader(path, header, text); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		recordWrite(audit.OpAddHeader, path, today, map[string]interface{}{"header": text})

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":   relToRoot(path),
				"date":   today.String(),
				"header": text,
			}, todayMeta(0))
			return nil
		}

		fmt.Println(ui.Successf("Added '## %s' to %s", text, ui.FilePath(relToRoot(path))))
		if !addHeaderNoOpen {
			openFileInEditor(path, true)
		}
		return nil
	},
}

func init() {
	addHeaderCmd.Flags().BoolVar(&addHeaderNoOpen, "no-open", false, "Don't open the entry in an editor")
	rootCmd.AddCommand(addHeaderCmd)
}
