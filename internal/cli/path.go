package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
)

var pathCmd = &cobra.Command{
	Use:   "path [date]",
	Short: "Print the journal root, or the entry path for a date",
	Long: `Without arguments, prints the resolved journal root.

With a date (YYYY-MM-DD, today, yesterday or tomorrow), prints where that
day's entry lives, whether or not it exists yet.

Useful for shell integration:
  cd $(jrn path)
  $EDITOR $(jrn path yesterday)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"root": getRoot()}, nil)
				return nil
			}
			fmt.Println(getRoot())
			return nil
		}

		d, err := dates.ParseDateArg(args[0], today)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		path := paths.Resolve(getRoot(), d, getClass())
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"root": getRoot(),
				"date": d.String(),
				"file": relToRoot(path),
				"path": path,
			}, todayMeta(0))
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
