package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/ui"
)

var showRawFlag bool

// showResult is the JSON form of a shown entry. Header fields are omitted
// when the header cannot be parsed.
type showResult struct {
	File          string   `json:"file"`
	Date          string   `json:"date"`
	Content       string   `json:"content"`
	Blank         bool     `json:"blank"`
	Device        string   `json:"device,omitempty"`
	Location      string   `json:"location,omitempty"`
	Weather       string   `json:"weather,omitempty"`
	TranscribedOn string   `json:"transcribed_on,omitempty"`
	CustomHeaders []string `json:"custom_headers,omitempty"`
	Words         int      `json:"words"`
	Lines         int      `json:"lines"`
	ParseError    string   `json:"parse_error,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Render an entry in the terminal",
	Long: `Renders the entry for a date (default today) as formatted markdown.

The date is YYYY-MM-DD or one of today, yesterday, tomorrow.
Use --raw to print the file unchanged.

Examples:
  jrn show
  jrn show 2024-03-15
  jrn show yesterday --raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		d, err := dates.ParseDateArg(arg, today)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		path := paths.Resolve(getRoot(), d, getClass())
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return handleErrorMsg(ErrFileNotFound,
					fmt.Sprintf("journal file not found: %s", relToRoot(path)),
					"Run 'jrn start' to begin today's entry")
			}
			return handleError(ErrFileReadError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(buildShowResult(path, d, string(content)), todayMeta(0))
			return nil
		}

		if showRawFlag {
			fmt.Print(string(content))
			return nil
		}
		if entry.IsBlank(string(content)) {
			fmt.Println(ui.Hint(fmt.Sprintf("%s is blank.", relToRoot(path))))
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err != nil {
			// Fall back to the raw text rather than failing the read.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func buildShowResult(path string, d dates.Date, content string) showResult {
	res := showResult{
		File:    relToRoot(path),
		Date:    d.String(),
		Content: content,
		Blank:   entry.IsBlank(content),
	}
	if res.Blank {
		return res
	}

	h, err := entry.Parse(content, getJournalConfig().ParseOptions())
	if err != nil {
		res.ParseError = err.Error()
		return res
	}
	res.Device = h.Device
	res.Location = h.Location
	res.Weather = h.Weather
	if !h.TranscribedOn.IsZero() {
		res.TranscribedOn = h.TranscribedOn.String()
	}
	res.CustomHeaders = h.CustomHeaders
	res.Words = h.Words
	res.Lines = h.Lines
	return res
}

func init() {
	showCmd.Flags().BoolVar(&showRawFlag, "raw", false, "Print the file without rendering")
	rootCmd.AddCommand(showCmd)
}
