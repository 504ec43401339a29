package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journal/internal/audit"
	"github.com/aidanlsb/journal/internal/check"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/ui"
)

var (
	validateStrict  bool
	validateFixCase bool
)

// issueJSON is the wire form of a check.Issue. Dates are YYYY-MM-DD and
// paths are relative to the journal root.
type issueJSON struct {
	Kind       string   `json:"kind"`
	Level      string   `json:"level"`
	Date       string   `json:"date,omitempty"`
	File       string   `json:"file,omitempty"`
	Line       int      `json:"line,omitempty"`
	Message    string   `json:"message"`
	Paths      []string `json:"paths,omitempty"`
	HeaderDate string   `json:"header_date,omitempty"`
	Weekday    string   `json:"weekday,omitempty"`
	Target     string   `json:"target,omitempty"`
}

type renameJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func toIssueJSON(issue check.Issue) issueJSON {
	out := issueJSON{
		Kind:    string(issue.Kind),
		Level:   "error",
		File:    relToRoot(issue.FilePath),
		Line:    issue.Line,
		Message: issue.Message,
		Weekday: issue.Weekday,
		Target:  issue.Target,
	}
	if issue.Level == check.LevelWarning {
		out.Level = "warning"
	}
	if !issue.Date.IsZero() {
		out.Date = issue.Date.String()
	}
	if !issue.HeaderDate.IsZero() {
		out.HeaderDate = issue.HeaderDate.String()
	}
	for _, p := range issue.Paths {
		out.Paths = append(out.Paths, relToRoot(p))
	}
	return out
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the journal's layout and entry headers",
}

var validateStructureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check that every expected day has exactly one correctly named file",
	Long: `Compares the day files on disk against the days that should exist up to today.

Reports missing days, days with more than one file, files whose name does not
encode a real date, and files named with the wrong weekday.

With --fix-case, files whose weekday differs only by letter case (for example
15_friday.md) are renamed to the canonical name.

Exits 1 when errors are found, or when warnings are found with --strict.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := getClass()
		issues, err := check.ValidateStructure(getRoot(), class, today, checkOptions(class))
		if err != nil {
			return handleScanError(err)
		}

		var renamed []check.Rename
		if validateFixCase && hasCaseOnlyMismatch(issues) {
			if shouldPromptForConfirm() && !promptForConfirm("Rename files with mis-cased weekdays?") {
				fmt.Println(ui.Hint("No files renamed."))
			} else {
				renamed, err = check.FixWeekdayCase(issues)
				for _, r := range renamed {
					recordWrite(audit.OpRename, r.To, dates.Date{}, map[string]interface{}{"from": relToRoot(r.From)})
				}
				if err != nil {
					return handleError(ErrFileWriteError, err, "")
				}
				issues, err = check.ValidateStructure(getRoot(), class, today, checkOptions(class))
				if err != nil {
					return handleScanError(err)
				}
			}
		}

		return reportIssues("structure", issues, renamed)
	},
}

var validateContentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Check that every entry's header matches its file",
	Long: `Parses the header of every non-blank entry.

Reports headers that cannot be parsed, headers whose date differs from the
date in the file name, weekday words that disagree with the date, and
relative links to files that do not exist.

Exits 1 when errors are found, or when warnings are found with --strict.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := getClass()
		issues, err := check.ValidateContents(getRoot(), class, checkOptions(class))
		if err != nil {
			return handleScanError(err)
		}
		return reportIssues("contents", issues, nil)
	},
}

// reportIssues prints issues and returns errIssuesFound when they should
// fail the command.
func reportIssues(kind string, issues []check.Issue, renamed []check.Rename) error {
	errorCount, warningCount := 0, 0
	for _, issue := range issues {
		if issue.Level == check.LevelWarning {
			warningCount++
		} else {
			errorCount++
		}
	}
	failed := errorCount > 0 || (validateStrict && warningCount > 0)

	if isJSONOutput() {
		items := make([]issueJSON, 0, len(issues))
		for _, issue := range issues {
			items = append(items, toIssueJSON(issue))
		}
		counts := make(map[string]int)
		for k, n := range check.CountByKind(issues) {
			counts[string(k)] = n
		}
		data := map[string]interface{}{
			"validation": kind,
			"valid":      !failed,
			"errors":     errorCount,
			"warnings":   warningCount,
			"by_kind":    counts,
			"issues":     items,
		}
		if renamed != nil {
			moves := make([]renameJSON, 0, len(renamed))
			for _, r := range renamed {
				moves = append(moves, renameJSON{From: relToRoot(r.From), To: relToRoot(r.To)})
			}
			data["renamed"] = moves
		}
		outputSuccess(data, todayMeta(len(issues)))
	} else {
		fmt.Printf("Validating %s: %s\n", kind, ui.FilePath(getRoot()))
		for _, r := range renamed {
			fmt.Println(ui.Successf("Renamed %s -> %s", relToRoot(r.From), relToRoot(r.To)))
		}
		if len(issues) > 0 {
			fmt.Println()
		}
		for _, issue := range issues {
			printIssue(issue)
		}

		fmt.Println()
		if len(issues) == 0 {
			fmt.Println(ui.Success("No issues found."))
		} else {
			fmt.Printf("Found %d error(s), %d warning(s).\n", errorCount, warningCount)
		}
	}

	if failed {
		return errIssuesFound
	}
	return nil
}

func printIssue(issue check.Issue) {
	prefix := ui.Error(issue.Level.String())
	if issue.Level == check.LevelWarning {
		prefix = ui.Warning(issue.Level.String())
	}

	location := issue.Date.String()
	if issue.FilePath != "" {
		location = formatLocation(issue.FilePath, issue.Line, ui.FilePath)
	} else if issue.Date.IsZero() {
		location = "-"
	}
	fmt.Printf("%s  %s - %s\n", prefix, location, issue.Message)
	for _, p := range issue.Paths {
		fmt.Printf("        %s\n", formatLocation(p, 0, ui.FilePath))
	}
}

func hasCaseOnlyMismatch(issues []check.Issue) bool {
	for _, issue := range issues {
		if check.IsCaseOnlyMismatch(issue) {
			return true
		}
	}
	return false
}

func init() {
	validateCmd.PersistentFlags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
	validateStructureCmd.Flags().BoolVar(&validateFixCase, "fix-case", false, "Rename files whose weekday differs only by letter case")
	validateCmd.AddCommand(validateStructureCmd)
	validateCmd.AddCommand(validateContentsCmd)
	rootCmd.AddCommand(validateCmd)
}
