// Package check validates a journal's file layout and entry headers.
package check

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
	"github.com/aidanlsb/journal/internal/schedule"
)

// IssueKind identifies what a validation issue is about.
type IssueKind string

const (
	KindMissingFile        IssueKind = "missing_file"
	KindDuplicateDate      IssueKind = "duplicate_date"
	KindHeaderDateMismatch IssueKind = "header_date_mismatch"
	KindUnparsableHeader   IssueKind = "unparsable_header"
	KindMisnamedEntry      IssueKind = "misnamed_entry"
	KindWeekdayMismatch    IssueKind = "weekday_mismatch"
	KindUnreadableFile     IssueKind = "unreadable_file"
	KindBrokenLink         IssueKind = "broken_link"
)

// IssueLevel indicates the severity of an issue.
type IssueLevel int

const (
	LevelError IssueLevel = iota
	LevelWarning
)

func (l IssueLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a validation issue. Every issue carries a date, a file
// path or both.
type Issue struct {
	Kind     IssueKind
	Level    IssueLevel
	Date     dates.Date // date the issue concerns; zero for misnamed files
	FilePath string     // offending file, or the expected path for missing_file
	Line     int
	Message  string

	Paths      []string   // duplicate_date: every file encoding Date, sorted
	HeaderDate dates.Date // header_date_mismatch: date written in the heading
	Weekday    string     // weekday_mismatch: weekday Date falls on
	Target     string     // broken_link: link destination
}

// Options tunes validation.
type Options struct {
	// Logger receives per-file diagnostics. Nil discards them.
	Logger *zerolog.Logger
	// Schedule narrows the expected date set, e.g. to the days a class meets.
	Schedule schedule.Filter
	// ParseOptions are passed to the header parser.
	ParseOptions *entry.ParseOptions
}

func (o *Options) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

func (o *Options) schedule() schedule.Filter {
	if o == nil {
		return nil
	}
	return o.Schedule
}

func (o *Options) parseOptions() *entry.ParseOptions {
	if o == nil {
		return nil
	}
	return o.ParseOptions
}

func (o *Options) scanOptions(skipContent bool) *scan.Options {
	var logger *zerolog.Logger
	if o != nil {
		logger = o.Logger
	}
	return &scan.Options{Logger: logger, SkipContent: skipContent}
}

// HasErrors reports whether any issue is at error level.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Level == LevelError {
			return true
		}
	}
	return false
}

// CountByKind tallies issues per kind.
func CountByKind(issues []Issue) map[IssueKind]int {
	counts := make(map[IssueKind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}

// sortIssues orders issues by date, then path, then kind.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Kind < b.Kind
	})
}
