package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/scan"
)

// ValidateContents parses every day file of class whose name encodes a valid
// date and compares the heading's date with it. Blank files are scaffolds
// that were never written and are skipped. Relative links to files that do
// not exist are reported as warnings.
//
// ValidateContents never modifies the tree. An error is returned only when
// the class directory cannot be listed.
func ValidateContents(root, class string, opts *Options) ([]Issue, error) {
	log := opts.logger()
	parseOpts := opts.parseOptions()

	var issues []Issue
	checked := 0

	err := scan.Walk(root, class, opts.scanOptions(false), func(r scan.Result) error {
		if !r.HasDate() {
			if r.NameErr == nil && r.Error != nil {
				issues = append(issues, unreadableIssue(r))
			}
			return nil
		}
		if r.Error != nil {
			issues = append(issues, unreadableIssue(r))
			return nil
		}
		if entry.IsBlank(r.Content) {
			return nil
		}
		checked++

		h, err := entry.Parse(r.Content, parseOpts)
		switch {
		case err != nil:
			issue := Issue{
				Kind:     KindUnparsableHeader,
				Level:    LevelError,
				Date:     r.Date,
				FilePath: r.Path,
				Message:  err.Error(),
			}
			var ue *entry.UnparsableError
			if errors.As(err, &ue) {
				issue.Line = ue.Line
			}
			issues = append(issues, issue)
		case h.Date != r.Date:
			issues = append(issues, Issue{
				Kind:       KindHeaderDateMismatch,
				Level:      LevelError,
				Date:       r.Date,
				FilePath:   r.Path,
				Line:       h.HeadingLine,
				HeaderDate: h.Date,
				Message:    fmt.Sprintf("heading says %s but the file is for %s", h.Date, r.Date),
			})
		case !h.WeekdayMatches():
			issues = append(issues, Issue{
				Kind:     KindWeekdayMismatch,
				Level:    LevelWarning,
				Date:     r.Date,
				FilePath: r.Path,
				Line:     h.HeadingLine,
				Weekday:  r.Date.Weekday().String(),
				Message:  fmt.Sprintf("heading says %q but %s is a %s", h.Weekday, r.Date, r.Date.Weekday()),
			})
		}

		issues = append(issues, brokenLinks(r)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Int("checked", checked).Int("issues", len(issues)).Msg("validated contents")
	sortIssues(issues)
	return issues, nil
}

func brokenLinks(r scan.Result) []Issue {
	var issues []Issue
	dir := filepath.Dir(r.Path)
	for _, link := range entry.ExtractLinks(r.Content) {
		if !link.IsLocal() {
			continue
		}
		target := link.Target()
		if target == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		issues = append(issues, Issue{
			Kind:     KindBrokenLink,
			Level:    LevelWarning,
			Date:     r.Date,
			FilePath: r.Path,
			Line:     link.Line,
			Target:   link.Destination,
			Message:  fmt.Sprintf("link target %q does not exist", link.Destination),
		})
	}
	return issues
}
