package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/scan"
	"github.com/aidanlsb/journal/internal/schedule"
)

// ValidateStructure compares the day files present for class against the
// dates that should have one.
//
// For every year directory present the expected dates run from January 1
// through December 31, stopping at today for the current year. Years after
// today expect nothing. A date is missing when neither its canonical path
// nor any other file encoding it exists, so a date is never both missing and
// duplicated. Files present are grouped by the date their name encodes and
// groups of more than one are duplicates.
//
// ValidateStructure never modifies the tree. An error is returned only when
// the class directory cannot be listed.
func ValidateStructure(root, class string, today dates.Date, opts *Options) ([]Issue, error) {
	log := opts.logger()

	years, err := scan.Years(root, class)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	byDate := make(map[dates.Date][]string)

	err = scan.Walk(root, class, opts.scanOptions(true), func(r scan.Result) error {
		switch {
		case r.NameErr != nil:
			issues = append(issues, Issue{
				Kind:     KindMisnamedEntry,
				Level:    LevelError,
				FilePath: r.Path,
				Message:  fmt.Sprintf("file name does not encode a valid date: %v", nameReason(r.NameErr)),
			})
		case !r.HasDate():
			issues = append(issues, unreadableIssue(r))
		default:
			byDate[r.Date] = append(byDate[r.Date], r.Path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	filter := opts.schedule()
	for _, year := range years {
		expected := schedule.Expected(year, today, filter)
		missing := 0
		for _, d := range expected {
			want := paths.Resolve(root, d, class)
			_, err := os.Stat(want)
			if err == nil {
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warn().Str("path", want).Err(err).Msg("cannot stat expected entry")
			}
			if len(byDate[d]) > 0 {
				continue
			}
			missing++
			issues = append(issues, Issue{
				Kind:     KindMissingFile,
				Level:    LevelError,
				Date:     d,
				FilePath: want,
				Message:  fmt.Sprintf("no entry for %s", d.Friendly()),
			})
		}
		log.Debug().Int("year", year).Int("expected", len(expected)).Int("missing", missing).Msg("checked year")
	}

	classRoot := paths.ClassRoot(root, class)
	for d, files := range byDate {
		if len(files) > 1 {
			sorted := append([]string(nil), files...)
			sort.Strings(sorted)
			issues = append(issues, Issue{
				Kind:     KindDuplicateDate,
				Level:    LevelError,
				Date:     d,
				FilePath: sorted[0],
				Paths:    sorted,
				Message:  fmt.Sprintf("%d files for %s", len(sorted), d),
			})
			continue
		}
		if issue, ok := namingIssue(classRoot, d, files[0]); ok {
			issues = append(issues, issue)
		}
	}

	sortIssues(issues)
	return issues, nil
}

// namingIssue checks that a file holding a valid date sits at the date's
// canonical location.
func namingIssue(classRoot string, d dates.Date, path string) (Issue, bool) {
	want := d.Weekday().String()
	if got := paths.WeekdayFromFileName(filepath.Base(path)); got != want {
		return Issue{
			Kind:     KindWeekdayMismatch,
			Level:    LevelWarning,
			Date:     d,
			FilePath: path,
			Weekday:  want,
			Message:  fmt.Sprintf("file name says %q but %s is a %s", got, d, want),
		}, true
	}

	canonical := filepath.Join(classRoot, paths.Rel(d))
	if path != canonical {
		rel, _ := filepath.Rel(classRoot, canonical)
		return Issue{
			Kind:     KindMisnamedEntry,
			Level:    LevelWarning,
			Date:     d,
			FilePath: path,
			Message:  fmt.Sprintf("expected at %s", filepath.ToSlash(rel)),
		}, true
	}
	return Issue{}, false
}

func unreadableIssue(r scan.Result) Issue {
	return Issue{
		Kind:     KindUnreadableFile,
		Level:    LevelError,
		Date:     r.Date,
		FilePath: r.Path,
		Message:  fmt.Sprintf("cannot read file: %v", r.Error),
	}
}

func nameReason(err error) string {
	var nameErr *paths.NameError
	if errors.As(err, &nameErr) {
		return nameErr.Component + ": " + nameErr.Reason
	}
	return err.Error()
}
