package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/journal/internal/paths"
)

// Rename records a file moved by FixWeekdayCase.
type Rename struct {
	From string
	To   string
}

// FixWeekdayCase renames day files whose weekday differs from the correct
// one only by letter case ("15_friday.md" -> "15_Friday.md"). It acts only
// on KindWeekdayMismatch issues that name a file, and never replaces an
// existing file.
func FixWeekdayCase(issues []Issue) ([]Rename, error) {
	var renamed []Rename
	for _, issue := range issues {
		if !IsCaseOnlyMismatch(issue) {
			continue
		}

		to := filepath.Join(filepath.Dir(issue.FilePath), paths.DayFileName(issue.Date))
		if err := renameCaseOnly(issue.FilePath, to); err != nil {
			return renamed, err
		}
		renamed = append(renamed, Rename{From: issue.FilePath, To: to})
	}
	return renamed, nil
}

// IsCaseOnlyMismatch reports whether issue is a weekday mismatch that
// FixWeekdayCase can repair: the file's weekday is right apart from case.
func IsCaseOnlyMismatch(issue Issue) bool {
	if issue.Kind != KindWeekdayMismatch || issue.FilePath == "" || issue.Date.IsZero() {
		return false
	}
	got := paths.WeekdayFromFileName(filepath.Base(issue.FilePath))
	want := issue.Date.Weekday().String()
	return got != want && strings.EqualFold(got, want)
}

// renameCaseOnly renames from to to. On case-insensitive filesystems both
// names refer to the same file, so the rename goes through a temporary name.
func renameCaseOnly(from, to string) error {
	fromInfo, err := os.Stat(from)
	if err != nil {
		return fmt.Errorf("rename %s: %w", from, err)
	}
	if toInfo, err := os.Stat(to); err == nil {
		if !os.SameFile(fromInfo, toInfo) {
			return fmt.Errorf("rename %s: %s already exists", from, to)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("rename %s: %w", from, err)
	}

	tmp := from + ".rename"
	if err := os.Rename(from, tmp); err != nil {
		return fmt.Errorf("rename %s: %w", from, err)
	}
	if err := os.Rename(tmp, to); err != nil {
		_ = os.Rename(tmp, from)
		return fmt.Errorf("rename %s: %w", from, err)
	}
	return nil
}
