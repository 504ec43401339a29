// Package paths maps journal dates to entry files and back.
//
// The layout is the on-disk contract shared by every command:
//
//	<root>/<class>/<YYYY>/<MM>-<mon>/<DD>_<Weekday>.md
//
// e.g. journal/2024/03-mar/15_Friday.md. Historical files are never rewritten,
// so these names must stay byte-compatible.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	goslug "github.com/gosimple/slug"

	"github.com/aidanlsb/journal/internal/dates"
)

// DefaultClass is the class directory used when none is given.
const DefaultClass = "journal"

// EntryExt is the file extension of every journal file.
const EntryExt = ".md"

// ErrPathOutsideRoot is returned when a path escapes the journal root.
var ErrPathOutsideRoot = errors.New("path is outside the journal root")

// NameError describes why a file or directory name does not encode a date.
type NameError struct {
	Path      string
	Component string // "year", "month" or "day"
	Reason    string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s: bad %s component: %s", e.Path, e.Component, e.Reason)
}

// ClassDir returns the directory name for a class. Class names are slugified
// so "CS 101" and "cs-101" land in the same place.
func ClassDir(class string) string {
	class = strings.TrimSpace(class)
	if class == "" {
		return DefaultClass
	}
	slugged := goslug.Make(class)
	if slugged == "" {
		return DefaultClass
	}
	return slugged
}

// YearDir returns the year directory name, e.g. "2024".
func YearDir(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthAbbrev returns the lowercase three-letter month name, e.g. "mar".
func MonthAbbrev(m time.Month) string {
	return strings.ToLower(m.String()[:3])
}

// MonthFolder returns the month directory name, e.g. "03-mar".
func MonthFolder(m time.Month) string {
	return fmt.Sprintf("%02d-%s", int(m), MonthAbbrev(m))
}

// DayFileName returns the entry filename for d, e.g. "15_Friday.md".
func DayFileName(d dates.Date) string {
	return fmt.Sprintf("%02d_%s%s", d.Day, d.Weekday(), EntryExt)
}

// ClassRoot returns <root>/<class>.
func ClassRoot(root, class string) string {
	return filepath.Join(root, ClassDir(class))
}

// Rel returns the class-relative path of the entry for d, e.g. "2024/03-mar/15_Friday.md".
func Rel(d dates.Date) string {
	return filepath.Join(YearDir(d.Year), MonthFolder(d.Month), DayFileName(d))
}

// Resolve returns the canonical path of the entry for d in class under root.
func Resolve(root string, d dates.Date, class string) string {
	return filepath.Join(ClassRoot(root, class), Rel(d))
}

// IsYearDirName reports whether name looks like a year directory ("2024").
func IsYearDirName(name string) bool {
	if len(name) != 4 {
		return false
	}
	_, err := strconv.Atoi(name)
	return err == nil && allDigits(name)
}

// IsMonthFolderName reports whether name starts with a two-digit month
// prefix followed by '-' ("03-mar", "03-march").
func IsMonthFolderName(name string) bool {
	return len(name) >= 3 && allDigits(name[:2]) && name[2] == '-'
}

// IsDayFileName reports whether name has the shape of a day entry
// ("DD_<something>.md"). It does not check the date is real.
func IsDayFileName(name string) bool {
	return len(name) > 3+len(EntryExt) &&
		allDigits(name[:2]) &&
		name[2] == '_' &&
		strings.HasSuffix(name, EntryExt)
}

// WeekdayFromFileName returns the weekday text in a day filename
// ("15_Friday.md" -> "Friday").
func WeekdayFromFileName(name string) string {
	if !IsDayFileName(name) {
		return ""
	}
	return strings.TrimSuffix(name[3:], EntryExt)
}

// ParseEntryPath recovers the date a class-relative entry path encodes. It is
// the inverse of Rel: year from the year directory, month from the month
// folder's numeric prefix and day from the filename prefix. The weekday text
// and month name are not consulted; callers that care compare them against
// the returned date.
func ParseEntryPath(rel string) (dates.Date, error) {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(rel)), "/")
	if len(parts) != 3 {
		return dates.Date{}, &NameError{Path: rel, Component: "day", Reason: "expected YYYY/MM-mon/DD_Weekday.md"}
	}
	yearName, monthName, fileName := parts[0], parts[1], parts[2]

	if !IsYearDirName(yearName) {
		return dates.Date{}, &NameError{Path: rel, Component: "year", Reason: fmt.Sprintf("%q is not a four-digit year", yearName)}
	}
	year, _ := strconv.Atoi(yearName)

	if !IsMonthFolderName(monthName) {
		return dates.Date{}, &NameError{Path: rel, Component: "month", Reason: fmt.Sprintf("%q does not start with MM-", monthName)}
	}
	month, _ := strconv.Atoi(monthName[:2])
	if month < 1 || month > 12 {
		return dates.Date{}, &NameError{Path: rel, Component: "month", Reason: fmt.Sprintf("month %02d out of range", month)}
	}

	if !IsDayFileName(fileName) {
		return dates.Date{}, &NameError{Path: rel, Component: "day", Reason: fmt.Sprintf("%q is not DD_Weekday.md", fileName)}
	}
	day, _ := strconv.Atoi(fileName[:2])

	d, err := dates.New(year, time.Month(month), day)
	if err != nil {
		return dates.Date{}, &NameError{Path: rel, Component: "day", Reason: err.Error()}
	}
	return d, nil
}

// ValidateWithinRoot returns ErrPathOutsideRoot when path does not resolve to
// a location inside root.
func ValidateWithinRoot(root, path string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrPathOutsideRoot
	}
	return nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
