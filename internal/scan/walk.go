// Package scan enumerates the day files of a journal class.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
)

var (
	// ErrRootNotFound is returned when the journal root or class directory does not exist.
	ErrRootNotFound = errors.New("journal root not found")

	// ErrRootUnreadable is returned when the class directory exists but cannot be listed.
	ErrRootUnreadable = errors.New("journal root unreadable")
)

// Result describes one day-file candidate found under a year directory.
type Result struct {
	Path         string
	RelativePath string // relative to the class directory, e.g. 2024/03-mar/15_Friday.md
	Year         int    // year directory the file was found under

	// Date is the date the file's name encodes. It is zero when NameErr is set.
	Date    dates.Date
	NameErr error

	Content string
	// Error is a per-file I/O error. The file was seen but could not be read.
	Error error
}

// HasDate reports whether the file's name encodes a valid date.
func (r Result) HasDate() bool {
	return r.NameErr == nil && !r.Date.IsZero()
}

// Options controls a walk.
type Options struct {
	// Logger receives per-file diagnostics. Nil discards them.
	Logger *zerolog.Logger
	// SkipContent enumerates files without reading them.
	SkipContent bool
}

func (o *Options) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Years lists the year directories present for class, ascending. Other
// entries in the class directory are ignored.
func Years(root, class string) ([]int, error) {
	classRoot := paths.ClassRoot(root, class)
	entries, err := os.ReadDir(classRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, classRoot)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRootUnreadable, classRoot, err)
	}

	var years []int
	for _, e := range entries {
		if !e.IsDir() || !paths.IsYearDirName(e.Name()) {
			continue
		}
		year, _ := strconv.Atoi(e.Name())
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}

// Walk calls handler for every day-file candidate of class under root,
// year by year in lexical order. Every markdown file inside a year directory
// is a candidate except the companion notes created with a year
// ("2024_journey.md", "March 2024 Happenings.md", "March goals.md"). A
// candidate whose name does not encode a date carries NameErr. Hidden
// directories are skipped.
//
// Failing to list the class directory is fatal. Errors on individual files
// or subdirectories are passed to handler in Result.Error and the walk
// continues. A non-nil error from handler stops the walk and is returned.
func Walk(root, class string, opts *Options, handler func(Result) error) error {
	log := opts.logger()
	skipContent := opts != nil && opts.SkipContent

	years, err := Years(root, class)
	if err != nil {
		return err
	}

	classRoot := paths.ClassRoot(root, class)
	for _, year := range years {
		yearDir := filepath.Join(classRoot, paths.YearDir(year))
		err := filepath.WalkDir(yearDir, func(path string, d fs.DirEntry, err error) error {
			rel, _ := filepath.Rel(classRoot, path)
			if err != nil {
				log.Warn().Str("path", path).Err(err).Msg("skipping unreadable path")
				return handler(Result{Path: path, RelativePath: rel, Year: year, Error: err})
			}

			if d.IsDir() {
				if path != yearDir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if !isCandidate(d.Name()) {
				log.Debug().Str("path", rel).Msg("ignoring non-entry file")
				return nil
			}

			result := Result{Path: path, RelativePath: rel, Year: year}
			result.Date, result.NameErr = paths.ParseEntryPath(rel)

			if !skipContent {
				content, err := os.ReadFile(path)
				if err != nil {
					log.Warn().Str("path", path).Err(err).Msg("skipping unreadable file")
					result.Error = err
				} else {
					result.Content = string(content)
				}
			}

			return handler(result)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect walks class and returns every result.
func Collect(root, class string, opts *Options) ([]Result, error) {
	var results []Result
	err := Walk(root, class, opts, func(r Result) error {
		results = append(results, r)
		return nil
	})
	return results, err
}

func isCandidate(name string) bool {
	if !strings.HasSuffix(name, paths.EntryExt) {
		return false
	}
	return !isYearNote(name) && !isMonthNote(name)
}

// isYearNote matches the "<year>_journey.md" overview file created with a year.
func isYearNote(name string) bool {
	base := strings.TrimSuffix(name, paths.EntryExt)
	year, rest, ok := strings.Cut(base, "_")
	return ok && paths.IsYearDirName(year) && rest == "journey"
}

// isMonthNote matches "<Month> <year> Happenings.md" and "<Month> goals.md".
func isMonthNote(name string) bool {
	fields := strings.Fields(strings.TrimSuffix(name, paths.EntryExt))
	if len(fields) == 0 || !isMonthName(fields[0]) {
		return false
	}
	switch len(fields) {
	case 2:
		return fields[1] == "goals"
	case 3:
		return paths.IsYearDirName(fields[1]) && fields[2] == "Happenings"
	}
	return false
}

func isMonthName(s string) bool {
	for m := time.January; m <= time.December; m++ {
		if s == m.String() {
			return true
		}
	}
	return false
}
