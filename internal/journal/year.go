package journal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/aidanlsb/journal/internal/atomicfile"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/schedule"
)

// YearResult lists what CreateYear did.
type YearResult struct {
	Year    int      `json:"year"`
	Dir     string   `json:"dir"`
	Created []string `json:"created"` // class-relative paths of new files
	Days    int      `json:"days"`    // day files the year should have
	Skipped int      `json:"skipped"` // files that already existed
}

// JourneyFileName is the year overview note, e.g. "2024_journey.md".
func JourneyFileName(year int) string {
	return fmt.Sprintf("%s_journey%s", paths.YearDir(year), paths.EntryExt)
}

// HappeningsFileName is the monthly events note, e.g. "March 2024 Happenings.md".
func HappeningsFileName(year int, m time.Month) string {
	return fmt.Sprintf("%s %d Happenings%s", m, year, paths.EntryExt)
}

// GoalsFileName is the monthly goals note, e.g. "March goals.md".
func GoalsFileName(m time.Month) string {
	return fmt.Sprintf("%s goals%s", m, paths.EntryExt)
}

// CreateYear scaffolds a year for class: the year directory with its journey
// note, and for every month with at least one expected day, the month folder,
// its happenings and goals notes and one empty file per day. With a non-nil
// filter only the days it contains get files.
//
// Existing files are never modified, so running CreateYear twice is harmless.
func CreateYear(root, class string, year int, f schedule.Filter) (*YearResult, error) {
	if err := dates.ValidateYear(year); err != nil {
		return nil, err
	}

	classRoot := paths.ClassRoot(root, class)
	yearDir := filepath.Join(classRoot, paths.YearDir(year))
	result := &YearResult{Year: year, Dir: yearDir}

	create := func(path string) error {
		created, err := atomicfile.CreateEmpty(path)
		if err != nil {
			return err
		}
		if created {
			rel, _ := filepath.Rel(classRoot, path)
			result.Created = append(result.Created, filepath.ToSlash(rel))
		} else {
			result.Skipped++
		}
		return nil
	}

	if err := create(filepath.Join(yearDir, JourneyFileName(year))); err != nil {
		return nil, err
	}

	byMonth := make(map[time.Month][]dates.Date)
	for _, d := range dates.Range(dates.FirstOfYear(year), dates.LastOfYear(year)) {
		if f == nil || f.Contains(d) {
			byMonth[d.Month] = append(byMonth[d.Month], d)
		}
	}

	for m := time.January; m <= time.December; m++ {
		days := byMonth[m]
		if len(days) == 0 {
			continue
		}
		monthDir := filepath.Join(yearDir, paths.MonthFolder(m))
		for _, name := range []string{HappeningsFileName(year, m), GoalsFileName(m)} {
			if err := create(filepath.Join(monthDir, name)); err != nil {
				return nil, err
			}
		}
		for _, d := range days {
			if err := create(filepath.Join(monthDir, paths.DayFileName(d))); err != nil {
				return nil, err
			}
		}
		result.Days += len(days)
	}

	return result, nil
}
