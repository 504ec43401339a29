package paths

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		date  dates.Date
		class string
		want  string
	}{
		{dates.MustNew(2024, time.March, 15), "", "journal/2024/03-mar/15_Friday.md"},
		{dates.MustNew(2024, time.January, 1), "journal", "journal/2024/01-jan/01_Monday.md"},
		{dates.MustNew(2024, time.February, 29), "CS101", "cs101/2024/02-feb/29_Thursday.md"},
		{dates.MustNew(2023, time.September, 9), "Art History", "art-history/2023/09-sep/09_Saturday.md"},
	}
	for _, tc := range tests {
		got := Resolve("/root", tc.date, tc.class)
		want := filepath.Join("/root", filepath.FromSlash(tc.want))
		if got != want {
			t.Errorf("Resolve(%s, %q) = %q, want %q", tc.date, tc.class, got, want)
		}
	}
}

func TestParseEntryPathRoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for _, d := range dates.Range(dates.FirstOfYear(year), dates.LastOfYear(year)) {
			rel := Rel(d)
			got, err := ParseEntryPath(rel)
			if err != nil {
				t.Fatalf("ParseEntryPath(%q): %v", rel, err)
			}
			if got != d {
				t.Fatalf("ParseEntryPath(%q) = %s, want %s", rel, got, d)
			}
			if back := Rel(got); back != rel {
				t.Fatalf("round trip %q -> %s -> %q", rel, got, back)
			}
		}
	}
}

func TestParseEntryPathErrors(t *testing.T) {
	tests := []struct {
		rel       string
		component string
	}{
		{"24/03-mar/15_Friday.md", "year"},
		{"2024/march/15_Friday.md", "month"},
		{"2024/13-xyz/01_Monday.md", "month"},
		{"2024/03-mar/notes.md", "day"},
		{"2024/04-apr/31_Wednesday.md", "day"},
		{"2023/02-feb/29_Wednesday.md", "day"},
		{"2024/03-mar", "day"},
	}
	for _, tc := range tests {
		t.Run(tc.rel, func(t *testing.T) {
			_, err := ParseEntryPath(filepath.FromSlash(tc.rel))
			var nameErr *NameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("expected *NameError, got %v", err)
			}
			if nameErr.Component != tc.component {
				t.Errorf("component = %q, want %q", nameErr.Component, tc.component)
			}
		})
	}
}

func TestParseEntryPathIgnoresNames(t *testing.T) {
	// Month name and weekday text are not part of the encoded date.
	got, err := ParseEntryPath("2024/03-march/15_friday.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dates.MustNew(2024, time.March, 15) {
		t.Errorf("got %s", got)
	}
}

func TestNameHelpers(t *testing.T) {
	if !IsDayFileName("15_Friday.md") || IsDayFileName("March goals.md") || IsDayFileName("15_.md") {
		t.Error("IsDayFileName misclassified a name")
	}
	if !IsYearDirName("2024") || IsYearDirName("202a") || IsYearDirName("20245") {
		t.Error("IsYearDirName misclassified a name")
	}
	if !IsMonthFolderName("03-mar") || IsMonthFolderName("mar") {
		t.Error("IsMonthFolderName misclassified a name")
	}
	if got := WeekdayFromFileName("15_Friday.md"); got != "Friday" {
		t.Errorf("WeekdayFromFileName = %q", got)
	}
	if got := MonthFolder(time.December); got != "12-dec" {
		t.Errorf("MonthFolder(December) = %q", got)
	}
}

func TestValidateWithinRoot(t *testing.T) {
	root := t.TempDir()
	if err := ValidateWithinRoot(root, filepath.Join(root, "journal", "2024")); err != nil {
		t.Errorf("inside path rejected: %v", err)
	}
	if err := ValidateWithinRoot(root, filepath.Join(root, "..", "elsewhere")); !errors.Is(err, ErrPathOutsideRoot) {
		t.Errorf("expected ErrPathOutsideRoot, got %v", err)
	}
}
