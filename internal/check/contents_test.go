package check

import (
	"testing"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/testutil"
)

func TestValidateContentsCompleteYear(t *testing.T) {
	today := dates.MustNew(2024, time.December, 31)
	j := testutil.NewTestJournal(t).
		WithYear("", 2024, today, testutil.WrittenEntry).
		Build()

	issues, err := ValidateContents(j.Path, "", nil)
	if err != nil {
		t.Fatalf("ValidateContents: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %d: %+v", len(issues), issues)
	}
}

func TestValidateContentsHeaderDateMismatch(t *testing.T) {
	fileDate := dates.MustNew(2024, time.March, 15)
	stated := dates.MustNew(2024, time.March, 16)

	j := testutil.NewTestJournal(t).
		WithEntry("", fileDate, testutil.Entry(stated, "Wrong heading.")).
		WithEntry("", dates.MustNew(2024, time.March, 14), testutil.WrittenEntry(dates.MustNew(2024, time.March, 14))).
		Build()

	issues, err := ValidateContents(j.Path, "", nil)
	if err != nil {
		t.Fatalf("ValidateContents: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %+v", len(issues), issues)
	}
	issue := issues[0]
	if issue.Kind != KindHeaderDateMismatch {
		t.Fatalf("Kind = %s, want %s", issue.Kind, KindHeaderDateMismatch)
	}
	if issue.Date != fileDate || issue.HeaderDate != stated {
		t.Errorf("dates = %s / %s, want %s / %s", issue.Date, issue.HeaderDate, fileDate, stated)
	}
	if issue.FilePath != j.EntryPath("", fileDate) || issue.Line != 1 {
		t.Errorf("location = %s:%d", issue.FilePath, issue.Line)
	}
}

func TestValidateContentsIssues(t *testing.T) {
	jan1 := dates.MustNew(2024, time.January, 1)
	jan2 := dates.MustNew(2024, time.January, 2)
	jan3 := dates.MustNew(2024, time.January, 3)
	jan4 := dates.MustNew(2024, time.January, 4)

	j := testutil.NewTestJournal(t).
		WithEntry("", jan1, "Forgot the heading entirely.\n").
		WithEntry("", jan2, "   \n\n").
		WithEntry("", jan3, "# Friday, January 3, 2024\n\nWrong weekday.\n").
		WithEntry("", jan4, testutil.Entry(jan4, "See [yesterday](03_Wednesday.md), [photo](img/lake.png) and [site](https://example.com).")).
		WithFile("journal/2024/02-feb/30_Friday.md", "not parsed").
		Build()

	issues, err := ValidateContents(j.Path, "", nil)
	if err != nil {
		t.Fatalf("ValidateContents: %v", err)
	}
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}

	want := []struct {
		kind  IssueKind
		date  dates.Date
		level IssueLevel
	}{
		{KindUnparsableHeader, jan1, LevelError},
		{KindWeekdayMismatch, jan3, LevelWarning},
		{KindBrokenLink, jan4, LevelWarning},
	}
	for i, w := range want {
		if issues[i].Kind != w.kind || issues[i].Date != w.date || issues[i].Level != w.level {
			t.Errorf("issues[%d] = %+v, want %s on %s", i, issues[i], w.kind, w.date)
		}
	}
	if issues[0].Line != 1 {
		t.Errorf("unparsable Line = %d, want 1", issues[0].Line)
	}
	if issues[1].Weekday != "Wednesday" {
		t.Errorf("Weekday = %q", issues[1].Weekday)
	}
	if issues[2].Target != "img/lake.png" {
		t.Errorf("Target = %q", issues[2].Target)
	}
}

func TestValidateContentsBoilerplateOptions(t *testing.T) {
	d := dates.MustNew(2024, time.June, 1)
	j := testutil.NewTestJournal(t).
		WithEntry("", d, testutil.Entry(d, "Prompt: [template](missing.md)")).
		Build()

	// Boilerplate does not hide broken links, only body text.
	opts := &Options{ParseOptions: &entry.ParseOptions{Boilerplate: []string{"Prompt: [template](missing.md)"}}}
	issues, err := ValidateContents(j.Path, "", opts)
	if err != nil {
		t.Fatalf("ValidateContents: %v", err)
	}
	if len(issues) != 1 || issues[0].Kind != KindBrokenLink {
		t.Errorf("expected one broken link, got %+v", issues)
	}
}
