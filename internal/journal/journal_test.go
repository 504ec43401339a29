package journal

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/entry"
	"github.com/aidanlsb/journal/internal/paths"
	"github.com/aidanlsb/journal/internal/schedule"
	"github.com/aidanlsb/journal/internal/testutil"
)

const testHeader = "# Friday, March 15, 2024\n\n| device  | location     | weather    |\n| ------- | ------------ | ---------- |\n| luna | Home | sunny |\n"

func TestCreateYear(t *testing.T) {
	j := testutil.NewTestJournal(t).Build()

	result, err := CreateYear(j.Path, "", 2024, nil)
	if err != nil {
		t.Fatalf("CreateYear: %v", err)
	}
	if result.Days != 366 {
		t.Errorf("Days = %d, want 366", result.Days)
	}
	// journey + 12 * (happenings + goals) + 366 days
	if got, want := len(result.Created), 1+24+366; got != want {
		t.Errorf("created %d files, want %d", got, want)
	}

	for _, rel := range []string{
		"journal/2024/2024_journey.md",
		"journal/2024/03-mar/March 2024 Happenings.md",
		"journal/2024/03-mar/March goals.md",
		"journal/2024/02-feb/29_Thursday.md",
		"journal/2024/12-dec/31_Tuesday.md",
	} {
		j.AssertFileExists(rel)
	}
	j.AssertFileEquals("journal/2024/01-jan/01_Monday.md", "")
}

func TestCreateYearNeverTruncates(t *testing.T) {
	d := dates.MustNew(2024, time.March, 15)
	j := testutil.NewTestJournal(t).
		WithEntry("", d, testutil.WrittenEntry(d)).
		WithFile("journal/2024/2024_journey.md", "my year\n").
		Build()

	result, err := CreateYear(j.Path, "", 2024, nil)
	if err != nil {
		t.Fatalf("CreateYear: %v", err)
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
	if got := j.ReadFile("journal/2024/2024_journey.md"); got != "my year\n" {
		t.Errorf("journey overwritten: %q", got)
	}
	if got := j.ReadFile("journal/2024/03-mar/15_Friday.md"); got != testutil.WrittenEntry(d) {
		t.Errorf("entry overwritten: %q", got)
	}

	again, err := CreateYear(j.Path, "", 2024, nil)
	if err != nil {
		t.Fatalf("second CreateYear: %v", err)
	}
	if len(again.Created) != 0 {
		t.Errorf("second run created %d files", len(again.Created))
	}
}

func TestCreateYearSchedule(t *testing.T) {
	j := testutil.NewTestJournal(t).Build()
	sched := &schedule.Schedule{
		Class:     "CS 101",
		StartDate: dates.MustNew(2024, time.January, 8),
		EndDate:   dates.MustNew(2024, time.February, 9),
		Days: []schedule.ClassDay{
			{Weekday: schedule.Weekday(time.Tuesday)},
			{Weekday: schedule.Weekday(time.Thursday)},
		},
	}

	result, err := CreateYear(j.Path, "CS 101", 2024, sched)
	if err != nil {
		t.Fatalf("CreateYear: %v", err)
	}
	if result.Days != 10 {
		t.Errorf("Days = %d, want 10", result.Days)
	}
	j.AssertFileExists("cs-101/2024/01-jan/09_Tuesday.md")
	j.AssertFileNotExists("cs-101/2024/01-jan/08_Monday.md")
	j.AssertFileNotExists("cs-101/2024/03-mar")
}

func TestCreateYearRejectsOutOfRange(t *testing.T) {
	for _, year := range []int{1999, 2100} {
		if _, err := CreateYear(t.TempDir(), "", year, nil); err == nil {
			t.Errorf("CreateYear(%d) should fail", year)
		}
	}
}

func TestStartEntry(t *testing.T) {
	d := dates.MustNew(2024, time.March, 15)

	t.Run("absent file is created", func(t *testing.T) {
		j := testutil.NewTestJournal(t).Build()
		started, err := StartEntry(paths.Resolve(j.Path, d, ""), testHeader)
		if err != nil || !started {
			t.Fatalf("StartEntry = %v, %v", started, err)
		}
		j.AssertFileEquals("journal/2024/03-mar/15_Friday.md", testHeader)
	})

	t.Run("blank file is filled", func(t *testing.T) {
		j := testutil.NewTestJournal(t).WithEntry("", d, "\n  \n").Build()
		started, err := StartEntry(j.EntryPath("", d), testHeader)
		if err != nil || !started {
			t.Fatalf("StartEntry = %v, %v", started, err)
		}
		j.AssertFileEquals("journal/2024/03-mar/15_Friday.md", testHeader)
	})

	t.Run("content is kept", func(t *testing.T) {
		j := testutil.NewTestJournal(t).WithEntry("", d, "already written\n").Build()
		started, err := StartEntry(j.EntryPath("", d), testHeader)
		if err != nil || started {
			t.Fatalf("StartEntry = %v, %v", started, err)
		}
		j.AssertFileEquals("journal/2024/03-mar/15_Friday.md", "already written\n")
	})
}

func TestAddCustomHeader(t *testing.T) {
	d := dates.MustNew(2024, time.March, 15)

	j := testutil.NewTestJournal(t).WithEntry("", d, "").Build()
	path := j.EntryPath("", d)

	if err := AddCustomHeader(path, testHeader, "Gratitude"); err != nil {
		t.Fatalf("AddCustomHeader: %v", err)
	}
	j.AssertFileEquals("journal/2024/03-mar/15_Friday.md", testHeader+"\n## Gratitude\n")

	if err := os.WriteFile(path, []byte(testHeader+"\n## Gratitude\nThe lake"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := AddCustomHeader(path, testHeader, "  Plans "); err != nil {
		t.Fatalf("AddCustomHeader: %v", err)
	}
	j.AssertFileEquals("journal/2024/03-mar/15_Friday.md", testHeader+"\n## Gratitude\nThe lake\n\n## Plans\n")

	h, err := entry.Parse(j.ReadFile("journal/2024/03-mar/15_Friday.md"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(h.CustomHeaders) != 2 || h.CustomHeaders[1] != "Plans" {
		t.Errorf("CustomHeaders = %v", h.CustomHeaders)
	}

	if err := AddCustomHeader(path, testHeader, "   "); err == nil {
		t.Error("expected error for empty header text")
	}
}

func TestFindEmptyDay(t *testing.T) {
	today := dates.MustNew(2024, time.March, 15)
	j := testutil.NewTestJournal(t).
		WithYear("", 2023, today, testutil.WrittenEntry).
		WithYear("", 2024, today, testutil.WrittenEntry).
		WithEntry("", dates.MustNew(2023, time.June, 1), "").
		WithEntry("", dates.MustNew(2024, time.February, 2), "").
		WithEntry("", dates.MustNew(2024, time.March, 20), "").
		Build()

	rng := rand.New(rand.NewSource(1))
	got, err := FindEmptyDay(j.Path, "", 2024, today, rng, nil)
	if err != nil {
		t.Fatalf("FindEmptyDay: %v", err)
	}
	want := dates.MustNew(2024, time.February, 2)
	if got.Date != want || got.Candidates != 1 {
		t.Fatalf("picked %s of %d candidates, want %s of 1", got.Date, got.Candidates, want)
	}

	content := j.ReadFile("journal/2024/02-feb/02_Friday.md")
	if !strings.HasPrefix(content, "# Friday, February 02, 2024\n\n> Transcribed on: 03/15/2024\n") {
		t.Errorf("unexpected transcription header:\n%s", content)
	}
	h, err := entry.Parse(content, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h.TranscribedOn != today || !h.BodyEmpty {
		t.Errorf("header = %+v", h)
	}

	// The filled day is no longer blank and the future day is never eligible.
	if _, err := FindEmptyDay(j.Path, "", 2024, today, rng, nil); !errors.Is(err, ErrNoEmptyDays) {
		t.Errorf("expected ErrNoEmptyDays, got %v", err)
	}

	got, err = FindEmptyDay(j.Path, "", 0, today, rng, nil)
	if err != nil {
		t.Fatalf("FindEmptyDay across years: %v", err)
	}
	if got.Date != dates.MustNew(2023, time.June, 1) {
		t.Errorf("picked %s", got.Date)
	}
}
