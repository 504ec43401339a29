package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/testutil"
)

func TestAnalyzeCompletionJSON(t *testing.T) {
	j := testutil.NewTestJournal(t).
		WithYear("journal", 2024, dates.MustNew(2024, time.March, 15), testutil.WrittenEntry).
		WithEntry("journal", dates.MustNew(2024, time.March, 20), testutil.WrittenEntry(dates.MustNew(2024, time.March, 20))).
		WithEntry("journal", dates.MustNew(2024, time.March, 14), "not a heading\n\nbody\n").
		Build()
	useJournal(t, j, "2024-03-15", true)

	out := captureStdout(t, func() {
		if err := analyzeCompletionCmd.RunE(analyzeCompletionCmd, nil); err != nil {
			t.Fatalf("analyzeCompletionCmd.RunE: %v", err)
		}
	})
	resp := decodeResponse(t, out)
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}

	years, _ := resp.Data["years"].([]interface{})
	if len(years) != 1 {
		t.Fatalf("expected one year, got %s", out)
	}
	y := years[0].(map[string]interface{})
	// Days after today never count as expected, even when a file exists.
	if y["expected"] != float64(75) || y["completed"] != float64(74) {
		t.Errorf("expected/completed = %v/%v, want 75/74", y["expected"], y["completed"])
	}
	if y["unparsable"] != float64(1) {
		t.Errorf("unparsable = %v, want 1", y["unparsable"])
	}
	if y["tier"] != "on_track" {
		t.Errorf("tier = %v, want on_track", y["tier"])
	}

	found := false
	for _, w := range resp.Warnings {
		if w.Code == WarnUnparsableEntries {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s warning, got %+v", WarnUnparsableEntries, resp.Warnings)
	}
}

func TestAnalyzeCompletionHonorsSchedule(t *testing.T) {
	j := testutil.NewTestJournal(t).
		WithConfig(`schedules:
  - class: CS101
    start_date: 2024-01-15
    end_date: 2024-02-15
    schedule:
      - weekday: Monday
`).
		WithEntry("cs101", dates.MustNew(2024, time.January, 15), testutil.WrittenEntry(dates.MustNew(2024, time.January, 15))).
		WithEntry("cs101", dates.MustNew(2024, time.January, 22), testutil.WrittenEntry(dates.MustNew(2024, time.January, 22))).
		Build()
	useJournal(t, j, "2024-03-15", true)
	classFlag = "CS101"

	out := captureStdout(t, func() {
		if err := analyzeCompletionCmd.RunE(analyzeCompletionCmd, nil); err != nil {
			t.Fatalf("analyzeCompletionCmd.RunE: %v", err)
		}
	})
	resp := decodeResponse(t, out)
	years, _ := resp.Data["years"].([]interface{})
	if len(years) != 1 {
		t.Fatalf("expected one year, got %s", out)
	}
	y := years[0].(map[string]interface{})
	// Mondays from Jan 15 through Feb 15: 15, 22, 29, Feb 5, Feb 12.
	if y["expected"] != float64(5) || y["completed"] != float64(2) || y["missing"] != float64(3) {
		t.Errorf("expected/completed/missing = %v/%v/%v, want 5/2/3", y["expected"], y["completed"], y["missing"])
	}
}

func TestAnalyzeLengthText(t *testing.T) {
	j := testutil.NewTestJournal(t).
		WithEntry("journal", dates.MustNew(2023, time.June, 1), testutil.Entry(dates.MustNew(2023, time.June, 1), "one two three\nfour five")).
		WithDir("journal/2024").
		Build()
	useJournal(t, j, "2024-03-15", false)

	out := captureStdout(t, func() {
		if err := analyzeLengthCmd.RunE(analyzeLengthCmd, nil); err != nil {
			t.Fatalf("analyzeLengthCmd.RunE: %v", err)
		}
	})
	if !strings.Contains(out, "Journal Length") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "no data") {
		t.Errorf("2024 has no entries and should say so:\n%s", out)
	}
	if !strings.Contains(out, "5.0") || !strings.Contains(out, "2.0") {
		t.Errorf("expected 5.0 words and 2.0 lines for 2023:\n%s", out)
	}
}
