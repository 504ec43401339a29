package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2024-12-31", "2000-06-15", "2024-02-29"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}

	invalid := []string{"2025/01/01", "01-01-2025", "2025-13-01", "2025-01-32", "not-a-date", "", "2025-02-30", "2023-02-29"}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "ordinary", year: 2024, month: time.March, day: 15},
		{name: "leap day", year: 2024, month: time.February, day: 29},
		{name: "century leap day", year: 2000, month: time.February, day: 29},
		{name: "non-leap century", year: 2100, month: time.February, day: 29, wantErr: true},
		{name: "day 31 of 30-day month", year: 2024, month: time.April, day: 31, wantErr: true},
		{name: "month 13", year: 2024, month: 13, day: 1, wantErr: true},
		{name: "day zero", year: 2024, month: time.May, day: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.year, tt.month, tt.day)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d, %d, %d) err = %v, wantErr %v", tt.year, tt.month, tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	cases := map[int]int{2023: 365, 2024: 366, 1900: 365, 2000: 366}
	for year, want := range cases {
		if got := DaysInYear(year); got != want {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestRange(t *testing.T) {
	got := Range(MustNew(2024, time.February, 27), MustNew(2024, time.March, 1))
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if len(got) != len(want) {
		t.Fatalf("Range returned %d dates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("Range[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if r := Range(MustNew(2024, time.March, 2), MustNew(2024, time.March, 1)); len(r) != 0 {
		t.Errorf("expected empty range when end precedes start, got %v", r)
	}
}

func TestElapsedInYear(t *testing.T) {
	today := MustNew(2024, time.March, 15)

	if got := len(ElapsedInYear(2023, today)); got != 365 {
		t.Errorf("past year: got %d days, want 365", got)
	}
	if got := len(ElapsedInYear(2024, today)); got != 75 {
		t.Errorf("current year: got %d days, want 75", got)
	}
	if got := ElapsedInYear(2025, today); len(got) != 0 {
		t.Errorf("future year: got %d days, want 0", len(got))
	}
}

func TestDateFormatting(t *testing.T) {
	d := MustNew(2024, time.March, 5)
	if d.String() != "2024-03-05" {
		t.Errorf("String() = %q", d.String())
	}
	if d.Friendly() != "Tuesday, March 05, 2024" {
		t.Errorf("Friendly() = %q", d.Friendly())
	}
	if d.YearDay() != 65 {
		t.Errorf("YearDay() = %d, want 65", d.YearDay())
	}

	b, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{Date: d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"date":"2024-03-05"}` {
		t.Errorf("json = %s", b)
	}
}

func TestParseDateArg(t *testing.T) {
	today := MustNew(2025, time.February, 15)

	got, err := ParseDateArg("", today)
	if err != nil || got != today {
		t.Fatalf("empty arg should default to today, got %v err=%v", got, err)
	}

	got, err = ParseDateArg("Yesterday", today)
	if err != nil || got.String() != "2025-02-14" {
		t.Fatalf("expected 2025-02-14, got %v err=%v", got, err)
	}

	got, err = ParseDateArg("2025-02-01", today)
	if err != nil || got.String() != "2025-02-01" {
		t.Fatalf("expected 2025-02-01, got %v err=%v", got, err)
	}

	if _, err = ParseDateArg("02-01-2025", today); err == nil {
		t.Fatalf("expected error for invalid date arg")
	}
}

func TestValidateYear(t *testing.T) {
	if err := ValidateYear(2024); err != nil {
		t.Errorf("ValidateYear(2024) = %v", err)
	}
	for _, y := range []int{1999, 2100} {
		if err := ValidateYear(y); err == nil {
			t.Errorf("ValidateYear(%d) should fail", y)
		}
	}
}
