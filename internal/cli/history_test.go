package cli

import (
	"testing"
	"time"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/testutil"
)

func TestWritesAreRecordedInHistory(t *testing.T) {
	j := testutil.NewTestJournal(t).
		WithConfig("history: true\n").
		WithEntry("journal", dates.MustNew(2024, time.March, 15), "").
		Build()
	useJournal(t, j, "2024-03-15", true)

	captureStdout(t, func() {
		if err := startCmd.RunE(startCmd, nil); err != nil {
			t.Fatalf("startCmd.RunE: %v", err)
		}
		if err := addHeaderCmd.RunE(addHeaderCmd, []string{"Gratitude"}); err != nil {
			t.Fatalf("addHeaderCmd.RunE: %v", err)
		}
	})

	prevSince, prevLimit := historySince, historyLimit
	t.Cleanup(func() { historySince, historyLimit = prevSince, prevLimit })
	historySince, historyLimit = "", 0

	out := captureStdout(t, func() {
		if err := historyCmd.RunE(historyCmd, nil); err != nil {
			t.Fatalf("historyCmd.RunE: %v", err)
		}
	})
	resp := decodeResponse(t, out)
	if resp.Data["enabled"] != true {
		t.Errorf("enabled = %v", resp.Data["enabled"])
	}
	entries, _ := resp.Data["entries"].([]interface{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %s", out)
	}
	first := entries[0].(map[string]interface{})
	if first["op"] != "start" || first["file"] != "journal/2024/03-mar/15_Friday.md" || first["date"] != "2024-03-15" {
		t.Errorf("first entry = %v", first)
	}
	if second := entries[1].(map[string]interface{}); second["op"] != "add-header" {
		t.Errorf("second entry = %v", second)
	}

	historyLimit = 1
	out = captureStdout(t, func() {
		if err := historyCmd.RunE(historyCmd, nil); err != nil {
			t.Fatalf("historyCmd.RunE: %v", err)
		}
	})
	resp = decodeResponse(t, out)
	if entries, _ := resp.Data["entries"].([]interface{}); len(entries) != 1 {
		t.Errorf("--limit 1 returned %d entries", len(entries))
	}
}

func TestHistoryOffByDefault(t *testing.T) {
	j := testutil.NewTestJournal(t).WithDir("journal").Build()
	useJournal(t, j, "2024-03-15", true)

	captureStdout(t, func() {
		if err := startCmd.RunE(startCmd, nil); err != nil {
			t.Fatalf("startCmd.RunE: %v", err)
		}
	})
	if j.FileExists(".jrn/history.log") {
		t.Error("history written without history: true")
	}
}
