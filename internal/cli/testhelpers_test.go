package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/aidanlsb/journal/internal/config"
	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// openedFiles records editor launches made during a test.
type openedFiles struct {
	paths []string
}

// useJournal points the package globals at j as if PersistentPreRunE had
// resolved it, and restores them when the test ends. Editor launches are
// recorded instead of run.
func useJournal(t *testing.T, j *testutil.TestJournal, todayStr string, asJSON bool) *openedFiles {
	t.Helper()

	prevRoot := resolvedRoot
	prevJSON := jsonOutput
	prevCfg := cfg
	prevJournalCfg := journalCfg
	prevToday := today
	prevClass := classFlag
	prevLaunch := launchEditor
	prevStrict := validateStrict
	prevFixCase := validateFixCase
	prevHyperlink := hyperlinkEnabled
	t.Cleanup(func() {
		resolvedRoot = prevRoot
		jsonOutput = prevJSON
		cfg = prevCfg
		journalCfg = prevJournalCfg
		today = prevToday
		classFlag = prevClass
		launchEditor = prevLaunch
		validateStrict = prevStrict
		validateFixCase = prevFixCase
		hyperlinkEnabled = prevHyperlink
	})

	jc, err := config.LoadJournalConfig(j.Path)
	if err != nil {
		t.Fatalf("LoadJournalConfig: %v", err)
	}
	d, err := dates.ParseDate(todayStr)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", todayStr, err)
	}

	resolvedRoot = j.Path
	jsonOutput = asJSON
	cfg = &config.Config{}
	journalCfg = jc
	today = d
	classFlag = ""
	validateStrict = false
	validateFixCase = false
	disabled := false
	hyperlinkEnabled = &disabled

	opened := &openedFiles{}
	launchEditor = func(_ *config.Config, path string) (string, error) {
		opened.paths = append(opened.paths, path)
		return "fake-editor", nil
	}
	return opened
}

// jsonResponse is the envelope as tests decode it.
type jsonResponse struct {
	OK       bool                   `json:"ok"`
	Data     map[string]interface{} `json:"data"`
	Error    *ErrorInfo             `json:"error"`
	Warnings []Warning              `json:"warnings"`
	Meta     *Meta                  `json:"meta"`
}

func decodeResponse(t *testing.T, out string) jsonResponse {
	t.Helper()
	var resp jsonResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}
