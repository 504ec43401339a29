package testutil

import (
	"os"
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (j *TestJournal) AssertFileExists(relPath string) {
	j.t.Helper()
	if _, err := os.Stat(j.Abs(relPath)); os.IsNotExist(err) {
		j.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (j *TestJournal) AssertFileNotExists(relPath string) {
	j.t.Helper()
	if _, err := os.Stat(j.Abs(relPath)); err == nil {
		j.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (j *TestJournal) AssertFileContains(relPath, substr string) {
	j.t.Helper()
	content := j.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		j.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileEquals fails the test if the file content differs from want.
func (j *TestJournal) AssertFileEquals(relPath, want string) {
	j.t.Helper()
	if got := j.ReadFile(relPath); got != want {
		j.t.Errorf("file %s:\ngot:\n%q\nwant:\n%q", relPath, got, want)
	}
}

// AssertDirExists fails the test if the directory does not exist.
func (j *TestJournal) AssertDirExists(relPath string) {
	j.t.Helper()
	info, err := os.Stat(j.Abs(relPath))
	if os.IsNotExist(err) {
		j.t.Errorf("expected directory to exist: %s", relPath)
		return
	}
	if !info.IsDir() {
		j.t.Errorf("expected %s to be a directory, but it's a file", relPath)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertIssueCount checks the "issues" list of a validate result.
func (r *CLIResult) AssertIssueCount(t *testing.T, expected int) {
	t.Helper()
	issues := r.DataList("issues")
	if len(issues) != expected {
		t.Errorf("expected %d issues, got %d\nRaw: %s", expected, len(issues), r.RawJSON)
	}
}
