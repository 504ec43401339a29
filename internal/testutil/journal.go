// Package testutil provides reusable helpers for building temporary journal
// trees in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/journal/internal/dates"
	"github.com/aidanlsb/journal/internal/paths"
)

// TestJournal represents a temporary journal root for testing.
type TestJournal struct {
	Path  string
	t     *testing.T
	files map[string]string
	dirs  []string
}

// NewTestJournal creates a new test journal builder.
// Call Build() to create the actual directory tree.
func NewTestJournal(t *testing.T) *TestJournal {
	t.Helper()
	return &TestJournal{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the journal. The path is slash-separated and
// relative to the journal root.
func (j *TestJournal) WithFile(path, content string) *TestJournal {
	j.files[filepath.FromSlash(path)] = content
	return j
}

// WithDir adds an empty directory.
func (j *TestJournal) WithDir(path string) *TestJournal {
	j.dirs = append(j.dirs, filepath.FromSlash(path))
	return j
}

// WithEntry adds the canonical entry file for d in class.
func (j *TestJournal) WithEntry(class string, d dates.Date, content string) *TestJournal {
	rel := filepath.Join(paths.ClassDir(class), paths.Rel(d))
	j.files[rel] = content
	return j
}

// WithYear adds an entry for every date of year up to and including through,
// using content(d) as the file body.
func (j *TestJournal) WithYear(class string, year int, through dates.Date, content func(dates.Date) string) *TestJournal {
	for _, d := range dates.ElapsedInYear(year, through) {
		j.WithEntry(class, d, content(d))
	}
	return j
}

// WithConfig sets the jrn.yaml content for the journal.
func (j *TestJournal) WithConfig(yaml string) *TestJournal {
	j.files["jrn.yaml"] = yaml
	return j
}

// Build creates the journal directory and all configured files.
// Returns the TestJournal for method chaining.
func (j *TestJournal) Build() *TestJournal {
	j.t.Helper()

	j.Path = j.t.TempDir()

	for _, dir := range j.dirs {
		if err := os.MkdirAll(filepath.Join(j.Path, dir), 0755); err != nil {
			j.t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}
	for path, content := range j.files {
		j.writeFile(path, content)
	}

	return j
}

func (j *TestJournal) writeFile(relPath, content string) {
	j.t.Helper()
	fullPath := filepath.Join(j.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		j.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		j.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// Abs returns the absolute path of a slash-separated journal-relative path.
func (j *TestJournal) Abs(relPath string) string {
	return filepath.Join(j.Path, filepath.FromSlash(relPath))
}

// EntryPath returns the absolute path of the canonical entry for d in class.
func (j *TestJournal) EntryPath(class string, d dates.Date) string {
	return paths.Resolve(j.Path, d, class)
}

// ReadFile reads a file from the journal.
func (j *TestJournal) ReadFile(relPath string) string {
	j.t.Helper()
	content, err := os.ReadFile(j.Abs(relPath))
	if err != nil {
		j.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the journal.
func (j *TestJournal) FileExists(relPath string) bool {
	j.t.Helper()
	_, err := os.Stat(j.Abs(relPath))
	return err == nil
}

// Remove deletes a file from the built journal.
func (j *TestJournal) Remove(relPath string) {
	j.t.Helper()
	if err := os.Remove(j.Abs(relPath)); err != nil {
		j.t.Fatalf("failed to remove %s: %v", relPath, err)
	}
}

// Entry returns a well-formed entry for d with the given body.
func Entry(d dates.Date, body string) string {
	return "# " + d.Friendly() + "\n" +
		"\n" +
		"| device  | location     | weather    |\n" +
		"| ------- | ------------ | ---------- |\n" +
		"| luna | Home | sunny |\n" +
		"\n" +
		body + "\n"
}

// WrittenEntry is a content function for WithYear producing entries with a
// short body.
func WrittenEntry(d dates.Date) string {
	return Entry(d, "Wrote a few words today.")
}

// BlankEntry is a content function for WithYear producing scaffolded,
// never-written files.
func BlankEntry(dates.Date) string {
	return ""
}
