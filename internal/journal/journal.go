// Package journal implements the operations that write to a journal: year
// scaffolding, starting entries, custom sub-headers and picking a blank day
// to transcribe.
//
// None of them overwrite a file that already has content.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aidanlsb/journal/internal/atomicfile"
	"github.com/aidanlsb/journal/internal/entry"
)

// readEntry returns path's content, or "" when the file does not exist.
func readEntry(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read entry: %w", err)
	}
	return string(data), nil
}

// StartEntry writes header to the entry at path when the entry is blank or
// absent, creating parent directories as needed. It reports whether the
// header was written; an entry with content is left untouched.
func StartEntry(path, header string) (bool, error) {
	content, err := readEntry(path)
	if err != nil {
		return false, err
	}
	if !entry.IsBlank(content) {
		return false, nil
	}
	if err := atomicfile.WriteFile(path, []byte(header)); err != nil {
		return false, fmt.Errorf("start entry: %w", err)
	}
	return true, nil
}

// AddCustomHeader appends a "## text" sub-header to the entry at path. A
// blank or absent entry is started with header first.
func AddCustomHeader(path, header, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("header text is empty")
	}

	if _, err := StartEntry(path, header); err != nil {
		return err
	}
	content, err := readEntry(path)
	if err != nil {
		return err
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry.CustomHeader(text)

	if err := atomicfile.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("add header: %w", err)
	}
	return nil
}
