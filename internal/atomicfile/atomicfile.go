// Package atomicfile writes journal files so a crash never leaves a torn
// entry behind.
package atomicfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile replaces path with data by writing a temp file in the same
// directory and renaming it into place. Missing parent directories are
// created. An existing file keeps its mode; new files get 0644.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// atomic.WriteFile leaves new files with the temp file's 0600.
	if isNew {
		if err := os.Chmod(path, filePerm); err != nil {
			return fmt.Errorf("set permissions on %s: %w", path, err)
		}
	}
	return nil
}

// CreateEmpty creates an empty file at path unless something already exists
// there. It reports whether the file was created.
func CreateEmpty(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, fmt.Errorf("create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	return true, f.Close()
}
