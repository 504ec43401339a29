// Package audit keeps an append-only history of the files jrn writes.
//
// Each line of <root>/.jrn/history.log is one JSON object:
//
//	{"ts":"2024-03-15T08:01:02Z","op":"start","file":"journal/2024/03-mar/15_Friday.md","date":"2024-03-15"}
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Operations recorded in the history.
const (
	OpStart      = "start"
	OpAddHeader  = "add-header"
	OpTranscribe = "transcribe"
	OpCreateYear = "create-year"
	OpRename     = "rename"
)

const (
	// Dir is the journal-root directory holding jrn's own state.
	Dir = ".jrn"
	// FileName is the history log inside Dir.
	FileName = "history.log"
)

// Entry is a single history record.
type Entry struct {
	Timestamp time.Time              `json:"ts"`
	Operation string                 `json:"op"`
	File      string                 `json:"file,omitempty"` // root-relative, slash-separated
	Date      string                 `json:"date,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// Logger appends to and reads the history of one journal root.
type Logger struct {
	path    string
	enabled bool
	mu      sync.Mutex
	now     func() time.Time
}

// New returns the history logger for root. A disabled logger records nothing
// and reads as empty.
func New(root string, enabled bool) *Logger {
	return &Logger{
		path:    filepath.Join(root, Dir, FileName),
		enabled: enabled,
		now:     time.Now,
	}
}

// Enabled reports whether writes are recorded.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Path returns the history log location.
func (l *Logger) Path() string {
	return l.path
}

// Log appends e. A zero timestamp is set to the current UTC time.
func (l *Logger) Log(e Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = l.now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}
	return nil
}

// Read returns every entry in the log, oldest first. Malformed lines are
// skipped.
func (l *Logger) Read() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}
	return entries, nil
}

// ReadSince returns the entries at or after since.
func (l *Logger) ReadSince(since time.Time) ([]Entry, error) {
	all, err := l.Read()
	if err != nil {
		return nil, err
	}

	var filtered []Entry
	for _, e := range all {
		if !e.Timestamp.Before(since) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
