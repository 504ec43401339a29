package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024", "03-mar", "15_Friday.md")

	if err := WriteFile(path, []byte("first\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != filePerm {
		t.Errorf("new file mode = %v, want %v", info.Mode().Perm(), os.FileMode(filePerm))
	}

	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("second\n")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "second\n" {
		t.Errorf("content = %q", got)
	}
	info, _ = os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("existing mode not preserved: %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestCreateEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024", "2024_journey.md")

	created, err := CreateEmpty(path)
	if err != nil || !created {
		t.Fatalf("CreateEmpty = %v, %v", created, err)
	}

	if err := os.WriteFile(path, []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = CreateEmpty(path)
	if err != nil || created {
		t.Fatalf("second CreateEmpty = %v, %v", created, err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "notes" {
		t.Errorf("existing content truncated: %q", got)
	}
}
