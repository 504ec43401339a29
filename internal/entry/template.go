package entry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/journal/internal/paths"
)

// LoadTemplate resolves a header_template setting. Values containing a
// newline are inline templates. Anything else is a file path relative to
// root, which must stay inside root. An empty spec yields "", which Render
// treats as DefaultHeaderTemplate.
func LoadTemplate(root, spec string) (string, error) {
	if strings.TrimSpace(spec) == "" {
		return "", nil
	}
	if strings.Contains(spec, "\n") {
		return spec, nil
	}

	rel, err := normalizeTemplateRef(spec)
	if err != nil {
		return "", err
	}
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := paths.ValidateWithinRoot(root, full); err != nil {
		return "", fmt.Errorf("header template must be within the journal root: %s", rel)
	}

	content, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("header template not found: %s", rel)
		}
		return "", fmt.Errorf("read header template: %w", err)
	}
	return string(content), nil
}

func normalizeTemplateRef(ref string) (string, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(ref), "\\", "/")
	normalized := filepath.ToSlash(filepath.Clean(trimmed))
	normalized = strings.TrimPrefix(normalized, "./")
	normalized = strings.TrimPrefix(normalized, "/")
	if normalized == "" || normalized == "." {
		return "", errors.New("header template path is empty")
	}
	if normalized == ".." || strings.HasPrefix(normalized, "../") {
		return "", errors.New("header template path cannot escape the journal root")
	}
	return normalized, nil
}
