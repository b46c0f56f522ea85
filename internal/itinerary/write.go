package itinerary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tripweaver-cli/internal/model"
)

var ErrExists = errors.New("file exists (use --overwrite)")

// WriteFile writes the text export for s into dir and returns its path. An
// existing file is only replaced when overwrite is set.
func WriteFile(dir string, s model.TripState, overwrite bool) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("missing export dir")
	}
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(s.TripName))
	if err := writeFile(path, []byte(RenderText(s)), overwrite); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
