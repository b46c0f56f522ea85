package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const boardStateFileName = "board_state.json"

// BoardState is small UI state for reopening the board where it was left.
// It lives beside the trip data and is best effort: missing or invalid data
// loads as the zero state.
type BoardState struct {
	Version int `json:"version"`

	SelectedDayID      string `json:"selectedDayId,omitempty"`
	SelectedActivityID string `json:"selectedActivityId,omitempty"`
}

func boardStatePath(dir string) string {
	return filepath.Join(dir, boardStateFileName)
}

func LoadBoardState(dir string) (BoardState, error) {
	if strings.TrimSpace(dir) == "" {
		return BoardState{Version: 1}, nil
	}
	b, err := os.ReadFile(boardStatePath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return BoardState{Version: 1}, nil
		}
		return BoardState{}, err
	}
	var st BoardState
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupt state is treated as missing.
		return BoardState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return st, nil
}

func SaveBoardState(dir string, st BoardState) error {
	if strings.TrimSpace(dir) == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, ".board_state-*.tmp", boardStatePath(dir), b, 0o644)
}

// atomicWriteFile writes via a temp file in dir and a rename.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
