// Package store persists the single trip record. Every backend stores the
// same JSON document ({"days": [...], "tripName": "..."}) under RecordKey.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tripweaver-cli/internal/model"
)

// RecordKey names the one persisted record in every key-value backend.
const RecordKey = "tripWeaver"

var (
	// ErrMalformed wraps decode failures: unparsable JSON or a record that
	// breaks the trip invariants.
	ErrMalformed = errors.New("malformed trip record")

	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Persistence is the load/save collaborator of the trip controller.
// Load reports found=false (and no error) when nothing has been saved yet.
type Persistence interface {
	Load(ctx context.Context) (state model.TripState, found bool, err error)
	Save(ctx context.Context, state model.TripState) error
}

// Watchable backends live on disk and can be observed for external changes.
type Watchable interface {
	WatchPath() string
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendDiskv  Backend = "diskv"
	BackendMemory Backend = "memory"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendSQLite:
		return BackendSQLite, nil
	case BackendDiskv, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (want sqlite|diskv|memory)", ErrUnknownBackend, s)
	}
}

// Open returns the backend rooted at dir. The memory backend ignores dir.
func Open(backend Backend, dir string) (Persistence, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, BackendDiskv:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: missing dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure dir: %w", err)
	}
	if backend == BackendDiskv {
		return NewDiskv(dir), nil
	}
	return NewSQLite(dir), nil
}
