package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"tripweaver-cli/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "tripweaver.sqlite"

// SQLite stores the trip record in a small key-value table inside
// <dir>/tripweaver.sqlite.
type SQLite struct {
	Dir string
}

func NewSQLite(dir string) *SQLite { return &SQLite{Dir: dir} }

func (s *SQLite) path() string { return filepath.Join(s.Dir, sqliteFileName) }

func (s *SQLite) WatchPath() string { return s.path() }

func (s *SQLite) open(ctx context.Context) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, err
	}
	// WAL lets the board and a CLI invocation in another terminal coexist;
	// busy_timeout avoids "database is locked" during overlapping writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateKV(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateKV(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			k TEXT PRIMARY KEY,
			v TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context) (model.TripState, bool, error) {
	db, err := s.open(ctx)
	if err != nil {
		return model.TripState{}, false, fmt.Errorf("store.SQLite.Load: %w", err)
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, RecordKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TripState{}, false, nil
	}
	if err != nil {
		return model.TripState{}, false, fmt.Errorf("store.SQLite.Load: %w", err)
	}
	st, err := Decode([]byte(raw))
	if err != nil {
		return model.TripState{}, true, fmt.Errorf("store.SQLite.Load: %w", err)
	}
	return st, true, nil
}

func (s *SQLite) Save(ctx context.Context, st model.TripState) error {
	b, err := Encode(st)
	if err != nil {
		return fmt.Errorf("store.SQLite.Save: %w", err)
	}
	db, err := s.open(ctx)
	if err != nil {
		return fmt.Errorf("store.SQLite.Save: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		RecordKey, string(b), time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("store.SQLite.Save: %w", err)
	}
	return nil
}

// PutRaw writes an arbitrary document under RecordKey. Used by tests and by
// `init --force` style repair flows to overwrite a corrupt record.
func (s *SQLite) PutRaw(ctx context.Context, raw []byte) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		RecordKey, string(raw), time.Now().UTC().UnixMilli(),
	)
	return err
}
