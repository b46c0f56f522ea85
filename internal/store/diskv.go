package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tripweaver-cli/internal/model"
)

const diskvDirName = "kv"

// Diskv stores the trip record as a file under <dir>/kv, one file per key.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

func NewDiskv(dir string) *Diskv {
	basePath := filepath.Join(dir, diskvDirName)
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Writes go through a temp file + rename so a crash never leaves a
			// half-written record behind.
			TempDir:      filepath.Join(dir, diskvDirName+".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

func (p *Diskv) WatchPath() string { return filepath.Join(p.basePath, RecordKey) }

func (p *Diskv) Load(ctx context.Context) (model.TripState, bool, error) {
	if !p.d.Has(RecordKey) {
		return model.TripState{}, false, nil
	}
	val, err := p.d.Read(RecordKey)
	if err != nil {
		return model.TripState{}, false, fmt.Errorf("store.Diskv.Load: %w", err)
	}
	st, err := Decode(val)
	if err != nil {
		return model.TripState{}, true, fmt.Errorf("store.Diskv.Load: %w", err)
	}
	return st, true, nil
}

func (p *Diskv) Save(ctx context.Context, st model.TripState) error {
	b, err := Encode(st)
	if err != nil {
		return fmt.Errorf("store.Diskv.Save: %w", err)
	}
	if err := p.d.Write(RecordKey, b); err != nil {
		return fmt.Errorf("store.Diskv.Save: %w", err)
	}
	return nil
}

func (p *Diskv) PutRaw(ctx context.Context, raw []byte) error {
	return p.d.Write(RecordKey, raw)
}
