package store

import (
	"context"
	"sync"

	"tripweaver-cli/internal/model"
)

// Memory keeps the encoded record in memory. It round-trips through the same
// codec as the disk backends.
type Memory struct {
	mu    sync.Mutex
	raw   []byte
	saves int
}

func NewMemory() *Memory { return &Memory{} }

// NewMemoryWithRaw seeds the backend with an arbitrary (possibly malformed) document.
func NewMemoryWithRaw(raw []byte) *Memory {
	return &Memory{raw: append([]byte{}, raw...)}
}

func (m *Memory) Load(ctx context.Context) (model.TripState, bool, error) {
	m.mu.Lock()
	raw := m.raw
	m.mu.Unlock()
	if raw == nil {
		return model.TripState{}, false, nil
	}
	st, err := Decode(raw)
	if err != nil {
		return model.TripState{}, true, err
	}
	return st, true, nil
}

func (m *Memory) Save(ctx context.Context, s model.TripState) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = b
	m.saves++
	m.mu.Unlock()
	return nil
}

// Raw returns the last saved document.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte{}, m.raw...)
}

// Saves counts successful Save calls.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// PutRaw replaces the stored document without decoding it.
func (m *Memory) PutRaw(ctx context.Context, raw []byte) error {
	m.mu.Lock()
	m.raw = append([]byte{}, raw...)
	m.mu.Unlock()
	return nil
}
