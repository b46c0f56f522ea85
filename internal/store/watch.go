package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDelay = 100 * time.Millisecond

// Watch emits a value whenever the record behind w changes on disk, until ctx
// is cancelled. Bursts of writes (SQLite touches the db, -wal and -shm files)
// coalesce into one signal. A burst only signals when the record file itself
// differs afterwards, so a reader that reloads on every signal (opening the
// database creates and removes the sidecar files) does not wake itself up.
// The channel is closed when watching stops.
func Watch(ctx context.Context, w Watchable, log *slog.Logger) (<-chan struct{}, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	target := strings.TrimSpace(w.WatchPath())
	if target == "" {
		return nil, errors.New("store: watch path unknown")
	}
	dir := filepath.Dir(target)
	base := filepath.Base(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	out := make(chan struct{}, 1)
	var (
		outMu  sync.Mutex
		closed bool
		last   = statRecord(target)
	)
	send := func() {
		outMu.Lock()
		defer outMu.Unlock()
		if closed {
			return
		}
		cur := statRecord(target)
		if cur == last {
			return
		}
		last = cur
		select {
		case out <- struct{}{}:
		default:
			// A signal is already pending; the reader reloads everything anyway.
		}
	}

	go func() {
		defer func() {
			outMu.Lock()
			closed = true
			close(out)
			outMu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn("store: watcher close", "error", err)
			}
		}()

		throttle := newThrottle(watchDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("store: watch error", "error", err, "path", target)
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !strings.HasPrefix(filepath.Base(evt.Name), base) {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return out, nil
}

// recordStamp identifies one on-disk version of the record file.
type recordStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statRecord(path string) recordStamp {
	fi, err := os.Stat(path)
	if err != nil {
		return recordStamp{}
	}
	return recordStamp{exists: true, size: fi.Size(), modTime: fi.ModTime()}
}

// throttle coalesces rapid change notifications so readers reload once per
// burst of filesystem activity.
type throttle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

func (t *throttle) Enqueue(fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.mu.Lock()
			t.timer = nil
			t.mu.Unlock()
			fire()
		})
	}
}

func (t *throttle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
