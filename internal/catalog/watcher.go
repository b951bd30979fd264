package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceWindow coalesces rapid file events. Editors and atomic
// writers fire several events per save; one reload per burst is enough.
const DefaultDebounceWindow = 200 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk. The parent
// directory is watched rather than the file itself so atomic rename-style
// saves keep working after the original inode disappears.
//
// Reload failures are non-fatal: a malformed edit is logged and the previous
// snapshot stays in service until the file parses again.
type Watcher struct {
	path     string
	debounce time.Duration
	onSwap   func(*Snapshot)
	log      *slog.Logger
}

// NewWatcher builds a watcher for the catalog at path. onSwap is invoked with
// each successfully reloaded snapshot; it must be safe to call from the
// watcher goroutine. debounce <= 0 selects the default window.
func NewWatcher(path string, debounce time.Duration, onSwap func(*Snapshot), log *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounceWindow
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onSwap:   onSwap,
		log:      log,
	}
}

// Run watches until ctx is cancelled. It returns the initialization error if
// the underlying watcher cannot be created, nil on normal shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.log.Info("watching catalog", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	snap, err := Load(w.path)
	if err != nil {
		w.log.Warn("catalog reload failed, keeping previous snapshot",
			"path", w.path, "error", err)
		return
	}
	stats := snap.Stats()
	w.log.Info("catalog reloaded",
		"funds", stats.Funds, "stocks", stats.Stocks, "holdings", stats.Holdings)
	w.onSwap(snap)
}
