package command

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces bursts of write events from editors that save
// in multiple steps.
const reloadDebounce = 200 * time.Millisecond

// Watcher reloads the user command file into a registry whenever it
// changes on disk.
type Watcher struct {
	registry *Registry
	path     string
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching path and reloading it into the registry. The file
// does not need to exist yet; it is picked up on creation.
func Watch(registry *Registry, path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save
	// and the inode-level watch would be lost.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		registry: registry,
		path:     path,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return w.fsw.Close()
}

// loop consumes filesystem events and reloads after a debounce window.
func (w *Watcher) loop() {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if _, err := LoadInto(w.registry, w.path); err != nil {
				slog.Warn("command file reload failed",
					"path", w.path,
					"error", err,
				)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("command file watch error", "error", err)

		case <-w.done:
			return
		}
	}
}
