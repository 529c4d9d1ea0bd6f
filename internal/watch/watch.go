// Package watch rebuilds a deck when its source or catalogue files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a change is acted upon.
const DefaultDebounce = 150 * time.Millisecond

// ErrRunning is returned by Watch when the watcher is already running.
var ErrRunning = errors.New("watch: already running")

// FileWatcher reports changes to a fixed set of files. Editors often replace
// a file instead of writing it, so the parent directories are watched and
// events are filtered by name.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	files    map[string]struct{}
	dirs     []string
	debounce *Debouncer

	mu      sync.Mutex
	running bool
}

// NewFileWatcher watches paths. A zero interval uses DefaultDebounce.
func NewFileWatcher(paths []string, interval time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("watch: no files to watch")
	}
	if interval <= 0 {
		interval = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fw := &FileWatcher{
		logger:   logger,
		files:    make(map[string]struct{}, len(paths)),
		debounce: NewDebouncer(interval),
	}
	seen := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		fw.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			fw.dirs = append(fw.dirs, dir)
		}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	fw.watcher = w
	return fw, nil
}

// Watch blocks until ctx is cancelled, calling onChange once per burst of
// changes. Callback errors are logged and watching continues.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func() error) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return ErrRunning
	}
	fw.running = true
	fw.mu.Unlock()
	defer func() {
		fw.debounce.Stop()
		_ = fw.watcher.Close()
	}()

	for _, dir := range fw.dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		fw.logger.Debug("watching directory", "path", dir)
	}
	fw.logger.Info("watching for changes", "files", len(fw.files))

	for {
		select {
		case <-ctx.Done():
			fw.logger.Debug("watcher stopped")
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watch: events channel closed")
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			name := event.Name
			fw.debounce.Trigger(func() {
				fw.logger.Info("change detected, rebuilding", "path", name)
				if err := onChange(); err != nil {
					fw.logger.Error("rebuild failed", "error", err)
				}
			})
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watch: errors channel closed")
			}
			fw.logger.Error("watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := fw.files[abs]
	return ok
}

// Debouncer runs only the last callback of a burst, after a quiet period.
// Callbacks never overlap: one that fires while another is still running
// waits for it.
type Debouncer struct {
	interval time.Duration
	running  sync.Mutex

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.running.Lock()
	defer d.running.Unlock()
	d.mu.Lock()
	cb := d.callback
	d.callback = nil
	stopped := d.stopped
	d.mu.Unlock()
	if cb != nil && !stopped {
		cb()
	}
}

// Stop cancels a pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
