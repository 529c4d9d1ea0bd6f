package watch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32
	for i := range 5 {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("callback ran %d times, want 1", got)
	}
	if got := last.Load(); got != 4 {
		t.Fatalf("ran callback %d, want the last one", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("callback ran %d times after Stop", got)
	}
}

func TestNewFileWatcherNeedsFiles(t *testing.T) {
	if _, err := NewFileWatcher(nil, 0, quietLogger()); err == nil {
		t.Fatalf("expected error without files")
	}
}

func TestFileWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "deck.slides")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(target, []byte("---Title\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fw, err := NewFileWatcher([]string{target}, 20*time.Millisecond, quietLogger())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fired := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- fw.Watch(ctx, func() error {
			fired <- struct{}{}
			return nil
		})
	}()
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	select {
	case <-fired:
		t.Fatalf("unrelated file triggered a rebuild")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(target, []byte("---Title\nchanged\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("no rebuild after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

func TestFileWatcherRejectsSecondWatch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "deck.slides")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fw, err := NewFileWatcher([]string{target}, 0, quietLogger())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Watch(ctx, func() error { return nil }) }()
	time.Sleep(50 * time.Millisecond)
	if err := fw.Watch(ctx, func() error { return nil }); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning, got %v", err)
	}
	cancel()
	<-done
}

func TestDebouncerSerializesCallbacks(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()
	var active, peak, calls atomic.Int32
	slow := func() {
		n := active.Add(1)
		if n > peak.Load() {
			peak.Store(n)
		}
		time.Sleep(60 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	}
	d.Trigger(slow)
	time.Sleep(25 * time.Millisecond)
	d.Trigger(slow)
	time.Sleep(250 * time.Millisecond)
	if got := calls.Load(); got != 2 {
		t.Fatalf("callback ran %d times, want 2", got)
	}
	if got := peak.Load(); got != 1 {
		t.Fatalf("%d callbacks ran at once", got)
	}
}

func TestNewFileWatcherDiscardsLogsByDefault(t *testing.T) {
	target := filepath.Join(t.TempDir(), "deck.slides")
	fw, err := NewFileWatcher([]string{target}, 0, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() { _ = fw.watcher.Close() }()
	if fw.logger.Handler() != slog.DiscardHandler {
		t.Fatalf("nil logger did not fall back to discard")
	}
}
