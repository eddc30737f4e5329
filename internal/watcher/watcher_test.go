package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[general]\n"), 0644)

	var calls atomic.Int32
	w := New(path, 100*time.Millisecond, func() { calls.Add(1) })
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	os.WriteFile(path, []byte("[general]\nlanguage = \"en\"\n"), 0644)

	if !waitFor(t, func() bool { return calls.Load() > 0 }) {
		t.Error("expected a change to be reported")
	}
}

func TestWatcher_DetectsCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var calls atomic.Int32
	w := New(path, 100*time.Millisecond, func() { calls.Add(1) })
	w.Start()
	defer w.Stop()

	os.WriteFile(path, []byte("[display]\ncolor = false\n"), 0644)

	if !waitFor(t, func() bool { return calls.Load() > 0 }) {
		t.Error("expected creation to be reported")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[general]\n"), 0644)

	var calls atomic.Int32
	w := New(path, 50*time.Millisecond, func() { calls.Add(1) })
	w.Start()

	os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0644)
	time.Sleep(300 * time.Millisecond)
	w.Stop()

	if got := calls.Load(); got != 0 {
		t.Errorf("onChange called %d times for an unrelated file", got)
	}
}

func TestWatcher_StopReturns(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing.toml"), 10*time.Millisecond, nil)
	w.Start()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
