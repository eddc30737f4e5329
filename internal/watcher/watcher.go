package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. fsnotify events on the parent
// directory are used when available; a stat poll always runs as a fallback.
type Watcher struct {
	path         string
	pollInterval time.Duration
	onChange     func()

	mu      sync.Mutex
	modTime time.Time
	size    int64

	stop chan struct{}
	wg   sync.WaitGroup
}

func New(path string, pollInterval time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:         filepath.Clean(path),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Start records the current file state and begins watching.
func (w *Watcher) Start() error {
	w.snapshot()

	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		if addErr := fsw.Add(filepath.Dir(w.path)); addErr != nil {
			fsw.Close()
		} else {
			w.wg.Add(1)
			go w.watchEvents(fsw)
		}
	}

	w.wg.Add(1)
	go w.poll()
	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) watchEvents(fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.check()
			}
		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) poll() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.check()
		case <-w.stop:
			return
		}
	}
}

// check fires onChange when the file's size or modification time moved.
// Events and polls can both observe one write; only the first reports it.
func (w *Watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := !info.ModTime().Equal(w.modTime) || info.Size() != w.size
	w.modTime = info.ModTime()
	w.size = info.Size()
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange()
	}
}

func (w *Watcher) snapshot() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.modTime = info.ModTime()
	w.size = info.Size()
	w.mu.Unlock()
}
