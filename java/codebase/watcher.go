package codebase

import (
	"os"
	"path/filepath"
	"time"
)

// FileWatcher polls the root directory of a Codebase and reloads model
// files that appear, change or disappear.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func()
}

type WatcherOption func(*FileWatcher)

func WithPollInterval(d time.Duration) WatcherOption {
	return func(w *FileWatcher) { w.pollInterval = d }
}

// OnChange registers a callback run after a poll that changed the class path.
func OnChange(fn func()) WatcherOption {
	return func(w *FileWatcher) { w.onChange = fn }
}

func NewFileWatcher(c *Codebase, opts ...WatcherOption) *FileWatcher {
	w := &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends polling and waits for a running poll to finish.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Poll()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll checks the root directory once and reports whether anything was
// reloaded or removed.
func (w *FileWatcher) Poll() bool {
	changed := false
	currentFiles := make(map[string]bool)

	filepath.Walk(w.codebase.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if isHiddenDir(w.codebase.RootDir(), path, info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isModelFile(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			// Load errors are kept on the FileInfo.
			w.codebase.LoadFile(path)
			changed = true
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			changed = true
		}
	}

	if changed && w.onChange != nil {
		w.onChange()
	}
	return changed
}
