// Package watch monitors the loaded data files for modification so a
// long-running interactive session can tell when its in-memory view of
// the data set has gone stale.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that a watched file was written, created, or removed.
type Change struct {
	Path string
	At   time.Time
}

// Watcher monitors a fixed set of files using fsnotify. Events are
// debounced so one logical edit produces one Change.
type Watcher struct {
	Changes <-chan Change // read-only external channel

	changes chan Change // internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
	targets map[string]bool // absolute paths being watched
}

// New creates a watcher for the given files. The files' parent
// directories are watched (not the files themselves) so edits done via
// rename-into-place, the common atomic-write pattern, are still seen.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	targets := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		targets[abs] = true
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
		targets: targets,
	}
	return w, nil
}

// Start begins watching the files' directories for changes.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for f := range w.targets {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					w.emit(file)
				}
				return
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.targets[abs] {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[abs] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; a stale notice beats a crash.
		}
	}
}

func (w *Watcher) emit(file string) {
	w.changes <- Change{Path: file, At: time.Now()}
}
