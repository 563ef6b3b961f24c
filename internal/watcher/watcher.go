// Package watcher re-runs a callback when watched files change.
// It backs the watch subcommand: edit a blueprint, get a fresh
// conversion.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files and invokes a callback on changes,
// debounced so editor write bursts trigger a single run.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	done     chan struct{}
}

// New creates a watcher with the given debounce interval.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Add watches path. The containing directory is registered rather than
// the file itself, so atomic-rename saves keep working.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.files[abs] = true
	return w.fsw.Add(filepath.Dir(abs))
}

// Run blocks, invoking onChange with the changed path after each
// debounced burst of events. It returns when Close is called or the
// underlying watcher fails.
func (w *Watcher) Run(onChange func(path string)) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case <-w.done:
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			pending = abs
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			onChange(pending)
			timer = nil
			timerC = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
