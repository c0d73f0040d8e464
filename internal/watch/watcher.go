// Package watch reruns a generation whenever one of its input files changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a debounced change to the watched files.
// changed lists the affected files in no particular order.
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher watches a fixed set of files.
//
// The parent directories are watched rather than the files themselves, so
// files replaced by rename (as many editors save) keep being observed.
type Watcher struct {
	files    map[string]struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc
	pending  map[string]struct{}
}

// New creates a Watcher for files. Call Close when done.
func New(files []string, debounce time.Duration, onChange ChangeFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.IO(errors.Wrap(err, "failed to create fsnotify watcher"))
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(files)),
		watcher:  fw,
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[string]struct{}),
	}

	dirs := make(map[string]struct{})

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, errors.IO(errors.Wrapf(err, "resolving %s", f))
		}

		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.IO(errors.Wrapf(err, "failed to watch directory %s", dir))
		}
	}

	return w, nil
}

// Run dispatches change notifications until ctx is cancelled or the watcher
// is closed. Callbacks run on the calling goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if w.record(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			logger.Logger.Warnw("file watcher error", "error", err)

		case <-timer.C:
			changed := w.drain()
			if len(changed) == 0 {
				continue
			}

			logger.Logger.Debugw("inputs changed", "files", changed)
			w.onChange(ctx, changed)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) record(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	if _, ok := w.files[abs]; !ok {
		return false
	}

	w.pending[abs] = struct{}{}

	return true
}

func (w *Watcher) drain() []string {
	changed := make([]string, 0, len(w.pending))
	for f := range w.pending {
		changed = append(changed, f)
	}

	clear(w.pending)

	return changed
}
