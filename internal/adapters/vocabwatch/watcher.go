// Package vocabwatch reloads the vocabulary when its file changes on disk.
// The parent directory is watched rather than the file itself because
// editors and config management usually replace files by rename. Bursts of
// events are collapsed into one reload after the file has been quiet for
// the debounce interval
package vocabwatch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	perr "wtwm/internal/platform/errors"
	"wtwm/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when New is given a non-positive interval
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc re-reads the vocabulary and reports how many patterns are live
type ReloadFunc func(ctx context.Context) (int, error)

// Watcher triggers a ReloadFunc on changes to one file
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	debounce time.Duration
	reload   ReloadFunc

	mu      sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	stopped bool
}

// New creates a watcher for path. Nothing is watched until Start
func New(path string, debounce time.Duration, reload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "vocabwatch: %s", path)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "vocabwatch: new watcher")
	}
	return &Watcher{
		fw:       fw,
		path:     abs,
		debounce: debounce,
		reload:   reload,
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string { return w.path }

// Start begins watching. Reloads run with ctx; the watcher stops when ctx
// is done or Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.fw.Add(dir); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNotFound, "vocabwatch: watch %s", dir)
	}

	log := logger.Named("vocabwatch")
	log.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching vocabulary")

	go func() {
		for {
			select {
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					log.Debug().Str("op", ev.Op.String()).Msg("vocabulary changed")
					w.schedule(ctx)
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("watch error")

			case <-ctx.Done():
				_ = w.Stop()
				return

			case <-w.done:
				return
			}
		}
	}()
	return nil
}

// schedule (re)arms the debounce timer
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(ctx) })
}

func (w *Watcher) fire(ctx context.Context) {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}
	// the reload func logs its own outcome
	_, _ = w.reload(ctx)
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
