// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     watch
// Description: Script file watcher with debounced change notification
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
)

// DefaultDebounce is used when a non-positive debounce is configured
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes of a single file. The parent directory is watched
// so that editors replacing the file on save are still noticed.
type Watcher struct {
	mu       sync.Mutex
	path     string
	debounce time.Duration
	logger   *mdwlog.Logger
	done     chan struct{}
	running  bool
}

// New creates a watcher for path
func New(path string, debounce time.Duration, logger *mdwlog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   logger.WithField("component", "uwu-watch"),
	}
}

// Start begins watching. It returns once the watch is in place; onChange is
// then called from the watch goroutine, at most once per debounce window,
// until ctx is cancelled. A stopped watcher may be started again.
func (w *Watcher) Start(ctx context.Context, onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to resolve script path").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.Start").
			WithDetail("path", w.path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("watch.Start")
	}

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("watch.Start").
			WithDetail("dir", dir)
	}

	w.path = abs
	w.done = make(chan struct{})
	w.running = true
	w.logger.Info("Started watching script", mdwlog.Fields{"file": abs})

	go w.loop(ctx, watcher, w.done, onChange)
	return nil
}

// Wait blocks until the watch loop has stopped. It returns at once if the
// watcher was never started.
func (w *Watcher) Wait() {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Run starts watching and blocks until ctx is cancelled
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	if err := w.Start(ctx, onChange); err != nil {
		return err
	}
	w.Wait()
	return nil
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}, onChange func()) {
	defer func() {
		w.mu.Lock()
		w.running = false
		watcher.Close()
		w.mu.Unlock()
		close(done)
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("Stopping script watcher")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug("Script changed", mdwlog.Fields{"op": event.Op.String()})
			timer.Reset(w.debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}
