// Package watcher feeds dropped audio files into the transcription pipeline.
// Arrivals in the inbox directory are picked up automatically, so recordings
// can be processed without touching the HTTP API.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"slidecast/internal/logger"
)

// settleDelay gives the writer time to finish before the file is read. Copies
// into the inbox are not atomic on every filesystem.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inboxDir      string
	handler       Handler
	logger        logger.Logger
	fsw           *fsnotify.Watcher
	maxConcurrent int
}

// Start blocks and dispatches inbox arrivals until ctx is cancelled. In-flight
// handlers are drained before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "watching %s (max concurrent: %d)", w.inboxDir, w.maxConcurrent)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(w.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "waiting for in-flight files to finish")
			if err := grp.Wait(); err != nil {
				w.logger.Error(ctx, "drain: %v", err)
			}
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				grp.Wait()
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !IsAudioFile(event.Name) {
				w.logger.Debug(ctx, "ignoring non-audio file: %s", event.Name)
				continue
			}

			path := event.Name
			w.logger.Info(ctx, "new audio detected: %s", path)
			grp.Go(func() error {
				time.Sleep(settleDelay)
				if err := w.handler(grpCtx, path); err != nil {
					w.logger.Error(grpCtx, "process %s: %v", path, err)
				}
				// Handler failures are logged, not fatal: one bad file must
				// not stop the watch loop.
				return nil
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				grp.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.fsw.Close()
}

// IsAudioFile reports whether path has a supported audio extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".m4a", ".wav", ".flac", ".ogg", ".aac":
		return true
	}
	return false
}
