package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"slidecast/internal/logger"
)

// New creates a Watcher over inboxDir. At most maxConcurrent files are
// handled at once; further arrivals queue on the event loop.
func New(inboxDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", inboxDir, err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir:      inboxDir,
		handler:       handler,
		logger:        log,
		fsw:           fsw,
		maxConcurrent: maxConcurrent,
	}, nil
}
