package catalog

import (
	"context"
	"fmt"
	"time"

	"AmbientFM/logger"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses bursts of events (a copy emits create+write+chmod) into one rescan.
const debounce = 200 * time.Millisecond

// Watch calls onChange with a fresh snapshot every time the directory content changes,
// until ctx is cancelled. Existing catalogs are never mutated.
func Watch(ctx context.Context, dir string, onChange func(*Catalog)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("[Catalog] watching sound directory", logger.String("dir", dir))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("[Catalog] directory event",
				logger.String("name", event.Name),
				logger.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("[Catalog] watcher error", logger.ErrorField(err))
		case <-timer.C:
			c, err := Scan(dir)
			if err != nil {
				logger.Error("[Catalog] rescan failed", logger.ErrorField(err))
				continue
			}
			onChange(c)
		}
	}
}
