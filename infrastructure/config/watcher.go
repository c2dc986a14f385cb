// Package config provides configuration management for the hiretrack backend.
// This file implements hot reloading of the layout tuning in development.
package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"hiretrack-backend/domain/services"
)

// LayoutWatcher watches the layout tuning file and pushes refreshed layout
// configs to subscribers. Outside development it is inert.
type LayoutWatcher struct {
	cfg       *Config
	callbacks []func(services.LayoutConfig)
	mu        sync.RWMutex
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
}

// NewLayoutWatcher creates a watcher over the configured layout file
func NewLayoutWatcher(cfg *Config, logger *zap.Logger) (*LayoutWatcher, error) {
	w := &LayoutWatcher{
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	// Only hot reload in development
	if !cfg.IsDevelopment() || cfg.LayoutFile == "" {
		logger.Info("Layout hot reloading disabled",
			zap.String("environment", cfg.Environment),
		)
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = fsWatcher

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a direct file watch.
	dir := filepath.Dir(cfg.LayoutFile)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.watchLoop()

	logger.Info("Layout hot reloading enabled",
		zap.String("file", cfg.LayoutFile),
	)
	return w, nil
}

// OnChange registers a callback invoked with the merged layout config after
// every successful reload
func (w *LayoutWatcher) OnChange(fn func(services.LayoutConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Stop shuts the watcher down
func (w *LayoutWatcher) Stop() {
	close(w.stopCh)
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *LayoutWatcher) watchLoop() {
	target := filepath.Clean(w.cfg.LayoutFile)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Layout watcher error", zap.Error(err))
		case <-w.stopCh:
			return
		}
	}
}

func (w *LayoutWatcher) reload() {
	settings, err := LoadLayoutSettings(w.cfg.LayoutFile)
	if err != nil {
		w.logger.Warn("Failed to reload layout settings",
			zap.String("file", w.cfg.LayoutFile),
			zap.Error(err),
		)
		return
	}

	merged := settings.Apply(services.DefaultLayoutConfig())

	w.mu.RLock()
	callbacks := make([]func(services.LayoutConfig), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, fn := range callbacks {
		fn(merged)
	}

	w.logger.Info("Layout settings reloaded",
		zap.String("file", w.cfg.LayoutFile),
	)
}
