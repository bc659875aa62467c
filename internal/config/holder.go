package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/bulmakit/internal/logger"
)

// Holder provides thread-safe access to configuration with hot reload support.
type Holder struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	log      *logger.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*Config)
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewHolder loads the configuration at path. An empty path holds the defaults
// and cannot be watched.
func NewHolder(path string, log *logger.Logger) (*Holder, error) {
	h := &Holder{config: Default(), log: log, stopCh: make(chan struct{})}
	if path == "" {
		return h, nil
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	h.config = cfg
	h.path = absPath
	return h, nil
}

// SetLogger replaces the logger used for reload messages. Call it before
// WatchFile.
func (h *Holder) SetLogger(log *logger.Logger) { h.log = log }

// Get returns the current configuration.
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

// Path returns the absolute path of the configuration file, if any.
func (h *Holder) Path() string { return h.path }

// Reload re-reads the configuration file. On failure the previous
// configuration is kept.
func (h *Holder) Reload() error {
	if h.path == "" {
		return nil
	}
	h.log.WithFields(map[string]any{"path": h.path}).Info("reloading configuration")

	cfg, err := ParseConfig(h.path)
	if err != nil {
		h.log.Error(err, "config reload failed, keeping old config")
		return fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	old := h.config
	h.config = cfg
	listeners := slices.Clone(h.onChange)
	h.mu.Unlock()

	if len(old.Colors) != len(cfg.Colors) || len(old.IconFamilies) != len(cfg.IconFamilies) {
		h.log.WithFields(map[string]any{
			"colors":        len(cfg.Colors),
			"icon_families": len(cfg.IconFamilies),
		}).Info("palette changed")
	}

	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// OnChange registers a callback invoked after every successful reload.
func (h *Holder) OnChange(fn func(*Config)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// WatchFile reloads the configuration whenever the file is written.
func (h *Holder) WatchFile() error {
	if h.path == "" {
		return fmt.Errorf("watch config: no configuration file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so atomic saves (rename over the file) are seen.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	h.watcher = watcher

	go h.watchLoop()

	h.log.WithFields(map[string]any{"path": h.path}).Debug("watching config file for changes")
	return nil
}

// Stop stops watching for file changes.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		if h.watcher != nil {
			h.watcher.Close()
		}
	})
}

func (h *Holder) watchLoop() {
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.log.WithFields(map[string]any{"event": event.Op.String()}).Debug("config file changed")
				_ = h.Reload()
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.log.Error(err, "file watcher error")

		case <-h.stopCh:
			return
		}
	}
}
