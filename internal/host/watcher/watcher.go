// Package watcher reports changes to the host's settings file.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gamebot-io/gamebot/internal/logger"
)

const debounceDelay = 100 * time.Millisecond

// EventType represents the type of file system event.
type EventType int

// Event types for settings file changes.
const (
	EventSettingsChanged EventType = iota
	EventSettingsRemoved
)

func (t EventType) String() string {
	switch t {
	case EventSettingsChanged:
		return "changed"
	case EventSettingsRemoved:
		return "removed"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event represents a settings file change.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches one file by watching its directory, so editors that
// replace the file atomically are still seen.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounce   *time.Timer
	debounceMu sync.Mutex
	log        logger.Logger
}

// New creates a watcher for the file at path. The parent directory must exist.
func New(path string, log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		log:        log.Named("watcher"),
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Debug("Watching settings", logger.String("path", w.path))

	go w.processEvents()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watcher error", logger.Error(err))
		}
	}
}

// handleEvent filters events down to the watched file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename matters: atomic writes (write tmp, rename to target) produce
	// Create or Rename events on the target rather than Write.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	w.log.Debug("fsnotify", logger.String("op", event.Op.String()), logger.String("path", event.Name))
	w.debounceEvent()
}

// debounceEvent coalesces bursts of events into one.
func (w *Watcher) debounceEvent() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.fire)
}

func (w *Watcher) fire() {
	ev := Event{Type: EventSettingsChanged, Path: w.path}
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		ev.Type = EventSettingsRemoved
	}

	select {
	case w.eventsChan <- ev:
	case <-w.done:
	}
}
