package tray

import (
	"sync"

	"github.com/gamebot-io/gamebot/internal/host"
	"github.com/gamebot-io/gamebot/internal/logger"
)

// Headless is a tray stand-in for hosts running without a native event
// loop (--foreground). It only logs.
type Headless struct {
	log logger.Logger

	mu      sync.Mutex
	tooltip string
	actions host.TrayActions
}

// HeadlessFactory returns a host.TrayFactory that installs a Headless tray.
func HeadlessFactory(log logger.Logger) host.TrayFactory {
	return func(actions host.TrayActions, tooltip string) (host.Tray, error) {
		log.Info("Tray icon created (headless)", logger.String("tooltip", tooltip))
		return &Headless{log: log, tooltip: tooltip, actions: actions}, nil
	}
}

func (h *Headless) SetTooltip(tooltip string) {
	h.mu.Lock()
	h.tooltip = tooltip
	h.mu.Unlock()
	h.log.Debug("Tray tooltip changed", logger.String("tooltip", tooltip))
}

// Tooltip returns the current hover text.
func (h *Headless) Tooltip() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tooltip
}

// Actions returns the handlers a native tray would have bound.
func (h *Headless) Actions() host.TrayActions {
	return h.actions
}
