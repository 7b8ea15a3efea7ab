package host

import (
	"math"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

const (
	defaultZoom = 1.0
	minZoom     = 0.5
	zoomStep    = 0.1
)

// WindowState is the host's record of the dashboard window.
type WindowState struct {
	Visible  bool
	Zoom     float64
	DevTools bool
}

// ShowWindow shows and focuses the window.
func (a *App) ShowWindow() {
	a.mu.Lock()
	a.window.Visible = true
	a.mu.Unlock()

	a.emit(bridge.ChannelWindowShow, nil)
}

// Activate handles a tray click: focus the window if it is visible,
// otherwise show it first.
func (a *App) Activate() {
	a.mu.Lock()
	visible := a.window.Visible
	a.mu.Unlock()

	if visible {
		a.log.Debug("Focusing window")
		a.emit(bridge.ChannelWindowShow, nil)
		return
	}
	a.ShowWindow()
}

// Reload asks the dashboard to reset its view state.
func (a *App) Reload() {
	a.emit(bridge.ChannelWindowReload, nil)
}

// ToggleDevTools flips the developer tools panel.
func (a *App) ToggleDevTools() {
	a.mu.Lock()
	a.window.DevTools = !a.window.DevTools
	open := a.window.DevTools
	a.mu.Unlock()

	a.emit(bridge.ChannelWindowDevTools, bridge.DevToolsPayload{Open: open})
}

func (a *App) ZoomIn() { a.setZoom(func(z float64) float64 { return z + zoomStep }) }

// ZoomOut never goes below minZoom.
func (a *App) ZoomOut() { a.setZoom(func(z float64) float64 { return math.Max(minZoom, z-zoomStep) }) }

func (a *App) ResetZoom() { a.setZoom(func(float64) float64 { return defaultZoom }) }

func (a *App) setZoom(next func(float64) float64) {
	a.mu.Lock()
	// Round to one decimal so repeated steps don't drift
	a.window.Zoom = math.Round(next(a.window.Zoom)*10) / 10
	zoom := a.window.Zoom
	a.mu.Unlock()

	a.emit(bridge.ChannelWindowZoom, bridge.ZoomPayload{Factor: zoom})
}
