// Package tray implements the host's system tray icon and menu.
package tray

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/getlantern/systray"

	"github.com/gamebot-io/gamebot/internal/host"
	"github.com/gamebot-io/gamebot/internal/logger"
)

var (
	ready     atomic.Bool
	installMu sync.Mutex
	installed bool
)

// Run starts the native event loop. This blocks the calling goroutine
// (must be main). onReady is called once the loop is running; the icon
// itself is only shown by Install.
func Run(onReady, onExit func()) {
	systray.Run(func() {
		ready.Store(true)
		if onReady != nil {
			onReady()
		}
	}, onExit)
}

// Quit signals the event loop to exit.
func Quit() {
	systray.Quit()
}

// Icon is the installed tray icon.
type Icon struct{}

// SetTooltip updates the hover text.
func (Icon) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// Factory returns a host.TrayFactory backed by the native tray.
func Factory(log logger.Logger) host.TrayFactory {
	return func(actions host.TrayActions, tooltip string) (host.Tray, error) {
		return install(actions, tooltip, log)
	}
}

func install(actions host.TrayActions, tooltip string, log logger.Logger) (host.Tray, error) {
	if !ready.Load() {
		return nil, errors.New("tray event loop is not running")
	}

	installMu.Lock()
	defer installMu.Unlock()
	if installed {
		return nil, errors.New("tray icon already installed")
	}
	installed = true

	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip(tooltip)

	items := menuItems{
		show:  systray.AddMenuItem("Show Gaming Bot", "Bring the dashboard to the front"),
		start: systray.AddMenuItem("Start Scraping", "Start looking for new games"),
		stop:  systray.AddMenuItem("Stop Scraping", "Stop looking for new games"),
	}
	systray.AddSeparator()
	items.settings = systray.AddMenuItem("Settings", "Open the bot settings")
	systray.AddSeparator()
	items.quit = systray.AddMenuItem("Quit", "Quit Gaming Bot")

	go handleClicks(items, actions, log)
	return Icon{}, nil
}

type menuItems struct {
	show, start, stop, settings, quit *systray.MenuItem
}

// handleClicks runs each action on its own goroutine so a slow action
// never stalls the menu.
func handleClicks(items menuItems, actions host.TrayActions, log logger.Logger) {
	run := func(name string, fn func()) {
		log.Debug("Tray item clicked", logger.String("item", name))
		if fn != nil {
			go fn()
		}
	}
	for {
		select {
		case <-items.show.ClickedCh:
			run("show", actions.Activate)
		case <-items.start.ClickedCh:
			run("start-scraping", actions.StartScraping)
		case <-items.stop.ClickedCh:
			run("stop-scraping", actions.StopScraping)
		case <-items.settings.ClickedCh:
			run("settings", actions.Settings)
		case <-items.quit.ClickedCh:
			run("quit", actions.Quit)
			return
		}
	}
}
