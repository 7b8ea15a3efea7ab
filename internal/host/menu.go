package host

import (
	"errors"
	"fmt"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/logger"
)

// Application menu item ids.
const (
	MenuExportConfig   = "file.export-config"
	MenuImportConfig   = "file.import-config"
	MenuQuit           = "file.quit"
	MenuStartScraping  = "bot.start-scraping"
	MenuStopScraping   = "bot.stop-scraping"
	MenuTestDiscord    = "bot.test-discord-connection"
	MenuReload         = "view.reload"
	MenuToggleDevTools = "view.toggle-devtools"
	MenuZoomIn         = "view.zoom-in"
	MenuZoomOut        = "view.zoom-out"
	MenuResetZoom      = "view.reset-zoom"
)

// ErrUnknownMenuItem is returned by ClickMenu for an id not in the menu.
var ErrUnknownMenuItem = errors.New("unknown menu item")

var separator = bridge.MenuItem{Separator: true}

// ApplicationMenu returns the File / Bot / View menu the dashboard renders.
func ApplicationMenu() []bridge.MenuItem {
	return []bridge.MenuItem{
		{
			Label: "File",
			Submenu: []bridge.MenuItem{
				{ID: MenuExportConfig, Label: "Export config", Accelerator: "CmdOrCtrl+E"},
				{ID: MenuImportConfig, Label: "Import config", Accelerator: "CmdOrCtrl+I"},
				separator,
				{ID: MenuQuit, Label: "Quit", Accelerator: "CmdOrCtrl+Q"},
			},
		},
		{
			Label: "Bot",
			Submenu: []bridge.MenuItem{
				{ID: MenuStartScraping, Label: "Start scraping", Accelerator: "CmdOrCtrl+S"},
				{ID: MenuStopScraping, Label: "Stop scraping", Accelerator: "CmdOrCtrl+Shift+S"},
				separator,
				{ID: MenuTestDiscord, Label: "Test Discord connection"},
			},
		},
		{
			Label: "View",
			Submenu: []bridge.MenuItem{
				{ID: MenuReload, Label: "Reload", Accelerator: "CmdOrCtrl+R"},
				{ID: MenuToggleDevTools, Label: "Toggle developer tools", Accelerator: "CmdOrCtrl+Shift+I"},
				separator,
				{ID: MenuZoomIn, Label: "Zoom in", Accelerator: "CmdOrCtrl+Plus"},
				{ID: MenuZoomOut, Label: "Zoom out", Accelerator: "CmdOrCtrl+-"},
				{ID: MenuResetZoom, Label: "Reset zoom", Accelerator: "CmdOrCtrl+0"},
			},
		},
	}
}

var menuActions = map[string]func(*App){
	MenuExportConfig:   (*App).ExportConfig,
	MenuImportConfig:   (*App).ImportConfig,
	MenuQuit:           (*App).Quit,
	MenuStartScraping:  (*App).StartScraping,
	MenuStopScraping:   (*App).StopScraping,
	MenuTestDiscord:    (*App).TestDiscordConnection,
	MenuReload:         (*App).Reload,
	MenuToggleDevTools: (*App).ToggleDevTools,
	MenuZoomIn:         (*App).ZoomIn,
	MenuZoomOut:        (*App).ZoomOut,
	MenuResetZoom:      (*App).ResetZoom,
}

// ClickMenu runs the action of an application menu item.
func (a *App) ClickMenu(id string) error {
	action, ok := menuActions[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMenuItem, id)
	}
	a.log.Debug("Menu item clicked", logger.String("id", id))
	action(a)
	return nil
}
