// Package host implements the native side of the dashboard: the window
// lifecycle, the lazily installed tray icon, the application menu and OS
// notifications. The dashboard process drives it through the bridge.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/logger"
	"github.com/gamebot-io/gamebot/internal/models"
	"github.com/gamebot-io/gamebot/internal/updater"
)

// Emitter broadcasts events to the dashboard.
type Emitter interface {
	Emit(channel bridge.Channel, payload any) error
}

// UpdateChecker reports whether a newer release exists.
type UpdateChecker interface {
	CheckForUpdate(ctx context.Context) (*updater.UpdateResult, error)
}

// Options configures an App.
type Options struct {
	Version  string
	Emitter  Emitter
	Notifier Notifier
	Trays    TrayFactory
	Updates  UpdateChecker
	Tooltip  string
	Logger   logger.Logger
	// OnQuit is called once, after app-quit has been emitted.
	OnQuit func()
}

// App holds the host's window and tray state.
type App struct {
	version  string
	emitter  Emitter
	notifier Notifier
	trays    TrayFactory
	updates  UpdateChecker
	log      logger.Logger
	onQuit   func()

	mu       sync.Mutex
	window   WindowState
	tray     Tray
	tooltip  string
	quitting bool
}

// New creates the host app. The window starts visible at zoom 1.0.
func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	tooltip := opts.Tooltip
	if tooltip == "" {
		tooltip = models.DefaultTrayTooltip
	}
	return &App{
		version:  opts.Version,
		emitter:  opts.Emitter,
		notifier: opts.Notifier,
		trays:    opts.Trays,
		updates:  opts.Updates,
		log:      log.Named("host"),
		onQuit:   opts.OnQuit,
		window:   WindowState{Visible: true, Zoom: defaultZoom},
		tooltip:  tooltip,
	}
}

// Version returns the application version reported to the dashboard.
func (a *App) Version() string {
	return a.version
}

// Window returns a snapshot of the window state.
func (a *App) Window() WindowState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// Quitting reports whether an explicit quit is in progress.
func (a *App) Quitting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quitting
}

// HasTray reports whether the tray icon has been installed.
func (a *App) HasTray() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tray != nil
}

// emit must be called without a.mu held.
func (a *App) emit(channel bridge.Channel, payload any) {
	if a.emitter == nil {
		return
	}
	if err := a.emitter.Emit(channel, payload); err != nil {
		a.log.Warn("Failed to emit event", logger.String("channel", string(channel)), logger.Error(err))
	}
}

// ensureTrayLocked installs the tray icon on first use. a.mu must be held.
func (a *App) ensureTrayLocked() {
	if a.tray != nil || a.trays == nil {
		return
	}
	tray, err := a.trays(a.trayActions(), a.tooltip)
	if err != nil {
		a.log.Error("Failed to create tray icon", logger.Error(err))
		return
	}
	a.tray = tray
	a.log.Info("Tray icon created")
}

func (a *App) trayActions() TrayActions {
	return TrayActions{
		Activate:      a.Activate,
		StartScraping: a.StartScraping,
		StopScraping:  a.stopScrapingFromTray,
		Settings:      a.OpenSettings,
		Quit:          a.Quit,
	}
}

// MinimizeToTray hides the window and makes sure the tray icon exists.
func (a *App) MinimizeToTray() {
	a.mu.Lock()
	a.window.Visible = false
	a.ensureTrayLocked()
	a.mu.Unlock()

	a.emit(bridge.ChannelWindowHide, nil)
}

// RequestClose handles the window's close button. Unless a quit is in
// progress the window is hidden to the tray instead and false is returned.
func (a *App) RequestClose() bool {
	a.mu.Lock()
	if a.quitting {
		a.mu.Unlock()
		return true
	}
	a.window.Visible = false
	a.ensureTrayLocked()
	a.mu.Unlock()

	a.emit(bridge.ChannelWindowHide, nil)
	return false
}

// Quit sets the quit flag, tells the dashboard to exit and runs OnQuit.
// Only the first call has any effect.
func (a *App) Quit() {
	a.mu.Lock()
	if a.quitting {
		a.mu.Unlock()
		return
	}
	a.quitting = true
	a.mu.Unlock()

	a.log.Info("Quit requested")
	a.emit(bridge.ChannelAppQuit, nil)
	if a.onQuit != nil {
		a.onQuit()
	}
}

// ShowNotification displays an OS notification. It does nothing when
// notifications are unsupported or disabled and never fails.
func (a *App) ShowNotification(title, body string) {
	if a.notifier == nil || !a.notifier.Supported() {
		a.log.Debug("Notification skipped", logger.String("title", title))
		return
	}
	if err := a.notifier.Notify(title, body); err != nil {
		a.log.Warn("Failed to show notification", logger.String("title", title), logger.Error(err))
	}
}

// CheckForUpdates reports whether a newer release exists. Without a
// configured release feed the answer is always no.
func (a *App) CheckForUpdates(ctx context.Context) (bridge.UpdateStatus, error) {
	if a.updates == nil {
		return bridge.UpdateStatus{}, nil
	}
	res, err := a.updates.CheckForUpdate(ctx)
	if err != nil {
		return bridge.UpdateStatus{}, fmt.Errorf("failed to check for updates: %w", err)
	}
	st := bridge.UpdateStatus{UpdateAvailable: res.Available}
	if res.Available {
		st.LatestVersion = res.LatestVersion
		st.ReleaseURL = res.ReleaseURL
	}
	return st, nil
}

// Bot actions. The host keeps no scraping state; it only forwards.

// StartScraping asks the dashboard to start scraping and announces it.
func (a *App) StartScraping() {
	a.emit(bridge.ChannelStartScraping, nil)
	a.ShowNotification("Scraping started", "The bot started looking for new games")
}

// StopScraping asks the dashboard to stop scraping.
func (a *App) StopScraping() {
	a.emit(bridge.ChannelStopScraping, nil)
}

func (a *App) stopScrapingFromTray() {
	a.StopScraping()
	a.ShowNotification("Scraping stopped", "The bot stopped searching")
}

// OpenSettings brings the window forward on the bot settings.
func (a *App) OpenSettings() {
	a.ShowWindow()
	a.emit(bridge.ChannelNavigateToSettings, nil)
}

func (a *App) ExportConfig() { a.emit(bridge.ChannelExportConfig, nil) }

func (a *App) ImportConfig() { a.emit(bridge.ChannelImportConfig, nil) }

func (a *App) TestDiscordConnection() { a.emit(bridge.ChannelTestDiscordConnection, nil) }

// ApplySettings applies the live-reloadable part of the settings.
func (a *App) ApplySettings(s *models.Settings) {
	if n, ok := a.notifier.(interface{ SetEnabled(bool) }); ok {
		n.SetEnabled(s.Notifications.Enabled)
	}
	if u, ok := a.updates.(interface{ SetReleasesURL(string) }); ok {
		u.SetReleasesURL(s.Updates.ReleasesURL)
	}
	a.log.SetLevel(s.Log.Level)

	a.mu.Lock()
	a.tooltip = s.Tray.Tooltip
	tray := a.tray
	a.mu.Unlock()
	if tray != nil {
		tray.SetTooltip(s.Tray.Tooltip)
	}
	a.log.Info("Settings applied",
		logger.Bool("notifications", s.Notifications.Enabled),
		logger.String("log_level", s.Log.Level))
}
