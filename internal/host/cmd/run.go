package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/buildinfo"
	"github.com/gamebot-io/gamebot/internal/config"
	"github.com/gamebot-io/gamebot/internal/host"
	"github.com/gamebot-io/gamebot/internal/host/tray"
	"github.com/gamebot-io/gamebot/internal/host/watcher"
	"github.com/gamebot-io/gamebot/internal/logger"
	"github.com/gamebot-io/gamebot/internal/models"
	"github.com/gamebot-io/gamebot/internal/updater"
)

type runOptions struct {
	foreground bool
	port       int // -1 = from settings
}

func run(opts runOptions) error {
	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to create global directory: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	log := logger.New(settings.Log.Level, settings.Log.Pretty)
	defer func() { _ = log.Sync() }()

	running, info, err := config.IsHostRunning()
	if err != nil {
		return fmt.Errorf("failed to check host status: %w", err)
	}
	if running {
		return fmt.Errorf("host already running on port %d (PID %d)", info.Port, info.PID)
	}

	port := settings.Bridge.Port
	if opts.port >= 0 {
		port = opts.port
	}
	d := newDaemon(settings, port, log)

	if opts.foreground {
		log.Info("Running in foreground mode (no system tray)")
		return d.runForeground()
	}
	log.Info("Running in background mode (with system tray)")
	return d.runWithTray()
}

// daemon wires the bridge, the host app and the settings watcher together.
type daemon struct {
	settings *models.Settings
	port     int
	log      logger.Logger

	hub      *bridge.Hub
	server   *bridge.Server
	app      *host.App
	notifier *host.DesktopNotifier
	updates  *updater.Checker
	watcher  *watcher.Watcher

	quit     chan struct{}
	quitOnce sync.Once
}

func newDaemon(settings *models.Settings, port int, log logger.Logger) *daemon {
	return &daemon{
		settings: settings,
		port:     port,
		log:      log,
		quit:     make(chan struct{}),
	}
}

// start brings up every service. onQuit is run once the app has been asked
// to quit and app-quit has been broadcast.
func (d *daemon) start(trays host.TrayFactory, onQuit func()) error {
	d.hub = bridge.NewHub()
	d.server = bridge.NewServer(d.hub, bridge.ServerOptions{Logger: d.log, AppVersion: buildinfo.Version})
	d.notifier = host.NewDesktopNotifier(d.settings.Notifications.Enabled, d.settings.Notifications.Icon)
	d.updates = updater.NewChecker(d.settings.Updates.ReleasesURL, buildinfo.Version)
	d.app = host.New(host.Options{
		Version:  buildinfo.Version,
		Emitter:  d.hub,
		Notifier: d.notifier,
		Trays:    trays,
		Updates:  d.updates,
		Tooltip:  d.settings.Tray.Tooltip,
		Logger:   d.log,
		OnQuit: func() {
			d.quitOnce.Do(func() { close(d.quit) })
			if onQuit != nil {
				onQuit()
			}
		},
	})
	host.RegisterHandlers(d.server, d.app)

	if err := d.server.Listen(d.port); err != nil {
		return err
	}

	hostInfo := models.NewHostInfo(buildinfo.Version, "127.0.0.1", d.server.Port(), os.Getpid())
	if addr := d.settings.Bridge.WebAddr; addr != "" {
		if err := d.server.ServeWeb(addr); err != nil {
			d.log.Warn("grpc-web bridge disabled", logger.Error(err))
		} else {
			hostInfo.WebAddr = addr
		}
	}
	if err := config.SaveHostInfo(hostInfo); err != nil {
		return fmt.Errorf("failed to write host info: %w", err)
	}

	d.log.Info("Host started",
		logger.Int("port", d.server.Port()),
		logger.Int("pid", os.Getpid()),
		logger.String("version", buildinfo.Version))

	go func() {
		if err := d.server.Serve(); err != nil {
			d.log.Error("Bridge server error", logger.Error(err))
			d.app.Quit()
		}
	}()

	d.watchSettings()
	if d.settings.Updates.CheckOnStartup {
		go d.checkForUpdates()
	}
	return nil
}

func (d *daemon) stop() {
	if d.watcher != nil {
		d.watcher.Stop()
	}
	if d.server != nil {
		d.server.Stop()
	}
	if err := config.RemoveHostInfo(); err != nil {
		d.log.Warn("Failed to remove host info", logger.Error(err))
	}
	d.log.Info("Host stopped")
}

// runForeground runs the host without a system tray, blocking on signals.
func (d *daemon) runForeground() error {
	if err := d.start(tray.HeadlessFactory(d.log), nil); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		d.log.Info("Received signal, shutting down", logger.String("signal", sig.String()))
		d.app.Quit()
	case <-d.quit:
	}

	d.stop()
	return nil
}

// runWithTray runs the host with the native tray loop on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func (d *daemon) runWithTray() error {
	var startErr error

	onReady := func() {
		if err := d.start(tray.Factory(d.log), tray.Quit); err != nil {
			startErr = err
			tray.Quit()
			return
		}

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				d.log.Info("Received signal, shutting down", logger.String("signal", sig.String()))
				d.app.Quit()
			case <-d.quit:
			}
			signal.Stop(sigCh)
		}()
	}

	onExit := func() {
		if startErr == nil {
			d.stop()
		}
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(onReady, onExit)
	return startErr
}

func (d *daemon) watchSettings() {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		d.log.Warn("Settings hot reload disabled", logger.Error(err))
		return
	}
	w, err := watcher.New(path, d.log)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		d.log.Warn("Settings hot reload disabled", logger.Error(err))
		return
	}
	d.watcher = w

	go func() {
		for ev := range w.Events() {
			d.reloadSettings(ev)
		}
	}()
}

func (d *daemon) reloadSettings(ev watcher.Event) {
	settings := models.NewSettings()
	if ev.Type == watcher.EventSettingsChanged {
		loaded, err := config.LoadSettings()
		if err != nil {
			d.log.Warn("Ignoring invalid settings", logger.Error(err))
			return
		}
		settings = loaded
	}
	if settings.Bridge != d.settings.Bridge {
		d.log.Info("Bridge settings change takes effect after a restart")
	}
	d.app.ApplySettings(settings)
}

func (d *daemon) checkForUpdates() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	st, err := d.app.CheckForUpdates(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			d.log.Warn("Update check failed", logger.Error(err))
		}
		return
	}
	if st.UpdateAvailable {
		d.log.Info("Update available", logger.String("latest", st.LatestVersion), logger.String("url", st.ReleaseURL))
		d.app.ShowNotification("Update available", "Gaming Bot "+st.LatestVersion+" is available")
		return
	}
	d.log.Info("Up to date", logger.String("version", buildinfo.Version))
}
