package bridge

import (
	"context"
	"sync"
)

// Typed requests. Each one falls back to local behaviour on a detached
// client.

// ShowNotification asks the host for an OS notification. Without a host
// the fallback NotifyFunc shows it inside the dashboard.
func (c *Client) ShowNotification(ctx context.Context, title, body string) error {
	if !c.Available() {
		c.mu.Lock()
		notify := c.notify
		c.mu.Unlock()
		if notify != nil {
			notify(title, body)
		}
		return nil
	}
	return c.Invoke(ctx, ChannelShowNotification, nil, title, body)
}

// GetAppVersion returns the host's version, or DefaultAppVersion.
func (c *Client) GetAppVersion(ctx context.Context) (string, error) {
	if !c.Available() {
		return DefaultAppVersion, nil
	}
	var version string
	if err := c.Invoke(ctx, ChannelGetAppVersion, &version); err != nil {
		return "", err
	}
	return version, nil
}

// MinimizeToTray hides the dashboard behind the host's tray icon.
func (c *Client) MinimizeToTray(ctx context.Context) error {
	if !c.Available() {
		return nil
	}
	return c.Invoke(ctx, ChannelMinimizeToTray, nil)
}

// CheckForUpdates asks the host whether a newer release exists.
func (c *Client) CheckForUpdates(ctx context.Context) (UpdateStatus, error) {
	var st UpdateStatus
	if !c.Available() {
		return st, nil
	}
	err := c.Invoke(ctx, ChannelCheckForUpdates, &st)
	return st, err
}

// GetMenu returns the host's application menu. A detached client has none.
func (c *Client) GetMenu(ctx context.Context) ([]MenuItem, error) {
	if !c.Available() {
		return nil, nil
	}
	var items []MenuItem
	err := c.Invoke(ctx, ChannelGetMenu, &items)
	return items, err
}

// ClickMenu activates a menu item on the host.
func (c *Client) ClickMenu(ctx context.Context, id string) error {
	return c.Invoke(ctx, ChannelMenuClick, nil, id)
}

// RequestClose asks the host whether the dashboard may close. The host
// hides it to the tray instead unless it is quitting. Without a host the
// dashboard always closes.
func (c *Client) RequestClose(ctx context.Context) (bool, error) {
	if !c.Available() {
		return true, nil
	}
	var res CloseResult
	if err := c.Invoke(ctx, ChannelWindowClose, &res); err != nil {
		return false, err
	}
	return res.Closed, nil
}

// ShowWindow asks the host to bring the dashboard back from the tray.
func (c *Client) ShowWindow(ctx context.Context) error {
	if !c.Available() {
		return nil
	}
	return c.Invoke(ctx, ChannelShowWindow, nil)
}

// Typed subscriptions.

func (c *Client) onSignal(channel Channel, fn func()) func() {
	return c.On(channel, func(Event) { fn() })
}

func (c *Client) OnScrapingStart(fn func()) func() {
	return c.onSignal(ChannelStartScraping, fn)
}

func (c *Client) OnScrapingStop(fn func()) func() {
	return c.onSignal(ChannelStopScraping, fn)
}

func (c *Client) OnNavigateToSettings(fn func()) func() {
	return c.onSignal(ChannelNavigateToSettings, fn)
}

func (c *Client) OnExportConfig(fn func()) func() {
	return c.onSignal(ChannelExportConfig, fn)
}

func (c *Client) OnImportConfig(fn func()) func() {
	return c.onSignal(ChannelImportConfig, fn)
}

func (c *Client) OnTestDiscordConnection(fn func()) func() {
	return c.onSignal(ChannelTestDiscordConnection, fn)
}

func (c *Client) OnWindowShow(fn func()) func() {
	return c.onSignal(ChannelWindowShow, fn)
}

func (c *Client) OnWindowHide(fn func()) func() {
	return c.onSignal(ChannelWindowHide, fn)
}

func (c *Client) OnWindowReload(fn func()) func() {
	return c.onSignal(ChannelWindowReload, fn)
}

func (c *Client) OnAppQuit(fn func()) func() {
	return c.onSignal(ChannelAppQuit, fn)
}

// OnWindowZoom delivers the new zoom factor.
func (c *Client) OnWindowZoom(fn func(factor float64)) func() {
	return c.On(ChannelWindowZoom, func(ev Event) {
		var p ZoomPayload
		if err := ev.Decode(&p); err != nil {
			c.log.Warn("Dropping malformed zoom event")
			return
		}
		fn(p.Factor)
	})
}

// OnWindowDevTools delivers the new devtools state.
func (c *Client) OnWindowDevTools(fn func(open bool)) func() {
	return c.On(ChannelWindowDevTools, func(ev Event) {
		var p DevToolsPayload
		if err := ev.Decode(&p); err != nil {
			c.log.Warn("Dropping malformed devtools event")
			return
		}
		fn(p.Open)
	})
}

// Subscriptions collects unsubscribe funcs so a component can release all
// of them on teardown.
type Subscriptions struct {
	mu  sync.Mutex
	fns []func()
}

// Add records an unsubscribe func.
func (s *Subscriptions) Add(unsubscribe func()) {
	s.mu.Lock()
	s.fns = append(s.fns, unsubscribe)
	s.mu.Unlock()
}

// Release calls every recorded func once, newest first.
func (s *Subscriptions) Release() {
	s.mu.Lock()
	fns := s.fns
	s.fns = nil
	s.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Len returns how many subscriptions are held.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}
