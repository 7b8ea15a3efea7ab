package host

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

type handlerMap map[bridge.Channel]bridge.HandlerFunc

func (m handlerMap) Handle(channel bridge.Channel, fn bridge.HandlerFunc) { m[channel] = fn }

func (m handlerMap) call(t *testing.T, channel bridge.Channel, args ...any) (any, error) {
	t.Helper()
	fn, ok := m[channel]
	if !ok {
		t.Fatalf("no handler for %s", channel)
	}
	raw, err := bridge.EncodeArgs(args...)
	if err != nil {
		t.Fatal(err)
	}
	return fn(context.Background(), bridge.Args(raw))
}

func TestRegisterHandlersCoversRequests(t *testing.T) {
	f := newFixture(t)
	m := handlerMap{}
	RegisterHandlers(m, f.app)

	for _, c := range []bridge.Channel{
		bridge.ChannelShowNotification, bridge.ChannelGetAppVersion, bridge.ChannelMinimizeToTray,
		bridge.ChannelCheckForUpdates, bridge.ChannelGetMenu, bridge.ChannelMenuClick,
		bridge.ChannelWindowClose, bridge.ChannelShowWindow,
	} {
		if _, ok := m[c]; !ok {
			t.Errorf("no handler registered for %s", c)
		}
	}
}

func TestHandlers(t *testing.T) {
	f := newFixture(t)
	m := handlerMap{}
	RegisterHandlers(m, f.app)

	v, err := m.call(t, bridge.ChannelGetAppVersion)
	if err != nil || v != "1.0.0" {
		t.Errorf("get-app-version = %v, %v", v, err)
	}

	if _, err := m.call(t, bridge.ChannelShowNotification, "Gaming Bot", "App minimized to the system tray. Click the icon to reopen."); err != nil {
		t.Errorf("show-notification error = %v", err)
	}
	if len(f.notifier.sent) != 1 {
		t.Errorf("notifications = %v", f.notifier.sent)
	}

	if _, err := m.call(t, bridge.ChannelShowNotification, "title only"); status.Code(err) != codes.InvalidArgument {
		t.Errorf("show-notification with one arg code = %v", status.Code(err))
	}

	st, err := m.call(t, bridge.ChannelCheckForUpdates)
	if err != nil || st.(bridge.UpdateStatus).UpdateAvailable {
		t.Errorf("check-for-updates = %v, %v", st, err)
	}

	res, err := m.call(t, bridge.ChannelWindowClose)
	if err != nil || res.(bridge.CloseResult).Closed {
		t.Errorf("window-close = %v, %v; want not closed", res, err)
	}
	if !f.app.HasTray() {
		t.Error("window-close did not create the tray")
	}

	if _, err := m.call(t, bridge.ChannelShowWindow); err != nil || !f.app.Window().Visible {
		t.Errorf("show-window error = %v, visible = %v", err, f.app.Window().Visible)
	}

	if _, err := m.call(t, bridge.ChannelMenuClick, "nope"); status.Code(err) != codes.NotFound {
		t.Errorf("menu-click unknown code = %v", status.Code(err))
	}
	if _, err := m.call(t, bridge.ChannelMenuClick, MenuZoomIn); err != nil {
		t.Errorf("menu-click error = %v", err)
	}

	menu, err := m.call(t, bridge.ChannelGetMenu)
	if err != nil || len(menu.([]bridge.MenuItem)) != 3 {
		t.Errorf("get-menu = %v, %v", menu, err)
	}
}

func TestMinimizeHandler(t *testing.T) {
	f := newFixture(t)
	m := handlerMap{}
	RegisterHandlers(m, f.app)

	for i := 0; i < 3; i++ {
		if _, err := m.call(t, bridge.ChannelMinimizeToTray); err != nil {
			t.Fatal(err)
		}
	}
	if f.trays.created != 1 {
		t.Errorf("tray created %d times, want 1", f.trays.created)
	}
}
