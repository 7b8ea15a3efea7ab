package host

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/models"
	"github.com/gamebot-io/gamebot/internal/updater"
)

type emitted struct {
	channel bridge.Channel
	payload any
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []emitted
}

func (e *recordingEmitter) Emit(channel bridge.Channel, payload any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, emitted{channel, payload})
	return nil
}

func (e *recordingEmitter) channels() []bridge.Channel {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]bridge.Channel, len(e.events))
	for i, ev := range e.events {
		out[i] = ev.channel
	}
	return out
}

func (e *recordingEmitter) last() emitted {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.events[len(e.events)-1]
}

func (e *recordingEmitter) reset() {
	e.mu.Lock()
	e.events = nil
	e.mu.Unlock()
}

type fakeNotifier struct {
	supported bool
	err       error
	sent      [][2]string
}

func (n *fakeNotifier) Supported() bool { return n.supported }

func (n *fakeNotifier) Notify(title, body string) error {
	n.sent = append(n.sent, [2]string{title, body})
	return n.err
}

type fakeTray struct {
	tooltip string
}

func (t *fakeTray) SetTooltip(tooltip string) { t.tooltip = tooltip }

type trayRecorder struct {
	created int
	fail    bool
	actions TrayActions
	tray    *fakeTray
}

func (r *trayRecorder) factory(actions TrayActions, tooltip string) (Tray, error) {
	if r.fail {
		return nil, errors.New("no status area")
	}
	r.created++
	r.actions = actions
	r.tray = &fakeTray{tooltip: tooltip}
	return r.tray, nil
}

type fixture struct {
	app      *App
	emitter  *recordingEmitter
	notifier *fakeNotifier
	trays    *trayRecorder
	quits    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		emitter:  &recordingEmitter{},
		notifier: &fakeNotifier{supported: true},
		trays:    &trayRecorder{},
	}
	f.app = New(Options{
		Version:  "1.0.0",
		Emitter:  f.emitter,
		Notifier: f.notifier,
		Trays:    f.trays.factory,
		OnQuit:   func() { f.quits++ },
	})
	return f
}

func equalChannels(a, b []bridge.Channel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMinimizeToTrayCreatesExactlyOneTray(t *testing.T) {
	f := newFixture(t)
	if f.app.HasTray() {
		t.Fatal("tray exists before first minimize")
	}

	f.app.MinimizeToTray()
	f.app.MinimizeToTray()
	f.app.RequestClose()

	if f.trays.created != 1 {
		t.Errorf("tray created %d times, want 1", f.trays.created)
	}
	if f.trays.tray.tooltip != models.DefaultTrayTooltip {
		t.Errorf("tooltip = %q", f.trays.tray.tooltip)
	}
	if f.app.Window().Visible {
		t.Error("window still visible after minimize")
	}
	if got := f.emitter.channels(); got[0] != bridge.ChannelWindowHide {
		t.Errorf("first event = %s, want window-hide", got[0])
	}
}

func TestTrayCreationRetriedAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.trays.fail = true
	f.app.MinimizeToTray()
	if f.app.HasTray() {
		t.Fatal("tray recorded despite factory failure")
	}

	f.trays.fail = false
	f.app.MinimizeToTray()
	if !f.app.HasTray() || f.trays.created != 1 {
		t.Errorf("HasTray() = %v, created = %d", f.app.HasTray(), f.trays.created)
	}
}

func TestRequestCloseHidesUnlessQuitting(t *testing.T) {
	f := newFixture(t)

	if closed := f.app.RequestClose(); closed {
		t.Fatal("RequestClose() = true without quit flag")
	}
	if f.app.Window().Visible || !f.app.HasTray() {
		t.Errorf("close should hide to tray: window %+v, tray %v", f.app.Window(), f.app.HasTray())
	}

	f.app.Quit()
	if closed := f.app.RequestClose(); !closed {
		t.Error("RequestClose() = false while quitting")
	}
}

func TestQuitRunsOnce(t *testing.T) {
	f := newFixture(t)

	f.app.Quit()
	f.app.Quit()

	if !f.app.Quitting() {
		t.Error("Quitting() = false after Quit")
	}
	if f.quits != 1 {
		t.Errorf("OnQuit called %d times, want 1", f.quits)
	}
	if got := f.emitter.channels(); !equalChannels(got, []bridge.Channel{bridge.ChannelAppQuit}) {
		t.Errorf("events = %v, want [app-quit]", got)
	}
}

func TestActivate(t *testing.T) {
	f := newFixture(t)

	f.app.Activate()
	if !f.app.Window().Visible {
		t.Error("window hidden after activating a visible window")
	}

	f.app.MinimizeToTray()
	f.emitter.reset()
	f.app.Activate()

	if !f.app.Window().Visible {
		t.Error("Activate() did not show hidden window")
	}
	if got := f.emitter.channels(); !equalChannels(got, []bridge.Channel{bridge.ChannelWindowShow}) {
		t.Errorf("events = %v, want [window-show]", got)
	}
}

func TestZoom(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 8; i++ {
		f.app.ZoomOut()
	}
	if z := f.app.Window().Zoom; z != 0.5 {
		t.Errorf("zoom after repeated zoom out = %v, want 0.5", z)
	}
	last := f.emitter.last()
	if last.channel != bridge.ChannelWindowZoom || last.payload.(bridge.ZoomPayload).Factor != 0.5 {
		t.Errorf("last event = %+v", last)
	}

	f.app.ZoomIn()
	f.app.ZoomIn()
	if z := f.app.Window().Zoom; z != 0.7 {
		t.Errorf("zoom = %v, want 0.7", z)
	}

	f.app.ResetZoom()
	if z := f.app.Window().Zoom; z != 1.0 {
		t.Errorf("zoom after reset = %v, want 1.0", z)
	}
}

// windowEmitter reads the window state back from the app on every event,
// the way an in-process listener would.
type windowEmitter struct {
	app  *App
	seen []WindowState
}

func (e *windowEmitter) Emit(bridge.Channel, any) error {
	e.seen = append(e.seen, e.app.Window())
	return nil
}

func TestEmitterMayCallBackIntoApp(t *testing.T) {
	em := &windowEmitter{}
	trays := &trayRecorder{}
	app := New(Options{Version: "1.0.0", Emitter: em, Trays: trays.factory})
	em.app = app

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.MinimizeToTray()
		app.ShowWindow()
		app.RequestClose()
		app.Activate()
		app.ToggleDevTools()
		app.ZoomIn()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("window operations deadlocked on a re-entrant emitter")
	}

	if len(em.seen) != 6 {
		t.Fatalf("got %d events, want 6", len(em.seen))
	}
	if em.seen[0].Visible {
		t.Error("window-hide emitted before the window was hidden")
	}
	if !em.seen[1].Visible {
		t.Error("window-show emitted before the window was shown")
	}
	if last := em.seen[5]; !last.DevTools || last.Zoom != 1.1 {
		t.Errorf("final state = %+v, want devtools open and zoom 1.1", last)
	}
}

func TestToggleDevTools(t *testing.T) {
	f := newFixture(t)

	f.app.ToggleDevTools()
	if p := f.emitter.last().payload.(bridge.DevToolsPayload); !p.Open {
		t.Error("first toggle should open devtools")
	}
	f.app.ToggleDevTools()
	if p := f.emitter.last().payload.(bridge.DevToolsPayload); p.Open {
		t.Error("second toggle should close devtools")
	}
}

func TestScrapingNotifications(t *testing.T) {
	f := newFixture(t)

	f.app.StartScraping()
	f.app.StopScraping()

	if len(f.notifier.sent) != 1 || f.notifier.sent[0][0] != "Scraping started" {
		t.Fatalf("notifications = %v, want only Scraping started", f.notifier.sent)
	}

	f.app.MinimizeToTray()
	f.trays.actions.StopScraping()
	if n := len(f.notifier.sent); n != 2 || f.notifier.sent[1][0] != "Scraping stopped" {
		t.Errorf("notifications = %v, want Scraping stopped from tray", f.notifier.sent)
	}
}

func TestTraySettingsShowsAndNavigates(t *testing.T) {
	f := newFixture(t)
	f.app.MinimizeToTray()
	f.emitter.reset()

	f.trays.actions.Settings()

	want := []bridge.Channel{bridge.ChannelWindowShow, bridge.ChannelNavigateToSettings}
	if got := f.emitter.channels(); !equalChannels(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if !f.app.Window().Visible {
		t.Error("window not visible after Settings")
	}
}

func TestTrayQuit(t *testing.T) {
	f := newFixture(t)
	f.app.MinimizeToTray()
	f.trays.actions.Quit()

	if !f.app.Quitting() || f.quits != 1 {
		t.Errorf("Quitting() = %v, quits = %d", f.app.Quitting(), f.quits)
	}
}

func TestShowNotificationSkipsWhenUnsupported(t *testing.T) {
	f := newFixture(t)
	f.notifier.supported = false

	f.app.ShowNotification("Gaming Bot", "hidden")
	if len(f.notifier.sent) != 0 {
		t.Errorf("notification sent while unsupported: %v", f.notifier.sent)
	}

	f.notifier.supported = true
	f.notifier.err = errors.New("dbus gone")
	f.app.ShowNotification("Gaming Bot", "fails quietly")
	if len(f.notifier.sent) != 1 {
		t.Errorf("sent = %v", f.notifier.sent)
	}
}

func TestNilCollaborators(t *testing.T) {
	app := New(Options{})
	app.MinimizeToTray()
	app.ShowNotification("t", "b")
	app.StartScraping()
	app.Quit()
	if app.HasTray() {
		t.Error("tray without factory")
	}
}

type fakeChecker struct {
	res *updater.UpdateResult
	err error
	url string
}

func (c *fakeChecker) CheckForUpdate(context.Context) (*updater.UpdateResult, error) {
	return c.res, c.err
}

func (c *fakeChecker) SetReleasesURL(url string) { c.url = url }

func TestCheckForUpdates(t *testing.T) {
	ctx := context.Background()

	st, err := New(Options{}).CheckForUpdates(ctx)
	if err != nil || st.UpdateAvailable {
		t.Errorf("no checker: %+v, %v", st, err)
	}

	app := New(Options{Updates: &fakeChecker{res: &updater.UpdateResult{Available: true, LatestVersion: "1.1.0"}}})
	st, err = app.CheckForUpdates(ctx)
	if err != nil || !st.UpdateAvailable || st.LatestVersion != "1.1.0" {
		t.Errorf("available: %+v, %v", st, err)
	}

	app = New(Options{Updates: &fakeChecker{err: errors.New("offline")}})
	if _, err := app.CheckForUpdates(ctx); err == nil {
		t.Error("expected error from failing checker")
	}
}

func TestApplySettings(t *testing.T) {
	notifier := NewDesktopNotifier(true, "")
	checker := &fakeChecker{}
	trays := &trayRecorder{}
	app := New(Options{Notifier: notifier, Updates: checker, Trays: trays.factory})
	app.MinimizeToTray()

	s := models.NewSettings()
	s.Notifications.Enabled = false
	s.Tray.Tooltip = "Bot is idle"
	s.Updates.ReleasesURL = "https://example.com/latest"
	app.ApplySettings(s)

	if notifier.enabled.Load() {
		t.Error("notifications still enabled")
	}
	if trays.tray.tooltip != "Bot is idle" {
		t.Errorf("tooltip = %q", trays.tray.tooltip)
	}
	if checker.url != s.Updates.ReleasesURL {
		t.Errorf("releases url = %q", checker.url)
	}
}
