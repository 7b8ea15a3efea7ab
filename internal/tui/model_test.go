package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/dashboard"
	"github.com/gamebot-io/gamebot/internal/logger"
)

type notification struct {
	title string
	body  string
}

// fakeHost records requests and answers them from canned values.
type fakeHost struct {
	mu        sync.Mutex
	available bool
	closed    bool
	clicks    []string
	notes     []notification
	minimized int
	menu      []bridge.MenuItem
	startErr  error
}

func (f *fakeHost) Available() bool { return f.available }

func (f *fakeHost) Start(context.Context) error { return f.startErr }

func (f *fakeHost) ShowNotification(_ context.Context, title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, notification{title, body})
	return nil
}

func (f *fakeHost) GetAppVersion(context.Context) (string, error) { return "2.3.4", nil }

func (f *fakeHost) MinimizeToTray(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.minimized++
	return nil
}

func (f *fakeHost) CheckForUpdates(context.Context) (bridge.UpdateStatus, error) {
	return bridge.UpdateStatus{UpdateAvailable: true, LatestVersion: "2.4.0"}, nil
}

func (f *fakeHost) GetMenu(context.Context) ([]bridge.MenuItem, error) { return f.menu, nil }

func (f *fakeHost) ClickMenu(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicks = append(f.clicks, id)
	return nil
}

func (f *fakeHost) RequestClose(context.Context) (bool, error) { return f.closed, nil }

func (f *fakeHost) ShowWindow(context.Context) error { return nil }

func (f *fakeHost) lastNote() notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notes) == 0 {
		return notification{}
	}
	return f.notes[len(f.notes)-1]
}

var testMenu = []bridge.MenuItem{
	{Label: "File", Submenu: []bridge.MenuItem{
		{ID: "file.export-config", Label: "Export config", Accelerator: "CmdOrCtrl+E"},
		{Separator: true},
		{ID: "file.quit", Label: "Quit", Accelerator: "CmdOrCtrl+Q"},
	}},
	{Label: "Bot", Submenu: []bridge.MenuItem{
		{ID: "bot.start-scraping", Label: "Start scraping", Accelerator: "CmdOrCtrl+S"},
		{ID: "bot.test-discord-connection", Label: "Test Discord connection"},
	}},
}

func newTestModel(host *fakeHost, roll float64) Model {
	tester := dashboard.NewConnectionTester(func() float64 { return roll })
	return NewModel(host, &programRef{}, logger.Nop(), tester)
}

// update feeds msg to the model and returns the new model with its command.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestConnectHostCmd(t *testing.T) {
	host := &fakeHost{available: true, menu: testMenu}
	msg := connectHostCmd(host)()
	ready, ok := msg.(HostReadyMsg)
	if !ok {
		t.Fatalf("got %T, want HostReadyMsg", msg)
	}
	if ready.Version != "2.3.4" || len(ready.Menu) != 2 {
		t.Errorf("unexpected ready msg: %+v", ready)
	}

	host.startErr = errors.New("refused")
	if _, ok := connectHostCmd(host)().(HostDisconnectedMsg); !ok {
		t.Error("start failure should report a disconnect")
	}
}

func TestDetachedFallbacks(t *testing.T) {
	var got []notification
	client := bridge.Detached(bridge.ClientOptions{
		Notify: func(title, body string) { got = append(got, notification{title, body}) },
	})
	m := newTestModel(&fakeHost{}, 0.9)
	m.host = client

	ready, ok := connectHostCmd(client)().(HostReadyMsg)
	if !ok {
		t.Fatal("detached client should be ready immediately")
	}
	if ready.Version != "1.0.0" || len(ready.Menu) != 0 {
		t.Errorf("unexpected ready msg: %+v", ready)
	}

	if msg := minimizeCmd(client)(); msg != (MinimizedMsg{}) {
		t.Errorf("minimize = %#v", msg)
	}
	if msg := checkUpdatesCmd(client)(); msg != (UpdateStatusMsg{}) {
		t.Errorf("updates = %#v, want no update", msg)
	}
	if msg := requestCloseCmd(client)(); msg != (CloseResultMsg{Closed: true}) {
		t.Errorf("close = %#v, want closed", msg)
	}

	m, cmd := update(t, m, keyPress("s"))
	if cmd != nil {
		cmd()
	}
	if len(got) != 1 || got[0] != (notification{"Scraping", "Scraping started"}) {
		t.Errorf("fallback notifications = %+v", got)
	}
	if !m.state.Scraping {
		t.Error("scraping not toggled")
	}
}

func TestHeaderScrapingToggleNotifies(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0.9)

	m, cmd := update(t, m, keyPress("s"))
	cmd()
	if !m.state.Scraping || host.lastNote() != (notification{"Scraping", "Scraping started"}) {
		t.Fatalf("start: scraping=%v note=%+v", m.state.Scraping, host.lastNote())
	}

	m, cmd = update(t, m, keyPress("s"))
	cmd()
	if m.state.Scraping || host.lastNote() != (notification{"Scraping", "Scraping stopped"}) {
		t.Fatalf("stop: scraping=%v note=%+v", m.state.Scraping, host.lastNote())
	}
}

func TestHostScrapingEventsSetFlag(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0.9)

	m, cmd := update(t, m, ScrapingStartedMsg{})
	if cmd != nil || !m.state.Scraping {
		t.Fatal("start event should set the flag without a request")
	}
	m, _ = update(t, m, ScrapingStartedMsg{})
	if !m.state.Scraping {
		t.Fatal("repeated start should keep scraping on")
	}
	m, _ = update(t, m, ScrapingStoppedMsg{})
	if m.state.Scraping {
		t.Fatal("stop event should clear the flag")
	}
	if len(m.events) != 3 {
		t.Errorf("traced %d events, want 3", len(m.events))
	}
}

func TestNotificationEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		roll float64
		want notification
	}{
		{"export", ExportConfigMsg{}, 0, notification{"Configuration", "Configuration exported successfully"}},
		{"import", ImportConfigMsg{}, 0, notification{"Configuration", "Configuration imported successfully"}},
		{"discord ok", TestDiscordConnectionMsg{}, 0.75, notification{"Discord Connection Test", "Connection succeeded!"}},
		{"discord fail", TestDiscordConnectionMsg{}, 0.25, notification{"Discord Connection Test", "Connection error"}},
		{"minimized", MinimizedMsg{}, 0, notification{"Gaming Bot", "App minimized to the system tray. Click the icon to reopen."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{available: true}
			m := newTestModel(host, tt.roll)
			_, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("expected a notification command")
			}
			cmd()
			if got := host.lastNote(); got != tt.want {
				t.Errorf("notification = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMinimizeKey(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0)
	_, cmd := update(t, m, keyPress("m"))
	if msg := cmd(); msg != (MinimizedMsg{}) {
		t.Fatalf("got %#v", msg)
	}
	if host.minimized != 1 {
		t.Errorf("minimized = %d, want 1", host.minimized)
	}
}

func TestNavigateToSettings(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	m.activeOverlay = overlayHelp
	m, _ = update(t, m, NavigateToSettingsMsg{})
	if m.view != viewBotConfig || m.activeOverlay != overlayNone {
		t.Errorf("view = %d overlay = %d", m.view, m.activeOverlay)
	}
}

func TestCloseHidesUnlessHostCloses(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0)

	_, cmd := update(t, m, keyPress("ctrl+c"))
	msg := cmd()
	if msg != (CloseResultMsg{Closed: false}) {
		t.Fatalf("close result = %#v", msg)
	}
	m, cmd = update(t, m, msg)
	if !m.hidden || cmd != nil {
		t.Fatal("dashboard should be hidden, not quit")
	}

	// Any key while hidden asks the host to show the window.
	_, cmd = update(t, m, keyPress("x"))
	if msg := cmd(); msg != (WindowShowMsg{}) {
		t.Fatalf("show = %#v", msg)
	}
	m, _ = update(t, m, WindowShowMsg{})
	if m.hidden {
		t.Error("window-show should unhide")
	}

	_, cmd = update(t, m, CloseResultMsg{Closed: true})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("closed result should quit")
	}
}

func TestAppQuitQuits(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	_, cmd := update(t, m, AppQuitMsg{})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("app-quit should quit")
	}
}

func TestWindowEvents(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)

	m, _ = update(t, m, WindowHideMsg{})
	if !m.hidden {
		t.Fatal("window-hide should hide")
	}
	m, _ = update(t, m, WindowShowMsg{})
	m, _ = update(t, m, WindowZoomMsg{Factor: 1.3})
	if m.zoom != 1.3 {
		t.Errorf("zoom = %v", m.zoom)
	}
	m, _ = update(t, m, WindowDevToolsMsg{Open: true})
	if !m.devtools {
		t.Error("devtools should be open")
	}

	m.state.Scraping = true
	m.view = viewEmbed
	m.state.Platforms = dashboard.TogglePlatform(m.state.Platforms, "steam")
	m, _ = update(t, m, WindowReloadMsg{})
	if m.state.Scraping || m.view != viewDashboard || !m.state.Platforms[0].Enabled {
		t.Error("reload should reset dashboard state")
	}
	if m.zoom != 1.3 || !m.devtools {
		t.Error("reload should keep zoom and devtools")
	}
}

func TestAcceleratorClicksMenu(t *testing.T) {
	host := &fakeHost{available: true, menu: testMenu}
	m := newTestModel(host, 0)
	m, _ = update(t, m, HostReadyMsg{Version: "2.3.4", Menu: testMenu})

	_, cmd := update(t, m, keyPress("ctrl+s"))
	if cmd == nil {
		t.Fatal("ctrl+s should click the menu")
	}
	cmd()
	_, cmd = update(t, m, keyPress("ctrl+q"))
	cmd()

	want := []string{"bot.start-scraping", "file.quit"}
	if strings.Join(host.clicks, ",") != strings.Join(want, ",") {
		t.Errorf("clicks = %v, want %v", host.clicks, want)
	}
}

func TestMenuNavigationClicks(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0)
	m, _ = update(t, m, HostReadyMsg{Menu: testMenu})

	m, _ = update(t, m, keyPress("f10"))
	if !m.menu.IsOpen() {
		t.Fatal("F10 should open the menu")
	}
	m, _ = update(t, m, keyPress("down")) // skips the separator
	_, cmd := update(t, m, keyPress("enter"))
	cmd()
	if len(host.clicks) != 1 || host.clicks[0] != "file.quit" {
		t.Errorf("clicks = %v", host.clicks)
	}
}

func TestPlatformToggle(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	m, _ = update(t, m, keyPress("2"))
	m, _ = update(t, m, keyPress("j"))
	m, _ = update(t, m, keyPress("j"))
	m, _ = update(t, m, keyPress("space"))

	if !m.state.Platforms[2].Enabled {
		t.Error("playstation should be enabled")
	}
	for _, i := range []int{0, 1, 3} {
		if m.state.Platforms[i] != dashboard.DefaultPlatforms()[i] {
			t.Errorf("platform %d changed", i)
		}
	}
}

func TestBotConfigConnect(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	m, _ = update(t, m, keyPress("3"))

	m, _ = update(t, m, keyPress("c"))
	if m.state.BotStatus != dashboard.BotError {
		t.Fatalf("empty config status = %s", m.state.BotStatus)
	}

	for _, value := range []string{"token-1234", "42", "99"} {
		m, _ = update(t, m, keyPress("enter"))
		m = typeText(t, m, value)
		m, _ = update(t, m, keyPress("enter"))
		m, _ = update(t, m, keyPress("j"))
	}
	if m.state.Bot != (dashboard.BotConfig{Token: "token-1234", ServerID: "42", ChannelID: "99"}) {
		t.Fatalf("bot config = %+v", m.state.Bot)
	}

	m, _ = update(t, m, keyPress("c"))
	if m.state.BotStatus != dashboard.BotOnline {
		t.Errorf("status = %s, want online", m.state.BotStatus)
	}
}

func TestEmbedColorValidation(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	m, _ = update(t, m, keyPress("4"))
	m, _ = update(t, m, keyPress("j"))
	m, _ = update(t, m, keyPress("j")) // Color

	m, _ = update(t, m, keyPress("enter"))
	m = typeText(t, m, "zz")
	m, _ = update(t, m, keyPress("enter"))
	if m.err == nil {
		t.Fatal("invalid color should set an error")
	}
	if m.state.Embed.Color != "#5865F2" {
		t.Errorf("color changed to %q", m.state.Embed.Color)
	}
}

func TestEditingCapturesKeys(t *testing.T) {
	host := &fakeHost{available: true}
	m := newTestModel(host, 0)
	m, _ = update(t, m, keyPress("3"))
	m, _ = update(t, m, keyPress("enter"))
	m = typeText(t, m, "s")
	if m.state.Scraping {
		t.Error("typing in a field must not toggle scraping")
	}
	m, _ = update(t, m, keyPress("esc"))
	if m.botForm.IsEditing() || m.state.Bot.Token != "" {
		t.Error("esc should cancel without saving")
	}
}

func TestToastClearsOnlyLatest(t *testing.T) {
	m := newTestModel(&fakeHost{}, 0)
	m, _ = update(t, m, ToastMsg{Title: "a", Body: "1"})
	m, _ = update(t, m, ToastMsg{Title: "b", Body: "2"})
	m, _ = update(t, m, clearToastMsg{seq: 1})
	if m.toast == nil || m.toast.Title != "b" {
		t.Fatal("stale clear removed the newer toast")
	}
	m, _ = update(t, m, clearToastMsg{seq: 2})
	if m.toast != nil {
		t.Error("toast not cleared")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(&fakeHost{available: true}, 0)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.View(), "Connecting to host") {
		t.Error("expected connecting screen")
	}

	m, _ = update(t, m, HostReadyMsg{Version: "2.3.4", Menu: testMenu})
	for _, v := range []string{"1", "2", "3", "4"} {
		m, _ = update(t, m, keyPress(v))
		if out := m.View(); !strings.Contains(out, "Gaming Bot Dashboard") {
			t.Errorf("view %s missing header", v)
		}
	}

	m, _ = update(t, m, WindowHideMsg{})
	if !strings.Contains(m.View(), "system tray") {
		t.Error("expected hidden screen")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected size warning")
	}
}
