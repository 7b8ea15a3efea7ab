// Package tui implements the terminal dashboard for Gaming Bot.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/dashboard"
	"github.com/gamebot-io/gamebot/internal/logger"
)

// Host is the part of the bridge client the dashboard calls into.
type Host interface {
	Available() bool
	Start(ctx context.Context) error
	ShowNotification(ctx context.Context, title, body string) error
	GetAppVersion(ctx context.Context) (string, error)
	MinimizeToTray(ctx context.Context) error
	CheckForUpdates(ctx context.Context) (bridge.UpdateStatus, error)
	GetMenu(ctx context.Context) ([]bridge.MenuItem, error)
	ClickMenu(ctx context.Context, id string) error
	RequestClose(ctx context.Context) (bool, error)
	ShowWindow(ctx context.Context) error
}

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options configures Run.
type Options struct {
	Logger logger.Logger
	// Tester decides simulated Discord connection tests. Nil uses a random
	// source.
	Tester *dashboard.ConnectionTester
}

// Run launches the dashboard on the given bridge client and blocks until
// the user quits or the host asks the dashboard to close.
func Run(client *bridge.Client, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	ref := &programRef{}
	client.SetNotify(func(title, body string) {
		ref.Send(ToastMsg{Title: title, Body: body})
	})
	client.SetOnDisconnect(func(err error) {
		ref.Send(HostDisconnectedMsg{Err: err})
	})

	subs := bindHostEvents(client, ref)
	defer subs.Release()

	model := NewModel(client, ref, log.Named("tui"), opts.Tester)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Store program reference for goroutine sends
	ref.Set(p)

	_, err := p.Run()
	ref.Clear()
	return err
}

// bindHostEvents turns every host event into a tea message. Listeners are
// registered before the stream opens so nothing after the handshake is
// missed.
func bindHostEvents(client *bridge.Client, ref *programRef) *bridge.Subscriptions {
	subs := &bridge.Subscriptions{}
	send := func(msg tea.Msg) func() {
		return func() { ref.Send(msg) }
	}

	subs.Add(client.OnScrapingStart(send(ScrapingStartedMsg{})))
	subs.Add(client.OnScrapingStop(send(ScrapingStoppedMsg{})))
	subs.Add(client.OnNavigateToSettings(send(NavigateToSettingsMsg{})))
	subs.Add(client.OnExportConfig(send(ExportConfigMsg{})))
	subs.Add(client.OnImportConfig(send(ImportConfigMsg{})))
	subs.Add(client.OnTestDiscordConnection(send(TestDiscordConnectionMsg{})))
	subs.Add(client.OnWindowShow(send(WindowShowMsg{})))
	subs.Add(client.OnWindowHide(send(WindowHideMsg{})))
	subs.Add(client.OnWindowReload(send(WindowReloadMsg{})))
	subs.Add(client.OnAppQuit(send(AppQuitMsg{})))
	subs.Add(client.OnWindowZoom(func(factor float64) {
		ref.Send(WindowZoomMsg{Factor: factor})
	}))
	subs.Add(client.OnWindowDevTools(func(open bool) {
		ref.Send(WindowDevToolsMsg{Open: open})
	}))
	return subs
}
