package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/dashboard"
	"github.com/gamebot-io/gamebot/internal/logger"
)

// Notification texts.
const (
	titleGamingBot     = "Gaming Bot"
	titleConfiguration = "Configuration"
	titleDiscordTest   = "Discord Connection Test"
	titleScraping      = "Scraping"

	bodyMinimized = "App minimized to the system tray. Click the icon to reopen."
	bodyExported  = "Configuration exported successfully"
	bodyImported  = "Configuration imported successfully"
)

const toastDuration = 5 * time.Second

// Bot config form field ids.
const (
	botFieldToken = iota
	botFieldServer
	botFieldChannel
)

type toast struct {
	Title string
	Body  string
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	host    Host
	log     logger.Logger
	program *programRef
	tester  *dashboard.ConnectionTester

	// Mock dashboard data
	state            dashboard.State
	discordConnected *bool

	// Host state
	connected    bool
	disconnected bool
	version      string
	update       *bridge.UpdateStatus
	menu         *MenuBar

	// Window state driven by the host
	hidden   bool
	zoom     float64
	devtools bool
	events   []traceEntry

	// UI state
	view           int
	platformCursor int
	activeOverlay  int
	botForm        *Form
	embedForm      *Form
	width          int
	height         int

	// Status display
	err      error
	toast    *toast
	toastSeq int
}

// NewModel creates the initial TUI model.
func NewModel(host Host, program *programRef, log logger.Logger, tester *dashboard.ConnectionTester) Model {
	if log == nil {
		log = logger.Nop()
	}
	if tester == nil {
		tester = dashboard.NewConnectionTester(nil)
	}
	state := dashboard.NewState()
	return Model{
		host:      host,
		log:       log,
		program:   program,
		tester:    tester,
		state:     state,
		zoom:      1.0,
		menu:      NewMenuBar(nil),
		botForm:   newBotForm(state.Bot),
		embedForm: newEmbedForm(state.Embed),
	}
}

func newBotForm(cfg dashboard.BotConfig) *Form {
	return NewForm([]formField{
		{ID: botFieldToken, Label: "Bot Token", Value: cfg.Token, Placeholder: "Your Discord bot token", Secret: true},
		{ID: botFieldServer, Label: "Server ID", Value: cfg.ServerID, Placeholder: "Discord server ID"},
		{ID: botFieldChannel, Label: "Channel ID", Value: cfg.ChannelID, Placeholder: "Channel ID"},
	}, nil)
}

func newEmbedForm(e dashboard.Embed) *Form {
	fields := make([]formField, 0, len(dashboard.EmbedFields))
	for _, f := range dashboard.EmbedFields {
		fields = append(fields, formField{
			ID:        int(f),
			Label:     f.String(),
			Value:     e.Get(f),
			Multiline: f == dashboard.EmbedDescription,
		})
	}
	return NewForm(fields, validateEmbedField)
}

func validateEmbedField(id int, value string) error {
	if dashboard.EmbedField(id) == dashboard.EmbedColor && !dashboard.ValidColor(value) {
		return fmt.Errorf("invalid color %q, expected #RRGGBB", value)
	}
	return nil
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return connectHostCmd(m.host)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Host connection ────────────────────────────────────────────
	case HostReadyMsg:
		m.connected = true
		m.disconnected = false
		m.version = msg.Version
		m.menu = NewMenuBar(msg.Menu)
		m.log.Info("Dashboard ready",
			logger.String("version", msg.Version),
			logger.Bool("host", m.host.Available()))
		return m, nil

	case HostDisconnectedMsg:
		m.connected = false
		m.disconnected = true
		m.menu = NewMenuBar(nil)
		m.log.Warn("Lost host bridge", logger.Error(msg.Err))
		m.err = fmt.Errorf("host disconnected: %w", msg.Err)
		return m, clearErrorAfter(toastDuration)

	// ── Host events ────────────────────────────────────────────────
	case ScrapingStartedMsg:
		m.trace(string(bridge.ChannelStartScraping), "")
		m.state.Scraping = true
		return m, nil

	case ScrapingStoppedMsg:
		m.trace(string(bridge.ChannelStopScraping), "")
		m.state.Scraping = false
		return m, nil

	case NavigateToSettingsMsg:
		m.trace(string(bridge.ChannelNavigateToSettings), "")
		m.view = viewBotConfig
		m.activeOverlay = overlayNone
		return m, nil

	case ExportConfigMsg:
		m.trace(string(bridge.ChannelExportConfig), "")
		return m, m.exportConfig()

	case ImportConfigMsg:
		m.trace(string(bridge.ChannelImportConfig), "")
		return m, m.importConfig()

	case TestDiscordConnectionMsg:
		m.trace(string(bridge.ChannelTestDiscordConnection), "")
		return m, m.testDiscordConnection()

	case WindowShowMsg:
		m.trace(string(bridge.ChannelWindowShow), "")
		m.hidden = false
		return m, nil

	case WindowHideMsg:
		m.trace(string(bridge.ChannelWindowHide), "")
		m.hidden = true
		m.menu.Close()
		m.activeOverlay = overlayNone
		return m, nil

	case WindowReloadMsg:
		m.trace(string(bridge.ChannelWindowReload), "")
		m.reload()
		return m, nil

	case WindowZoomMsg:
		m.trace(string(bridge.ChannelWindowZoom), fmt.Sprintf("%.1f", msg.Factor))
		m.zoom = msg.Factor
		return m, nil

	case WindowDevToolsMsg:
		m.trace(string(bridge.ChannelWindowDevTools), fmt.Sprintf("%t", msg.Open))
		m.devtools = msg.Open
		m.updateDimensions()
		return m, nil

	case AppQuitMsg:
		m.trace(string(bridge.ChannelAppQuit), "")
		return m, m.doQuit()

	// ── Request results ────────────────────────────────────────────
	case MinimizedMsg:
		return m, notifyCmd(m.host, titleGamingBot, bodyMinimized)

	case CloseResultMsg:
		if msg.Closed {
			return m, m.doQuit()
		}
		m.hidden = true
		return m, nil

	case UpdateStatusMsg:
		st := msg.Status
		m.update = &st
		return m, nil

	// ── Toasts and errors ──────────────────────────────────────────
	case ToastMsg:
		m.toastSeq++
		m.toast = &toast{Title: msg.Title, Body: msg.Body}
		return m, clearToastAfter(toastDuration, m.toastSeq)

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.log.Warn("Request failed", logger.Error(msg.Err))
		return m, clearErrorAfter(toastDuration)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Hidden to tray: any key asks the host to bring the window back.
	if m.hidden {
		return showWindowCmd(m.host)
	}

	if key.Matches(msg, globalKeys.Close) {
		return requestCloseCmd(m.host)
	}

	if m.menu.IsOpen() {
		return m.handleMenuKey(msg)
	}

	if m.activeOverlay == overlayHelp {
		if key.Matches(msg, globalKeys.Help) || key.Matches(msg, editKeys.Cancel) {
			m.activeOverlay = overlayNone
		}
		return nil
	}

	// Field editing captures everything else.
	if form := m.activeForm(); form != nil && form.IsEditing() {
		return m.handleEditKey(form, msg)
	}

	// Menu accelerators come from the host.
	if id, ok := m.menu.Lookup(msg.String()); ok {
		return clickMenuCmd(m.host, id)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()
	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil
	case key.Matches(msg, globalKeys.Menu):
		m.menu.Open()
		return nil
	case key.Matches(msg, globalKeys.NextView):
		m.view = (m.view + 1) % len(viewNames)
		return nil
	case key.Matches(msg, globalKeys.PrevView):
		m.view = (m.view - 1 + len(viewNames)) % len(viewNames)
		return nil
	case key.Matches(msg, viewKeys.Dashboard):
		m.view = viewDashboard
		return nil
	case key.Matches(msg, viewKeys.Platforms):
		m.view = viewPlatforms
		return nil
	case key.Matches(msg, viewKeys.BotConfig), key.Matches(msg, actionKeys.Settings):
		m.view = viewBotConfig
		return nil
	case key.Matches(msg, viewKeys.Embed):
		m.view = viewEmbed
		return nil
	case key.Matches(msg, actionKeys.ToggleScraping):
		return m.toggleScraping()
	case key.Matches(msg, actionKeys.Minimize):
		return minimizeCmd(m.host)
	case key.Matches(msg, actionKeys.TestDiscord):
		return m.testDiscordConnection()
	case key.Matches(msg, actionKeys.CheckUpdates):
		return checkUpdatesCmd(m.host)
	case key.Matches(msg, actionKeys.Export):
		return m.exportConfig()
	case key.Matches(msg, actionKeys.Import):
		return m.importConfig()
	}

	switch m.view {
	case viewPlatforms:
		return m.handlePlatformKey(msg)
	case viewBotConfig:
		return m.handleFormKey(m.botForm, msg)
	case viewEmbed:
		return m.handleFormKey(m.embedForm, msg)
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Close):
		m.menu.Close()
	case key.Matches(msg, menuKeys.Left):
		m.menu.Left()
	case key.Matches(msg, menuKeys.Right):
		m.menu.Right()
	case key.Matches(msg, menuKeys.Up):
		m.menu.Up()
	case key.Matches(msg, menuKeys.Down):
		m.menu.Down()
	case key.Matches(msg, menuKeys.Select):
		id := m.menu.Selected()
		m.menu.Close()
		if id != "" {
			return clickMenuCmd(m.host, id)
		}
	}
	return nil
}

func (m *Model) handlePlatformKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Up):
		if m.platformCursor > 0 {
			m.platformCursor--
		}
	case key.Matches(msg, listKeys.Down):
		if m.platformCursor < len(m.state.Platforms)-1 {
			m.platformCursor++
		}
	case key.Matches(msg, listKeys.Toggle):
		if p, ok := m.selectedPlatform(); ok {
			m.state.Platforms = dashboard.TogglePlatform(m.state.Platforms, p.ID)
		}
	case key.Matches(msg, listKeys.Configure):
		if p, ok := m.selectedPlatform(); ok {
			m.log.Info("Configuring platform", logger.String("platform", p.ID))
		}
	}
	return nil
}

func (m *Model) selectedPlatform() (dashboard.Platform, bool) {
	if m.platformCursor < 0 || m.platformCursor >= len(m.state.Platforms) {
		return dashboard.Platform{}, false
	}
	return m.state.Platforms[m.platformCursor], true
}

func (m *Model) handleFormKey(form *Form, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Up):
		form.MoveUp()
	case key.Matches(msg, formKeys.Down):
		form.MoveDown()
	case key.Matches(msg, formKeys.Edit):
		form.StartEdit()
	case key.Matches(msg, formKeys.Connect):
		if form == m.botForm {
			status := m.state.ConnectBot()
			m.log.Info("Bot connect", logger.String("status", string(status)))
		}
	}
	return nil
}

func (m *Model) handleEditKey(form *Form, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, editKeys.Cancel):
		form.CancelEdit()
		return nil
	case key.Matches(msg, editKeys.Save),
		msg.Type == tea.KeyEnter && !form.EditingMultiline():
		changed, id, value, err := form.FinishEdit()
		if err != nil {
			m.err = err
			return clearErrorAfter(toastDuration)
		}
		if changed {
			m.applyField(form, id, value)
		}
		return nil
	}
	return form.Update(msg)
}

// applyField copies a committed form value into the dashboard state.
func (m *Model) applyField(form *Form, id int, value string) {
	if form == m.embedForm {
		m.state.Embed = m.state.Embed.Set(dashboard.EmbedField(id), value)
		return
	}
	switch id {
	case botFieldToken:
		m.state.Bot.Token = value
	case botFieldServer:
		m.state.Bot.ServerID = value
	case botFieldChannel:
		m.state.Bot.ChannelID = value
	}
}

func (m *Model) activeForm() *Form {
	switch m.view {
	case viewBotConfig:
		return m.botForm
	case viewEmbed:
		return m.embedForm
	}
	return nil
}

// ── Actions ──────────────────────────────────────────────────────

func (m *Model) toggleScraping() tea.Cmd {
	running := m.state.ToggleScraping()
	return notifyCmd(m.host, titleScraping, dashboard.ScrapingText(running))
}

func (m *Model) exportConfig() tea.Cmd {
	m.log.Info("Exporting configuration")
	return notifyCmd(m.host, titleConfiguration, bodyExported)
}

func (m *Model) importConfig() tea.Cmd {
	m.log.Info("Importing configuration")
	return notifyCmd(m.host, titleConfiguration, bodyImported)
}

func (m *Model) testDiscordConnection() tea.Cmd {
	ok := m.tester.Test()
	m.discordConnected = &ok
	return notifyCmd(m.host, titleDiscordTest, dashboard.ConnectionResultText(ok))
}

// reload resets the dashboard to its seed state. Zoom and devtools survive
// the way they do for a reloaded page.
func (m *Model) reload() {
	m.state = dashboard.NewState()
	m.discordConnected = nil
	m.view = viewDashboard
	m.platformCursor = 0
	m.activeOverlay = overlayNone
	m.botForm = newBotForm(m.state.Bot)
	m.embedForm = newEmbedForm(m.state.Embed)
	m.updateDimensions()
}

// doQuit clears the program ref and quits. The caller releases bridge
// subscriptions and closes the client once the program returns.
func (m *Model) doQuit() tea.Cmd {
	if m.program != nil {
		m.program.Clear()
	}
	return tea.Quit
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	if m.width == 0 {
		return
	}
	layout := computeLayout(m.width, m.height, m.devtools)
	inner := max(layout.contentWidth-2, 1)
	m.botForm.SetWidth(inner)
	m.embedForm.SetWidth(embedFormWidth(inner) - 2)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	// Minimum size check
	if m.width < 80 || m.height < 24 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 80x24, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	if m.hidden {
		return m.renderHidden()
	}

	if !m.connected && !m.disconnected {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorDim).
			Render("Connecting to host...")
	}

	layout := computeLayout(m.width, m.height, m.devtools)

	header := renderHeader(&m, m.width)
	menuBar := m.menu.View(m.width, !m.host.Available())
	panels := renderPanels(renderSidebar(m.view), m.renderContent(layout.contentWidth-2), layout)
	statusBar := renderStatusBar(&m, m.width)

	parts := []string{header, menuBar, panels}
	if m.devtools {
		parts = append(parts, m.renderDevTools(m.width, layout.devtools))
	}
	parts = append(parts, statusBar)
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	switch {
	case m.menu.IsOpen():
		view = placeOverlay(view, m.menu.DropdownView(), 2, m.menu.DropdownOffset())
	case m.activeOverlay == overlayHelp:
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}

	return view
}

func (m *Model) renderContent(width int) string {
	switch m.view {
	case viewPlatforms:
		return m.renderPlatforms(width)
	case viewBotConfig:
		return m.renderBotConfig(width)
	case viewEmbed:
		return m.renderEmbed(width)
	}
	return m.renderDashboard(width)
}
