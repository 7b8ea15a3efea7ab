package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamebot-io/gamebot/internal/dashboard"
	"github.com/gamebot-io/gamebot/internal/logger"
)

// View indexes, in sidebar order.
const (
	viewDashboard = iota
	viewPlatforms
	viewBotConfig
	viewEmbed
)

// scaled applies the zoom factor to a base width.
func (m *Model) scaled(base int) int {
	w := int(float64(base) * m.zoom)
	if w < 12 {
		w = 12
	}
	return w
}

// flowCards lays cards out left to right, wrapping when a row is full.
func flowCards(cards []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderDashboard(width int) string {
	s := m.state

	hero := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(colorBlurple).Render("Gaming Bot Dashboard"),
		hintStyle.Render("Monitor new games on every platform"),
		badgeActiveStyle.Render("● System Active")+"  "+
			badgeInfoStyle.Render(fmt.Sprintf("%d Platforms Monitored", len(s.Platforms))),
	)

	stats := make([]string, 0, len(s.Stats))
	for _, st := range s.Stats {
		stats = append(stats, m.renderStatCard(st))
	}

	platforms := make([]string, 0, len(s.Platforms))
	for _, p := range s.Platforms {
		platforms = append(platforms, m.renderPlatformCard(p))
	}

	actions := []string{sectionHeaderStyle.Render("Quick Actions")}
	quickKeys := map[string]string{
		"Export Configuration": "e",
		"Advanced Settings":    ",",
	}
	for _, a := range dashboard.QuickActions {
		if k, ok := quickKeys[a]; ok {
			actions = append(actions, "  "+keyHint(k, a))
		} else {
			actions = append(actions, "  "+hintStyle.Render("· "+a))
		}
	}

	activity := []string{sectionHeaderStyle.Render("Recent Activity")}
	for _, a := range s.Activity {
		activity = append(activity, renderActivity(a, width))
	}

	return strings.Join([]string{
		hero,
		"",
		flowCards(stats, width),
		sectionHeaderStyle.Render("Monitored Platforms"),
		flowCards(platforms, width),
		strings.Join(actions, "\n"),
		"",
		strings.Join(activity, "\n"),
	}, "\n")
}

func (m *Model) renderStatCard(st dashboard.Stat) string {
	lines := []string{
		cardTitleStyle.Render(st.Title),
		cardValueStyle.Render(st.Value),
	}
	if st.Change != "" {
		style := badgeInfoStyle
		switch st.ChangeKind {
		case dashboard.ChangePositive:
			style = badgeActiveStyle
		case dashboard.ChangeNegative:
			style = badgeErrorStyle
		}
		lines = append(lines, style.Render(st.Change))
	}
	lines = append(lines, hintStyle.Render(st.Description))
	return cardStyle.Width(m.scaled(20)).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPlatformCard(p dashboard.Platform) string {
	toggle := toggleOffStyle.Render("[OFF]")
	if p.Enabled {
		toggle = toggleOnStyle.Render("[ON]")
	}
	lines := []string{
		p.Logo + " " + cardValueStyle.Render(p.Name),
		renderPlatformStatus(p.Status) + " " + toggle,
		hintStyle.Render(fmt.Sprintf("%d games · %s", p.GamesFound, p.LastUpdate)),
	}
	return cardStyle.Width(m.scaled(20)).Render(strings.Join(lines, "\n"))
}

func renderPlatformStatus(status dashboard.PlatformStatus) string {
	switch status {
	case dashboard.PlatformActive:
		return badgeActiveStyle.Render("● active")
	case dashboard.PlatformError:
		return badgeErrorStyle.Render("● error")
	default:
		return badgeIdleStyle.Render("○ inactive")
	}
}

func renderActivity(a dashboard.Activity, width int) string {
	dot := badgeInfoStyle.Render("●")
	switch a.Kind {
	case dashboard.ActivitySuccess:
		dot = badgeActiveStyle.Render("●")
	case dashboard.ActivityError:
		dot = badgeErrorStyle.Render("●")
	}
	left := fmt.Sprintf("  %s %s %s", dot, a.Action, hintStyle.Render("· "+a.Detail))
	right := hintStyle.Render(a.Time)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderPlatforms(width int) string {
	s := m.state
	lines := []string{
		sectionHeaderStyle.Render("Monitored Platforms") + "  " +
			hintStyle.Render(fmt.Sprintf("%d of %d enabled", dashboard.EnabledCount(s.Platforms), len(s.Platforms))),
		"",
	}
	for i, p := range s.Platforms {
		toggle := toggleOffStyle.Render("[OFF]")
		if p.Enabled {
			toggle = toggleOnStyle.Render("[ON] ")
		}
		name := lipgloss.NewStyle().Width(14).Render(p.Name)
		status := lipgloss.NewStyle().Width(12).Render(renderPlatformStatus(p.Status))
		row := fmt.Sprintf(" %s %s %s %s %s", p.Logo, name, status, toggle,
			hintStyle.Render(fmt.Sprintf("%4d games · %s", p.GamesFound, p.LastUpdate)))
		if i == m.platformCursor {
			row = selectedItemStyle.Width(width).Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBotConfig(width int) string {
	status := m.state.BotStatus
	badge := badgeIdleStyle.Render("● " + status.Label())
	switch status {
	case dashboard.BotOnline:
		badge = badgeActiveStyle.Render("✔ " + status.Label())
	case dashboard.BotError:
		badge = badgeErrorStyle.Render("✖ " + status.Label())
	}

	return strings.Join([]string{
		sectionHeaderStyle.Render("Discord Bot Configuration") + "  " + badge,
		hintStyle.Render("Configure your bot to post new games"),
		"",
		m.botForm.View(),
		"",
		keyHint("c", "Connect Bot"),
	}, "\n")
}

func (m *Model) renderEmbed(width int) string {
	formWidth := embedFormWidth(width)

	form := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Embed Configuration"),
		"",
		m.embedForm.View(),
	)
	preview := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Preview"),
		"",
		renderEmbedPreview(m.state.Embed, m.scaled(36)),
	)

	if formWidth == width {
		return lipgloss.JoinVertical(lipgloss.Left, form, "", preview)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(formWidth).Render(form),
		preview,
	)
}

// embedFormWidth splits the embed view in two columns when it is wide
// enough, otherwise the form takes the full width.
func embedFormWidth(width int) int {
	if width/2 < 30 {
		return width
	}
	return width / 2
}

// renderEmbedPreview draws the embed the way Discord lays it out: a color
// bar on the left, title, description and footer.
func renderEmbedPreview(e dashboard.Embed, width int) string {
	color := lipgloss.Color("#5865F2")
	if dashboard.ValidColor(e.Color) {
		color = lipgloss.Color(e.Color)
	}

	author := lipgloss.NewStyle().Bold(true).Render("Gaming Bot") + " " +
		lipgloss.NewStyle().Background(colorBlurple).Foreground(lipgloss.Color("15")).Render(" BOT ") + " " +
		hintStyle.Render("Today at 14:30")

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(e.Title)+"  "+e.Thumbnail,
		"",
		lipgloss.NewStyle().Width(width-4).Render(dashboard.StripMarkdown(e.Description)),
		"",
		hintStyle.Render(e.Footer),
	)
	embed := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Width(width).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, author, embed)
}

// traceEntry is one host event shown in the devtools panel.
type traceEntry struct {
	at      time.Time
	channel string
	detail  string
}

const maxTrace = 50

func (m *Model) trace(channel, detail string) {
	m.events = append(m.events, traceEntry{at: time.Now(), channel: channel, detail: detail})
	if len(m.events) > maxTrace {
		m.events = m.events[len(m.events)-maxTrace:]
	}
	m.log.Debug("Host event", logger.String("channel", channel))
}

func (m *Model) renderDevTools(width, height int) string {
	lines := []string{badgeWarningStyle.Render("Developer Tools") + "  " +
		hintStyle.Render(fmt.Sprintf("zoom %.1f · %d events", m.zoom, len(m.events)))}

	rows := height - 2
	start := max(len(m.events)-rows, 0)
	for _, ev := range m.events[start:] {
		line := hintStyle.Render(ev.at.Format("15:04:05")) + " " + badgeInfoStyle.Render(ev.channel)
		if ev.detail != "" {
			line += " " + ev.detail
		}
		lines = append(lines, line)
	}
	return devtoolsStyle.Width(width).Height(height - 1).Render(truncateContent(strings.Join(lines, "\n"), width, height-1))
}

func (m *Model) renderHidden() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(colorBlurple).Bold(true).Render("🎮 Gaming Bot"),
			"",
			"Running in the system tray",
			hintStyle.Render("Press any key to reopen"),
		))
}
