package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	// Error display
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	// Toast display
	if m.toast != nil {
		return renderToastBar(m.toast.Title, m.toast.Body, width)
	}

	hints := getKeyHints(m)
	left := " " + hints

	right := ""
	switch {
	case !m.host.Available():
		right = lipgloss.NewStyle().Foreground(colorDim).Render("Standalone") + " "
	case m.disconnected:
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Host disconnected") + " "
	case m.connected:
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Host connected") + " "
	default:
		right = lipgloss.NewStyle().Foreground(colorDim).Render("Connecting...") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.menu.IsOpen() {
		return keyHint("←/→", "menu") + "  " + keyHint("↑/↓", "item") + "  " +
			keyHint("Enter", "select") + "  " + keyHint("Esc", "close")
	}
	if m.activeOverlay == overlayHelp {
		return keyHint("Esc", "close")
	}

	switch m.view {
	case viewBotConfig, viewEmbed:
		form := m.botForm
		if m.view == viewEmbed {
			form = m.embedForm
		}
		if form.IsEditing() {
			if form.EditingMultiline() {
				return keyHint("Ctrl+s", "save") + "  " + keyHint("Esc", "cancel")
			}
			return keyHint("Enter", "save") + "  " + keyHint("Esc", "cancel")
		}
	}

	base := keyHint("?", "help") + "  " + keyHint("Tab", "view") + "  " +
		keyHint("s", "scraping") + "  " + keyHint("m", "minimize")

	switch m.view {
	case viewPlatforms:
		return base + "  " + keyHint("j/k", "navigate") + "  " + keyHint("Space", "toggle")
	case viewBotConfig:
		return base + "  " + keyHint("Enter", "edit") + "  " + keyHint("c", "connect")
	case viewEmbed:
		return base + "  " + keyHint("Enter", "edit")
	}
	return base + "  " + keyHint("t", "test discord") + "  " + keyHint("e", "export")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderToastBar(title, body string, width int) string {
	text := lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Render(title) + "  " + body
	return statusBarStyle.
		Width(width).
		Render(" 🔔 " + text)
}
