package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

func renderHeader(m *Model, width int) string {
	logo := lipgloss.NewStyle().Foreground(colorBlurple).Render("🎮")
	name := lipgloss.NewStyle().Bold(true).Render("Gaming Bot Dashboard")

	left := fmt.Sprintf(" %s %s  %s", logo, name, renderScrapingBadge(m.state.Scraping))

	var rightParts []string
	if m.discordConnected != nil {
		if *m.discordConnected {
			rightParts = append(rightParts, badgeActiveStyle.Render("Discord ✔"))
		} else {
			rightParts = append(rightParts, badgeErrorStyle.Render("Discord ✖"))
		}
	}
	if m.update != nil {
		rightParts = append(rightParts, renderUpdateBadge(*m.update))
	}
	if m.version != "" {
		rightParts = append(rightParts, hintStyle.Render("v"+m.version))
	}
	right := strings.Join(rightParts, "  ") + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderScrapingBadge(scraping bool) string {
	if scraping {
		return badgeActiveStyle.Render("● Scraping")
	}
	return badgeIdleStyle.Render("○ Idle")
}

func renderUpdateBadge(st bridge.UpdateStatus) string {
	if !st.UpdateAvailable {
		return badgeIdleStyle.Render("Up to date")
	}
	label := "⬆ Update available"
	if st.LatestVersion != "" {
		label += " (" + st.LatestVersion + ")"
	}
	return badgeWarningStyle.Render(label)
}
