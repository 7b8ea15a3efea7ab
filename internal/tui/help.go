package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+c / Ctrl+w", "Close (hides to tray)"},
			{"Ctrl+q", "Quit"},
			{"? / Ctrl+h", "Toggle help"},
			{"F10", "Open menu bar"},
			{"Tab / 1-4", "Switch view"},
		},
	},
	{
		title: "Actions",
		keys: []helpKey{
			{"s", "Start / stop scraping"},
			{"m", "Minimize to tray"},
			{"t", "Test Discord connection"},
			{"u", "Check for updates"},
			{"e / i", "Export / import config"},
			{",", "Bot settings"},
		},
	},
	{
		title: "Platforms",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate platforms"},
			{"Space", "Enable / disable"},
			{"Enter", "Configure"},
		},
	},
	{
		title: "Forms",
		keys: []helpKey{
			{"j/k", "Navigate fields"},
			{"Enter", "Edit / save field"},
			{"Ctrl+s", "Save multiline field"},
			{"Esc", "Cancel edit"},
			{"c", "Connect bot"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(18).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
