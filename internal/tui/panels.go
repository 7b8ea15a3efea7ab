package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	sidebarWidth   = 22
	devtoolsHeight = 8
)

// screenLayout holds computed dimensions for sidebar + content.
type screenLayout struct {
	sidebarWidth  int
	contentWidth  int
	contentHeight int
	devtools      int
}

func computeLayout(width, height int, devtoolsOpen bool) screenLayout {
	// Reserve: header, menu bar, status bar
	contentHeight := height - 3
	devtools := 0
	if devtoolsOpen {
		devtools = devtoolsHeight
		contentHeight -= devtools
	}
	if contentHeight < 3 {
		contentHeight = 3
	}

	contentWidth := width - sidebarWidth
	if contentWidth < 10 {
		contentWidth = 10
	}

	return screenLayout{
		sidebarWidth:  sidebarWidth,
		contentWidth:  contentWidth,
		contentHeight: contentHeight,
		devtools:      devtools,
	}
}

func renderPanels(sidebar, content string, layout screenLayout) string {
	innerHeight := max(layout.contentHeight-2, 1)
	sideInner := max(layout.sidebarWidth-2, 1)
	contentInner := max(layout.contentWidth-2, 1)

	left := unfocusedBorderStyle.
		Width(sideInner).
		Height(innerHeight).
		Render(truncateContent(sidebar, sideInner, innerHeight))

	right := focusedBorderStyle.
		Width(contentInner).
		Height(innerHeight).
		Render(truncateContent(content, contentInner, innerHeight))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// truncateContent ensures content fits within the given dimensions.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if len(lines) > height {
		lines = lines[:height]
	}

	// Truncate long lines (ANSI-aware)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}

var viewNames = []string{"Dashboard", "Platforms", "Bot Config", "Embed Preview"}

func renderSidebar(active int) string {
	lines := []string{sectionHeaderStyle.Render("Views"), ""}
	for i, name := range viewNames {
		label := " " + string(rune('1'+i)) + "  " + name
		if i == active {
			lines = append(lines, activeTabStyle.Render("▸"+label[1:]))
		} else {
			lines = append(lines, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}
