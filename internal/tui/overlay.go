package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone = 0
	overlayHelp = 1
)

// renderOverlay renders an overlay centered on top of a dimmed base view.
func renderOverlay(base, overlayContent string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range baseLines {
		baseLines[i] = overlayDimStyle.Render(line)
	}
	dimmed := strings.Join(baseLines, "\n")

	overlayHeight := lipgloss.Height(overlayContent)
	overlayWidth := lipgloss.Width(overlayContent)

	top := (height - overlayHeight) / 2
	left := (width - overlayWidth) / 2
	if top < 1 {
		top = 1
	}
	if left < 1 {
		left = 1
	}
	return placeOverlay(dimmed, overlayContent, top, left)
}

// placeOverlay draws content over base with its top-left corner at
// (top, left), keeping the rest of the base visible.
func placeOverlay(base, content string, top, left int) string {
	result := strings.Split(base, "\n")
	for i, line := range strings.Split(content, "\n") {
		row := top + i
		if row >= len(result) {
			continue
		}
		bg := result[row]
		bgWidth := lipgloss.Width(bg)

		// Left portion of background (columns 0..left-1)
		leftPart := ansi.Truncate(bg, left, "")
		if pad := left - lipgloss.Width(leftPart); pad > 0 {
			leftPart += strings.Repeat(" ", pad)
		}

		// Right portion of background
		rightPart := ""
		rightStart := left + lipgloss.Width(line)
		if rightStart < bgWidth {
			rightPart = ansi.Cut(bg, rightStart, bgWidth)
		}

		result[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}
	return strings.Join(result, "\n")
}
