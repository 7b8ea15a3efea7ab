package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

// MenuBar renders the host's application menu and tracks keyboard
// navigation through it.
type MenuBar struct {
	menus  []bridge.MenuItem
	accels map[string]string // key string -> item id
	open   bool
	top    int
	item   int
}

// NewMenuBar builds a menu bar from the host's menu.
func NewMenuBar(menus []bridge.MenuItem) *MenuBar {
	mb := &MenuBar{
		menus:  menus,
		accels: make(map[string]string),
	}
	for _, top := range menus {
		for _, it := range top.Submenu {
			if it.Separator || it.ID == "" || it.Accelerator == "" {
				continue
			}
			mb.accels[acceleratorKey(it.Accelerator)] = it.ID
		}
	}
	return mb
}

// acceleratorKey converts an accelerator such as "CmdOrCtrl+Shift+S" to
// the key string bubbletea reports for it.
func acceleratorKey(accel string) string {
	parts := strings.Split(accel, "+")
	// "CmdOrCtrl++" splits into a trailing empty part.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], "Plus")
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch strings.ToLower(p) {
		case "cmdorctrl", "commandorcontrol", "ctrl", "control", "cmd", "command":
			out = append(out, "ctrl")
		case "shift":
			out = append(out, "shift")
		case "alt", "option":
			out = append(out, "alt")
		case "plus":
			out = append(out, "+")
		default:
			out = append(out, strings.ToLower(p))
		}
	}
	return strings.Join(out, "+")
}

// acceleratorLabel renders an accelerator for display.
func acceleratorLabel(accel string) string {
	return strings.ReplaceAll(accel, "CmdOrCtrl", "Ctrl")
}

// Empty reports whether the host supplied no menu.
func (mb *MenuBar) Empty() bool {
	return mb == nil || len(mb.menus) == 0
}

// Lookup returns the menu item bound to a key string.
func (mb *MenuBar) Lookup(key string) (string, bool) {
	if mb == nil {
		return "", false
	}
	id, ok := mb.accels[key]
	return id, ok
}

// IsOpen reports whether a dropdown is showing.
func (mb *MenuBar) IsOpen() bool {
	return mb != nil && mb.open
}

// Open shows the first dropdown.
func (mb *MenuBar) Open() {
	if mb.Empty() {
		return
	}
	mb.open = true
	mb.top = 0
	mb.item = mb.firstSelectable(0)
}

// Close hides the dropdown.
func (mb *MenuBar) Close() {
	mb.open = false
}

// Left moves to the previous top-level menu.
func (mb *MenuBar) Left() {
	mb.top = (mb.top - 1 + len(mb.menus)) % len(mb.menus)
	mb.item = mb.firstSelectable(mb.top)
}

// Right moves to the next top-level menu.
func (mb *MenuBar) Right() {
	mb.top = (mb.top + 1) % len(mb.menus)
	mb.item = mb.firstSelectable(mb.top)
}

// Up moves to the previous item, skipping separators.
func (mb *MenuBar) Up() {
	items := mb.menus[mb.top].Submenu
	for i := mb.item - 1; i >= 0; i-- {
		if !items[i].Separator {
			mb.item = i
			return
		}
	}
}

// Down moves to the next item, skipping separators.
func (mb *MenuBar) Down() {
	items := mb.menus[mb.top].Submenu
	for i := mb.item + 1; i < len(items); i++ {
		if !items[i].Separator {
			mb.item = i
			return
		}
	}
}

// Selected returns the id of the highlighted item.
func (mb *MenuBar) Selected() string {
	if !mb.IsOpen() {
		return ""
	}
	items := mb.menus[mb.top].Submenu
	if mb.item < 0 || mb.item >= len(items) {
		return ""
	}
	return items[mb.item].ID
}

func (mb *MenuBar) firstSelectable(top int) int {
	for i, it := range mb.menus[top].Submenu {
		if !it.Separator {
			return i
		}
	}
	return -1
}

// View renders the single-line menu bar.
func (mb *MenuBar) View(width int, standalone bool) string {
	var parts []string
	if mb.Empty() {
		label := "no menu"
		if standalone {
			label = "standalone"
		}
		parts = append(parts, hintStyle.Render(label))
	}
	for i, top := range mb.menusOrNil() {
		title := " " + top.Label + " "
		if mb.open && i == mb.top {
			parts = append(parts, menuTitleOpenStyle.Render(title))
		} else {
			parts = append(parts, menuItemStyle.Render(title))
		}
	}
	left := " " + strings.Join(parts, "")
	right := ""
	if !mb.Empty() {
		right = keyHint("F10", "menu") + " "
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return menuBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (mb *MenuBar) menusOrNil() []bridge.MenuItem {
	if mb == nil {
		return nil
	}
	return mb.menus
}

// DropdownOffset returns the column where the open dropdown starts.
func (mb *MenuBar) DropdownOffset() int {
	col := 1
	for i := 0; i < mb.top; i++ {
		col += lipgloss.Width(" " + mb.menus[i].Label + " ")
	}
	return col
}

// DropdownView renders the open dropdown.
func (mb *MenuBar) DropdownView() string {
	if !mb.IsOpen() {
		return ""
	}
	items := mb.menus[mb.top].Submenu

	labelWidth, accelWidth := 0, 0
	for _, it := range items {
		labelWidth = max(labelWidth, lipgloss.Width(it.Label))
		accelWidth = max(accelWidth, lipgloss.Width(acceleratorLabel(it.Accelerator)))
	}
	rowWidth := labelWidth + accelWidth + 4

	var rows []string
	for i, it := range items {
		if it.Separator {
			rows = append(rows, hintStyle.Render(strings.Repeat("─", rowWidth)))
			continue
		}
		label := lipgloss.NewStyle().Width(labelWidth + 3).Render(" " + it.Label)
		accel := menuAccelStyle.Render(acceleratorLabel(it.Accelerator))
		row := lipgloss.NewStyle().Width(rowWidth).Render(label + accel)
		if i == mb.item {
			row = menuTitleOpenStyle.Width(rowWidth).Render(label + acceleratorLabel(it.Accelerator))
		}
		rows = append(rows, row)
	}
	return dropdownStyle.Render(strings.Join(rows, "\n"))
}
