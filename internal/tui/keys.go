package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit     key.Binding
	Close    key.Binding
	Help     key.Binding
	Menu     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+w"),
		key.WithHelp("Ctrl+c", "close to tray"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "ctrl+h"),
		key.WithHelp("?", "help"),
	),
	Menu: key.NewBinding(
		key.WithKeys("f10"),
		key.WithHelp("F10", "menu"),
	),
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next view"),
	),
	PrevView: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
}

// ViewKeys jump straight to a view.
type ViewKeys struct {
	Dashboard key.Binding
	Platforms key.Binding
	BotConfig key.Binding
	Embed     key.Binding
}

var viewKeys = ViewKeys{
	Dashboard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Dashboard"),
	),
	Platforms: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Platforms"),
	),
	BotConfig: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Bot Config"),
	),
	Embed: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Embed"),
	),
}

// ActionKeys mirror the header buttons and quick actions.
type ActionKeys struct {
	ToggleScraping key.Binding
	Minimize       key.Binding
	TestDiscord    key.Binding
	CheckUpdates   key.Binding
	Export         key.Binding
	Import         key.Binding
	Settings       key.Binding
}

var actionKeys = ActionKeys{
	ToggleScraping: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start/stop scraping"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize"),
	),
	TestDiscord: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "test discord"),
	),
	CheckUpdates: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "check updates"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export config"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import config"),
	),
	Settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
}

// ListKeys are active on the platform list.
type ListKeys struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Configure key.Binding
}

var listKeys = ListKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("Space", "toggle"),
	),
	Configure: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "configure"),
	),
}

// FormKeys are active on the bot config and embed forms.
type FormKeys struct {
	Up      key.Binding
	Down    key.Binding
	Edit    key.Binding
	Connect key.Binding
}

var formKeys = FormKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "edit"),
	),
	Connect: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "connect bot"),
	),
}

// EditKeys are active while a form field is being edited.
type EditKeys struct {
	Save   key.Binding
	Cancel key.Binding
}

var editKeys = EditKeys{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}

// MenuKeys are active while the menu bar is open.
type MenuKeys struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var menuKeys = MenuKeys{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "f10"),
		key.WithHelp("Esc", "close menu"),
	),
}
