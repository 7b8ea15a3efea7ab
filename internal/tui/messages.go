package tui

import "github.com/gamebot-io/gamebot/internal/bridge"

// HostReadyMsg signals the bridge handshake finished.
type HostReadyMsg struct {
	Version string
	Menu    []bridge.MenuItem
}

// HostDisconnectedMsg signals the host event stream ended or could not be
// opened.
type HostDisconnectedMsg struct {
	Err error
}

// Host events, one message per bridge channel.
type (
	ScrapingStartedMsg       struct{}
	ScrapingStoppedMsg       struct{}
	NavigateToSettingsMsg    struct{}
	ExportConfigMsg          struct{}
	ImportConfigMsg          struct{}
	TestDiscordConnectionMsg struct{}
	WindowShowMsg            struct{}
	WindowHideMsg            struct{}
	WindowReloadMsg          struct{}
	AppQuitMsg               struct{}
	WindowZoomMsg            struct{ Factor float64 }
	WindowDevToolsMsg        struct{ Open bool }
)

// ToastMsg shows a notification inside the dashboard.
type ToastMsg struct {
	Title string
	Body  string
}

// MinimizedMsg signals minimize-to-tray returned.
type MinimizedMsg struct{}

// CloseResultMsg carries the host's answer to a close request.
type CloseResultMsg struct {
	Closed bool
}

// UpdateStatusMsg carries the result of an update check.
type UpdateStatusMsg struct {
	Status bridge.UpdateStatus
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// clearToastMsg clears the toast it was scheduled for.
type clearToastMsg struct {
	seq int
}
