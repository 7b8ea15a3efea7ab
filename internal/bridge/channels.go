// Package bridge connects the dashboard to its host process.
//
// The host answers requests on a fixed set of channels and broadcasts
// named events. Both directions travel over a small gRPC service whose
// messages are JSON-encoded, so no generated code is involved.
package bridge

// Channel names an event or a request on the bridge.
type Channel string

// Events emitted by the host.
const (
	ChannelStartScraping         Channel = "start-scraping"
	ChannelStopScraping          Channel = "stop-scraping"
	ChannelNavigateToSettings    Channel = "navigate-to-settings"
	ChannelExportConfig          Channel = "export-config"
	ChannelImportConfig          Channel = "import-config"
	ChannelTestDiscordConnection Channel = "test-discord-connection"

	ChannelWindowShow     Channel = "window-show"
	ChannelWindowHide     Channel = "window-hide"
	ChannelWindowReload   Channel = "window-reload"
	ChannelWindowZoom     Channel = "window-zoom"
	ChannelWindowDevTools Channel = "window-devtools"
	ChannelAppQuit        Channel = "app-quit"

	// ChannelBridgeReady is the first event on every subscription stream.
	ChannelBridgeReady Channel = "bridge-ready"
)

// Requests answered by the host.
const (
	ChannelShowNotification Channel = "show-notification"
	ChannelGetAppVersion    Channel = "get-app-version"
	ChannelMinimizeToTray   Channel = "minimize-to-tray"
	ChannelCheckForUpdates  Channel = "check-for-updates"

	ChannelGetMenu     Channel = "get-menu"
	ChannelMenuClick   Channel = "menu-click"
	ChannelWindowClose Channel = "window-close"
	ChannelShowWindow  Channel = "show-window"
)

var eventChannels = map[Channel]bool{
	ChannelStartScraping:         true,
	ChannelStopScraping:          true,
	ChannelNavigateToSettings:    true,
	ChannelExportConfig:          true,
	ChannelImportConfig:          true,
	ChannelTestDiscordConnection: true,
	ChannelWindowShow:            true,
	ChannelWindowHide:            true,
	ChannelWindowReload:          true,
	ChannelWindowZoom:            true,
	ChannelWindowDevTools:        true,
	ChannelAppQuit:               true,
	ChannelBridgeReady:           true,
}

var requestChannels = map[Channel]bool{
	ChannelShowNotification: true,
	ChannelGetAppVersion:    true,
	ChannelMinimizeToTray:   true,
	ChannelCheckForUpdates:  true,
	ChannelGetMenu:          true,
	ChannelMenuClick:        true,
	ChannelWindowClose:      true,
	ChannelShowWindow:       true,
}

// IsEvent reports whether c is a host-emitted event channel.
func (c Channel) IsEvent() bool { return eventChannels[c] }

// IsRequest reports whether c is a request channel.
func (c Channel) IsRequest() bool { return requestChannels[c] }

func (c Channel) String() string { return string(c) }
