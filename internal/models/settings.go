package models

import (
	"net"
	"strconv"
)

// DefaultTrayTooltip is shown on the tray icon when settings do not override it.
const DefaultTrayTooltip = "Gaming Bot Dashboard"

// BridgeConfig holds settings for the host bridge listener.
type BridgeConfig struct {
	Port    int    `yaml:"port"`     // 0 = dynamic
	WebAddr string `yaml:"web_addr"` // empty = grpc-web disabled
}

// NotificationsConfig holds settings for OS notifications.
type NotificationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Icon    string `yaml:"icon,omitempty"`
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	ReleasesURL    string `yaml:"releases_url"` // empty = never report an update
	CheckOnStartup bool   `yaml:"check_on_startup"`
}

// TrayConfig holds tray icon settings.
type TrayConfig struct {
	Tooltip string `yaml:"tooltip"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	Pretty bool   `yaml:"pretty"`
}

// Settings represents global application settings.
// This corresponds to ~/.gamebot/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Bridge        BridgeConfig        `yaml:"bridge"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Updates       UpdatesConfig       `yaml:"updates"`
	Tray          TrayConfig          `yaml:"tray"`
	Log           LogConfig           `yaml:"log"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Bridge: BridgeConfig{
			Port: 0,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
		Updates: UpdatesConfig{
			CheckOnStartup: false,
		},
		Tray: TrayConfig{
			Tooltip: DefaultTrayTooltip,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Normalize fills values a hand-edited file may have left empty.
func (s *Settings) Normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Tray.Tooltip == "" {
		s.Tray.Tooltip = DefaultTrayTooltip
	}
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Bridge.Port < 0 || s.Bridge.Port > 65535 {
		s.Bridge.Port = 0
	}
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
