package host

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/gen2brain/beeep"
)

// Notifier shows OS notifications.
type Notifier interface {
	// Supported reports whether a notification would be displayed at all.
	Supported() bool
	Notify(title, body string) error
}

// DesktopNotifier shows notifications through the platform notification
// service.
type DesktopNotifier struct {
	enabled atomic.Bool
	icon    string
	display func() bool
	send    func(title, body, icon string) error
}

// NewDesktopNotifier creates a notifier. icon may be empty.
func NewDesktopNotifier(enabled bool, icon string) *DesktopNotifier {
	n := &DesktopNotifier{
		icon:    icon,
		display: hasDisplay,
		send: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
	}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled turns notifications on or off.
func (n *DesktopNotifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

func (n *DesktopNotifier) Supported() bool {
	return n.enabled.Load() && n.display()
}

func (n *DesktopNotifier) Notify(title, body string) error {
	return n.send(title, body, n.icon)
}

// hasDisplay reports whether a desktop session is reachable. Headless
// Unix sessions have no notification daemon to talk to.
func hasDisplay() bool {
	if !runningUnix() {
		return true
	}
	for _, env := range []string{"DISPLAY", "WAYLAND_DISPLAY", "DBUS_SESSION_BUS_ADDRESS"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

func runningUnix() bool {
	return runtime.GOOS != "darwin" && runtime.GOOS != "windows"
}
