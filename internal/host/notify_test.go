package host

import (
	"errors"
	"testing"
)

func TestDesktopNotifierSupported(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		display bool
		want    bool
	}{
		{"enabled with display", true, true, true},
		{"disabled", false, true, false},
		{"headless", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewDesktopNotifier(tt.enabled, "")
			n.display = func() bool { return tt.display }
			if got := n.Supported(); got != tt.want {
				t.Errorf("Supported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDesktopNotifierSends(t *testing.T) {
	n := NewDesktopNotifier(true, "/tmp/icon.png")
	var got [3]string
	n.send = func(title, body, icon string) error {
		got = [3]string{title, body, icon}
		return errors.New("boom")
	}

	if err := n.Notify("Discord Connection Test", "Connection succeeded!"); err == nil {
		t.Error("send error not returned")
	}
	if got != [3]string{"Discord Connection Test", "Connection succeeded!", "/tmp/icon.png"} {
		t.Errorf("send got %v", got)
	}
}

func TestHasDisplayHeadless(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")
	if got := hasDisplay(); got && runningUnix() {
		t.Error("hasDisplay() = true with no session variables")
	}

	t.Setenv("DISPLAY", ":0")
	if !hasDisplay() {
		t.Error("hasDisplay() = false with DISPLAY set")
	}
}
