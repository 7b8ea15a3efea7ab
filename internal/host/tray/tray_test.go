package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"

	"github.com/gamebot-io/gamebot/internal/host"
	"github.com/gamebot-io/gamebot/internal/logger"
)

func TestIconIsValidPNG(t *testing.T) {
	data, err := encodeIcon(drawGamepad(), "linux")
	if err != nil {
		t.Fatalf("encodeIcon() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != iconSize || b.Dy() != iconSize {
		t.Errorf("icon size = %v", b)
	}

	// Centre of the body is opaque, corners are transparent.
	if _, _, _, a := img.At(11, 7).RGBA(); a == 0 {
		t.Error("body pixel is transparent")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("corner pixel is not transparent")
	}
}

func TestIconWrappedAsICOOnWindows(t *testing.T) {
	data, err := encodeIcon(drawGamepad(), "windows")
	if err != nil {
		t.Fatalf("encodeIcon() error = %v", err)
	}
	var header [3]uint16
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		t.Fatal(err)
	}
	if header != [3]uint16{0, 1, 1} {
		t.Errorf("ICO header = %v", header)
	}
	if _, err := png.Decode(bytes.NewReader(data[22:])); err != nil {
		t.Errorf("embedded PNG invalid: %v", err)
	}
}

func TestInstallRequiresEventLoop(t *testing.T) {
	if _, err := install(host.TrayActions{}, "x", logger.Nop()); err == nil {
		t.Error("install() succeeded without a running event loop")
	}
}

func TestHeadlessFactory(t *testing.T) {
	called := false
	factory := HeadlessFactory(logger.Nop())
	tr, err := factory(host.TrayActions{Activate: func() { called = true }}, "Gaming Bot Dashboard")
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}
	h := tr.(*Headless)
	if h.Tooltip() != "Gaming Bot Dashboard" {
		t.Errorf("Tooltip() = %q", h.Tooltip())
	}
	h.SetTooltip("Idle")
	if h.Tooltip() != "Idle" {
		t.Errorf("Tooltip() after SetTooltip = %q", h.Tooltip())
	}
	h.Actions().Activate()
	if !called {
		t.Error("Activate action not bound")
	}
}
