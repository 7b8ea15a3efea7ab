package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/buildinfo"
)

func TestPrintMenu(t *testing.T) {
	var buf bytes.Buffer
	printMenu(&buf, []bridge.MenuItem{
		{Label: "File", Submenu: []bridge.MenuItem{
			{ID: "file.export-config", Label: "Export config", Accelerator: "CmdOrCtrl+E"},
			{Separator: true},
			{ID: "file.quit", Label: "Quit"},
		}},
	})

	out := buf.String()
	for _, want := range []string{"File", "file.export-config", "CmdOrCtrl+E", "file.quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("got %d lines, want 3 (separator skipped)", lines)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("version output missing %s:\n%s", buildinfo.Version, out)
	}
	if !strings.Contains(out, runtime.GOOS) {
		t.Errorf("version output missing OS:\n%s", out)
	}
}

func TestFindHostBinaryOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH lookup needs an .exe on windows")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, hostBinary)
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	got, err := findHostBinary()
	if err != nil {
		t.Fatalf("findHostBinary: %v", err)
	}
	if got != bin {
		t.Errorf("findHostBinary = %q, want %q", got, bin)
	}
}

func TestConnectHostWithoutHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := connectHost(bridge.ClientOptions{}); err == nil {
		t.Fatal("expected an error when no host is running")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"host", "menu", "notify", "update", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, name := range []string{"start", "status", "stop"} {
		cmd, _, err := rootCmd.Find([]string{"host", name})
		if err != nil || cmd.Name() != name {
			t.Errorf("host %q not registered", name)
		}
	}
}
