package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gamebot-io/gamebot/internal/config"
)

const hostBinary = "gamebotd"

// EnsureHost makes sure the host is running, starting it if necessary.
func EnsureHost() error {
	running, info, err := config.IsHostRunning()
	if err != nil {
		return fmt.Errorf("failed to check host status: %w", err)
	}

	if running {
		return nil
	}

	// Clean up stale host info if it exists
	if info != nil {
		_ = config.RemoveHostInfo()
	}

	return startHost()
}

// startHost starts the host process in the background. Its output goes to
// the host log file.
func startHost() error {
	hostPath, err := findHostBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(hostPath)
	cmd.Stdin = nil
	if err := config.EnsureGlobalLogsDir(); err == nil {
		if path, err := config.HostLogFile(); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				defer f.Close()
				cmd.Stdout = f
				cmd.Stderr = f
			}
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start host: %w", err)
	}
	// The host outlives this process.
	_ = cmd.Process.Release()

	// Wait for host to be ready (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsHostRunning()
		if err == nil && running {
			return nil
		}
	}

	return fmt.Errorf("host failed to start within timeout")
}

// findHostBinary locates the gamebotd binary.
func findHostBinary() (string, error) {
	// Try PATH first
	if path, err := exec.LookPath(hostBinary); err == nil {
		return path, nil
	}

	// Try next to the current executable
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), hostBinary)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// Try build directory
	if _, err := os.Stat("./build/" + hostBinary); err == nil {
		return "./build/" + hostBinary, nil
	}

	return "", fmt.Errorf("%s not found. Install or build it first", hostBinary)
}
