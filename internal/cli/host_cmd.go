package cli

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/config"
	"github.com/gamebot-io/gamebot/internal/host"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage the gamebotd host",
	Long:  `Manage the gamebotd host process that owns the tray icon and menu.`,
}

var hostStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show host status",
	RunE:  runHostStatus,
}

var hostStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the host",
	RunE:  runHostStart,
}

var hostStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the host",
	RunE:  runHostStop,
}

func init() {
	hostCmd.AddCommand(hostStartCmd)
	hostCmd.AddCommand(hostStatusCmd)
	hostCmd.AddCommand(hostStopCmd)
}

func runHostStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsHostRunning()
	if err != nil {
		return fmt.Errorf("failed to check host status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Host is already running (PID %d, port %d).\n", info.PID, info.Port)
		return nil
	}

	fmt.Print("Starting host...")
	if err := EnsureHost(); err != nil {
		fmt.Println()
		return err
	}

	info, err = config.LoadHostInfo()
	if err != nil || info == nil {
		fmt.Println(" started.")
		return nil
	}

	fmt.Printf(" started (PID %d, port %d).\n", info.PID, info.Port)
	return nil
}

func runHostStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsHostRunning()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println("Host is not running.")
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println(styleSuccess.Render("Host is running."))
	fmt.Printf("  %s %s\n", styleLabel.Render("Address:"), styleValue.Render(info.Addr()))
	if info.WebAddr != "" {
		fmt.Printf("  %s %s\n", styleLabel.Render("Web:    "), styleValue.Render(info.WebAddr))
	}
	fmt.Printf("  %s %d\n", styleLabel.Render("PID:    "), info.PID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Uptime: "), uptime)

	// Ask the host itself for its version; a stale file would fail here.
	client, err := connectHost(bridge.ClientOptions{})
	if err != nil {
		return nil
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	version, err := client.GetAppVersion(ctx)
	if err != nil {
		fmt.Printf("  %s %s\n", styleLabel.Render("Version:"), styleWarning.Render("unreachable"))
		return nil
	}
	fmt.Printf("  %s %s\n", styleLabel.Render("Version:"), styleVersion.Render(version))
	return nil
}

func runHostStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsHostRunning()
	if err != nil {
		return fmt.Errorf("failed to check host status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Host is not running.")
		return nil
	}

	// Quit through the menu so attached dashboards hear app-quit. Fall back
	// to a signal if the bridge does not answer.
	if err := quitViaBridge(); err != nil {
		process, err := os.FindProcess(info.PID)
		if err != nil {
			return fmt.Errorf("failed to find host process: %w", err)
		}
		if err := process.Signal(syscall.SIGTERM); err != nil {
			return fmt.Errorf("failed to send stop signal: %w", err)
		}
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsHostRunning()
		if err == nil && !stillRunning {
			fmt.Println("Host stopped.")
			return nil
		}
	}

	return fmt.Errorf("host did not stop within timeout")
}

func quitViaBridge() error {
	client, err := connectHost(bridge.ClientOptions{})
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return client.ClickMenu(ctx, host.MenuQuit)
}
