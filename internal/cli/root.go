// Package cli implements the gamebot command line and launches the
// terminal dashboard.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/config"
	"github.com/gamebot-io/gamebot/internal/logger"
	"github.com/gamebot-io/gamebot/internal/tui"
)

var standalone bool

var rootCmd = &cobra.Command{
	Use:   "gamebot",
	Short: "Gaming Bot dashboard",
	Long: `gamebot opens the Gaming Bot dashboard in the terminal.

The dashboard attaches to the gamebotd host, which owns the system tray,
the application menu and OS notifications, and starts it when needed.
With --standalone it runs without a host.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&standalone, "standalone", false, "Run without the host (no tray, menu or OS notifications)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the dashboard needs an interactive terminal")
	}

	log, err := openUILog()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := dashboardClient(log)
	if err != nil {
		return err
	}
	defer client.Close()

	return tui.Run(client, tui.Options{Logger: log})
}

// openUILog opens the dashboard's log file. The terminal belongs to the
// TUI, so nothing is logged to stderr.
func openUILog() (logger.Logger, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := config.EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	path, err := config.UILogFile()
	if err != nil {
		return nil, err
	}
	return logger.NewFile(path, settings.Log.Level)
}

// dashboardClient returns a bridge client attached to the host, starting
// the host if needed. If the host cannot be reached the dashboard runs
// detached.
func dashboardClient(log logger.Logger) (*bridge.Client, error) {
	opts := bridge.ClientOptions{Logger: log}
	if standalone {
		log.Info("Starting standalone")
		return bridge.Detached(opts), nil
	}

	if err := EnsureHost(); err != nil {
		log.Warn("Host unavailable, running standalone", logger.Error(err))
		fmt.Fprintf(os.Stderr, "%s %v\n", styleWarning.Render("Host unavailable, running standalone:"), err)
		return bridge.Detached(opts), nil
	}
	return connectHost(opts)
}
