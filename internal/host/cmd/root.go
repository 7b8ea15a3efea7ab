// Package cmd implements the gamebotd command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	foreground bool
	bridgePort int
)

var rootCmd = &cobra.Command{
	Use:   "gamebotd",
	Short: "Gaming Bot host process",
	Long: `gamebotd owns the native side of the Gaming Bot dashboard: the system
tray icon, the application menu and OS notifications. The dashboard
(gamebot) connects to it over a local bridge.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := -1
		if cmd.Flags().Changed("port") {
			port = bridgePort
		}
		return run(runOptions{foreground: foreground, port: port})
	},
}

func init() {
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run in foreground without a system tray (for development)")
	rootCmd.Flags().IntVar(&bridgePort, "port", 0, "Bridge port (0 for dynamic allocation; defaults to settings)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
