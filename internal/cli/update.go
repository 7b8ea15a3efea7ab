package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/buildinfo"
	"github.com/gamebot-io/gamebot/internal/config"
	"github.com/gamebot-io/gamebot/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking for updates...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		st, err := checkForUpdates(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !st.UpdateAvailable {
			fmt.Printf("Already up to date (v%s).\n", buildinfo.Version)
			return nil
		}

		fmt.Printf("%s v%s → v%s\n", styleUpdate.Render("Update available:"), buildinfo.Version, st.LatestVersion)
		if st.ReleaseURL != "" {
			fmt.Printf("Release: %s\n", st.ReleaseURL)
		}
		return nil
	},
}

// checkForUpdates asks the running host, which caches its last check, and
// falls back to querying the release feed directly.
func checkForUpdates(ctx context.Context) (bridge.UpdateStatus, error) {
	if running, _, err := config.IsHostRunning(); err == nil && running {
		if client, err := connectHost(bridge.ClientOptions{}); err == nil {
			defer client.Close()
			if st, err := client.CheckForUpdates(ctx); err == nil {
				return st, nil
			}
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return bridge.UpdateStatus{}, fmt.Errorf("failed to load settings: %w", err)
	}
	res, err := updater.NewChecker(settings.Updates.ReleasesURL, buildinfo.Version).CheckForUpdate(ctx)
	if err != nil {
		return bridge.UpdateStatus{}, err
	}
	return bridge.UpdateStatus{
		UpdateAvailable: res.Available,
		LatestVersion:   res.LatestVersion,
		ReleaseURL:      res.ReleaseURL,
	}, nil
}
