package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

var notifyCmd = &cobra.Command{
	Use:   "notify TITLE BODY",
	Short: "Show a desktop notification through the host",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connectHost(bridge.ClientOptions{})
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.ShowNotification(ctx, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to show notification: %w", err)
		}
		return nil
	},
}
