package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

var menuCmd = &cobra.Command{
	Use:   "menu [ID]",
	Short: "List the host menu or activate a menu item",
	Long: `Without arguments, list the host's application menu with item ids.
With an id, activate that item as if it had been clicked, for example:

  gamebot menu bot.start-scraping`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connectHost(bridge.ClientOptions{})
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if len(args) == 1 {
			if err := client.ClickMenu(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to activate %s: %w", args[0], err)
			}
			return nil
		}

		items, err := client.GetMenu(ctx)
		if err != nil {
			return fmt.Errorf("failed to load menu: %w", err)
		}
		printMenu(cmd.OutOrStdout(), items)
		return nil
	},
}

func printMenu(w io.Writer, items []bridge.MenuItem) {
	for _, top := range items {
		fmt.Fprintln(w, styleBrand.Render(top.Label))
		for _, it := range top.Submenu {
			if it.Separator {
				continue
			}
			line := fmt.Sprintf("  %-30s %s", it.ID, styleValue.Render(it.Label))
			if it.Accelerator != "" {
				line += "  " + styleHint.Render(it.Accelerator)
			}
			fmt.Fprintln(w, line)
		}
	}
}
