package cli

import (
	"fmt"

	"github.com/gamebot-io/gamebot/internal/bridge"
	"github.com/gamebot-io/gamebot/internal/config"
)

// connectHost creates a bridge client for the running host.
func connectHost(opts bridge.ClientOptions) (*bridge.Client, error) {
	info, err := config.LoadHostInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load host info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("host not running")
	}

	return bridge.Dial(info.Addr(), opts)
}
