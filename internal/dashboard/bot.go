package dashboard

import "strings"

// BotStatus is the Discord bot connection badge.
type BotStatus string

const (
	BotOffline BotStatus = "offline"
	BotOnline  BotStatus = "online"
	BotError   BotStatus = "error"
)

// Label returns the badge text for the status.
func (s BotStatus) Label() string {
	switch s {
	case BotOnline:
		return "Online"
	case BotError:
		return "Error"
	default:
		return "Offline"
	}
}

// BotConfig holds the Discord credentials typed into the config form.
type BotConfig struct {
	Token     string
	ServerID  string
	ChannelID string
}

// Complete reports whether every field is non-empty.
func (c BotConfig) Complete() bool {
	return c.Token != "" && c.ServerID != "" && c.ChannelID != ""
}

// Connect simulates connecting the bot. A complete config goes online,
// anything else is an error.
func Connect(c BotConfig) BotStatus {
	if c.Complete() {
		return BotOnline
	}
	return BotError
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("•", len(token))
	}
	return strings.Repeat("•", len(token)-4) + token[len(token)-4:]
}
