package dashboard

// State is everything the dashboard shows. It is a plain value owned by
// the UI loop.
type State struct {
	Platforms []Platform
	Bot       BotConfig
	BotStatus BotStatus
	Embed     Embed
	Stats     []Stat
	Activity  []Activity
	Scraping  bool
}

// NewState returns the seed state.
func NewState() State {
	return State{
		Platforms: DefaultPlatforms(),
		BotStatus: BotOffline,
		Embed:     DefaultEmbed(),
		Stats:     DefaultStats(),
		Activity:  DefaultActivity(),
	}
}

// ToggleScraping flips the scraping flag and returns the new value.
func (s *State) ToggleScraping() bool {
	s.Scraping = !s.Scraping
	return s.Scraping
}

// ConnectBot simulates connecting with the current bot config.
func (s *State) ConnectBot() BotStatus {
	s.BotStatus = Connect(s.Bot)
	return s.BotStatus
}

// ScrapingText returns the notification body for a scraping change.
func ScrapingText(running bool) string {
	if running {
		return "Scraping started"
	}
	return "Scraping stopped"
}
