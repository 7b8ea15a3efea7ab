// Package dashboard holds the in-memory state rendered by the terminal
// dashboard. Everything here is mock data; nothing talks to a real store.
package dashboard

// PlatformStatus is the health badge shown on a platform card.
type PlatformStatus string

const (
	PlatformActive   PlatformStatus = "active"
	PlatformInactive PlatformStatus = "inactive"
	PlatformError    PlatformStatus = "error"
)

// Platform is one monitored storefront.
type Platform struct {
	ID         string
	Name       string
	Logo       string
	Status     PlatformStatus
	LastUpdate string
	GamesFound int
	Enabled    bool
}

// DefaultPlatforms returns the seed platform list.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: "steam", Name: "Steam", Logo: "🎮", Status: PlatformActive, LastUpdate: "5 min ago", GamesFound: 142, Enabled: true},
		{ID: "epic", Name: "Epic Games", Logo: "🎯", Status: PlatformActive, LastUpdate: "12 min ago", GamesFound: 89, Enabled: true},
		{ID: "playstation", Name: "PlayStation", Logo: "🎮", Status: PlatformInactive, LastUpdate: "2 hours ago", GamesFound: 67, Enabled: false},
		{ID: "xbox", Name: "Xbox", Logo: "🎮", Status: PlatformError, LastUpdate: "1 day ago", GamesFound: 23, Enabled: true},
	}
}

// SetPlatformEnabled returns a copy of platforms with the record matching id
// set to enabled. Order and length are preserved and unknown ids are a no-op.
func SetPlatformEnabled(platforms []Platform, id string, enabled bool) []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	for i := range out {
		if out[i].ID == id {
			out[i].Enabled = enabled
		}
	}
	return out
}

// TogglePlatform flips the enabled flag of the platform matching id.
func TogglePlatform(platforms []Platform, id string) []Platform {
	for _, p := range platforms {
		if p.ID == id {
			return SetPlatformEnabled(platforms, id, !p.Enabled)
		}
	}
	return SetPlatformEnabled(platforms, id, false)
}

// EnabledCount returns how many platforms are enabled.
func EnabledCount(platforms []Platform) int {
	n := 0
	for _, p := range platforms {
		if p.Enabled {
			n++
		}
	}
	return n
}
