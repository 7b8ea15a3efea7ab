package dashboard

// ChangeKind colors the change badge of a stat card.
type ChangeKind string

const (
	ChangePositive ChangeKind = "positive"
	ChangeNegative ChangeKind = "negative"
	ChangeNeutral  ChangeKind = "neutral"
)

// Stat is one overview card.
type Stat struct {
	Title       string
	Value       string
	Change      string
	ChangeKind  ChangeKind
	Description string
}

// DefaultStats returns the overview cards.
func DefaultStats() []Stat {
	return []Stat{
		{Title: "Total Games", Value: "321", Change: "+12 today", ChangeKind: ChangePositive, Description: "Games monitored"},
		{Title: "New Today", Value: "7", Change: "+3 vs yesterday", ChangeKind: ChangePositive, Description: "New releases"},
		{Title: "Last Update", Value: "5m", ChangeKind: ChangeNeutral, Description: "Ago"},
		{Title: "Bot Status", Value: "Online", ChangeKind: ChangeNeutral, Description: "Running"},
	}
}

// ActivityKind colors the dot of an activity row.
type ActivityKind string

const (
	ActivitySuccess ActivityKind = "success"
	ActivityInfo    ActivityKind = "info"
	ActivityError   ActivityKind = "error"
)

// Activity is one row of the recent activity feed.
type Activity struct {
	Time   string
	Action string
	Detail string
	Kind   ActivityKind
}

// DefaultActivity returns the recent activity feed.
func DefaultActivity() []Activity {
	return []Activity{
		{Time: "5 min ago", Action: "New game found on Steam", Detail: "Cyberpunk 2077: Phantom Liberty", Kind: ActivitySuccess},
		{Time: "12 min ago", Action: "Epic Games update completed", Detail: "89 games checked", Kind: ActivityInfo},
		{Time: "1 hour ago", Action: "Xbox Live connection error", Detail: "Retrying automatically", Kind: ActivityError},
		{Time: "2 hours ago", Action: "Embed sent to Discord", Detail: "Dead Space (2023)", Kind: ActivitySuccess},
	}
}

// QuickActions are the buttons of the dashboard's quick actions card.
var QuickActions = []string{
	"Refresh All Platforms",
	"Export Configuration",
	"Advanced Settings",
}
