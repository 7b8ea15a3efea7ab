package host

// Tray is an installed tray icon.
type Tray interface {
	SetTooltip(tooltip string)
}

// TrayActions are the handlers behind the tray icon and its menu.
type TrayActions struct {
	Activate      func() // icon click and "Show Gaming Bot"
	StartScraping func()
	StopScraping  func()
	Settings      func()
	Quit          func()
}

// TrayFactory installs the tray icon. The app calls it until it succeeds
// once and never again afterwards. It runs with the app locked, so the
// actions must not be invoked before it returns.
type TrayFactory func(actions TrayActions, tooltip string) (Tray, error)
