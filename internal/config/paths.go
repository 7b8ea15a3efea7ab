// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global gamebot directory.
	GlobalDirName = ".gamebot"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"
)

// File names
const (
	HostFileName     = "host.yaml"
	SettingsFileName = "settings.yaml"
	UILogFileName    = "gamebot.log"
	HostLogFileName  = "gamebotd.log"
)

// GlobalDir returns the path to the global gamebot directory (~/.gamebot/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalHostFile returns the path to the host.yaml file.
func GlobalHostFile() (string, error) {
	return inGlobalDir(HostFileName)
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return inGlobalDir(SettingsFileName)
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	return inGlobalDir(LogsDirName)
}

// UILogFile returns the path of the dashboard's log file.
func UILogFile() (string, error) {
	return inGlobalDir(LogsDirName, UILogFileName)
}

// HostLogFile returns the path the host's stderr is redirected to when it
// is started in the background.
func HostLogFile() (string, error) {
	return inGlobalDir(LogsDirName, HostLogFileName)
}

func inGlobalDir(elem ...string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// EnsureGlobalDir creates the global gamebot directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
