package models

import "time"

// HostInfo represents the connection information of a running host process.
// This corresponds to ~/.gamebot/host.yaml.
type HostInfo struct {
	Version    int       `yaml:"version"`
	AppVersion string    `yaml:"app_version"`
	Host       string    `yaml:"host"`
	Port       int       `yaml:"port"`
	WebAddr    string    `yaml:"web_addr,omitempty"`
	PID        int       `yaml:"pid"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewHostInfo creates host info stamped with the current time.
func NewHostInfo(appVersion, host string, port, pid int) *HostInfo {
	return &HostInfo{
		Version:    1,
		AppVersion: appVersion,
		Host:       host,
		Port:       port,
		PID:        pid,
		StartedAt:  time.Now().UTC(),
	}
}

// Addr returns the bridge address in host:port form.
func (h *HostInfo) Addr() string {
	return joinHostPort(h.Host, h.Port)
}
