// Package updater checks a release feed for a newer version of the host.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ReleaseInfo is the subset of a GitHub-style "latest release" document the
// checker reads.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// UpdateResult contains the result of an update check.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	CheckedAt      time.Time
}

// Checker queries a release feed. With no feed configured it never reports
// an update and makes no request.
type Checker struct {
	currentVersion string
	client         *http.Client

	mu          sync.RWMutex
	releasesURL string
	last        *UpdateResult
}

// NewChecker creates a checker for the given feed URL, which may be empty.
func NewChecker(releasesURL, currentVersion string) *Checker {
	return &Checker{
		currentVersion: currentVersion,
		client:         &http.Client{Timeout: 10 * time.Second},
		releasesURL:    releasesURL,
	}
}

// SetReleasesURL replaces the feed URL.
func (c *Checker) SetReleasesURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.releasesURL != url {
		c.releasesURL = url
		c.last = nil
	}
}

// ReleasesURL returns the configured feed URL.
func (c *Checker) ReleasesURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.releasesURL
}

// LastResult returns the result of the most recent successful check, or nil.
func (c *Checker) LastResult() *UpdateResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// CheckForUpdate queries the feed for a newer version.
func (c *Checker) CheckForUpdate(ctx context.Context) (*UpdateResult, error) {
	url := c.ReleasesURL()
	if url == "" {
		return &UpdateResult{CurrentVersion: c.currentVersion, CheckedAt: time.Now()}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "gamebot/"+c.currentVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	result := &UpdateResult{CurrentVersion: c.currentVersion, CheckedAt: time.Now()}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		// No releases yet
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("release feed returned %d", resp.StatusCode)
	default:
		var release ReleaseInfo
		if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
			return nil, fmt.Errorf("decode release: %w", err)
		}
		if err := c.compare(result, release); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	c.last = result
	c.mu.Unlock()
	return result, nil
}

func (c *Checker) compare(result *UpdateResult, release ReleaseInfo) error {
	latestVersion := strings.TrimPrefix(release.TagName, "v")
	result.LatestVersion = latestVersion
	result.ReleaseURL = release.HTMLURL

	latest, err := ParseSemver(latestVersion)
	if err != nil {
		return fmt.Errorf("parse latest version %q: %w", latestVersion, err)
	}
	current, err := ParseSemver(c.currentVersion)
	if err != nil {
		// A dev build is older than any release
		result.Available = true
		return nil
	}
	result.Available = current.LessThan(latest)
	return nil
}
