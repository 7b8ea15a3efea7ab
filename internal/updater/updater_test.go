package updater

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func feed(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("missing User-Agent")
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckForUpdateWithoutFeed(t *testing.T) {
	c := NewChecker("", "1.0.0")
	res, err := c.CheckForUpdate(context.Background())
	if err != nil {
		t.Fatalf("CheckForUpdate() error = %v", err)
	}
	if res.Available {
		t.Error("update reported with no feed configured")
	}
}

func TestCheckForUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		status  int
		body    string
		want    bool
		wantErr bool
	}{
		{"newer release", "1.0.0", 200, `{"tag_name":"v1.2.0","html_url":"https://example.com/r"}`, true, false},
		{"same release", "1.2.0", 200, `{"tag_name":"v1.2.0"}`, false, false},
		{"older release", "2.0.0", 200, `{"tag_name":"1.9.9"}`, false, false},
		{"dev build", "dev", 200, `{"tag_name":"v0.0.1"}`, true, false},
		{"no releases", "1.0.0", 404, ``, false, false},
		{"server error", "1.0.0", 500, ``, false, true},
		{"bad tag", "1.0.0", 200, `{"tag_name":"nightly"}`, false, true},
		{"bad json", "1.0.0", 200, `{`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := feed(t, tt.status, tt.body)
			c := NewChecker(srv.URL, tt.current)

			res, err := c.CheckForUpdate(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", res)
				}
				if c.LastResult() != nil {
					t.Error("failed check cached a result")
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckForUpdate() error = %v", err)
			}
			if res.Available != tt.want {
				t.Errorf("Available = %v, want %v", res.Available, tt.want)
			}
			if c.LastResult() != res {
				t.Error("LastResult() not updated")
			}
		})
	}
}

func TestSetReleasesURLClearsCache(t *testing.T) {
	srv := feed(t, 200, `{"tag_name":"v9.0.0"}`)
	c := NewChecker(srv.URL, "1.0.0")
	if _, err := c.CheckForUpdate(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.SetReleasesURL(srv.URL)
	if c.LastResult() == nil {
		t.Error("same URL should keep the cached result")
	}
	c.SetReleasesURL("")
	if c.LastResult() != nil {
		t.Error("changing the URL should clear the cached result")
	}
}
