package bridge

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestArgsDecode(t *testing.T) {
	raw, err := EncodeArgs("Scraping started", "The bot started looking for new games")
	if err != nil {
		t.Fatalf("EncodeArgs() error = %v", err)
	}

	var title, body string
	if err := Args(raw).Decode(&title, &body); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if title != "Scraping started" || body != "The bot started looking for new games" {
		t.Errorf("Decode() = %q, %q", title, body)
	}
}

func TestArgsDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing args", ``},
		{"too few", `["only-title"]`},
		{"not an array", `{"title":"x"}`},
		{"wrong type", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var title, body string
			err := Args(tt.raw).Decode(&title, &body)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("Decode() code = %v, want InvalidArgument (err %v)", status.Code(err), err)
			}
		})
	}
}

func TestArgsDecodeNoTargets(t *testing.T) {
	if err := Args(`garbage`).Decode(); err != nil {
		t.Errorf("Decode() with no targets error = %v", err)
	}
}

func TestChannelKinds(t *testing.T) {
	tests := []struct {
		channel Channel
		event   bool
		request bool
	}{
		{ChannelStartScraping, true, false},
		{ChannelTestDiscordConnection, true, false},
		{ChannelWindowZoom, true, false},
		{ChannelShowNotification, false, true},
		{ChannelCheckForUpdates, false, true},
		{ChannelMenuClick, false, true},
		{Channel("bogus"), false, false},
	}
	for _, tt := range tests {
		if got := tt.channel.IsEvent(); got != tt.event {
			t.Errorf("%s.IsEvent() = %v, want %v", tt.channel, got, tt.event)
		}
		if got := tt.channel.IsRequest(); got != tt.request {
			t.Errorf("%s.IsRequest() = %v, want %v", tt.channel, got, tt.request)
		}
	}
}
