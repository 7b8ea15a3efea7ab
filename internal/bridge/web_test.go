package bridge

import "testing"

func TestAllowLoopbackOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:5173", true},
		{"http://127.0.0.1:8080", true},
		{"http://[::1]:3000", true},
		{"https://example.com", false},
		{"http://192.168.1.10:8080", false},
	}
	for _, tt := range tests {
		if got := allowLoopbackOrigin(tt.origin); got != tt.want {
			t.Errorf("allowLoopbackOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
