package bridge

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvokeRequest calls a request channel with positional arguments.
type InvokeRequest struct {
	Channel Channel         `json:"channel"`
	Args    json.RawMessage `json:"args,omitempty"` // JSON array
}

// InvokeResponse carries a JSON-encoded result, empty for void requests.
type InvokeResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
}

// SubscribeRequest opens an event stream. An empty Channels list means all
// events.
type SubscribeRequest struct {
	ClientID string    `json:"clientId"`
	Channels []Channel `json:"channels,omitempty"`
}

// Event is one broadcast from the host.
type Event struct {
	Channel   Channel         `json:"channel"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Seq       uint64          `json:"seq"`
	EmittedAt time.Time       `json:"emittedAt"`
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.Channel)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Channel, err)
	}
	return nil
}

// UpdateStatus is the result of check-for-updates.
type UpdateStatus struct {
	UpdateAvailable bool   `json:"updateAvailable"`
	LatestVersion   string `json:"latestVersion,omitempty"`
	ReleaseURL      string `json:"releaseUrl,omitempty"`
}

// CloseResult is the result of window-close.
type CloseResult struct {
	Closed bool `json:"closed"`
}

// ZoomPayload accompanies window-zoom.
type ZoomPayload struct {
	Factor float64 `json:"factor"`
}

// DevToolsPayload accompanies window-devtools.
type DevToolsPayload struct {
	Open bool `json:"open"`
}

// ReadyPayload accompanies bridge-ready.
type ReadyPayload struct {
	ClientID   string `json:"clientId"`
	AppVersion string `json:"appVersion"`
}

// MenuItem describes one entry of the host's application menu.
type MenuItem struct {
	ID          string     `json:"id,omitempty"`
	Label       string     `json:"label,omitempty"`
	Accelerator string     `json:"accelerator,omitempty"`
	Separator   bool       `json:"separator,omitempty"`
	Submenu     []MenuItem `json:"submenu,omitempty"`
}

// Args holds the positional arguments of an InvokeRequest.
type Args json.RawMessage

// Decode unmarshals the positional arguments into targets, in order.
// Fewer arguments than targets, or a type mismatch, is an InvalidArgument
// error. Extra arguments are ignored.
func (a Args) Decode(targets ...any) error {
	if len(targets) == 0 {
		return nil
	}
	var raw []json.RawMessage
	if len(a) > 0 {
		if err := json.Unmarshal(a, &raw); err != nil {
			return status.Errorf(codes.InvalidArgument, "arguments must be a JSON array: %v", err)
		}
	}
	if len(raw) < len(targets) {
		return status.Errorf(codes.InvalidArgument, "expected %d arguments, got %d", len(targets), len(raw))
	}
	for i, target := range targets {
		if err := json.Unmarshal(raw[i], target); err != nil {
			return status.Errorf(codes.InvalidArgument, "argument %d: %v", i, err)
		}
	}
	return nil
}

// EncodeArgs builds the positional argument array for an InvokeRequest.
func EncodeArgs(args ...any) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}
	return data, nil
}
