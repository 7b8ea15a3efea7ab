package bridge

import (
	"context"
	"errors"
	"testing"
)

func TestDetachedClientFallbacks(t *testing.T) {
	var toasts [][2]string
	c := Detached(ClientOptions{
		Notify: func(title, body string) { toasts = append(toasts, [2]string{title, body}) },
	})
	ctx := context.Background()

	if c.Available() {
		t.Fatal("detached client reports Available")
	}

	version, err := c.GetAppVersion(ctx)
	if err != nil || version != "1.0.0" {
		t.Errorf("GetAppVersion() = %q, %v; want 1.0.0", version, err)
	}

	st, err := c.CheckForUpdates(ctx)
	if err != nil || st.UpdateAvailable {
		t.Errorf("CheckForUpdates() = %+v, %v; want no update", st, err)
	}

	if err := c.MinimizeToTray(ctx); err != nil {
		t.Errorf("MinimizeToTray() error = %v", err)
	}

	if err := c.ShowNotification(ctx, "Configuration exported successfully", ""); err != nil {
		t.Errorf("ShowNotification() error = %v", err)
	}
	if len(toasts) != 1 || toasts[0][0] != "Configuration exported successfully" {
		t.Errorf("fallback notify got %v", toasts)
	}

	closed, err := c.RequestClose(ctx)
	if err != nil || !closed {
		t.Errorf("RequestClose() = %v, %v; want true", closed, err)
	}

	menu, err := c.GetMenu(ctx)
	if err != nil || menu != nil {
		t.Errorf("GetMenu() = %v, %v; want nil", menu, err)
	}

	if err := c.ClickMenu(ctx, "file.quit"); !errors.Is(err, ErrNoBridge) {
		t.Errorf("ClickMenu() error = %v, want ErrNoBridge", err)
	}

	if err := c.Start(ctx); err != nil {
		t.Errorf("Start() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDetachedClientSubscriptionsAreNoOps(t *testing.T) {
	c := Detached(ClientOptions{})

	unsubscribe := c.OnScrapingStart(func() { t.Error("callback on detached client") })
	if got := c.ListenerCount(ChannelStartScraping); got != 0 {
		t.Errorf("ListenerCount() = %d, want 0", got)
	}
	unsubscribe()

	c.dispatch(Event{Channel: ChannelStartScraping})
}

func TestDetachedNotifyWithoutFallback(t *testing.T) {
	c := Detached(ClientOptions{})
	if err := c.ShowNotification(context.Background(), "t", "b"); err != nil {
		t.Errorf("ShowNotification() error = %v", err)
	}
}
