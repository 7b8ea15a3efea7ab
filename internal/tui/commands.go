package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 5 * time.Second

func connectHostCmd(host Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := host.Start(ctx); err != nil {
			return HostDisconnectedMsg{Err: err}
		}
		version, err := host.GetAppVersion(ctx)
		if err != nil {
			return HostDisconnectedMsg{Err: fmt.Errorf("failed to get app version: %w", err)}
		}
		// The dashboard still works without a menu bar.
		menu, _ := host.GetMenu(ctx)
		return HostReadyMsg{Version: version, Menu: menu}
	}
}

func notifyCmd(host Host, title, body string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := host.ShowNotification(ctx, title, body); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to show notification: %w", err)}
		}
		return nil
	}
}

func minimizeCmd(host Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := host.MinimizeToTray(ctx); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to minimize: %w", err)}
		}
		return MinimizedMsg{}
	}
}

func checkUpdatesCmd(host Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		st, err := host.CheckForUpdates(ctx)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to check for updates: %w", err)}
		}
		return UpdateStatusMsg{Status: st}
	}
}

func clickMenuCmd(host Host, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := host.ClickMenu(ctx, id); err != nil {
			return ErrorMsg{Err: fmt.Errorf("menu %s: %w", id, err)}
		}
		return nil
	}
}

func requestCloseCmd(host Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		closed, err := host.RequestClose(ctx)
		if err != nil {
			// An unreachable host cannot keep the dashboard open.
			return CloseResultMsg{Closed: true}
		}
		return CloseResultMsg{Closed: closed}
	}
}

func showWindowCmd(host Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := host.ShowWindow(ctx); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to show window: %w", err)}
		}
		return WindowShowMsg{}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearToastAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
