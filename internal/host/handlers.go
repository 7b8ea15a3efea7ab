package host

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gamebot-io/gamebot/internal/bridge"
)

// Registrar accepts request handlers. *bridge.Server implements it.
type Registrar interface {
	Handle(channel bridge.Channel, fn bridge.HandlerFunc)
}

// RegisterHandlers wires every request channel to app.
func RegisterHandlers(r Registrar, app *App) {
	r.Handle(bridge.ChannelShowNotification, func(_ context.Context, args bridge.Args) (any, error) {
		var title, body string
		if err := args.Decode(&title, &body); err != nil {
			return nil, err
		}
		app.ShowNotification(title, body)
		return nil, nil
	})

	r.Handle(bridge.ChannelGetAppVersion, func(context.Context, bridge.Args) (any, error) {
		return app.Version(), nil
	})

	r.Handle(bridge.ChannelMinimizeToTray, func(context.Context, bridge.Args) (any, error) {
		app.MinimizeToTray()
		return nil, nil
	})

	r.Handle(bridge.ChannelCheckForUpdates, func(ctx context.Context, _ bridge.Args) (any, error) {
		st, err := app.CheckForUpdates(ctx)
		if err != nil {
			return nil, status.Error(codes.Unavailable, err.Error())
		}
		return st, nil
	})

	r.Handle(bridge.ChannelGetMenu, func(context.Context, bridge.Args) (any, error) {
		return ApplicationMenu(), nil
	})

	r.Handle(bridge.ChannelMenuClick, func(_ context.Context, args bridge.Args) (any, error) {
		var id string
		if err := args.Decode(&id); err != nil {
			return nil, err
		}
		if err := app.ClickMenu(id); err != nil {
			if errors.Is(err, ErrUnknownMenuItem) {
				return nil, status.Error(codes.NotFound, err.Error())
			}
			return nil, err
		}
		return nil, nil
	})

	r.Handle(bridge.ChannelWindowClose, func(context.Context, bridge.Args) (any, error) {
		return bridge.CloseResult{Closed: app.RequestClose()}, nil
	})

	r.Handle(bridge.ChannelShowWindow, func(context.Context, bridge.Args) (any, error) {
		app.ShowWindow()
		return nil, nil
	})
}
