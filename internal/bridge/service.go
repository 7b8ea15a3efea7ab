package bridge

import (
	"context"

	"google.golang.org/grpc"
)

// ============================================================================
// gRPC Service Definition (hand-written; messages travel as JSON)
// ============================================================================

// ServiceName is the fully-qualified gRPC service name of the bridge.
const ServiceName = "gamebot.bridge.v1.Bridge"

const (
	invokeMethod    = "/" + ServiceName + "/Invoke"
	subscribeMethod = "/" + ServiceName + "/Subscribe"
)

// BridgeServer is the server interface for the bridge service.
type BridgeServer interface {
	Invoke(context.Context, *InvokeRequest) (*InvokeResponse, error)
	Subscribe(*SubscribeRequest, EventStream) error
}

// EventStream is the server side of a Subscribe call.
type EventStream interface {
	Send(*Event) error
	Context() context.Context
}

type eventStream struct {
	grpc.ServerStream
}

func (s *eventStream) Send(ev *Event) error {
	return s.ServerStream.SendMsg(ev)
}

var bridgeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BridgeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Invoke",
			Handler:    invokeHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
	Metadata: "gamebot/bridge/v1/bridge.proto",
}

// RegisterBridgeServer registers srv with a gRPC server.
func RegisterBridgeServer(s grpc.ServiceRegistrar, srv BridgeServer) {
	s.RegisterService(&bridgeServiceDesc, srv)
}

func invokeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InvokeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeServer).Invoke(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: invokeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BridgeServer).Invoke(ctx, req.(*InvokeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(BridgeServer).Subscribe(in, &eventStream{stream})
}

// bridgeStub is the client side of the service.
type bridgeStub struct {
	cc grpc.ClientConnInterface
}

func (c *bridgeStub) Invoke(ctx context.Context, in *InvokeRequest, opts ...grpc.CallOption) (*InvokeResponse, error) {
	out := new(InvokeResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, invokeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// eventReceiver is the client side of a Subscribe call.
type eventReceiver interface {
	Recv() (*Event, error)
}

type eventClientStream struct {
	grpc.ClientStream
}

func (x *eventClientStream) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *bridgeStub) Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (eventReceiver, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &bridgeServiceDesc.Streams[0], subscribeMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &eventClientStream{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
