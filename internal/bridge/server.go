package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gamebot-io/gamebot/internal/logger"
)

// HandlerFunc answers one request channel. The returned value is
// JSON-encoded as the result; nil means void.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// ServerOptions configures a Server.
type ServerOptions struct {
	Logger     logger.Logger
	AppVersion string
}

// Server is the host's end of the bridge.
type Server struct {
	grpcServer *grpc.Server
	hub        *Hub
	log        logger.Logger
	appVersion string

	mu       sync.RWMutex
	handlers map[Channel]HandlerFunc

	listener net.Listener
	port     int
	web      *http.Server
}

// NewServer creates a bridge server broadcasting the events of hub.
func NewServer(hub *Hub, opts ServerOptions) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		hub:        hub,
		log:        log.Named("bridge"),
		appVersion: opts.AppVersion,
		handlers:   make(map[Channel]HandlerFunc),
	}
	s.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(s.logUnary))
	RegisterBridgeServer(s.grpcServer, s)
	return s
}

// Handle registers fn for a request channel, replacing any previous handler.
// It panics if channel is not a request channel.
func (s *Server) Handle(channel Channel, fn HandlerFunc) {
	if !channel.IsRequest() {
		panic(fmt.Sprintf("bridge: %q is not a request channel", channel))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[channel] = fn
}

func (s *Server) handler(channel Channel) (HandlerFunc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.handlers[channel]
	return fn, ok
}

// Listen binds the loopback interface. Pass port 0 for dynamic allocation.
func (s *Server) Listen(port int) error {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener
	s.port = listener.Addr().(*net.TCPAddr).Port
	return nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Serve starts serving requests on the listener bound by Listen. This
// blocks until Stop is called.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("bridge server is not listening")
	}
	return s.ServeListener(s.listener)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(lis net.Listener) error {
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop ends every subscription stream and gracefully stops the server.
func (s *Server) Stop() {
	s.hub.Close()
	if s.web != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = s.web.Shutdown(ctx)
		cancel()
	}
	s.grpcServer.GracefulStop()
}

// Invoke dispatches a request to its channel handler.
func (s *Server) Invoke(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
	if req.Channel.IsEvent() {
		return nil, status.Errorf(codes.InvalidArgument, "%q is an event channel, subscribe to it instead", req.Channel)
	}
	fn, ok := s.handler(req.Channel)
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "no handler for channel %q", req.Channel)
	}

	result, err := fn(ctx, Args(req.Args))
	if err != nil {
		if _, isStatus := status.FromError(err); !isStatus {
			err = status.Error(codes.Internal, err.Error())
		}
		return nil, err
	}

	resp := &InvokeResponse{}
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to encode %s result: %v", req.Channel, err)
		}
		resp.Result = data
	}
	return resp, nil
}

// Subscribe streams hub events to one client. The first event is always
// bridge-ready, sent once the subscription is registered.
func (s *Server) Subscribe(req *SubscribeRequest, stream EventStream) error {
	sub := s.hub.Subscribe(req.Channels...)
	defer sub.Close()

	clientID := req.ClientID
	if clientID == "" {
		clientID = sub.ID
	}
	s.log.Info("Client subscribed", logger.String("client", clientID), logger.Int("channels", len(req.Channels)))
	defer func() {
		s.log.Info("Client unsubscribed",
			logger.String("client", clientID),
			logger.Uint64("dropped", sub.Dropped()))
	}()

	ready, err := json.Marshal(ReadyPayload{ClientID: clientID, AppVersion: s.appVersion})
	if err != nil {
		return status.Errorf(codes.Internal, "failed to encode handshake: %v", err)
	}
	if err := stream.Send(&Event{Channel: ChannelBridgeReady, Payload: ready, EmittedAt: time.Now().UTC()}); err != nil {
		return err
	}

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := stream.Send(&ev); err != nil {
				return err
			}
		}
	}
}

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	channel := ""
	if in, ok := req.(*InvokeRequest); ok {
		channel = string(in.Channel)
	}
	if err != nil {
		s.log.Warn("Request failed",
			logger.String("channel", channel),
			logger.String("code", status.Code(err).String()),
			logger.Error(err))
	} else {
		s.log.Debug("Request handled",
			logger.String("channel", channel),
			logger.Duration("took", time.Since(start)))
	}
	return resp, err
}
