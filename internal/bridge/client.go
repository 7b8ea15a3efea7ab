package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/gamebot-io/gamebot/internal/logger"
)

// DefaultAppVersion is reported when no host is attached.
const DefaultAppVersion = "1.0.0"

const defaultRequestTimeout = 5 * time.Second

// ErrNoBridge is returned by requests that have no fallback when the
// dashboard runs without a host.
var ErrNoBridge = errors.New("no host bridge available")

// NotifyFunc displays a notification inside the dashboard.
type NotifyFunc func(title, body string)

// ClientOptions configures a Client.
type ClientOptions struct {
	Logger logger.Logger
	// Notify is used by ShowNotification when no host is attached.
	Notify NotifyFunc
	// OnDisconnect is called once if the event stream ends unexpectedly.
	OnDisconnect func(error)
	// RequestTimeout bounds requests whose context has no deadline.
	RequestTimeout time.Duration
	DialOptions    []grpc.DialOption
}

// Client is the dashboard's view of the host. A detached client has no
// host: Available reports false, subscriptions are no-ops and requests fall
// back to local behaviour.
type Client struct {
	id           string
	conn         *grpc.ClientConn
	stub         *bridgeStub
	log          logger.Logger
	notify       NotifyFunc
	onDisconnect func(error)
	timeout      time.Duration

	mu        sync.Mutex
	listeners map[Channel][]*listener
	cancel    context.CancelFunc
	done      chan struct{}
}

// listener is one registration. mu is held around each call of fn so
// removal can wait for a call in flight.
type listener struct {
	mu     sync.Mutex
	fn     func(Event)
	active bool
}

func (l *listener) call(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active {
		l.fn(ev)
	}
}

func (l *listener) deactivate() {
	l.mu.Lock()
	l.active = false
	l.mu.Unlock()
}

// Dial creates a client for the host listening at addr. The connection is
// lazy; call Start to open the event stream.
func Dial(addr string, opts ClientOptions) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts.DialOptions...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to host: %w", err)
	}

	c := newClient(opts)
	c.conn = conn
	c.stub = &bridgeStub{cc: conn}
	return c, nil
}

// Detached creates a client with no host.
func Detached(opts ClientOptions) *Client {
	return newClient(opts)
}

func newClient(opts ClientOptions) *Client {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		id:           uuid.New().String(),
		log:          log.Named("bridge"),
		notify:       opts.Notify,
		onDisconnect: opts.OnDisconnect,
		timeout:      timeout,
		listeners:    make(map[Channel][]*listener),
	}
}

// Available reports whether a host is attached.
func (c *Client) Available() bool {
	return c.conn != nil
}

// ID returns the client id sent to the host.
func (c *Client) ID() string {
	return c.id
}

// SetNotify replaces the fallback notification func.
func (c *Client) SetNotify(fn NotifyFunc) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// SetOnDisconnect replaces the disconnect callback.
func (c *Client) SetOnDisconnect(fn func(error)) {
	c.mu.Lock()
	c.onDisconnect = fn
	c.mu.Unlock()
}

// Start opens the event stream and returns once the host has registered
// the subscription. Events emitted before Start returns are not delivered.
// ctx bounds only the handshake.
func (c *Client) Start(ctx context.Context) error {
	if !c.Available() {
		return nil
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return errors.New("bridge client already started")
	}
	streamCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, cancel)
	stream, err := c.stub.Subscribe(streamCtx, &SubscribeRequest{ClientID: c.id})
	if err == nil {
		var ev *Event
		ev, err = stream.Recv()
		if err == nil && ev.Channel != ChannelBridgeReady {
			err = fmt.Errorf("unexpected first event %q", ev.Channel)
		}
	}
	if !stop() && err == nil {
		// ctx ended mid-handshake and took the stream with it
		err = ctx.Err()
	}
	if err != nil {
		cancel()
		close(c.done)
		return fmt.Errorf("failed to subscribe to host events: %w", err)
	}

	c.log.Debug("Subscribed to host events", logger.String("client", c.id))
	go c.receive(streamCtx, stream)
	return nil
}

func (c *Client) receive(ctx context.Context, stream eventReceiver) {
	defer close(c.done)
	for {
		ev, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				err = errors.New("host closed the event stream")
			}
			c.log.Warn("Host event stream ended", logger.Error(err))
			c.mu.Lock()
			onDisconnect := c.onDisconnect
			c.mu.Unlock()
			if onDisconnect != nil {
				onDisconnect(err)
			}
			return
		}
		c.dispatch(*ev)
	}
}

func (c *Client) dispatch(ev Event) {
	c.mu.Lock()
	ls := append([]*listener(nil), c.listeners[ev.Channel]...)
	c.mu.Unlock()

	for _, l := range ls {
		l.call(ev)
	}
}

// On registers fn for one event channel and returns the func that removes
// exactly that registration. It waits for a call of fn in progress, so
// after it returns fn is not called again. It must not be called from
// inside fn. On a detached client both are no-ops.
func (c *Client) On(channel Channel, fn func(Event)) func() {
	if !c.Available() {
		return func() {}
	}

	l := &listener{fn: fn, active: true}

	c.mu.Lock()
	c.listeners[channel] = append(c.listeners[channel], l)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.deactivate()
			c.mu.Lock()
			defer c.mu.Unlock()
			ls := c.listeners[channel]
			for i, other := range ls {
				if other == l {
					c.listeners[channel] = append(ls[:i:i], ls[i+1:]...)
					break
				}
			}
			if len(c.listeners[channel]) == 0 {
				delete(c.listeners, channel)
			}
		})
	}
}

// ListenerCount returns how many listeners are registered on channel.
func (c *Client) ListenerCount(channel Channel) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners[channel])
}

// Invoke calls a request channel and decodes the result into out, which
// may be nil for void requests.
func (c *Client) Invoke(ctx context.Context, channel Channel, out any, args ...any) error {
	if !c.Available() {
		return ErrNoBridge
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	raw, err := EncodeArgs(args...)
	if err != nil {
		return err
	}
	resp, err := c.stub.Invoke(ctx, &InvokeRequest{Channel: channel, Args: raw})
	if err != nil {
		return fmt.Errorf("%s: %w", channel, err)
	}
	if out != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", channel, err)
		}
	}
	return nil
}

// Close stops the event stream and closes the connection.
func (c *Client) Close() error {
	if !c.Available() {
		return nil
	}
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
	return c.conn.Close()
}

// IsUnimplemented reports whether err means the host has no handler for
// the requested channel.
func IsUnimplemented(err error) bool {
	return status.Code(err) == codes.Unimplemented
}
