package bridge

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/improbable-eng/grpc-web/go/grpcweb"

	"github.com/gamebot-io/gamebot/internal/logger"
)

// WebHandler exposes the bridge to browsers through grpc-web. Only
// loopback origins are accepted.
func (s *Server) WebHandler() http.Handler {
	return grpcweb.WrapServer(s.grpcServer,
		grpcweb.WithOriginFunc(allowLoopbackOrigin),
	)
}

// ServeWeb starts the grpc-web listener on addr in the background. It is
// shut down by Stop.
func (s *Server) ServeWeb(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen for grpc-web on %s: %w", addr, err)
	}
	s.web = &http.Server{Handler: s.WebHandler()}
	s.log.Info("grpc-web bridge listening", logger.String("addr", lis.Addr().String()))

	go func() {
		if err := s.web.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("grpc-web server error", logger.Error(err))
		}
	}()
	return nil
}

func allowLoopbackOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	host := origin
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
