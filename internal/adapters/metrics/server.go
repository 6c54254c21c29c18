package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
)

// Server exposes the global registry over HTTP
type Server struct {
	srv    *http.Server
	logger common.ContainerLogger
}

// NewServer creates a metrics server on host:port serving path
func NewServer(host string, port int, path string, logger common.ContainerLogger) (*Server, error) {
	if Registry == nil {
		return nil, errors.New("metrics registry is not initialized")
	}
	if path == "" {
		path = "/metrics"
	}
	if logger == nil {
		logger = common.NoOpLogger()
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))

	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start listens in the background. Bind errors are returned immediately.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Log(common.LevelError, "metrics server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()
	s.logger.Log(common.LevelInfo, "metrics server listening", map[string]interface{}{"addr": s.srv.Addr})
	return nil
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
