package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/notes-server/internal/model"
)

var _ model.Server = (*GRPCServer)(nil)

// GRPCServer wraps a gRPC server with address and lifecycle methods.
// It keeps the health status in step with the lifecycle.
type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	addr   string
}

// NewGRPCServer creates a GRPCServer with given server, health server and address.
func NewGRPCServer(
	server *grpc.Server,
	health *health.Server,
	addr string,
) *GRPCServer {
	return &GRPCServer{server: server, health: health, addr: addr}
}

// Start starts serving on the configured address using the provided security layer.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return s.server.Serve(listener)
}

// Stop reports NOT_SERVING and gracefully stops the server. If ctx expires
// first, remaining calls are cancelled.
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}
