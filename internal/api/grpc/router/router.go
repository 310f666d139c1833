package router

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notes-server/internal/api/grpc/middleware"
	"github.com/dtroode/notes-server/internal/logger"
)

// Router builds the gRPC server exposing the health service.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance around the given health server.
func New(health *health.Server, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

func (r *Router) recover(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}

// Register registers the health and reflection services behind the
// logging and recovery interceptors and returns the server.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
