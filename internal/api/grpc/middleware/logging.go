package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notes-server/internal/logger"
)

// Logging is a unary interceptor that logs gRPC calls and their status.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method, duration and status code for each unary call.
// Health probes arrive every few seconds, so successful calls log at debug.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	if err != nil {
		if _, ok := status.FromError(err); !ok {
			code = codes.Internal
		}
		l.logger.Error("gRPC request failed",
			"method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds(),
			"status", code.String(),
			"error", err.Error())
		return resp, err
	}

	l.logger.Debug("gRPC request completed",
		"method", info.FullMethod,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String())

	return resp, nil
}
