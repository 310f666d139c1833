package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a transport serves on (plain TCP or TLS).
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a transport the process runs until shutdown: the HTTP API or the gRPC health endpoint.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
