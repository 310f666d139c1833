package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/notes-server/internal/mocks"
)

func servingStatus(hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestGRPCServer_Address(t *testing.T) {
	t.Parallel()

	s := NewGRPCServer(grpc.NewServer(), health.NewServer(), ":0")
	assert.Equal(t, ":0", s.Address())
}

func TestGRPCServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(nil, assert.AnError)

	err := NewGRPCServer(grpc.NewServer(), health.NewServer(), ":0").Start(sec)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGRPCServer_Lifecycle(t *testing.T) {
	t.Parallel()

	gs := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv := NewGRPCServer(gs, hs, ":0")
	sec := mocks.NewSecurityLayer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	listened := make(chan struct{})
	sec.On("Listen", "tcp", ":0").Return(ln, nil).Run(func(mock.Arguments) { close(listened) })

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(sec) }()
	<-listened

	require.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(hs))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}
