// Package grpc exposes the standard gRPC health service for the users API.
// Status follows a periodic store probe: SERVING while the store answers,
// NOT_SERVING otherwise.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/radar/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "radar.users"

// DefaultInterval is used when the configured probe interval is not positive.
const DefaultInterval = 10 * time.Second

// ProbeFunc checks a dependency; nil means healthy.
type ProbeFunc func(ctx context.Context) error

type HealthServer struct {
	address  string
	logger   logging.Logger
	probe    ProbeFunc
	interval time.Duration
	health   *health.Server
}

func NewHealthServer(a string, l logging.Logger, probe ProbeFunc, interval time.Duration) *HealthServer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &HealthServer{
		address:  a,
		logger:   l.With("module", "grpc_health"),
		probe:    probe,
		interval: interval,
		health:   health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HealthServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves health checks on lis until ctx is cancelled.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, s.health)

	s.check(ctx)

	go func() {
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info(ctx, "Stopping gRPC health server...")
				s.health.Shutdown()
				srv.GracefulStop()
				return
			case <-t.C:
				s.check(ctx)
			}
		}
	}()

	s.logger.Info(ctx, "Starting gRPC health server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

// check runs the probe once and publishes the result.
func (s *HealthServer) check(ctx context.Context) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := s.probe(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn(ctx, "store probe failed", "err", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
