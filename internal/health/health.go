// Package health publishes dependency health over the standard gRPC health protocol.
package health

import (
	"context"
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is anything that can prove it is reachable: the pg pool, the session store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpc     *grpc.Server
	hs       *health.Server
	checks   map[string]Pinger
	names    []string
	interval time.Duration
	log      zerolog.Logger
}

// New registers one health service per check name plus the overall "" service.
func New(log zerolog.Logger, interval time.Duration, checks map[string]Pinger) *Server {
	names := make([]string, 0, len(checks))
	for n := range checks {
		names = append(names, n)
	}
	sort.Strings(names)

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{grpc: gs, hs: hs, checks: checks, names: names, interval: interval, log: log}
}

// Probe pings every dependency, publishes the result and returns the first failure.
func (s *Server) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var first error
	for _, n := range s.names {
		st := healthpb.HealthCheckResponse_SERVING
		if err := s.checks[n].Ping(ctx); err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			s.log.Warn().Err(err).Str("check", n).Msg("health check failed")
			if first == nil {
				first = fmt.Errorf("%s: %w", n, err)
			}
		}
		s.hs.SetServingStatus(n, st)
	}
	overall := healthpb.HealthCheckResponse_SERVING
	if first != nil {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.hs.SetServingStatus("", overall)
	return first
}

// Run probes immediately and then every interval until ctx ends.
func (s *Server) Run(ctx context.Context) {
	_ = s.Probe(ctx)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = s.Probe(ctx)
		}
	}
}

func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

func (s *Server) Stop() {
	s.hs.Shutdown()
	s.grpc.GracefulStop()
}
