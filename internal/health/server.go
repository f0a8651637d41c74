package health

import (
	"context"
	"errors"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
)

// ServiceName is the name probes ask about; the empty name reports the same status.
const ServiceName = "nutriflow.waitlist"

// Server exposes the standard gRPC health service for orchestrators.
type Server struct {
	addr   string
	grpc   *grpc.Server
	health *grpchealth.Server
	lis    net.Listener
	log    zerolog.Logger
}

func New(addr string, m *metrics.Metrics, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "HealthServer").Logger()

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(m.UnaryServerInterceptor()),
		grpc.StreamInterceptor(m.StreamServerInterceptor()),
	)
	hs := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)

	return &Server{addr: addr, grpc: grpcServer, health: hs, log: logger}
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.Error().Err(err).Str("grpc_addr", s.addr).Msg("gRPC listen error")
		return err
	}
	s.lis = lis

	s.SetServing(true)
	go func() {
		if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.log.Error().Err(err).Msg("gRPC server error")
		}
	}()

	s.log.Info().Str("grpc_addr", lis.Addr().String()).Msg("gRPC health server running")
	return nil
}

// Addr is the bound address, useful when listening on port 0.
func (s *Server) Addr() string {
	if s.lis == nil {
		return s.addr
	}
	return s.lis.Addr().String()
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop reports NOT_SERVING to watchers and drains the server.
func (s *Server) Stop() {
	s.SetServing(false)
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.log.Info().Msg("gRPC health server stopped")
}
