package inbound_grpc

import (
	"fmt"
	"log/slog"
	"net"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/inbound/grpc/middleware"
)

const ServiceName = "studentoffice.v1.StudentOfficeService"

// Server exposes the standard gRPC health protocol so orchestrators can probe
// the process next to the REST API.
type Server struct {
	server  *grpc.Server
	health  *health.Server
	address string
	port    int
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewServer(address string, port int, log ports.Logger, metrics ports.MetricsProvider) *Server {
	s := &Server{
		health:  health.NewServer(),
		address: address,
		port:    port,
		log:     log,
		metrics: metrics,
	}

	s.server = grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			middleware.UnaryLoggerInterceptor(log),
			middleware.UnaryMetricsInterceptor(metrics),
			grpc_recovery.UnaryServerInterceptor(),
		)),
	)
	healthpb.RegisterHealthServer(s.server, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return s
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	s.metrics.SetServiceHealth(serving)
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("Starting gRPC server", slog.String("address", lis.Addr().String()))
	return s.server.Serve(lis)
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	return s.Serve(lis)
}

func (s *Server) Shutdown() error {
	s.SetServing(false)
	s.health.Shutdown()
	s.server.GracefulStop()
	return nil
}
