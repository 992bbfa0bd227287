package health_service_api

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "kiosk"

type Database interface {
	Configured() bool
	Ping(ctx context.Context) bool
}

// Server implements the standard gRPC health service. The kiosk is serving
// while its database answers, or when no database is configured.
type Server struct {
	db Database
	grpc_health_v1.UnimplementedHealthServer
}

func NewServer(db Database) *Server {
	return &Server{db: db}
}

func (s *Server) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}
	return &grpc_health_v1.HealthCheckResponse{Status: s.status(ctx)}, nil
}

// Healthy reports the same status for plain HTTP probes.
func (s *Server) Healthy(ctx context.Context) bool {
	return s.status(ctx) == grpc_health_v1.HealthCheckResponse_SERVING
}

func (s *Server) status(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if s.db == nil || !s.db.Configured() || s.db.Ping(ctx) {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_NOT_SERVING
}
