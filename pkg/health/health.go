// Package health reports database reachability over gRPC (grpc.health.v1) and HTTP.
package health

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/payments-api/pkg/logger"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the body of GET /health
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Server runs the gRPC health service and answers HTTP probes.
// A nil Pinger means there is no database and the service is always serving.
type Server struct {
	service string
	pinger  Pinger
	grpc    *grpc.Server
	health  *grpchealth.Server
}

// NewServer creates a gRPC server with the health and reflection services registered
func NewServer(service string, pinger Pinger) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(LoggingInterceptor),
	)

	hs := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	s := &Server{
		service: service,
		pinger:  pinger,
		grpc:    grpcServer,
		health:  hs,
	}
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Check pings the database
func (s *Server) Check(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.pinger.PingContext(ctx)
}

// Refresh runs one check and publishes the result to the gRPC health service
func (s *Server) Refresh(ctx context.Context) error {
	err := s.Check(ctx)
	if err != nil {
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Poll refreshes the status every interval until ctx is done
func (s *Server) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		err := s.Refresh(ctx)
		switch {
		case err != nil && healthy:
			logger.Logger.Warn().Err(err).Msg("Database unreachable, reporting NOT_SERVING")
		case err == nil && !healthy:
			logger.Logger.Info().Msg("Database reachable again, reporting SERVING")
		}
		healthy = err == nil

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Serve blocks serving gRPC on lis
func (s *Server) Serve(lis net.Listener) error {
	logger.Logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC health server listening")
	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight RPCs
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

// ServeHTTP answers GET /health with 200 or 503
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := Status{Status: "healthy", Database: "up"}
	code := http.StatusOK
	if s.pinger == nil {
		body.Database = "memory"
	}
	if err := s.Check(r.Context()); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Health check failed")
		body = Status{Status: "unhealthy", Database: "down", Error: err.Error()}
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.service, status)
}

// LoggingInterceptor logs every unary call with its duration
func LoggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	event := logger.Debug(ctx)
	if err != nil {
		event = logger.Error(ctx).Err(err)
	}
	event.Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")

	return resp, err
}
