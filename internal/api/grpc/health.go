package grpc

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"essentia-backend/internal/api/grpc/interceptor"
	"essentia-backend/internal/logger"
)

// ServiceName is the health service name probes can ask for besides "".
const ServiceName = "essentia.Backend"

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthChecker keeps the standard gRPC health service in sync with the database.
type HealthChecker struct {
	server *health.Server
	db     Pinger
	clock  clockwork.Clock
}

func NewHealthChecker(db Pinger, clock clockwork.Clock) *HealthChecker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthChecker{server: health.NewServer(), db: db, clock: clock}
}

// Refresh pings the database once and publishes the result.
func (c *HealthChecker) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := c.db.PingContext(ctx); err != nil {
		logger.Warn("Health check failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	return status
}

// Run refreshes the status every interval until ctx is done.
func (c *HealthChecker) Run(ctx context.Context, interval time.Duration) {
	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	c.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			c.Refresh(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so probes drain before the listener closes.
func (c *HealthChecker) Shutdown() {
	c.server.Shutdown()
}

// Check answers a health request the same way a remote probe would see it.
func (c *HealthChecker) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := c.server.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// NewServer returns a gRPC server that exposes only health and reflection.
func NewServer(checker *HealthChecker) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.NewLoggingInterceptor(checker.clock).Unary()),
	)
	healthpb.RegisterHealthServer(s, checker.server)
	reflection.Register(s)
	return s
}
