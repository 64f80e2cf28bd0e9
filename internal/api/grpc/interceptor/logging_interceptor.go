package interceptor

import (
	"context"

	"github.com/jonboulle/clockwork"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
)

type LoggingInterceptor struct {
	clock clockwork.Clock
}

func NewLoggingInterceptor(clock clockwork.Clock) *LoggingInterceptor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LoggingInterceptor{clock: clock}
}

// Unary returns a server interceptor that logs and counts every unary RPC
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := i.clock.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		metrics.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		logger.Debug("gRPC call", "method", info.FullMethod, "code", code.String(), "duration", i.clock.Since(start))
		return resp, err
	}
}
