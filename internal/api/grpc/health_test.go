package grpc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcapi "essentia-backend/internal/api/grpc"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

func TestHealthChecker(t *testing.T) {
	ctx := context.Background()
	db := &fakePinger{}
	checker := grpcapi.NewHealthChecker(db, nil)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checker.Refresh(ctx))
	status, err := checker.Check(ctx, grpcapi.ServiceName)
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status)

	db.err = errors.New("connection refused")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checker.Refresh(ctx))
	status, err = checker.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status)

	_, err = checker.Check(ctx, "unknown.Service")
	assert.Error(t, err)

	db.err = nil
	checker.Refresh(ctx)
	checker.Shutdown()
	status, err = checker.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status)
}
