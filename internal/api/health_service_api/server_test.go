package health_service_api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockDatabase) Ping(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func check(t *testing.T, s *Server, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestServer_CheckServing(t *testing.T) {
	db := &MockDatabase{}
	db.On("Configured").Return(true)
	db.On("Ping", mock.Anything).Return(true)

	s := NewServer(db)

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, s, ""))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, s, ServiceName))
	db.AssertExpectations(t)
}

func TestServer_CheckDatabaseDown(t *testing.T) {
	db := &MockDatabase{}
	db.On("Configured").Return(true)
	db.On("Ping", mock.Anything).Return(false)

	s := NewServer(db)

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, s, ""))
	assert.False(t, s.Healthy(context.Background()))
}

func TestServer_CheckWithoutDatabase(t *testing.T) {
	db := &MockDatabase{}
	db.On("Configured").Return(false)

	s := NewServer(db)

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check(t, s, ""))
	db.AssertNotCalled(t, "Ping", mock.Anything)
}

func TestServer_CheckUnknownService(t *testing.T) {
	s := NewServer(nil)

	_, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "payments"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}
