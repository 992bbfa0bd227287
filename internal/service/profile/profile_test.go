package profile

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/Domenick1991/kiosk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context) (*domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func TestResolver_Resolve_MirrorsProfile(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	source := &MockSource{}
	source.On("Fetch", ctx).Return(&domain.UserProfile{ID: "u-9", Name: "Thandi", Email: "thandi@example.com"}, nil).Once()

	r := NewResolver(source, storage.NewLocal(mem, logging.NewNop()))
	res := r.Resolve(ctx)

	require.True(t, res.OK())
	assert.Equal(t, "Thandi", res.Value.Name)

	name, _ := mem.Get(ctx, storage.KeyUserName)
	email, _ := mem.Get(ctx, storage.KeyUserEmail)
	id, _ := mem.Get(ctx, storage.KeyUserID)
	assert.Equal(t, "Thandi", name)
	assert.Equal(t, "thandi@example.com", email)
	assert.Equal(t, "u-9", id)

	assert.Equal(t, res.Value, r.Cached(ctx))
	source.AssertExpectations(t)
}

func TestResolver_Resolve_FailureIsAnonymous(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	source := &MockSource{}
	source.On("Fetch", ctx).Return(nil, errors.New("connection refused")).Once()

	r := NewResolver(source, storage.NewLocal(mem, logging.NewNop()))
	res := r.Resolve(ctx)

	assert.False(t, res.OK())
	assert.Nil(t, res.Value)
	assert.Nil(t, r.Cached(ctx))
	source.AssertExpectations(t)
}

func TestResolver_Resolve_NilProfile(t *testing.T) {
	ctx := context.Background()
	source := &MockSource{}
	source.On("Fetch", ctx).Return(nil, nil).Once()

	res := NewResolver(source, storage.NewLocal(storage.NewMemoryStore(), logging.NewNop())).Resolve(ctx)

	assert.ErrorIs(t, res.Err, ErrAnonymous)
}

func TestResolver_Resolve_NoSource(t *testing.T) {
	res := NewResolver(nil, storage.NewLocal(storage.NewMemoryStore(), logging.NewNop())).Resolve(context.Background())
	assert.ErrorIs(t, res.Err, ErrAnonymous)
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Sipho","email":"sipho@example.com"}`))
	}))
	defer srv.Close()

	p, err := NewHTTPSource(srv.URL, srv.Client()).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.UserProfile{ID: "u-1", Name: "Sipho", Email: "sipho@example.com"}, p)
}

func TestHTTPSource_Fetch_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrAnonymous},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad json", status: http.StatusOK, body: "{"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			p, err := NewHTTPSource(srv.URL, srv.Client()).Fetch(context.Background())

			assert.Nil(t, p)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestHTTPSource_Fetch_NoURL(t *testing.T) {
	_, err := NewHTTPSource("", nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrAnonymous)
}
