package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Insert(ctx context.Context, event domain.InteractionEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, event domain.InteractionEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

var ctx = context.Background()

func TestProcessor_HandleEmail(t *testing.T) {
	repo := &MockInteractionRepository{}
	mailer := &MockMailer{}
	event := domain.InteractionEvent{ID: "e1", Type: domain.InteractionEmail}

	repo.On("Insert", ctx, event).Return(true, nil)
	mailer.On("Send", ctx, event).Return(nil)

	err := NewProcessor(repo, mailer, logging.NewNop()).Handle(ctx, event)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestProcessor_HandleDuplicateSkipsEmail(t *testing.T) {
	repo := &MockInteractionRepository{}
	mailer := &MockMailer{}
	event := domain.InteractionEvent{ID: "e1", Type: domain.InteractionEmail}

	repo.On("Insert", ctx, event).Return(false, nil)

	err := NewProcessor(repo, mailer, logging.NewNop()).Handle(ctx, event)

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestProcessor_HandleOtherTypes(t *testing.T) {
	repo := &MockInteractionRepository{}
	mailer := &MockMailer{}
	event := domain.InteractionEvent{ID: "e2", Type: domain.InteractionAddToRoute}

	repo.On("Insert", ctx, event).Return(true, nil)

	assert.NoError(t, NewProcessor(repo, mailer, logging.NewNop()).Handle(ctx, event))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestProcessor_HandleStorageError(t *testing.T) {
	repo := &MockInteractionRepository{}
	mailer := &MockMailer{}
	event := domain.InteractionEvent{ID: "e3", Type: domain.InteractionEmail}
	boom := errors.New("connection reset")

	repo.On("Insert", ctx, event).Return(false, boom)

	err := NewProcessor(repo, mailer, logging.NewNop()).Handle(ctx, event)

	assert.ErrorIs(t, err, boom)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestProcessor_HandleWithoutDatabase(t *testing.T) {
	repo := &MockInteractionRepository{}
	mailer := &MockMailer{}
	event := domain.InteractionEvent{ID: "e4", Type: domain.InteractionEmail}

	repo.On("Insert", ctx, event).Return(false, database.ErrNotConfigured)
	mailer.On("Send", ctx, event).Return(errors.New("no recipient"))

	assert.NoError(t, NewProcessor(repo, mailer, logging.NewNop()).Handle(ctx, event))
	mailer.AssertExpectations(t)
}

func TestRefreshCatalog(t *testing.T) {
	refresher := &MockRefresher{}
	refreshed := make(chan struct{}, 1)
	refresher.On("Refresh", mock.Anything).Return([]domain.Destination{{ID: "kruger"}}, nil).Run(func(mock.Arguments) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	})

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RefreshCatalog(runCtx, refresher, 5*time.Millisecond, logging.NewNop())
		close(done)
	}()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("catalog was not refreshed")
	}
	cancel()
	<-done
}
