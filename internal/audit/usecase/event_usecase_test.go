package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/testutil"
)

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepository) List(ctx context.Context, offset, limit int) ([]*auditDomain.Event, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Event), args.Error(1)
}

func (m *mockEventRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestEventRecorder_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(event *auditDomain.Event) bool {
			return event.Type == auditDomain.MergeEvent &&
				event.ID.Version() == 7 &&
				!event.CreatedAt.IsZero()
		})).Return(nil).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		recorder.Record(ctx, auditDomain.MergeEvent)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_PersistenceFailureIsSwallowed", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("Create", ctx, mock.Anything).
			Return(apperrors.New("connection lost")).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())

		// Must not panic and must not surface the error to the flow.
		recorder.Record(ctx, auditDomain.RecognitionEvent)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_InvalidTypeIsNotPersisted", func(t *testing.T) {
		mockRepo := &mockEventRepository{}

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		recorder.Record(ctx, auditDomain.EventType("bogus"))

		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEventRecorder_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := []*auditDomain.Event{
			{Type: auditDomain.ConfusionEvent},
			{Type: auditDomain.RecognitionEvent},
		}

		mockRepo := &mockEventRepository{}
		mockRepo.On("List", ctx, 0, 50).Return(expected, nil).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		events, err := recorder.List(ctx, 0, 50)

		require.NoError(t, err)
		assert.Equal(t, expected, events)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("List", ctx, 0, 50).Return(nil, apperrors.New("query failed")).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		_, err := recorder.List(ctx, 0, 50)

		assert.Error(t, err)
	})
}

func TestEventRecorder_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeletesPastCutoff", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("DeleteOlderThan", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			// 30 days back, give or take test runtime.
			expected := time.Now().UTC().AddDate(0, 0, -30)
			return cutoff.Sub(expected).Abs() < time.Minute
		})).Return(int64(12), nil).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		count, err := recorder.DeleteOlderThan(ctx, 30, false)

		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_DryRunOnlyCounts", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("CountOlderThan", ctx, mock.Anything).Return(int64(7), nil).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		count, err := recorder.DeleteOlderThan(ctx, 30, true)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
		mockRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
	})

	t.Run("Error_NegativeDays", func(t *testing.T) {
		mockRepo := &mockEventRepository{}

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		_, err := recorder.DeleteOlderThan(ctx, -1, false)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		mockRepo := &mockEventRepository{}
		mockRepo.On("DeleteOlderThan", ctx, mock.Anything).
			Return(int64(0), apperrors.New("query failed")).Once()

		recorder := NewRecorder(mockRepo, testutil.DiscardLogger())
		_, err := recorder.DeleteOlderThan(ctx, 30, false)

		assert.Error(t, err)
	})
}
