package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/errdefs"
	"github.com/GVarya/MA-homework-service/internal/repository"
	"github.com/GVarya/MA-homework-service/internal/repository/memory"
	"github.com/GVarya/MA-homework-service/internal/service"
	"github.com/GVarya/MA-homework-service/internal/service/mocks"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

func strPtr(s string) *string { return &s }

func submitted(t *testing.T, s services, studentID uuid.UUID) *domain.Solution {
	t.Helper()
	h := activeHomework(t, s, uuid.New())
	sol, err := s.solutions.Submit(context.Background(), h.ID, studentID, "my answer")
	require.NoError(t, err)
	return sol
}

// ── Submit ──────────────────────────────────────────────────────────

func TestSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		h := activeHomework(t, s, uuid.New())
		studentID := uuid.New()

		sol, err := s.solutions.Submit(ctx, h.ID, studentID, "answer")
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusSubmitted, sol.Status)
		assert.NotNil(t, sol.SubmittedAt)
		assert.Nil(t, sol.Grade)
		assert.Nil(t, sol.Feedback)

		stored, err := s.solutions.Get(ctx, sol.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusSubmitted, stored.Status)
		assert.Equal(t, studentID, stored.StudentID)
		assert.Equal(t, h.ID, stored.HomeworkID)
	})

	t.Run("HomeworkNotActive", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		h, err := s.homeworks.Create(ctx, uuid.New(), "Draft homework", "")
		require.NoError(t, err)

		_, err = s.solutions.Submit(ctx, h.ID, uuid.New(), "answer")
		assert.ErrorIs(t, err, errdefs.ErrInvalidState)

		sols, err := s.solutions.ListByHomework(ctx, h.ID)
		require.NoError(t, err)
		assert.Empty(t, sols)
	})

	t.Run("HomeworkNotFound", func(t *testing.T) {
		s := setup(t)

		_, err := s.solutions.Submit(context.Background(), uuid.New(), uuid.New(), "answer")
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("EmptyAnswer", func(t *testing.T) {
		s := setup(t)
		h := activeHomework(t, s, uuid.New())

		_, err := s.solutions.Submit(context.Background(), h.ID, uuid.New(), "")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("NilStudent", func(t *testing.T) {
		s := setup(t)
		h := activeHomework(t, s, uuid.New())

		_, err := s.solutions.Submit(context.Background(), h.ID, uuid.Nil, "answer")
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

// ── ReturnForRework ─────────────────────────────────────────────────

func TestReturnForRework(t *testing.T) {
	t.Run("FromSubmitted", func(t *testing.T) {
		s := setup(t)
		sol := submitted(t, s, uuid.New())

		returned, err := s.solutions.ReturnForRework(context.Background(), sol.ID, "add tests")
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusReturned, returned.Status)
		require.NotNil(t, returned.Feedback)
		assert.Equal(t, "add tests", *returned.Feedback)
	})

	t.Run("FromGradedKeepsGrade", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		sol := submitted(t, s, uuid.New())

		_, err := s.solutions.Grade(ctx, sol.ID, 70, nil)
		require.NoError(t, err)

		returned, err := s.solutions.ReturnForRework(ctx, sol.ID, "one more try")
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusReturned, returned.Status)
		require.NotNil(t, returned.Grade)
		assert.Equal(t, 70, *returned.Grade)
	})

	t.Run("FromReturned", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		sol := submitted(t, s, uuid.New())

		_, err := s.solutions.ReturnForRework(ctx, sol.ID, "first")
		require.NoError(t, err)

		_, err = s.solutions.ReturnForRework(ctx, sol.ID, "second")
		assert.ErrorIs(t, err, errdefs.ErrInvalidTransition)

		stored, err := s.solutions.Get(ctx, sol.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", *stored.Feedback)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := setup(t)

		_, err := s.solutions.ReturnForRework(context.Background(), uuid.New(), "x")
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── Grade ───────────────────────────────────────────────────────────

func TestGrade(t *testing.T) {
	t.Run("UpdatesProgress", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		studentID := uuid.New()
		sol := submitted(t, s, studentID)

		_, err := s.progress.Enroll(ctx, studentID, uuid.New())
		require.NoError(t, err)

		graded, err := s.solutions.Grade(ctx, sol.ID, 90, strPtr("great"))
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusGraded, graded.Status)
		assert.Equal(t, 90, *graded.Grade)
		assert.Equal(t, "great", *graded.Feedback)

		p, err := s.progress.GetByStudent(ctx, studentID)
		require.NoError(t, err)
		assert.Equal(t, 1, p.CompletedHomeworks)
		require.NotNil(t, p.AverageGrade)
		assert.InDelta(t, 90.0, *p.AverageGrade, 1e-9)
	})

	t.Run("WithoutProgressRecord", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		studentID := uuid.New()
		sol := submitted(t, s, studentID)

		graded, err := s.solutions.Grade(ctx, sol.ID, 55, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusGraded, graded.Status)

		_, err = s.progress.GetByStudent(ctx, studentID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("AlreadyGraded", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		sol := submitted(t, s, uuid.New())

		_, err := s.solutions.Grade(ctx, sol.ID, 80, nil)
		require.NoError(t, err)

		_, err = s.solutions.Grade(ctx, sol.ID, 20, nil)
		assert.ErrorIs(t, err, errdefs.ErrInvalidTransition)

		stored, err := s.solutions.Get(ctx, sol.ID)
		require.NoError(t, err)
		assert.Equal(t, 80, *stored.Grade)
	})

	t.Run("EmptyFeedbackKeepsPrevious", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		sol := submitted(t, s, uuid.New())

		_, err := s.solutions.ReturnForRework(ctx, sol.ID, "fix naming")
		require.NoError(t, err)

		graded, err := s.solutions.Grade(ctx, sol.ID, 75, strPtr(""))
		require.NoError(t, err)
		require.NotNil(t, graded.Feedback)
		assert.Equal(t, "fix naming", *graded.Feedback)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		sol := submitted(t, s, uuid.New())

		_, err := s.solutions.Grade(ctx, sol.ID, 101, nil)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
		_, err = s.solutions.Grade(ctx, sol.ID, -1, nil)
		assert.ErrorIs(t, err, errdefs.ErrValidation)

		stored, err := s.solutions.Get(ctx, sol.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusSubmitted, stored.Status)
		assert.Nil(t, stored.Grade)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := setup(t)

		_, err := s.solutions.Grade(context.Background(), uuid.New(), 50, nil)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("ProgressFailureRollsBack", func(t *testing.T) {
		inner := memory.NewStore()
		s := newServices(inner, nopPublisher(t))
		ctx := context.Background()
		studentID := uuid.New()
		sol := submitted(t, s, studentID)

		_, err := s.progress.Enroll(ctx, studentID, uuid.New())
		require.NoError(t, err)

		failing := &brokenProgressStore{Store: inner, err: errors.New("disk full")}
		grader := service.NewSolutionService(failing, nil, logging.Nop())

		_, err = grader.Grade(ctx, sol.ID, 90, nil)
		require.Error(t, err)
		assert.False(t, errdefs.IsDomain(err))

		stored, err := s.solutions.Get(ctx, sol.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SolutionStatusSubmitted, stored.Status)
		assert.Nil(t, stored.Grade)
	})

	t.Run("ConcurrentGradeOnlyOneWins", func(t *testing.T) {
		s := setup(t)
		sol := submitted(t, s, uuid.New())

		const workers = 8
		var wg sync.WaitGroup
		errs := make([]error, workers)
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = s.solutions.Grade(context.Background(), sol.ID, 60+i, nil)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errdefs.ErrInvalidTransition)
		}
		assert.Equal(t, 1, succeeded)
	})
}

// ── Scenarios ───────────────────────────────────────────────────────

func TestGradeReturnRegrade(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	studentID := uuid.New()
	sol := submitted(t, s, studentID)

	_, err := s.progress.Enroll(ctx, studentID, uuid.New())
	require.NoError(t, err)

	_, err = s.solutions.Grade(ctx, sol.ID, 80, nil)
	require.NoError(t, err)

	returned, err := s.solutions.ReturnForRework(ctx, sol.ID, "fix X")
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionStatusReturned, returned.Status)
	assert.Equal(t, "fix X", *returned.Feedback)

	regraded, err := s.solutions.Grade(ctx, sol.ID, 95, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionStatusGraded, regraded.Status)
	assert.Equal(t, 95, *regraded.Grade)
	assert.Equal(t, "fix X", *regraded.Feedback)

	p, err := s.progress.GetByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedHomeworks)
	assert.InDelta(t, 95.0, *p.AverageGrade, 1e-9)
}

func TestSolutionEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)
	s := newServices(memory.NewStore(), publisher)
	ctx := context.Background()

	var got []domain.EventType
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.Event) error {
			got = append(got, ev.Type)
			return nil
		}).
		Times(4)

	sol := submitted(t, s, uuid.New())
	_, err := s.solutions.Grade(ctx, sol.ID, 40, nil)
	require.NoError(t, err)
	_, err = s.solutions.ReturnForRework(ctx, sol.ID, "again")
	require.NoError(t, err)

	assert.Equal(t, []domain.EventType{
		domain.EventHomeworkPublished,
		domain.EventSolutionSubmitted,
		domain.EventSolutionGraded,
		domain.EventSolutionReturned,
	}, got)
}

func nopPublisher(t *testing.T) *mocks.MockEventPublisher {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return publisher
}

// brokenProgressStore fails every progress write made inside a transaction.
type brokenProgressStore struct {
	*memory.Store
	err error
}

func (s *brokenProgressStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return s.Store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		repos.Progress = brokenProgressRepository{ProgressRepositoryInterface: repos.Progress, err: s.err}
		return fn(ctx, repos)
	})
}

type brokenProgressRepository struct {
	repository.ProgressRepositoryInterface
	err error
}

func (r brokenProgressRepository) Update(context.Context, *domain.Progress) error {
	return r.err
}
