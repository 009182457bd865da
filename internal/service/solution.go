package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/errdefs"
	"github.com/GVarya/MA-homework-service/internal/repository"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type SolutionService struct {
	store  repository.Store
	events emitter
	now    func() time.Time
}

func NewSolutionService(
	store repository.Store,
	publisher EventPublisher,
	logger *logging.Logger,
) *SolutionService {
	return &SolutionService{
		store:  store,
		events: newEmitter(publisher, logger),
		now:    time.Now,
	}
}

// Submit records the student's answer to an active homework. The draft and
// its submission happen in one unit of work, so only submitted solutions are
// ever stored.
func (s *SolutionService) Submit(ctx context.Context, homeworkID, studentID uuid.UUID, answer string) (*domain.Solution, error) {
	now := s.now().UTC()
	draft, err := domain.NewDraftSolution(homeworkID, studentID, answer, now)
	if err != nil {
		return nil, err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		homework, err := repos.Homeworks.GetByID(ctx, homeworkID)
		if err != nil {
			return notFound(err, "homework")
		}
		if !homework.IsActive() {
			return fmt.Errorf("%w: homework is not active", errdefs.ErrInvalidState)
		}

		if err := draft.Submit(now); err != nil {
			return err
		}
		return repos.Solutions.Create(ctx, draft)
	})
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.SolutionEvent(domain.EventSolutionSubmitted, draft, now))
	return draft, nil
}

func (s *SolutionService) ReturnForRework(ctx context.Context, solutionID uuid.UUID, feedback string) (*domain.Solution, error) {
	solution, err := s.mutate(ctx, solutionID, func(sol *domain.Solution) error {
		return sol.ReturnForRework(feedback)
	}, nil)
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.SolutionEvent(domain.EventSolutionReturned, solution, s.now().UTC()))
	return solution, nil
}

// Grade grades a submitted or returned solution and recomputes the student's
// progress in the same transaction. A student without a progress record is
// graded anyway.
func (s *SolutionService) Grade(ctx context.Context, solutionID uuid.UUID, grade int, feedback *string) (*domain.Solution, error) {
	solution, err := s.mutate(ctx, solutionID, func(sol *domain.Solution) error {
		return sol.ApplyGrade(grade, feedback)
	}, func(ctx context.Context, repos repository.Repositories, sol *domain.Solution) error {
		_, err := recomputeProgress(ctx, repos, sol.StudentID)
		if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
			return fmt.Errorf("failed to recompute progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.SolutionEvent(domain.EventSolutionGraded, solution, s.now().UTC()))
	return solution, nil
}

// mutate loads the solution under lock, applies change and writes it back.
// after, if set, runs in the same transaction once the write is done.
func (s *SolutionService) mutate(
	ctx context.Context,
	solutionID uuid.UUID,
	change func(sol *domain.Solution) error,
	after func(ctx context.Context, repos repository.Repositories, sol *domain.Solution) error,
) (*domain.Solution, error) {
	var solution *domain.Solution
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		sol, err := repos.Solutions.GetByID(ctx, solutionID)
		if err != nil {
			return notFound(err, "solution")
		}

		if err := change(sol); err != nil {
			return err
		}

		if err := repos.Solutions.Update(ctx, sol); err != nil {
			return notFound(err, "solution")
		}
		if after != nil {
			if err := after(ctx, repos, sol); err != nil {
				return err
			}
		}
		solution = sol
		return nil
	})
	if err != nil {
		return nil, err
	}
	return solution, nil
}

func (s *SolutionService) Get(ctx context.Context, id uuid.UUID) (*domain.Solution, error) {
	solution, err := s.store.Repositories().Solutions.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "solution")
	}
	return solution, nil
}

func (s *SolutionService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Solution, error) {
	return s.store.Repositories().Solutions.ListByStudent(ctx, studentID)
}

func (s *SolutionService) ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Solution, error) {
	return s.store.Repositories().Solutions.ListByHomework(ctx, homeworkID)
}
