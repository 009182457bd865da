package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/repository"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type ProgressService struct {
	store  repository.Store
	logger *logging.Logger
}

func NewProgressService(store repository.Store, logger *logging.Logger) *ProgressService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ProgressService{
		store:  store,
		logger: logger,
	}
}

// Recompute rebuilds the student's completion counters and average grade
// from all of their solutions.
func (s *ProgressService) Recompute(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error) {
	var progress *domain.Progress
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		p, err := recomputeProgress(ctx, repos, studentID)
		if err != nil {
			return err
		}
		progress = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) GetByStudent(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error) {
	progress, err := s.store.Repositories().Progress.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, notFound(err, "progress")
	}
	return progress, nil
}

// Enroll makes sure the student has a progress record for the course and
// sets its homework total to the number of homeworks the course has.
// Two concurrent enrollments of a new student race on the unique student id;
// the loser runs again against the winner's record.
func (s *ProgressService) Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Progress, error) {
	progress, err := s.enroll(ctx, studentID, courseID)
	if errors.Is(err, repository.ErrAlreadyExists) {
		s.logger.Debug(ctx, "progress created concurrently, retrying enrollment",
			zap.String("student_id", studentID.String()))
		progress, err = s.enroll(ctx, studentID, courseID)
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) enroll(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Progress, error) {
	var progress *domain.Progress
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		// Lock the progress row before reading solutions, as recomputeProgress does.
		p, err := repos.Progress.GetByStudent(ctx, studentID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		missing := errors.Is(err, repository.ErrNotFound)

		homeworks, err := repos.Homeworks.ListByCourse(ctx, courseID)
		if err != nil {
			return err
		}
		solutions, err := repos.Solutions.ListByStudent(ctx, studentID)
		if err != nil {
			return err
		}

		if missing {
			p, err = domain.NewProgress(studentID, courseID, len(homeworks))
			if err != nil {
				return err
			}
			p.Recompute(solutions)
			if err := repos.Progress.Create(ctx, p); err != nil {
				return err
			}
		} else {
			p.CourseID = courseID
			p.TotalHomeworks = len(homeworks)
			p.Recompute(solutions)
			if err := repos.Progress.Update(ctx, p); err != nil {
				return notFound(err, "progress")
			}
		}

		progress = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// recomputeProgress must run inside a transaction so that the solutions it
// reads are the ones the caller just wrote.
func recomputeProgress(ctx context.Context, repos repository.Repositories, studentID uuid.UUID) (*domain.Progress, error) {
	progress, err := repos.Progress.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, notFound(err, "progress")
	}

	solutions, err := repos.Solutions.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	progress.Recompute(solutions)

	if err := repos.Progress.Update(ctx, progress); err != nil {
		return nil, notFound(err, "progress")
	}
	return progress, nil
}
