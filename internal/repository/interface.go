package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type HomeworkRepositoryInterface interface {
	Create(ctx context.Context, homework *domain.Homework) error
	Update(ctx context.Context, homework *domain.Homework) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Homework, error)
	List(ctx context.Context) ([]*domain.Homework, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error)
	ListByCourseAndStatus(ctx context.Context, courseID uuid.UUID, status domain.HomeworkStatus) ([]*domain.Homework, error)
}

type SolutionRepositoryInterface interface {
	Create(ctx context.Context, solution *domain.Solution) error
	Update(ctx context.Context, solution *domain.Solution) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Solution, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Solution, error)
	ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Solution, error)
}

type ProgressRepositoryInterface interface {
	Create(ctx context.Context, progress *domain.Progress) error
	Update(ctx context.Context, progress *domain.Progress) error
	GetByStudent(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error)
}

// Repositories groups the per-entity repositories bound to one connection or
// transaction.
type Repositories struct {
	Homeworks HomeworkRepositoryInterface
	Solutions SolutionRepositoryInterface
	Progress  ProgressRepositoryInterface
}

// Store is the entity store used by the lifecycle services.
//
// WithinTx runs fn as one atomic unit: entities read through the given
// repositories stay locked until fn returns, and nothing fn wrote survives
// if it returns an error.
type Store interface {
	Repositories() Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
