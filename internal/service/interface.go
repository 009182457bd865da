package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

//go:generate mockgen -source=interface.go -destination=mocks/mocks.go -package=mocks

// EventPublisher delivers committed lifecycle events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type HomeworkServiceInterface interface {
	Create(ctx context.Context, courseID uuid.UUID, title, description string) (*domain.Homework, error)
	Publish(ctx context.Context, homeworkID uuid.UUID) (*domain.Homework, error)
	ActivateByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Homework, error)
	List(ctx context.Context) ([]*domain.Homework, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error)
}

type SolutionServiceInterface interface {
	Submit(ctx context.Context, homeworkID, studentID uuid.UUID, answer string) (*domain.Solution, error)
	ReturnForRework(ctx context.Context, solutionID uuid.UUID, feedback string) (*domain.Solution, error)
	Grade(ctx context.Context, solutionID uuid.UUID, grade int, feedback *string) (*domain.Solution, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Solution, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Solution, error)
	ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Solution, error)
}

type ProgressServiceInterface interface {
	Recompute(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error)
	GetByStudent(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error)
	Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*domain.Progress, error)
}
