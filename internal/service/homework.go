package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/repository"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

type HomeworkService struct {
	store  repository.Store
	events emitter
	now    func() time.Time
}

func NewHomeworkService(
	store repository.Store,
	publisher EventPublisher,
	logger *logging.Logger,
) *HomeworkService {
	return &HomeworkService{
		store:  store,
		events: newEmitter(publisher, logger),
		now:    time.Now,
	}
}

func (s *HomeworkService) Create(ctx context.Context, courseID uuid.UUID, title, description string) (*domain.Homework, error) {
	homework, err := domain.NewHomework(courseID, title, description, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.store.Repositories().Homeworks.Create(ctx, homework); err != nil {
		return nil, err
	}

	return homework, nil
}

func (s *HomeworkService) Publish(ctx context.Context, homeworkID uuid.UUID) (*domain.Homework, error) {
	var homework *domain.Homework
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		h, err := repos.Homeworks.GetByID(ctx, homeworkID)
		if err != nil {
			return notFound(err, "homework")
		}

		if err := h.Publish(s.now().UTC()); err != nil {
			return err
		}

		if err := repos.Homeworks.Update(ctx, h); err != nil {
			return notFound(err, "homework")
		}
		homework = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.HomeworkEvent(domain.EventHomeworkPublished, homework, *homework.PublishedAt))
	return homework, nil
}

// ActivateByCourse publishes every created homework of the course at once.
// Homeworks in any other status are left alone, so repeated calls are
// harmless.
func (s *HomeworkService) ActivateByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error) {
	var activated []*domain.Homework
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		pending, err := repos.Homeworks.ListByCourseAndStatus(ctx, courseID, domain.HomeworkStatusCreated)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		activated = make([]*domain.Homework, 0, len(pending))
		for _, h := range pending {
			if err := h.Publish(now); err != nil {
				return err
			}
			if err := repos.Homeworks.Update(ctx, h); err != nil {
				return notFound(err, "homework")
			}
			activated = append(activated, h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(activated))
	for _, h := range activated {
		events = append(events, domain.HomeworkEvent(domain.EventHomeworkActivated, h, *h.PublishedAt))
	}
	s.events.emit(ctx, events...)

	return activated, nil
}

func (s *HomeworkService) Get(ctx context.Context, id uuid.UUID) (*domain.Homework, error) {
	homework, err := s.store.Repositories().Homeworks.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "homework")
	}
	return homework, nil
}

func (s *HomeworkService) List(ctx context.Context) ([]*domain.Homework, error) {
	return s.store.Repositories().Homeworks.List(ctx)
}

func (s *HomeworkService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error) {
	return s.store.Repositories().Homeworks.ListByCourse(ctx, courseID)
}
