package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/errdefs"
)

type Homework struct {
	ID          uuid.UUID      `db:"id"`
	CourseID    uuid.UUID      `db:"course_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      HomeworkStatus `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	PublishedAt *time.Time     `db:"published_at"`
}

// NewHomework builds a homework in the created status. The id is a UUIDv7 so
// that homeworks sort by creation time.
func NewHomework(courseID uuid.UUID, title, description string, now time.Time) (*Homework, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course_id is required", errdefs.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	return &Homework{
		ID:          id,
		CourseID:    courseID,
		Title:       title,
		Description: description,
		Status:      HomeworkStatusCreated,
		CreatedAt:   now,
	}, nil
}

// Publish moves a created homework to active. Any other status is rejected.
func (h *Homework) Publish(now time.Time) error {
	if h.Status != HomeworkStatusCreated {
		return fmt.Errorf("%w: homework is not in created status (current: %s)",
			errdefs.ErrInvalidTransition, h.Status)
	}
	if now.Before(h.CreatedAt) {
		now = h.CreatedAt
	}
	h.Status = HomeworkStatusActive
	h.PublishedAt = &now
	return nil
}

func (h *Homework) IsActive() bool {
	return h.Status == HomeworkStatusActive
}
