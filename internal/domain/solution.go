package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/errdefs"
)

const (
	MinGrade = 0
	MaxGrade = 100
)

type Solution struct {
	ID          uuid.UUID      `db:"id"`
	HomeworkID  uuid.UUID      `db:"homework_id"`
	StudentID   uuid.UUID      `db:"student_id"`
	Answer      string         `db:"answer"`
	Status      SolutionStatus `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	SubmittedAt *time.Time     `db:"submitted_at"`
	Grade       *int           `db:"grade"`
	Feedback    *string        `db:"feedback"`
}

// NewDraftSolution builds a draft answer of a student to a homework. Drafts are
// never persisted on their own; callers submit them in the same unit of work.
func NewDraftSolution(homeworkID, studentID uuid.UUID, answer string, now time.Time) (*Solution, error) {
	if studentID == uuid.Nil {
		return nil, fmt.Errorf("%w: student_id is required", errdefs.ErrValidation)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: answer must not be empty", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	return &Solution{
		ID:         id,
		HomeworkID: homeworkID,
		StudentID:  studentID,
		Answer:     answer,
		Status:     SolutionStatusDraft,
		CreatedAt:  now,
	}, nil
}

func (s *Solution) transition(next SolutionStatus) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: solution cannot move from %s to %s",
			errdefs.ErrInvalidTransition, s.Status, next)
	}
	s.Status = next
	return nil
}

func (s *Solution) Submit(now time.Time) error {
	if err := s.transition(SolutionStatusSubmitted); err != nil {
		return err
	}
	s.SubmittedAt = &now
	return nil
}

// ReturnForRework sends the solution back to the student. A grade given
// earlier is kept.
func (s *Solution) ReturnForRework(feedback string) error {
	if err := s.transition(SolutionStatusReturned); err != nil {
		return err
	}
	s.Feedback = &feedback
	return nil
}

// ApplyGrade sets the grade. Feedback replaces the previous one only when it is
// non-empty.
func (s *Solution) ApplyGrade(grade int, feedback *string) error {
	if !s.Status.CanTransitionTo(SolutionStatusGraded) {
		return fmt.Errorf("%w: solution cannot be graded in %s status",
			errdefs.ErrInvalidTransition, s.Status)
	}
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("%w: grade must be between %d and %d", errdefs.ErrValidation, MinGrade, MaxGrade)
	}
	if err := s.transition(SolutionStatusGraded); err != nil {
		return err
	}
	s.Grade = &grade
	if feedback != nil && *feedback != "" {
		fb := *feedback
		s.Feedback = &fb
	}
	return nil
}
