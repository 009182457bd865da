package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventHomeworkPublished EventType = "homework.published"
	EventHomeworkActivated EventType = "homework.activated"
	EventSolutionSubmitted EventType = "solution.submitted"
	EventSolutionReturned  EventType = "solution.returned"
	EventSolutionGraded    EventType = "solution.graded"
)

// Event describes a committed lifecycle transition.
type Event struct {
	Type       EventType  `json:"type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	CourseID   *uuid.UUID `json:"course_id,omitempty"`
	HomeworkID *uuid.UUID `json:"homework_id,omitempty"`
	StudentID  *uuid.UUID `json:"student_id,omitempty"`
	Grade      *int       `json:"grade,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func HomeworkEvent(t EventType, h *Homework, at time.Time) Event {
	courseID := h.CourseID
	return Event{
		Type:       t,
		EntityID:   h.ID,
		CourseID:   &courseID,
		OccurredAt: at,
	}
}

func SolutionEvent(t EventType, s *Solution, at time.Time) Event {
	homeworkID, studentID := s.HomeworkID, s.StudentID
	return Event{
		Type:       t,
		EntityID:   s.ID,
		HomeworkID: &homeworkID,
		StudentID:  &studentID,
		Grade:      s.Grade,
		OccurredAt: at,
	}
}
