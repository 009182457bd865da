package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

type CreateHomeworkRequest struct {
	CourseID    string `json:"course_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type PublishHomeworkRequest struct {
	HomeworkID string `json:"homework_id" validate:"required,uuid"`
}

type SubmitSolutionRequest struct {
	HomeworkID string `json:"homework_id" validate:"required,uuid"`
	StudentID  string `json:"student_id" validate:"required,uuid"`
	Answer     string `json:"answer" validate:"required"`
}

type ReturnSolutionRequest struct {
	SolutionID string `json:"solution_id" validate:"required,uuid"`
	Feedback   string `json:"feedback"`
}

type GradeSolutionRequest struct {
	SolutionID string  `json:"solution_id" validate:"required,uuid"`
	Grade      *int    `json:"grade" validate:"required"`
	Feedback   *string `json:"feedback"`
}

// idRequest carries a single id taken from the URL path.
type idRequest struct {
	ID uuid.UUID `json:"-"`
}

type emptyRequest struct{}

type HomeworkResponse struct {
	ID          uuid.UUID             `json:"id"`
	CourseID    uuid.UUID             `json:"course_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.HomeworkStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	PublishedAt *time.Time            `json:"published_at"`
}

type SolutionResponse struct {
	ID          uuid.UUID             `json:"id"`
	HomeworkID  uuid.UUID             `json:"homework_id"`
	StudentID   uuid.UUID             `json:"student_id"`
	Answer      string                `json:"answer"`
	Status      domain.SolutionStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	SubmittedAt *time.Time            `json:"submitted_at"`
	Grade       *int                  `json:"grade"`
	Feedback    *string               `json:"feedback"`
}

type ProgressResponse struct {
	ID                 uuid.UUID `json:"id"`
	StudentID          uuid.UUID `json:"student_id"`
	CourseID           uuid.UUID `json:"course_id"`
	TotalHomeworks     int       `json:"total_homeworks"`
	CompletedHomeworks int       `json:"completed_homeworks"`
	AverageGrade       *float64  `json:"average_grade"`
}

func homeworkResponse(h *domain.Homework) HomeworkResponse {
	return HomeworkResponse{
		ID:          h.ID,
		CourseID:    h.CourseID,
		Title:       h.Title,
		Description: h.Description,
		Status:      h.Status,
		CreatedAt:   h.CreatedAt,
		PublishedAt: h.PublishedAt,
	}
}

func homeworkResponses(hs []*domain.Homework) []HomeworkResponse {
	out := make([]HomeworkResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, homeworkResponse(h))
	}
	return out
}

func solutionResponse(s *domain.Solution) SolutionResponse {
	return SolutionResponse{
		ID:          s.ID,
		HomeworkID:  s.HomeworkID,
		StudentID:   s.StudentID,
		Answer:      s.Answer,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		SubmittedAt: s.SubmittedAt,
		Grade:       s.Grade,
		Feedback:    s.Feedback,
	}
}

func solutionResponses(ss []*domain.Solution) []SolutionResponse {
	out := make([]SolutionResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, solutionResponse(s))
	}
	return out
}

func progressResponse(p *domain.Progress) ProgressResponse {
	return ProgressResponse{
		ID:                 p.ID,
		StudentID:          p.StudentID,
		CourseID:           p.CourseID,
		TotalHomeworks:     p.TotalHomeworks,
		CompletedHomeworks: p.CompletedHomeworks,
		AverageGrade:       p.AverageGrade,
	}
}
