package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Progress struct {
	ID                 uuid.UUID `db:"id"`
	StudentID          uuid.UUID `db:"student_id"`
	CourseID           uuid.UUID `db:"course_id"`
	TotalHomeworks     int       `db:"total_homeworks"`
	CompletedHomeworks int       `db:"completed_homeworks"`
	AverageGrade       *float64  `db:"average_grade"`
}

func NewProgress(studentID, courseID uuid.UUID, totalHomeworks int) (*Progress, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	return &Progress{
		ID:             id,
		StudentID:      studentID,
		CourseID:       courseID,
		TotalHomeworks: totalHomeworks,
	}, nil
}

// Recompute rebuilds the completion fields from every solution of the
// student. TotalHomeworks is left as is.
//
// Solutions returned after grading keep their grade, so they still count in
// the average but not as completed.
func (p *Progress) Recompute(solutions []*Solution) {
	completed := 0
	sum, graded := 0, 0
	for _, s := range solutions {
		if s.Status == SolutionStatusGraded {
			completed++
		}
		if s.Grade != nil {
			sum += *s.Grade
			graded++
		}
	}

	p.CompletedHomeworks = completed
	if graded == 0 {
		p.AverageGrade = nil
		return
	}
	avg := float64(sum) / float64(graded)
	p.AverageGrade = &avg
}
