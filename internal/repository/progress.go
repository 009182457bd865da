package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

type ProgressRepository struct {
	db   Querier
	lock bool
}

func NewProgressRepository(db Querier) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	query := `
		INSERT INTO student_progress (id, student_id, course_id, total_homeworks, completed_homeworks, average_grade)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		progress.ID,
		progress.StudentID,
		progress.CourseID,
		progress.TotalHomeworks,
		progress.CompletedHomeworks,
		progress.AverageGrade,
	)
	if err != nil {
		return handleError(err, "create progress")
	}
	return nil
}

func (r *ProgressRepository) Update(ctx context.Context, progress *domain.Progress) error {
	query := `
		UPDATE student_progress
		SET course_id = $1, total_homeworks = $2, completed_homeworks = $3, average_grade = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query,
		progress.CourseID,
		progress.TotalHomeworks,
		progress.CompletedHomeworks,
		progress.AverageGrade,
		progress.ID,
	)
	if err != nil {
		return handleError(err, "update progress")
	}
	return expectOneRow(tag)
}

func (r *ProgressRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) (*domain.Progress, error) {
	query := forUpdate(`
		SELECT id, student_id, course_id, total_homeworks, completed_homeworks, average_grade
		FROM student_progress
		WHERE student_id = $1`, r.lock)

	var progress domain.Progress
	if err := pgxscan.Get(ctx, r.db, &progress, query, studentID); err != nil {
		return nil, handleError(err, "get progress")
	}
	return &progress, nil
}
