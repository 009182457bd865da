package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

const solutionColumns = `id, homework_id, student_id, answer, status, created_at, submitted_at, grade, feedback`

type SolutionRepository struct {
	db   Querier
	lock bool
}

func NewSolutionRepository(db Querier) *SolutionRepository {
	return &SolutionRepository{db: db}
}

func (r *SolutionRepository) Create(ctx context.Context, solution *domain.Solution) error {
	query := `
		INSERT INTO solutions (id, homework_id, student_id, answer, status, created_at, submitted_at, grade, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		solution.ID,
		solution.HomeworkID,
		solution.StudentID,
		solution.Answer,
		solution.Status,
		solution.CreatedAt,
		solution.SubmittedAt,
		solution.Grade,
		solution.Feedback,
	)
	if err != nil {
		return handleError(err, "create solution")
	}
	return nil
}

func (r *SolutionRepository) Update(ctx context.Context, solution *domain.Solution) error {
	query := `
		UPDATE solutions
		SET answer = $1, status = $2, submitted_at = $3, grade = $4, feedback = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		solution.Answer,
		solution.Status,
		solution.SubmittedAt,
		solution.Grade,
		solution.Feedback,
		solution.ID,
	)
	if err != nil {
		return handleError(err, "update solution")
	}
	return expectOneRow(tag)
}

func (r *SolutionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Solution, error) {
	query := forUpdate(`SELECT `+solutionColumns+` FROM solutions WHERE id = $1`, r.lock)

	var solution domain.Solution
	if err := pgxscan.Get(ctx, r.db, &solution, query, id); err != nil {
		return nil, handleError(err, "get solution")
	}
	return &solution, nil
}

func (r *SolutionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE student_id = $1 ORDER BY created_at, id`

	var solutions []*domain.Solution
	if err := pgxscan.Select(ctx, r.db, &solutions, query, studentID); err != nil {
		return nil, handleError(err, "list solutions by student")
	}
	return solutions, nil
}

func (r *SolutionRepository) ListByHomework(ctx context.Context, homeworkID uuid.UUID) ([]*domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE homework_id = $1 ORDER BY created_at, id`

	var solutions []*domain.Solution
	if err := pgxscan.Select(ctx, r.db, &solutions, query, homeworkID); err != nil {
		return nil, handleError(err, "list solutions by homework")
	}
	return solutions, nil
}
