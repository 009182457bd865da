package repository

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
)

const homeworkColumns = `id, course_id, title, description, status, created_at, published_at`

type HomeworkRepository struct {
	db   Querier
	lock bool
}

func NewHomeworkRepository(db Querier) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

func (r *HomeworkRepository) Create(ctx context.Context, homework *domain.Homework) error {
	query := `
		INSERT INTO homeworks (id, course_id, title, description, status, created_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		homework.ID,
		homework.CourseID,
		homework.Title,
		homework.Description,
		homework.Status,
		homework.CreatedAt,
		homework.PublishedAt,
	)
	if err != nil {
		return handleError(err, "create homework")
	}
	return nil
}

func (r *HomeworkRepository) Update(ctx context.Context, homework *domain.Homework) error {
	query := `
		UPDATE homeworks
		SET course_id = $1, title = $2, description = $3, status = $4, published_at = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		homework.CourseID,
		homework.Title,
		homework.Description,
		homework.Status,
		homework.PublishedAt,
		homework.ID,
	)
	if err != nil {
		return handleError(err, "update homework")
	}
	return expectOneRow(tag)
}

func (r *HomeworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Homework, error) {
	query := forUpdate(`SELECT `+homeworkColumns+` FROM homeworks WHERE id = $1`, r.lock)

	var homework domain.Homework
	if err := pgxscan.Get(ctx, r.db, &homework, query, id); err != nil {
		return nil, handleError(err, "get homework")
	}
	return &homework, nil
}

func (r *HomeworkRepository) List(ctx context.Context) ([]*domain.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homeworks ORDER BY created_at, id`

	var homeworks []*domain.Homework
	if err := pgxscan.Select(ctx, r.db, &homeworks, query); err != nil {
		return nil, handleError(err, "list homeworks")
	}
	return homeworks, nil
}

func (r *HomeworkRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Homework, error) {
	query := `SELECT ` + homeworkColumns + ` FROM homeworks WHERE course_id = $1 ORDER BY created_at, id`

	var homeworks []*domain.Homework
	if err := pgxscan.Select(ctx, r.db, &homeworks, query, courseID); err != nil {
		return nil, handleError(err, "list homeworks by course")
	}
	return homeworks, nil
}

// ListByCourseAndStatus locks the matched rows when called inside a
// transaction, so a concurrent activation of the same course waits.
func (r *HomeworkRepository) ListByCourseAndStatus(ctx context.Context, courseID uuid.UUID, status domain.HomeworkStatus) ([]*domain.Homework, error) {
	query := forUpdate(
		`SELECT `+homeworkColumns+` FROM homeworks WHERE course_id = $1 AND status = $2 ORDER BY created_at, id`,
		r.lock,
	)

	var homeworks []*domain.Homework
	if err := pgxscan.Select(ctx, r.db, &homeworks, query, courseID, status); err != nil {
		return nil, handleError(err, "list homeworks by course and status")
	}
	return homeworks, nil
}
