package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/repository"
)

type tables struct {
	homeworks map[uuid.UUID]domain.Homework
	solutions map[uuid.UUID]domain.Solution
	progress  map[uuid.UUID]domain.Progress
}

func newTables() *tables {
	return &tables{
		homeworks: make(map[uuid.UUID]domain.Homework),
		solutions: make(map[uuid.UUID]domain.Solution),
		progress:  make(map[uuid.UUID]domain.Progress),
	}
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.homeworks {
		c.homeworks[k] = v
	}
	for k, v := range t.solutions {
		c.solutions[k] = v
	}
	for k, v := range t.progress {
		c.progress[k] = v
	}
	return c
}

// Store keeps every entity in process memory. Transactions are serialized by
// a single mutex and staged on a copy of the tables.
type Store struct {
	mu sync.Mutex
	t  *tables
}

func NewStore() *Store {
	return &Store{t: newTables()}
}

func (s *Store) Repositories() repository.Repositories {
	return s.repositories(func() *tables { return s.t }, s.lock)
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	staged := s.t.clone()
	if err := fn(ctx, s.repositories(func() *tables { return staged }, noLock)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.t = staged
	return nil
}

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

func noLock() func() { return func() {} }

func (s *Store) repositories(t func() *tables, lock func() func()) repository.Repositories {
	return repository.Repositories{
		Homeworks: &homeworkRepository{t: t, lock: lock},
		Solutions: &solutionRepository{t: t, lock: lock},
		Progress:  &progressRepository{t: t, lock: lock},
	}
}

type homeworkRepository struct {
	t    func() *tables
	lock func() func()
}

func (r *homeworkRepository) Create(_ context.Context, homework *domain.Homework) error {
	defer r.lock()()
	if _, ok := r.t().homeworks[homework.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.t().homeworks[homework.ID] = cloneHomework(*homework)
	return nil
}

func (r *homeworkRepository) Update(_ context.Context, homework *domain.Homework) error {
	defer r.lock()()
	if _, ok := r.t().homeworks[homework.ID]; !ok {
		return repository.ErrNotFound
	}
	r.t().homeworks[homework.ID] = cloneHomework(*homework)
	return nil
}

func (r *homeworkRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Homework, error) {
	defer r.lock()()
	h, ok := r.t().homeworks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneHomework(h)
	return &c, nil
}

func (r *homeworkRepository) List(_ context.Context) ([]*domain.Homework, error) {
	return r.filter(func(*domain.Homework) bool { return true }), nil
}

func (r *homeworkRepository) ListByCourse(_ context.Context, courseID uuid.UUID) ([]*domain.Homework, error) {
	return r.filter(func(h *domain.Homework) bool { return h.CourseID == courseID }), nil
}

func (r *homeworkRepository) ListByCourseAndStatus(_ context.Context, courseID uuid.UUID, status domain.HomeworkStatus) ([]*domain.Homework, error) {
	return r.filter(func(h *domain.Homework) bool {
		return h.CourseID == courseID && h.Status == status
	}), nil
}

func (r *homeworkRepository) filter(keep func(*domain.Homework) bool) []*domain.Homework {
	defer r.lock()()
	var out []*domain.Homework
	for _, h := range r.t().homeworks {
		c := cloneHomework(h)
		if keep(&c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return before(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out
}

type solutionRepository struct {
	t    func() *tables
	lock func() func()
}

func (r *solutionRepository) Create(_ context.Context, solution *domain.Solution) error {
	defer r.lock()()
	if _, ok := r.t().solutions[solution.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.t().solutions[solution.ID] = cloneSolution(*solution)
	return nil
}

func (r *solutionRepository) Update(_ context.Context, solution *domain.Solution) error {
	defer r.lock()()
	if _, ok := r.t().solutions[solution.ID]; !ok {
		return repository.ErrNotFound
	}
	r.t().solutions[solution.ID] = cloneSolution(*solution)
	return nil
}

func (r *solutionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Solution, error) {
	defer r.lock()()
	s, ok := r.t().solutions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneSolution(s)
	return &c, nil
}

func (r *solutionRepository) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*domain.Solution, error) {
	return r.filter(func(s *domain.Solution) bool { return s.StudentID == studentID }), nil
}

func (r *solutionRepository) ListByHomework(_ context.Context, homeworkID uuid.UUID) ([]*domain.Solution, error) {
	return r.filter(func(s *domain.Solution) bool { return s.HomeworkID == homeworkID }), nil
}

func (r *solutionRepository) filter(keep func(*domain.Solution) bool) []*domain.Solution {
	defer r.lock()()
	var out []*domain.Solution
	for _, s := range r.t().solutions {
		c := cloneSolution(s)
		if keep(&c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return before(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out
}

type progressRepository struct {
	t    func() *tables
	lock func() func()
}

func (r *progressRepository) Create(_ context.Context, progress *domain.Progress) error {
	defer r.lock()()
	for _, p := range r.t().progress {
		if p.StudentID == progress.StudentID {
			return repository.ErrAlreadyExists
		}
	}
	r.t().progress[progress.ID] = cloneProgress(*progress)
	return nil
}

func (r *progressRepository) Update(_ context.Context, progress *domain.Progress) error {
	defer r.lock()()
	if _, ok := r.t().progress[progress.ID]; !ok {
		return repository.ErrNotFound
	}
	r.t().progress[progress.ID] = cloneProgress(*progress)
	return nil
}

func (r *progressRepository) GetByStudent(_ context.Context, studentID uuid.UUID) (*domain.Progress, error) {
	defer r.lock()()
	for _, p := range r.t().progress {
		if p.StudentID == studentID {
			c := cloneProgress(p)
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func before(at time.Time, id uuid.UUID, otherAt time.Time, otherID uuid.UUID) bool {
	if !at.Equal(otherAt) {
		return at.Before(otherAt)
	}
	return id.String() < otherID.String()
}

func cloneHomework(h domain.Homework) domain.Homework {
	h.PublishedAt = clonePtr(h.PublishedAt)
	return h
}

func cloneSolution(s domain.Solution) domain.Solution {
	s.SubmittedAt = clonePtr(s.SubmittedAt)
	s.Grade = clonePtr(s.Grade)
	s.Feedback = clonePtr(s.Feedback)
	return s
}

func cloneProgress(p domain.Progress) domain.Progress {
	p.AverageGrade = clonePtr(p.AverageGrade)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
