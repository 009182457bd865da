package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresStore struct {
	pool TxBeginner
}

func NewPostgresStore(pool TxBeginner) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Repositories() Repositories {
	return newRepositories(s.pool, false)
}

func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(ctx, newRepositories(tx, true)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// newRepositories binds the repositories to db. Inside a transaction, reads
// of single entities take row locks.
func newRepositories(db Querier, lock bool) Repositories {
	return Repositories{
		Homeworks: &HomeworkRepository{db: db, lock: lock},
		Solutions: &SolutionRepository{db: db, lock: lock},
		Progress:  &ProgressRepository{db: db, lock: lock},
	}
}

func forUpdate(query string, lock bool) string {
	if lock {
		return query + " FOR UPDATE"
	}
	return query
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func handleError(err error, op string) error {
	if isNotFound(err) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func expectOneRow(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
