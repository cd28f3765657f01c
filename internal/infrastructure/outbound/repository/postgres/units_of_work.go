package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ports "studentoffice-service/internal/domain/ports/output"
	post_repository "studentoffice-service/internal/domain/ports/output/post"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
	vote_repository "studentoffice-service/internal/domain/ports/output/vote"
	post_repository_postgres "studentoffice-service/internal/infrastructure/outbound/repository/post/postgres"
	studentoffice_repository_postgres "studentoffice-service/internal/infrastructure/outbound/repository/studentoffice/postgres"
	user_repository_postgres "studentoffice-service/internal/infrastructure/outbound/repository/user/postgres"
	vote_repository_postgres "studentoffice-service/internal/infrastructure/outbound/repository/vote/postgres"
)

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger, metrics ports.MetricsProvider) ports.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback after a successful Commit is a no-op so callers can defer it.
func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) VoteRepository() vote_repository.Repository {
	return vote_repository_postgres.NewVoteRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) UserRepository() user_repository.Repository {
	return user_repository_postgres.NewUserRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) StudentOfficeRepository() studentoffice_repository.Repository {
	return studentoffice_repository_postgres.NewStudentOfficeRepository(t.tx, t.log, t.metrics)
}
