package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/infra/repository"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Repositories are stateless; the same set serves every transaction.
type Repositories struct {
	Groups     shared.GroupRepository
	Members    shared.MemberRepository
	Living     shared.LivingRepository
	Fallen     shared.FallenRepository
	Spins      shared.SpinRepository
	Challenges shared.ChallengeRepository
	Chat       shared.ChatRepository
}

func NewRepositories(
	groups *repository.GroupRepository,
	members *repository.MemberRepository,
	living *repository.LivingRepository,
	fallen *repository.FallenRepository,
	spins *repository.SpinRepository,
	challenges *repository.ChallengeRepository,
	chat *repository.ChatRepository,
) Repositories {
	return Repositories{
		Groups:     groups,
		Members:    members,
		Living:     living,
		Fallen:     fallen,
		Spins:      spins,
		Challenges: challenges,
		Chat:       chat,
	}
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	repos Repositories
}

func NewPostgresUoW(pool *pgxpool.Pool, repos Repositories) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		repos: repos,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.Tx {
	return &pgTx{dbtx: u.pool, repos: u.repos}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx, repos: u.repos})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked, always fits
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  db.DBTX
	repos Repositories
}

func (t *pgTx) DB() db.DBTX                            { return t.dbtx }
func (t *pgTx) Groups() shared.GroupRepository         { return t.repos.Groups }
func (t *pgTx) Members() shared.MemberRepository       { return t.repos.Members }
func (t *pgTx) Living() shared.LivingRepository        { return t.repos.Living }
func (t *pgTx) Fallen() shared.FallenRepository        { return t.repos.Fallen }
func (t *pgTx) Spins() shared.SpinRepository           { return t.repos.Spins }
func (t *pgTx) Challenges() shared.ChallengeRepository { return t.repos.Challenges }
func (t *pgTx) Chat() shared.ChatRepository            { return t.repos.Chat }
