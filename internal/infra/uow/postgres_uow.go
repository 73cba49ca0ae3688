package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"coshare-scheduler/internal/infra/readstore"
	"coshare-scheduler/internal/infra/repository"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/errs"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
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

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinResource takes the resource row lock first. Every writer of a resource's windows goes
// through here, so overlap checks and the writes based on them cannot interleave.
func (u *PostgresUoW) WithinResource(ctx context.Context, resourceID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pt, ok := tx.(*pgTx)
		if !ok {
			return errs.New("unexpected transaction type")
		}
		if _, err := u.q.LockResourceForUpdate(ctx, pt.dbtx, resourceID); err != nil {
			if pgconv.IsNoRows(err) {
				return errs.Mark(errs.Wrapf(err, "resource %s", resourceID), errs.ErrResourceNotFound)
			}
			return errs.Mark(errs.Wrap(err, "failed to lock resource"), errs.ErrDatabaseOperationFailed)
		}
		return fn(ctx, tx)
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
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

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
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
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
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
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo     shared.ResourceRepository
	reservationRepo  shared.ReservationRepository
	conflictRepo     shared.ConflictRepository
	stakeholderRepo  shared.StakeholderRepository
	modificationRepo shared.ModificationRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Conflicts() shared.ConflictRepository {
	if t.conflictRepo == nil {
		t.conflictRepo = repository.NewConflictRepository(t.uow.q, t.dbtx)
	}
	return t.conflictRepo
}

func (t *pgTx) Stakeholders() shared.StakeholderRepository {
	if t.stakeholderRepo == nil {
		t.stakeholderRepo = repository.NewStakeholderRepository(t.uow.q, t.dbtx)
	}
	return t.stakeholderRepo
}

func (t *pgTx) Modifications() shared.ModificationRepository {
	if t.modificationRepo == nil {
		t.modificationRepo = repository.NewModificationRepository(t.uow.q, t.dbtx)
	}
	return t.modificationRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

// commandReads routes commands to the right resource lock before a transaction starts.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	reservationRepo *repository.ReservationRepository
	conflictStore   *readstore.ConflictReadStore
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationRepo == nil {
		r.reservationRepo = repository.NewReservationRepository(r.uow.q, r.dbtx)
	}

	res, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:          res.ID(),
		ResourceID:  res.ResourceID(),
		RequesterID: res.RequesterID(),
		Status:      res.Status().String(),
	}
	return snapshot, nil
}

func (r *commandReads) ConflictByID(ctx context.Context, id uuid.UUID) (*shared.ConflictSnapshot, error) {
	store := r.conflicts()
	rec, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ConflictSnapshot{
		ID:         rec.ID(),
		ResourceID: rec.ResourceID(),
		State:      string(rec.State()),
	}
	return snapshot, nil
}

func (r *commandReads) ExpiredCounterOffers(ctx context.Context, now time.Time, limit int32) ([]shared.ConflictSnapshot, error) {
	rows, err := r.conflicts().ListExpiredCounterOffers(ctx, sqlc.ListExpiredCounterOffersParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]shared.ConflictSnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.ConflictSnapshot{ID: row.ID, ResourceID: row.ResourceID, State: row.State}
	}
	return out, nil
}

func (r *commandReads) conflicts() *readstore.ConflictReadStore {
	if r.conflictStore == nil {
		r.conflictStore = readstore.NewConflictReadStore(r.uow.q, r.dbtx)
	}
	return r.conflictStore
}
