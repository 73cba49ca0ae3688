package readstore

import (
	"context"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"
	"coshare-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConflictReadQueries interface {
	GetConflictRecordByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ConflictRecord, error)
	ListOpenConflicts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenConflictsParams) ([]sqlc.ConflictRecord, error)
	ListExpiredCounterOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredCounterOffersParams) ([]sqlc.ListExpiredCounterOffersRow, error)
	ListConflictIncumbents(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictIncumbent, error)
	ListConflictParticipants(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictParticipant, error)
}

type ConflictReadStore struct {
	queries ConflictReadQueries
	db      sqlc.DBTX
}

func NewConflictReadStore(queries ConflictReadQueries, db sqlc.DBTX) *ConflictReadStore {
	return &ConflictReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ConflictReadStore) FindByID(ctx context.Context, id uuid.UUID) (*conflict.Record, error) {
	row, err := s.queries.GetConflictRecordByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conflict not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conflict by ID", err)
	}

	recs, err := repository.HydrateConflicts(ctx, s.queries, s.db, []sqlc.ConflictRecord{row})
	if err != nil {
		return nil, err
	}
	return recs[0], nil
}

func (s *ConflictReadStore) ListOpen(ctx context.Context, q queries.OpenConflictQuery) ([]*conflict.Record, error) {
	params := sqlc.ListOpenConflictsParams{
		ResourceID:     pgconv.UUIDPtrToPgtype(q.ResourceID),
		InvolvedUserID: pgconv.UUIDPtrToPgtype(q.InvolvedUserID),
		AfterCreatedAt: pgconv.TimePtrToPgtype(q.AfterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(q.AfterID),
		RowLimit:       q.Limit,
	}

	rows, err := s.queries.ListOpenConflicts(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open conflicts", err)
	}
	return repository.HydrateConflicts(ctx, s.queries, s.db, rows)
}

func (s *ConflictReadStore) ListExpiredCounterOffers(ctx context.Context, params sqlc.ListExpiredCounterOffersParams) ([]sqlc.ListExpiredCounterOffersRow, error) {
	rows, err := s.queries.ListExpiredCounterOffers(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired counter-offers", err)
	}
	return rows, nil
}
