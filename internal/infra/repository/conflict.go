package repository

import (
	"context"

	"coshare-scheduler/internal/domain/conflict"
	"coshare-scheduler/internal/infra"
	"coshare-scheduler/internal/infra/repository/converter"
	sqlc "coshare-scheduler/internal/infra/sqlc/generated"
	"coshare-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ConflictWriteQueries interface {
	GetConflictRecordByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ConflictRecord, error)
	ListOpenConflictsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ConflictRecord, error)
	ListConflictIncumbents(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictIncumbent, error)
	ListConflictParticipants(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictParticipant, error)
	CreateConflictRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateConflictRecordParams) error
	UpdateConflictRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateConflictRecordParams) (int32, error)
	InsertConflictIncumbent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertConflictIncumbentParams) error
	UpsertConflictParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertConflictParticipantParams) error
}

type ConflictRepository struct {
	queries ConflictWriteQueries
	db      sqlc.DBTX
}

func NewConflictRepository(queries ConflictWriteQueries, db sqlc.DBTX) *ConflictRepository {
	return &ConflictRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ConflictRepository) FindByID(ctx context.Context, id uuid.UUID) (*conflict.Record, error) {
	row, err := r.queries.GetConflictRecordByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conflict not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conflict by ID", err)
	}

	recs, err := r.hydrate(ctx, []sqlc.ConflictRecord{row})
	if err != nil {
		return nil, err
	}
	return recs[0], nil
}

func (r *ConflictRepository) FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) ([]*conflict.Record, error) {
	rows, err := r.queries.ListOpenConflictsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open conflicts of reservation", err)
	}
	return r.hydrate(ctx, rows)
}

func (r *ConflictRepository) Create(ctx context.Context, rec *conflict.Record) error {
	const initialVersion = 1
	if err := r.queries.CreateConflictRecord(ctx, r.db, converter.ConflictToCreateParams(rec, initialVersion)); err != nil {
		return infra.WrapRepoErr("failed to create conflict", err)
	}
	for i, id := range rec.IncumbentIDs() {
		err := r.queries.InsertConflictIncumbent(ctx, r.db, sqlc.InsertConflictIncumbentParams{
			ConflictID:    rec.ID(),
			ReservationID: id,
			Position:      int32(i), // #nosec G115 -- bounded by overlaps of one window
		})
		if err != nil {
			return infra.WrapRepoErr("failed to store conflict incumbent", err)
		}
	}
	if err := r.saveParticipants(ctx, rec); err != nil {
		return err
	}
	rec.SetVersion(initialVersion)
	return nil
}

// Update checks the version of the record row; participant rows are upserted under that guard.
func (r *ConflictRepository) Update(ctx context.Context, rec *conflict.Record) error {
	version, err := r.queries.UpdateConflictRecord(ctx, r.db, converter.ConflictToUpdateParams(rec))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.NewRepoErr(infra.KindStale, "conflict was modified concurrently")
		}
		return infra.WrapRepoErr("failed to update conflict", err)
	}
	if err := r.saveParticipants(ctx, rec); err != nil {
		return err
	}
	rec.SetVersion(version)
	return nil
}

func (r *ConflictRepository) saveParticipants(ctx context.Context, rec *conflict.Record) error {
	for i, p := range rec.Participants() {
		if err := r.queries.UpsertConflictParticipant(ctx, r.db, converter.ParticipantToParams(rec.ID(), i, p)); err != nil {
			return infra.WrapRepoErr("failed to store conflict participant", err)
		}
	}
	return nil
}

func (r *ConflictRepository) hydrate(ctx context.Context, rows []sqlc.ConflictRecord) ([]*conflict.Record, error) {
	return HydrateConflicts(ctx, r.queries, r.db, rows)
}

// ConflictChildQueries loads the child rows of a batch of conflicts.
type ConflictChildQueries interface {
	ListConflictIncumbents(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictIncumbent, error)
	ListConflictParticipants(ctx context.Context, db sqlc.DBTX, conflictIds []uuid.UUID) ([]sqlc.ConflictParticipant, error)
}

// HydrateConflicts loads incumbents and participants for all rows with two queries.
func HydrateConflicts(ctx context.Context, q ConflictChildQueries, db sqlc.DBTX, rows []sqlc.ConflictRecord) ([]*conflict.Record, error) {
	if len(rows) == 0 {
		return []*conflict.Record{}, nil
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	incRows, err := q.ListConflictIncumbents(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict incumbents", err)
	}
	partRows, err := q.ListConflictParticipants(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflict participants", err)
	}
	incumbents, participants := converter.GroupChildren(incRows, partRows)

	out := make([]*conflict.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.ConflictFromRows(row, incumbents[row.ID], participants[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode conflict", err, infra.KindDBFailure)
		}
		out = append(out, rec)
	}
	return out, nil
}
